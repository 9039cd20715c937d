package rulebook

// Background is a character background with its one-line blurb
type Background struct {
	Name  string `json:"name"`
	Blurb string `json:"blurb"`
}

// Background names in canonical scoring order
const (
	Sage         = "Sage"
	Charlatan    = "Charlatan"
	Soldier      = "Soldier"
	Acolyte      = "Acolyte"
	Urchin       = "Urchin"
	FolkHero     = "Folk Hero"
	GuildArtisan = "Guild Artisan"
	Noble        = "Noble"
	Outlander    = "Outlander"
)

func defaultBackgrounds() []*Background {
	return []*Background{
		{Name: Sage, Blurb: "You spent years in study, seeking knowledge above all."},
		{Name: Charlatan, Blurb: "You learned deception to survive; silver tongue included."},
		{Name: Soldier, Blurb: "Trained with discipline and battlefield experience."},
		{Name: Acolyte, Blurb: "Raised in service to a faith and its rituals."},
		{Name: Urchin, Blurb: "You know the streets, the shortcuts, and the smells."},
		{Name: FolkHero, Blurb: "You saved people who couldn't save themselves; beloved locally."},
		{Name: GuildArtisan, Blurb: "Crafts and commerce are your trade."},
		{Name: Noble, Blurb: "Born to rank; duty and pride define you."},
		{Name: Outlander, Blurb: "You grew up far from civilized centers; hunter, forager."},
	}
}
