package rulebook

// Class is a character class the forge can assign
type Class struct {
	Key        string   `json:"key"`
	Name       string   `json:"name"`
	Subclasses []string `json:"subclasses"`
}

// ClassReference is the SRD view of a class
type ClassReference struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	HitDie        int      `json:"hit_die"`
	Proficiencies []string `json:"proficiencies"`
}

// Class names in canonical scoring order
const (
	Fighter   = "Fighter"
	Barbarian = "Barbarian"
	Paladin   = "Paladin"
	Ranger    = "Ranger"
	Rogue     = "Rogue"
	Bard      = "Bard"
	Cleric    = "Cleric"
	Druid     = "Druid"
	Wizard    = "Wizard"
	Sorcerer  = "Sorcerer"
	Warlock   = "Warlock"
	Monk      = "Monk"
)

func defaultClasses() []*Class {
	return []*Class{
		{Key: "fighter", Name: Fighter, Subclasses: []string{
			"Battle Master (tactical)", "Champion (simple and reliable)", "Eldritch Knight (magic-armored)",
		}},
		{Key: "barbarian", Name: Barbarian, Subclasses: []string{
			"Berserker (rage pure)", "Totem (spiritual flavors)",
		}},
		{Key: "paladin", Name: Paladin, Subclasses: []string{
			"Oath of Devotion", "Oath of Vengeance", "Oath of the Ancients",
		}},
		{Key: "ranger", Name: Ranger, Subclasses: []string{
			"Gloom Stalker", "Hunter", "Beast Master",
		}},
		{Key: "rogue", Name: Rogue, Subclasses: []string{
			"Thief", "Assassin", "Arcane Trickster",
		}},
		{Key: "bard", Name: Bard, Subclasses: []string{
			"College of Lore", "College of Valor", "College of Satire",
		}},
		{Key: "cleric", Name: Cleric, Subclasses: []string{
			"Life Domain", "War Domain", "Trickery Domain",
		}},
		{Key: "druid", Name: Druid, Subclasses: []string{
			"Circle of the Land", "Circle of the Moon",
		}},
		{Key: "wizard", Name: Wizard, Subclasses: []string{
			"School of Evocation", "School of Illusion", "School of Divination",
		}},
		{Key: "sorcerer", Name: Sorcerer, Subclasses: []string{
			"Draconic Bloodline", "Wild Magic", "Divine Soul",
		}},
		{Key: "warlock", Name: Warlock, Subclasses: []string{
			"The Fiend", "The Great Old One", "The Archfey",
		}},
		{Key: "monk", Name: Monk, Subclasses: []string{
			"Way of the Open Hand", "Way of Shadow", "Way of the Four Elements",
		}},
	}
}
