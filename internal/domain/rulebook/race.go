package rulebook

// Race is a race suggestion. SRDKey is empty for races the SRD does not carry.
type Race struct {
	Name   string `json:"name"`
	SRDKey string `json:"srd_key,omitempty"`
}

// RaceReference is the SRD view of a race
type RaceReference struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Speed int    `json:"speed"`
}

func defaultRaces() []*Race {
	return []*Race{
		{Name: "Human", SRDKey: "human"},
		{Name: "Elf (High/Eladrin/Drow flavor)", SRDKey: "elf"},
		{Name: "Half-Elf", SRDKey: "half-elf"},
		{Name: "Dwarf", SRDKey: "dwarf"},
		{Name: "Halfling", SRDKey: "halfling"},
		{Name: "Githyanki/Githzerai (BG3-specific flavor)"},
		{Name: "Tiefling", SRDKey: "tiefling"},
		{Name: "Half-Orc", SRDKey: "half-orc"},
		{Name: "Gnome", SRDKey: "gnome"},
	}
}
