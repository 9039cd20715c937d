package rulebook

func defaultAlignments() []string {
	return []string{
		"Lawful Good", "Neutral Good", "Chaotic Good",
		"Lawful Neutral", "True Neutral", "Chaotic Neutral",
		"Lawful Evil", "Neutral Evil", "Chaotic Evil",
	}
}

func defaultQuirks() []string {
	return []string{
		"You loudly narrate your actions like a bard in training.",
		"You keep a pet rock you believe is an omen.",
		"You whisper to your weapons as if they are old friends.",
		"You have an unreasonable hatred of geese.",
		"You compulsively organize coins by size and smell.",
		"You misquote ancient proverbs with hilarious results.",
		"You break into rhymes when nervous.",
		"You always carry a folded map of a place you've never visited.",
	}
}

func defaultFlaws() []string {
	return []string{
		"Tells awful jokes at bad moments.",
		"Has a tiny, embarrassing secret (e.g., loves knitting).",
		"Is wildly superstitious about something mundane.",
		"Trust issues with authority figures.",
		"Compulsively hoards small trinkets.",
	}
}

func defaultHooks() []string {
	return []string{
		"You once failed spectacularly at something famous; it's a private shame.",
		"You have a mysterious benefactor whose motives are unclear.",
		"Someone from your past seeks your help—and owes you nothing.",
		"A small symbol you carry attracts the attention of cultists.",
	}
}
