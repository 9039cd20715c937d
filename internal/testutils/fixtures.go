package testutils

import (
	"time"

	"github.com/KirkDiggler/character-forge/internal/domain/character"
	"github.com/KirkDiggler/character-forge/internal/domain/quiz"
	"github.com/KirkDiggler/character-forge/internal/domain/traits"
)

// CreateTestCharacter creates an archived character with fixed flavor
func CreateTestCharacter(id, ownerID string) *character.Character {
	stats := traits.New()
	stats[traits.Cunning] = 4
	stats[traits.Mischief] = 3

	char := &character.Character{
		ID:              id,
		OwnerID:         ownerID,
		SessionID:       "session-" + id,
		Class:           "Rogue",
		Subclass:        "Thief",
		Background:      "Urchin",
		BackgroundBlurb: "You know the streets, the shortcuts, and the smells.",
		Race:            "Halfling",
		Alignment:       "Chaotic Neutral",
		Quirk:           "You break into rhymes when nervous.",
		Flaw:            "Compulsively hoards small trinkets.",
		Tone:            "mischievous",
		Hooks: []string{
			"You have a mysterious benefactor whose motives are unclear.",
			"A small symbol you carry attracts the attention of cultists.",
		},
		Stats:     stats,
		TopStats:  []traits.Trait{traits.Cunning, traits.Mischief, traits.Bravery},
		Tips:      []string{},
		Seed:      42,
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	char.Summary = character.ComposeSummary(char)
	return char
}

// CreateTestSession creates a session that has answered every question of
// catalog with optionKey
func CreateTestSession(id, ownerID string, catalog quiz.Catalog, optionKey string) (*quiz.Session, error) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	session := quiz.NewSession(id, ownerID, now)
	for i := 0; i < catalog.Len(); i++ {
		if err := session.Answer(catalog, optionKey, now); err != nil {
			return nil, err
		}
	}
	return session, nil
}
