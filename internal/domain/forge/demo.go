package forge

import (
	"github.com/KirkDiggler/character-forge/internal/dice"
	"github.com/KirkDiggler/character-forge/internal/domain/character"
	"github.com/KirkDiggler/character-forge/internal/domain/quiz"
	"github.com/KirkDiggler/character-forge/internal/domain/traits"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
)

// DemoRun is a quiz answered at random and the character it produced
type DemoRun struct {
	Seed      int64                `json:"seed"`
	Answers   []string             `json:"answers"`
	Character *character.Character `json:"character"`
}

// Demo answers every question of catalog with a uniform pick from a stream
// seeded with seed, then synthesizes from a fresh stream with the same seed.
func (e *Engine) Demo(catalog quiz.Catalog, seed int64) (*DemoRun, error) {
	roller := dice.NewSeededRoller(seed)
	v := traits.New()
	answers := make([]string, 0, catalog.Len())

	for i, q := range catalog {
		idx, err := dice.Pick(roller, len(q.Options))
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to pick answer for question %d", i)
		}
		key := q.Options[idx].Key

		v, err = catalog.Apply(v, i, key)
		if err != nil {
			return nil, err
		}
		answers = append(answers, key)
	}

	char, err := e.SynthesizeSeed(v, seed)
	if err != nil {
		return nil, err
	}

	return &DemoRun{
		Seed:      seed,
		Answers:   answers,
		Character: char,
	}, nil
}
