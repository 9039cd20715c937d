// Package forge turns a finished trait vector into a character.
//
// Every random choice is drawn from a single dice.Roller in a fixed order:
// class noise, background noise, race, alignment, subclass, quirk, flaw,
// and finally the two hooks. Reordering those draws changes which character
// a seed produces.
package forge

import (
	"github.com/KirkDiggler/character-forge/internal/dice"
	"github.com/KirkDiggler/character-forge/internal/domain/character"
	"github.com/KirkDiggler/character-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/character-forge/internal/domain/traits"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
)

// NoSubclass is suggested when a class has no subclass list
const NoSubclass = "Any"

// hookCount is how many distinct hooks a character receives
const hookCount = 2

// EngineConfig holds the engine dependencies
type EngineConfig struct {
	Rulebook *rulebook.Rulebook
}

// Engine synthesizes characters from a rulebook
type Engine struct {
	rulebook *rulebook.Rulebook
}

// NewEngine creates an engine. A nil config or rulebook uses rulebook.Default.
func NewEngine(cfg *EngineConfig) *Engine {
	rb := rulebook.Default()
	if cfg != nil && cfg.Rulebook != nil {
		rb = cfg.Rulebook
	}
	if err := rb.Validate(); err != nil {
		panic(err.Error())
	}
	return &Engine{rulebook: rb}
}

// Rulebook returns the tables the engine draws from
func (e *Engine) Rulebook() *rulebook.Rulebook {
	return e.rulebook
}

// SynthesizeSeed synthesizes with a roller seeded from seed and records the
// seed on the character
func (e *Engine) SynthesizeSeed(v traits.Vector, seed int64) (*character.Character, error) {
	char, err := e.Synthesize(v, dice.NewSeededRoller(seed))
	if err != nil {
		return nil, err
	}
	char.Seed = seed
	return char, nil
}

// Synthesize builds a character from v, drawing all randomness from roller
func (e *Engine) Synthesize(v traits.Vector, roller dice.Roller) (*character.Character, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if roller == nil {
		return nil, dnderr.InvalidArgument("roller is required")
	}

	stats := v.Clamp()
	rb := e.rulebook

	classScores := rulebook.Tally(rb.ClassRules, stats, rb.ClassNames())
	if err := addNoise(roller, classScores); err != nil {
		return nil, dnderr.Wrap(err, "failed to roll class tie-breakers")
	}
	class, err := rb.Class(rulebook.Best(classScores).Name)
	if err != nil {
		return nil, err
	}

	backgroundScores := rulebook.Tally(rb.BackgroundRules, stats, rb.BackgroundNames())
	if err := addNoise(roller, backgroundScores); err != nil {
		return nil, dnderr.Wrap(err, "failed to roll background tie-breakers")
	}
	background, err := rb.Background(rulebook.Best(backgroundScores).Name)
	if err != nil {
		return nil, err
	}

	race, err := pick(roller, rb.Races)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to pick race")
	}
	alignment, err := pick(roller, rb.Alignments)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to pick alignment")
	}

	subclass := NoSubclass
	if len(class.Subclasses) > 0 {
		subclass, err = pick(roller, class.Subclasses)
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to pick subclass")
		}
	}

	quirk, err := pick(roller, rb.Quirks)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to pick quirk")
	}
	flaw, err := pick(roller, rb.Flaws)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to pick flaw")
	}

	hookIndexes, err := dice.Sample(roller, len(rb.Hooks), hookCount)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to pick hooks")
	}
	hooks := make([]string, len(hookIndexes))
	for i, idx := range hookIndexes {
		hooks[i] = rb.Hooks[idx]
	}

	char := &character.Character{
		Class:           class.Name,
		Subclass:        subclass,
		Background:      background.Name,
		BackgroundBlurb: background.Blurb,
		Race:            race.Name,
		Alignment:       alignment,
		Quirk:           quirk,
		Flaw:            flaw,
		Tone:            rb.Tone(stats),
		Hooks:           hooks,
		Stats:           stats,
		TopStats:        stats.Top(3),
	}
	char.Summary = character.ComposeSummary(char)
	char.Tips = rb.Tips(char.Class, char.Background, char.Quirk)

	return char, nil
}

// addNoise adds a uniform 0..2 tie-breaker to every score, in order
func addNoise(roller dice.Roller, scores []*rulebook.Score) error {
	for _, s := range scores {
		result, err := roller.Roll(1, 3, -1)
		if err != nil {
			return err
		}
		s.Points += result.Total
	}
	return nil
}

func pick[T any](roller dice.Roller, pool []T) (T, error) {
	var zero T
	idx, err := dice.Pick(roller, len(pool))
	if err != nil {
		return zero, err
	}
	return pool[idx], nil
}
