// Package rulebook holds the data the forge draws from: the class, background
// and race pools, the flavor lists, and the rule tables that score a trait
// vector. A Rulebook is read-only once built and safe to share.
package rulebook

import (
	"github.com/KirkDiggler/character-forge/internal/domain/traits"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
)

// Rulebook bundles every table synthesis reads
type Rulebook struct {
	Classes     []*Class
	Backgrounds []*Background
	Races       []*Race
	Alignments  []string
	Quirks      []string
	Flaws       []string
	Hooks       []string

	ClassRules      []ScoreRule
	BackgroundRules []ScoreRule
	ToneRules       []ToneRule
	DefaultTone     string
	TipRules        []TipRule
}

// Default returns the shipped rulebook
func Default() *Rulebook {
	return &Rulebook{
		Classes:         defaultClasses(),
		Backgrounds:     defaultBackgrounds(),
		Races:           defaultRaces(),
		Alignments:      defaultAlignments(),
		Quirks:          defaultQuirks(),
		Flaws:           defaultFlaws(),
		Hooks:           defaultHooks(),
		ClassRules:      defaultClassRules(),
		BackgroundRules: defaultBackgroundRules(),
		ToneRules:       defaultToneRules(),
		DefaultTone:     DefaultTone,
		TipRules:        defaultTipRules(),
	}
}

// Validate checks that every pool a synthesis draws from is non-empty
func (rb *Rulebook) Validate() error {
	switch {
	case len(rb.Classes) == 0:
		return dnderr.InvalidArgument("rulebook has no classes")
	case len(rb.Backgrounds) == 0:
		return dnderr.InvalidArgument("rulebook has no backgrounds")
	case len(rb.Races) == 0:
		return dnderr.InvalidArgument("rulebook has no races")
	case len(rb.Alignments) == 0:
		return dnderr.InvalidArgument("rulebook has no alignments")
	case len(rb.Quirks) == 0:
		return dnderr.InvalidArgument("rulebook has no quirks")
	case len(rb.Flaws) == 0:
		return dnderr.InvalidArgument("rulebook has no flaws")
	case len(rb.Hooks) < 2:
		return dnderr.InvalidArgument("rulebook needs at least two hooks")
	}
	return nil
}

// ClassNames returns class names in canonical order
func (rb *Rulebook) ClassNames() []string {
	names := make([]string, len(rb.Classes))
	for i, c := range rb.Classes {
		names[i] = c.Name
	}
	return names
}

// BackgroundNames returns background names in canonical order
func (rb *Rulebook) BackgroundNames() []string {
	names := make([]string, len(rb.Backgrounds))
	for i, b := range rb.Backgrounds {
		names[i] = b.Name
	}
	return names
}

// Class looks up a class by name
func (rb *Rulebook) Class(name string) (*Class, error) {
	for _, c := range rb.Classes {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, dnderr.NotFoundf("class %s not found", name).
		WithMeta("class", name)
}

// Background looks up a background by name
func (rb *Rulebook) Background(name string) (*Background, error) {
	for _, b := range rb.Backgrounds {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, dnderr.NotFoundf("background %s not found", name).
		WithMeta("background", name)
}

// Race looks up a race suggestion by name
func (rb *Rulebook) Race(name string) (*Race, error) {
	for _, r := range rb.Races {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, dnderr.NotFoundf("race %s not found", name).
		WithMeta("race", name)
}

// Tone returns the tone of the first tone rule that holds for v
func (rb *Rulebook) Tone(v traits.Vector) string {
	for _, rule := range rb.ToneRules {
		if rule.When.Holds(v) {
			return rule.Tone
		}
	}
	return rb.DefaultTone
}

// Tips returns the text of every tip rule matching the character, in rule order
func (rb *Rulebook) Tips(class, background, quirk string) []string {
	tips := []string{}
	for _, rule := range rb.TipRules {
		if rule.matches(class, background, quirk) {
			tips = append(tips, rule.Text)
		}
	}
	return tips
}
