package rulebook

import (
	"strings"

	"github.com/KirkDiggler/character-forge/internal/domain/traits"
)

// Condition is a predicate over a trait vector
type Condition interface {
	Holds(v traits.Vector) bool
}

// AtLeast holds when Trait is at or above Value
type AtLeast struct {
	Trait traits.Trait
	Value int
}

func (c AtLeast) Holds(v traits.Vector) bool {
	return v[c.Trait] >= c.Value
}

// AllOf holds when every condition holds
type AllOf []Condition

func (c AllOf) Holds(v traits.Vector) bool {
	for _, cond := range c {
		if !cond.Holds(v) {
			return false
		}
	}
	return true
}

// AnyOf holds when at least one condition holds
type AnyOf []Condition

func (c AnyOf) Holds(v traits.Vector) bool {
	for _, cond := range c {
		if cond.Holds(v) {
			return true
		}
	}
	return false
}

// Award adds Points to the named candidate
type Award struct {
	Name   string
	Points int
}

// ScoreRule grants its awards when its condition holds. Rules are cumulative.
type ScoreRule struct {
	When   Condition
	Awards []Award
}

// Score is one candidate's running total
type Score struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// Tally evaluates rules against v and returns a score per name, in the order
// given. Awards to names outside order are ignored.
func Tally(rules []ScoreRule, v traits.Vector, order []string) []*Score {
	scores := make([]*Score, len(order))
	index := make(map[string]int, len(order))
	for i, name := range order {
		scores[i] = &Score{Name: name}
		index[name] = i
	}

	for _, rule := range rules {
		if !rule.When.Holds(v) {
			continue
		}
		for _, award := range rule.Awards {
			if i, ok := index[award.Name]; ok {
				scores[i].Points += award.Points
			}
		}
	}
	return scores
}

// Best returns the highest score. The earliest entry wins ties.
func Best(scores []*Score) *Score {
	var best *Score
	for _, s := range scores {
		if best == nil || s.Points > best.Points {
			best = s
		}
	}
	return best
}

// ToneRule names the tone used when its condition holds
type ToneRule struct {
	When Condition
	Tone string
}

// TipRule appends Text when any of its criteria match.
// Empty criteria never match.
type TipRule struct {
	Classes       []string
	Background    string
	QuirkContains string
	Text          string
}

func (r TipRule) matches(class, background, quirk string) bool {
	for _, c := range r.Classes {
		if c == class {
			return true
		}
	}
	if r.Background != "" && r.Background == background {
		return true
	}
	return r.QuirkContains != "" && strings.Contains(quirk, r.QuirkContains)
}

func defaultClassRules() []ScoreRule {
	return []ScoreRule{
		{
			When:   AtLeast{traits.Bravery, 3},
			Awards: []Award{{Fighter, 2}, {Barbarian, 2}},
		},
		{
			When:   AtLeast{traits.Recklessness, 2},
			Awards: []Award{{Barbarian, 2}, {Sorcerer, 1}},
		},
		{
			When:   AnyOf{AtLeast{traits.Faith, 3}, AtLeast{traits.Honor, 3}},
			Awards: []Award{{Paladin, 3}, {Cleric, 2}},
		},
		{
			When:   AllOf{AtLeast{traits.Cunning, 3}, AtLeast{traits.Mischief, 2}},
			Awards: []Award{{Rogue, 3}, {Warlock, 1}},
		},
		{
			When:   AllOf{AtLeast{traits.Charm, 3}, AtLeast{traits.Mischief, 1}},
			Awards: []Award{{Bard, 3}},
		},
		{
			When:   AtLeast{traits.Curiosity, 3},
			Awards: []Award{{Wizard, 3}, {Druid, 1}},
		},
		{
			When:   AllOf{AtLeast{traits.Empathy, 3}, AtLeast{traits.Faith, 1}},
			Awards: []Award{{Cleric, 2}, {Druid, 1}},
		},
		{
			When:   AllOf{AtLeast{traits.Stoicism, 2}, AtLeast{traits.Bravery, 2}},
			Awards: []Award{{Monk, 2}, {Fighter, 1}},
		},
		{
			When:   AllOf{AtLeast{traits.Cunning, 2}, AtLeast{traits.Bravery, 1}},
			Awards: []Award{{Ranger, 2}},
		},
		{
			When:   AllOf{AtLeast{traits.Curiosity, 2}, AtLeast{traits.Mischief, 2}},
			Awards: []Award{{Warlock, 2}},
		},
		{
			When:   AllOf{AtLeast{traits.Charm, 2}, AtLeast{traits.Bravery, 1}},
			Awards: []Award{{Paladin, 1}, {Bard, 1}},
		},
		{
			When:   AllOf{AtLeast{traits.Honor, 2}, AtLeast{traits.Faith, 1}},
			Awards: []Award{{Paladin, 2}},
		},
	}
}

func defaultBackgroundRules() []ScoreRule {
	return []ScoreRule{
		{When: AtLeast{traits.Curiosity, 2}, Awards: []Award{{Sage, 3}}},
		{When: AtLeast{traits.Mischief, 2}, Awards: []Award{{Charlatan, 3}}},
		{When: AtLeast{traits.Bravery, 2}, Awards: []Award{{Soldier, 3}}},
		{When: AtLeast{traits.Faith, 2}, Awards: []Award{{Acolyte, 3}}},
		{When: AtLeast{traits.Cunning, 2}, Awards: []Award{{Urchin, 2}}},
		{When: AtLeast{traits.Honor, 2}, Awards: []Award{{FolkHero, 2}}},
		{When: AtLeast{traits.Charm, 2}, Awards: []Award{{GuildArtisan, 1}}},
		{When: AtLeast{traits.Honor, 2}, Awards: []Award{{Noble, 2}}},
		{When: AtLeast{traits.Stoicism, 1}, Awards: []Award{{Outlander, 1}}},
	}
}

// DefaultTone is used when no tone rule holds
const DefaultTone = "balanced"

func defaultToneRules() []ToneRule {
	return []ToneRule{
		{When: AtLeast{traits.Mischief, 3}, Tone: "mischievous"},
		{When: AtLeast{traits.Faith, 3}, Tone: "devout"},
		{When: AtLeast{traits.Curiosity, 3}, Tone: "scholarly"},
		{When: AtLeast{traits.Bravery, 3}, Tone: "bold"},
	}
}

func defaultTipRules() []TipRule {
	return []TipRule{
		{
			Classes: []string{Wizard, Sorcerer, Warlock, Bard},
			Text:    "Consider Intelligence/Charisma based spells and keep a few control/utility spells.",
		},
		{
			Classes: []string{Fighter, Paladin, Barbarian, Ranger},
			Text:    "Heavy armor and front-line options are your bread and butter.",
		},
		{
			Background: Sage,
			Text:       "Look for lore interactions; you might unlock extra dialogue options.",
		},
		{
			QuirkContains: "geese",
			Text:          "Avoid lakes in roleplay or it will end badly.",
		},
	}
}
