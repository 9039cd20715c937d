// Package traits defines the hidden trait vector a quiz accumulates.
package traits

import (
	"sort"

	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
)

// Trait is one named dimension of a character's disposition
type Trait string

const (
	Bravery      Trait = "Bravery"
	Cunning      Trait = "Cunning"
	Faith        Trait = "Faith"
	Charm        Trait = "Charm"
	Curiosity    Trait = "Curiosity"
	Stoicism     Trait = "Stoicism"
	Recklessness Trait = "Recklessness"
	Empathy      Trait = "Empathy"
	Mischief     Trait = "Mischief"
	Honor        Trait = "Honor"
)

// Bounds every trait value is clamped into after any change
const (
	Min = -3
	Max = 10
)

// All lists the traits in canonical declaration order.
// Ranking ties resolve in this order.
var All = []Trait{
	Bravery, Cunning, Faith, Charm, Curiosity,
	Stoicism, Recklessness, Empathy, Mischief, Honor,
}

// Valid reports whether t is one of the ten known traits
func (t Trait) Valid() bool {
	for _, known := range All {
		if t == known {
			return true
		}
	}
	return false
}

// Delta holds the trait adjustments of one answer; absent traits are unchanged
type Delta map[Trait]int

// Vector holds the current value of every trait
type Vector map[Trait]int

// New returns a vector with every trait at zero
func New() Vector {
	v := make(Vector, len(All))
	for _, t := range All {
		v[t] = 0
	}
	return v
}

// Validate returns an incomplete vector error naming the first missing trait
func (v Vector) Validate() error {
	var missing []string
	for _, t := range All {
		if _, ok := v[t]; !ok {
			missing = append(missing, string(t))
		}
	}
	if len(missing) > 0 {
		return dnderr.IncompleteVectorf("trait vector is missing %d of %d traits", len(missing), len(All)).
			WithMeta("missing", missing)
	}
	return nil
}

// Clone returns an independent copy of v
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for t, value := range v {
		out[t] = value
	}
	return out
}

// Clamp returns a copy of v with every value forced into [Min, Max]
func (v Vector) Clamp() Vector {
	out := v.Clone()
	for t, value := range out {
		out[t] = clamp(value)
	}
	return out
}

// Apply returns v plus delta, clamped. v must be complete; v is not modified.
func (v Vector) Apply(delta Delta) (Vector, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	out := v.Clone()
	for t, change := range delta {
		out[t] += change
	}
	return out.Clamp(), nil
}

// Ranked returns the traits ordered by value, highest first.
// Equal values keep canonical order.
func (v Vector) Ranked() []Trait {
	ranked := make([]Trait, len(All))
	copy(ranked, All)
	sort.SliceStable(ranked, func(i, j int) bool {
		return v[ranked[i]] > v[ranked[j]]
	})
	return ranked
}

// Top returns the first n ranked traits
func (v Vector) Top(n int) []Trait {
	ranked := v.Ranked()
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// TopTier returns every trait that shares the highest value
func (v Vector) TopTier() []Trait {
	ranked := v.Ranked()
	best := v[ranked[0]]

	var tier []Trait
	for _, t := range ranked {
		if v[t] != best {
			break
		}
		tier = append(tier, t)
	}
	return tier
}

func clamp(value int) int {
	if value < Min {
		return Min
	}
	if value > Max {
		return Max
	}
	return value
}
