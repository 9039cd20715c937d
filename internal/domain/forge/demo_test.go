package forge_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-forge/internal/domain/forge"
	"github.com/KirkDiggler/character-forge/internal/domain/quiz"
	"github.com/KirkDiggler/character-forge/internal/domain/traits"
)

func TestDemo_KnownSeeds(t *testing.T) {
	engine := forge.NewEngine(nil)
	catalog := quiz.DefaultCatalog()

	tests := []struct {
		seed       int64
		answers    string
		stats      map[traits.Trait]int
		class      string
		subclass   string
		background string
		race       string
		alignment  string
		tone       string
	}{
		{
			seed:    1234,
			answers: "daaaeaaacbaaaceded",
			stats: map[traits.Trait]int{
				traits.Bravery: 10, traits.Cunning: 1, traits.Faith: 4, traits.Charm: 4, traits.Curiosity: 6,
				traits.Stoicism: 2, traits.Recklessness: 3, traits.Empathy: 2, traits.Mischief: 2, traits.Honor: 8,
			},
			class:      "Paladin",
			subclass:   "Oath of Devotion",
			background: "Acolyte",
			race:       "Half-Elf",
			alignment:  "Neutral Good",
			tone:       "devout",
		},
		{
			seed:    99,
			answers: "ddbebbbbacdeeaedbd",
			stats: map[traits.Trait]int{
				traits.Bravery: 3, traits.Cunning: 9, traits.Faith: 4, traits.Charm: 10, traits.Curiosity: 0,
				traits.Stoicism: 3, traits.Recklessness: 4, traits.Empathy: 3, traits.Mischief: 5, traits.Honor: 1,
			},
			class:      "Barbarian",
			subclass:   "Totem (spiritual flavors)",
			background: "Charlatan",
			race:       "Dwarf",
			alignment:  "Chaotic Neutral",
			tone:       "mischievous",
		},
	}

	for _, tt := range tests {
		run, err := engine.Demo(catalog, tt.seed)
		require.NoError(t, err)

		assert.Equal(t, tt.seed, run.Seed)
		assert.Equal(t, tt.answers, strings.Join(run.Answers, ""))
		for trait, want := range tt.stats {
			assert.Equal(t, want, run.Character.Stats[trait], "seed %d trait %s", tt.seed, trait)
		}
		assert.Equal(t, tt.class, run.Character.Class)
		assert.Equal(t, tt.subclass, run.Character.Subclass)
		assert.Equal(t, tt.background, run.Character.Background)
		assert.Equal(t, tt.race, run.Character.Race)
		assert.Equal(t, tt.alignment, run.Character.Alignment)
		assert.Equal(t, tt.tone, run.Character.Tone)
		assert.Equal(t, tt.seed, run.Character.Seed)
	}
}

func TestDemo_ReplaysThroughSynthesizeSeed(t *testing.T) {
	engine := forge.NewEngine(nil)
	catalog := quiz.DefaultCatalog()

	run, err := engine.Demo(catalog, 5150)
	require.NoError(t, err)

	v := traits.New()
	for i, key := range run.Answers {
		v, err = catalog.Apply(v, i, key)
		require.NoError(t, err)
	}
	again, err := engine.SynthesizeSeed(v, run.Seed)
	require.NoError(t, err)

	assert.Equal(t, run.Character, again)
}
