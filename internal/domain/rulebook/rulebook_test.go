package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/character-forge/internal/domain/traits"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
)

func TestDefault_Pools(t *testing.T) {
	rb := rulebook.Default()

	require.NoError(t, rb.Validate())
	assert.Equal(t, []string{
		"Fighter", "Barbarian", "Paladin", "Ranger", "Rogue", "Bard",
		"Cleric", "Druid", "Wizard", "Sorcerer", "Warlock", "Monk",
	}, rb.ClassNames())
	assert.Equal(t, []string{
		"Sage", "Charlatan", "Soldier", "Acolyte", "Urchin",
		"Folk Hero", "Guild Artisan", "Noble", "Outlander",
	}, rb.BackgroundNames())
	assert.Len(t, rb.Races, 9)
	assert.Len(t, rb.Alignments, 9)
	assert.Len(t, rb.Quirks, 8)
	assert.Len(t, rb.Flaws, 5)
	assert.Len(t, rb.Hooks, 4)

	for _, c := range rb.Classes {
		assert.NotEmpty(t, c.Subclasses, c.Name)
	}
}

func TestValidate_EmptyPool(t *testing.T) {
	rb := rulebook.Default()
	rb.Hooks = rb.Hooks[:1]

	assert.True(t, dnderr.Is(rb.Validate(), dnderr.CodeInvalidArgument))
}

func TestLookups(t *testing.T) {
	rb := rulebook.Default()

	c, err := rb.Class("Druid")
	require.NoError(t, err)
	assert.Equal(t, []string{"Circle of the Land", "Circle of the Moon"}, c.Subclasses)

	b, err := rb.Background("Folk Hero")
	require.NoError(t, err)
	assert.Equal(t, "You saved people who couldn't save themselves; beloved locally.", b.Blurb)

	r, err := rb.Race("Githyanki/Githzerai (BG3-specific flavor)")
	require.NoError(t, err)
	assert.Empty(t, r.SRDKey)

	_, err = rb.Class("Artificer")
	assert.True(t, dnderr.IsNotFound(err))
}

func TestTally_ClassRules(t *testing.T) {
	rb := rulebook.Default()

	tests := []struct {
		name  string
		stats map[traits.Trait]int
		want  map[string]int
	}{
		{
			name:  "zero vector scores nothing",
			stats: map[traits.Trait]int{},
			want:  map[string]int{},
		},
		{
			name:  "single answer on first question",
			stats: map[traits.Trait]int{traits.Bravery: 2, traits.Stoicism: 1},
			want:  map[string]int{},
		},
		{
			name:  "bravery and stoicism",
			stats: map[traits.Trait]int{traits.Bravery: 3, traits.Stoicism: 2},
			want:  map[string]int{"Fighter": 3, "Barbarian": 2, "Monk": 2},
		},
		{
			name:  "faith or honor",
			stats: map[traits.Trait]int{traits.Honor: 3, traits.Faith: 1},
			want:  map[string]int{"Paladin": 5, "Cleric": 2},
		},
		{
			name:  "cunning mischief curiosity",
			stats: map[traits.Trait]int{traits.Cunning: 3, traits.Mischief: 2, traits.Curiosity: 2},
			want:  map[string]int{"Rogue": 3, "Warlock": 3},
		},
		{
			name: "every rule",
			stats: map[traits.Trait]int{
				traits.Bravery: 10, traits.Cunning: 10, traits.Faith: 10, traits.Charm: 10,
				traits.Curiosity: 10, traits.Stoicism: 10, traits.Recklessness: 10,
				traits.Empathy: 10, traits.Mischief: 10, traits.Honor: 10,
			},
			want: map[string]int{
				"Fighter": 3, "Barbarian": 4, "Paladin": 6, "Ranger": 2, "Rogue": 3, "Bard": 4,
				"Cleric": 4, "Druid": 2, "Wizard": 3, "Sorcerer": 1, "Warlock": 3, "Monk": 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := traits.New()
			for trait, value := range tt.stats {
				v[trait] = value
			}

			scores := rulebook.Tally(rb.ClassRules, v, rb.ClassNames())

			require.Len(t, scores, 12)
			for i, s := range scores {
				assert.Equal(t, rb.Classes[i].Name, s.Name)
				assert.Equal(t, tt.want[s.Name], s.Points, s.Name)
			}
		})
	}
}

func TestTally_BackgroundRules(t *testing.T) {
	rb := rulebook.Default()
	v := traits.New()
	v[traits.Honor] = 2
	v[traits.Stoicism] = 1

	scores := rulebook.Tally(rb.BackgroundRules, v, rb.BackgroundNames())

	got := map[string]int{}
	for _, s := range scores {
		got[s.Name] = s.Points
	}
	assert.Equal(t, map[string]int{
		"Sage": 0, "Charlatan": 0, "Soldier": 0, "Acolyte": 0, "Urchin": 0,
		"Folk Hero": 2, "Guild Artisan": 0, "Noble": 2, "Outlander": 1,
	}, got)
}

func TestBest_FirstWinsTies(t *testing.T) {
	scores := []*rulebook.Score{
		{Name: "a", Points: 1},
		{Name: "b", Points: 3},
		{Name: "c", Points: 3},
	}

	assert.Equal(t, "b", rulebook.Best(scores).Name)
	assert.Nil(t, rulebook.Best(nil))
}

func TestTone_Cascade(t *testing.T) {
	rb := rulebook.Default()

	tests := []struct {
		name  string
		stats map[traits.Trait]int
		want  string
	}{
		{name: "balanced", stats: map[traits.Trait]int{traits.Bravery: 2}, want: "balanced"},
		{name: "bold", stats: map[traits.Trait]int{traits.Bravery: 3}, want: "bold"},
		{name: "scholarly beats bold", stats: map[traits.Trait]int{traits.Bravery: 9, traits.Curiosity: 3}, want: "scholarly"},
		{name: "devout beats scholarly", stats: map[traits.Trait]int{traits.Faith: 3, traits.Curiosity: 9}, want: "devout"},
		{name: "mischievous first", stats: map[traits.Trait]int{traits.Mischief: 3, traits.Faith: 9}, want: "mischievous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := traits.New()
			for trait, value := range tt.stats {
				v[trait] = value
			}
			assert.Equal(t, tt.want, rb.Tone(v))
		})
	}
}

func TestTips(t *testing.T) {
	rb := rulebook.Default()

	assert.Equal(t, []string{}, rb.Tips("Rogue", "Urchin", "You break into rhymes when nervous."))
	assert.Equal(t, []string{
		"Heavy armor and front-line options are your bread and butter.",
		"Look for lore interactions; you might unlock extra dialogue options.",
		"Avoid lakes in roleplay or it will end badly.",
	}, rb.Tips("Ranger", "Sage", "You have an unreasonable hatred of geese."))
	assert.Equal(t, []string{
		"Consider Intelligence/Charisma based spells and keep a few control/utility spells.",
	}, rb.Tips("Bard", "Noble", "You keep a pet rock you believe is an omen."))
}
