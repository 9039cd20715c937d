package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quizdomain "github.com/KirkDiggler/character-forge/internal/domain/quiz"
	"github.com/KirkDiggler/character-forge/internal/handlers/cli"
	"github.com/KirkDiggler/character-forge/internal/repositories/characters"
	"github.com/KirkDiggler/character-forge/internal/repositories/quizsessions"
	"github.com/KirkDiggler/character-forge/internal/services/quiz"
	"github.com/KirkDiggler/character-forge/internal/testutils"
)

func newRunner(input string, out *bytes.Buffer) *cli.Runner {
	svc := quiz.NewService(&quiz.ServiceConfig{
		Sessions:   quizsessions.NewInMemoryRepository(),
		Characters: characters.NewInMemoryRepository(),
	})
	return cli.NewRunner(&cli.RunnerConfig{
		QuizService: svc,
		In:          strings.NewReader(input),
		Out:         out,
	})
}

func TestInteractive(t *testing.T) {
	total := quizdomain.DefaultCatalog().Len()
	input := "z\n\n" + strings.Repeat("A\n", total)

	var out bytes.Buffer
	seed := int64(7)
	char, err := newRunner(input, &out).Interactive(context.Background(), &seed)
	require.NoError(t, err)

	assert.Equal(t, "Paladin", char.Class)
	assert.Equal(t, "Oath of the Ancients", char.Subclass)
	assert.Equal(t, cli.OwnerID, char.OwnerID)

	text := out.String()
	assert.Contains(t, text, "Q1. When you hear the call to adventure, your first thought is:")
	assert.Contains(t, text, "  a) Armor on. If there's danger, meet it head-on.")
	assert.Equal(t, 2, strings.Count(text, "Invalid option. Pick one of: a, b, c, d, e\n"))
	assert.Contains(t, text, "Q18. ")
	assert.Contains(t, text, "CHARACTER SUMMARY")
	assert.Contains(t, text, char.Summary)
	assert.True(t, strings.HasSuffix(text, "Enjoy BG3!\n"))
}

func TestInteractive_InputClosed(t *testing.T) {
	var out bytes.Buffer
	_, err := newRunner("a\nb\n", &out).Interactive(context.Background(), nil)
	assert.ErrorIs(t, err, cli.ErrInputClosed)
}

func TestDemo(t *testing.T) {
	var out bytes.Buffer
	seed := int64(99)
	char, err := newRunner("", &out).Demo(context.Background(), &seed)
	require.NoError(t, err)

	assert.Equal(t, "Barbarian", char.Class)
	assert.True(t, strings.HasPrefix(out.String(), "--- Demo run (seed 99) ---\n"))
	assert.Contains(t, out.String(), "  Charm       : +10\n")
	assert.Contains(t, out.String(), "  Curiosity   : +0\n")
}

func TestPrintCharacter(t *testing.T) {
	char := testutils.CreateTestCharacter("char-1", "owner-1")
	char.Tips = []string{"Use Cunning Action every turn."}

	var out bytes.Buffer
	cli.PrintCharacter(&out, char)

	rule := strings.Repeat("=", 60)
	expected := "\n" + rule + "\n" +
		"CHARACTER SUMMARY\n" +
		rule + "\n" +
		char.Summary + "\n" +
		"\nStats:\n" +
		"  Bravery     : +0\n" +
		"  Cunning     : +4\n" +
		"  Faith       : +0\n" +
		"  Charm       : +0\n" +
		"  Curiosity   : +0\n" +
		"  Stoicism    : +0\n" +
		"  Recklessness: +0\n" +
		"  Empathy     : +0\n" +
		"  Mischief    : +3\n" +
		"  Honor       : +0\n" +
		"\nMechanical tips & roleplay pointers:\n" +
		" - Use Cunning Action every turn.\n" +
		"\nSuggested roleplay hooks:\n" +
		" - " + char.Hooks[0] + "\n" +
		" - " + char.Hooks[1] + "\n" +
		rule + "\n\n"
	assert.Equal(t, expected, out.String())
}
