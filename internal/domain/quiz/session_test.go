package quiz_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-forge/internal/domain/quiz"
	"github.com/KirkDiggler/character-forge/internal/domain/traits"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
)

func TestSession_AnswerAdvances(t *testing.T) {
	catalog := quiz.DefaultCatalog()
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	later := start.Add(time.Minute)

	s := quiz.NewSession("s-1", "owner-1", start)
	require.Equal(t, quiz.SessionStatusInProgress, s.Status)

	require.NoError(t, s.Answer(catalog, "a", later))

	assert.Equal(t, 1, s.Current)
	assert.Equal(t, []string{"a"}, s.Answers)
	assert.Equal(t, 2, s.Vector[traits.Bravery])
	assert.Equal(t, 1, s.Vector[traits.Stoicism])
	assert.Equal(t, start, s.CreatedAt)
	assert.Equal(t, later, s.UpdatedAt)
}

func TestSession_InvalidAnswerLeavesSessionUntouched(t *testing.T) {
	catalog := quiz.DefaultCatalog()
	now := time.Now()
	s := quiz.NewSession("s-1", "owner-1", now)

	err := s.Answer(catalog, "q", now.Add(time.Second))

	require.True(t, dnderr.IsInvalidOption(err))
	assert.Equal(t, 0, s.Current)
	assert.Empty(t, s.Answers)
	assert.Equal(t, traits.New(), s.Vector)
	assert.Equal(t, now, s.UpdatedAt)
}

func TestSession_AnswerPastEnd(t *testing.T) {
	catalog := quiz.DefaultCatalog()
	now := time.Now()
	s := quiz.NewSession("s-1", "owner-1", now)

	for i := 0; i < catalog.Len(); i++ {
		require.NoError(t, s.Answer(catalog, "c", now))
	}
	assert.True(t, s.Answered(catalog))

	err := s.Answer(catalog, "c", now)
	assert.True(t, dnderr.IsFailedPrecondition(err))
	assert.Len(t, s.Answers, catalog.Len())
}

func TestSession_Complete(t *testing.T) {
	catalog := quiz.DefaultCatalog()
	now := time.Now()
	s := quiz.NewSession("s-1", "owner-1", now)

	s.Complete("char-1", now.Add(time.Hour))

	assert.Equal(t, quiz.SessionStatusCompleted, s.Status)
	assert.Equal(t, "char-1", s.CharacterID)
	assert.True(t, dnderr.IsFailedPrecondition(s.Answer(catalog, "a", now)))
}
