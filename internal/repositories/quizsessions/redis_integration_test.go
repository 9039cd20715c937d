//go:build integration
// +build integration

package quizsessions_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-forge/internal/domain/quiz"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
	"github.com/KirkDiggler/character-forge/internal/repositories/quizsessions"
	"github.com/KirkDiggler/character-forge/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)
	repo := quizsessions.NewRedisRepository(&quizsessions.RedisRepoConfig{
		Client: client,
		TTL:    time.Hour,
	})
	ctx := context.Background()
	catalog := quiz.DefaultCatalog()

	session, err := testutils.CreateTestSession("int-1", "owner-1", catalog, "d")
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, session))
	assert.True(t, dnderr.Is(repo.Create(ctx, session), dnderr.CodeAlreadyExists))

	got, err := repo.Get(ctx, "int-1")
	require.NoError(t, err)
	assert.Equal(t, session.Vector, got.Vector)
	assert.Equal(t, session.Answers, got.Answers)

	ttl, err := client.TTL(ctx, "quiz_session:int-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	sessions, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, sessions, 1)

	require.NoError(t, repo.Delete(ctx, "int-1"))
	_, err = repo.Get(ctx, "int-1")
	assert.True(t, dnderr.IsNotFound(err))
}
