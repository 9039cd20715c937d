//go:build integration
// +build integration

package dnd5e_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-forge/internal/clients/dnd5e"
)

func TestClient_Integration(t *testing.T) {
	client, err := dnd5e.New(&dnd5e.Config{
		HttpClient: &http.Client{Timeout: 10 * time.Second},
	})
	require.NoError(t, err)

	class, err := client.GetClass("wizard")
	require.NoError(t, err)
	assert.Equal(t, "Wizard", class.Name)
	assert.Equal(t, 6, class.HitDie)

	race, err := client.GetRace("half-elf")
	require.NoError(t, err)
	assert.Equal(t, 30, race.Speed)

	classes, err := client.ListClasses()
	require.NoError(t, err)
	assert.Len(t, classes, 12)
}
