package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/character-forge/internal/uuid"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()

	first := gen.New()
	second := gen.New()

	assert.True(t, uuid.Valid(first))
	assert.NotEqual(t, first, second)
	assert.False(t, uuid.Valid("not-a-uuid"))
}
