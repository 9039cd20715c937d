// Package characters archives synthesized characters.
package characters

import (
	"context"

	"github.com/KirkDiggler/character-forge/internal/domain/character"
)

// Repository defines the interface for the character archive.
// A session archives at most one character: Create returns an
// already_exists error for a second character with the same SessionID.
type Repository interface {
	Create(ctx context.Context, char *character.Character) error
	Get(ctx context.Context, id string) (*character.Character, error)
	GetBySession(ctx context.Context, sessionID string) (*character.Character, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*character.Character, error)
}
