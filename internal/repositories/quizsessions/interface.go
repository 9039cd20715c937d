// Package quizsessions stores in-progress and completed quiz sessions.
package quizsessions

import (
	"context"

	"github.com/KirkDiggler/character-forge/internal/domain/quiz"
)

// Repository defines the interface for quiz session storage operations
type Repository interface {
	Create(ctx context.Context, session *quiz.Session) error
	Get(ctx context.Context, id string) (*quiz.Session, error)
	Update(ctx context.Context, session *quiz.Session) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]*quiz.Session, error)
}
