package quiz

import (
	"time"

	"github.com/KirkDiggler/character-forge/internal/domain/traits"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
)

// SessionStatus represents where a quiz session is in its lifecycle
type SessionStatus string

const (
	SessionStatusInProgress SessionStatus = "in_progress" // Questions remain
	SessionStatusCompleted  SessionStatus = "completed"   // A character has been synthesized
)

// Session tracks one user's walk through a catalog
type Session struct {
	ID          string        `json:"id"`
	OwnerID     string        `json:"owner_id"`
	Vector      traits.Vector `json:"stats"`
	Current     int           `json:"current"`
	Answers     []string      `json:"answers"`
	Status      SessionStatus `json:"status"`
	CharacterID string        `json:"character_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewSession starts a session with a zero vector
func NewSession(id, ownerID string, now time.Time) *Session {
	return &Session{
		ID:        id,
		OwnerID:   ownerID,
		Vector:    traits.New(),
		Answers:   []string{},
		Status:    SessionStatusInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Answered reports whether every question of c has been answered
func (s *Session) Answered(c Catalog) bool {
	return s.Current >= c.Len()
}

// Answer applies optionKey to the current question of c.
// On error the session is left untouched.
func (s *Session) Answer(c Catalog, optionKey string, now time.Time) error {
	if s.Status == SessionStatusCompleted {
		return dnderr.FailedPreconditionf("session %s is already completed", s.ID).
			WithMeta("session_id", s.ID)
	}
	if s.Answered(c) {
		return dnderr.FailedPreconditionf("session %s has no questions left", s.ID).
			WithMeta("session_id", s.ID)
	}

	next, err := c.Apply(s.Vector, s.Current, optionKey)
	if err != nil {
		return err
	}

	s.Vector = next
	s.Answers = append(s.Answers, optionKey)
	s.Current++
	s.UpdatedAt = now
	return nil
}

// Complete marks the session finished with the synthesized character
func (s *Session) Complete(characterID string, now time.Time) {
	s.Status = SessionStatusCompleted
	s.CharacterID = characterID
	s.UpdatedAt = now
}
