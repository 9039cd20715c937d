package quizsessions

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/character-forge/internal/domain/quiz"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
)

// InMemoryRepository keeps sessions in a map. Useful for tests and local runs.
type InMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*quiz.Session
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		sessions: make(map[string]*quiz.Session),
	}
}

// Create stores a new session
func (r *InMemoryRepository) Create(ctx context.Context, session *quiz.Session) error {
	if session == nil {
		return dnderr.InvalidArgument("session cannot be nil")
	}
	if session.ID == "" {
		return dnderr.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return dnderr.AlreadyExistsf("session with ID '%s' already exists", session.ID).
			WithMeta("session_id", session.ID)
	}

	r.sessions[session.ID] = cloneSession(session)
	return nil
}

// Get retrieves a session by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*quiz.Session, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("session ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, dnderr.NotFoundf("session with ID '%s' not found", id).
			WithMeta("session_id", id)
	}
	return cloneSession(session), nil
}

// Update replaces an existing session
func (r *InMemoryRepository) Update(ctx context.Context, session *quiz.Session) error {
	if session == nil {
		return dnderr.InvalidArgument("session cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; !exists {
		return dnderr.NotFoundf("session with ID '%s' not found", session.ID).
			WithMeta("session_id", session.ID)
	}

	r.sessions[session.ID] = cloneSession(session)
	return nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return dnderr.NotFoundf("session with ID '%s' not found", id).
			WithMeta("session_id", id)
	}
	delete(r.sessions, id)
	return nil
}

// ListByOwner returns the owner's sessions, oldest first
func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*quiz.Session, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*quiz.Session{}
	for _, session := range r.sessions {
		if session.OwnerID == ownerID {
			result = append(result, cloneSession(session))
		}
	}
	sortSessions(result)
	return result, nil
}

func cloneSession(s *quiz.Session) *quiz.Session {
	out := *s
	out.Vector = s.Vector.Clone()
	out.Answers = append([]string{}, s.Answers...)
	return &out
}

func sortSessions(sessions []*quiz.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})
}
