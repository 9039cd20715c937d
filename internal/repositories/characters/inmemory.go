package characters

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/character-forge/internal/domain/character"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character repository
// Useful for testing and development
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*character.Character
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		characters: make(map[string]*character.Character),
	}
}

// Create stores a new character
func (r *InMemoryRepository) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; exists {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}
	if char.SessionID != "" {
		if existing := r.findBySession(char.SessionID); existing != nil {
			return dnderr.AlreadyExistsf("session '%s' already archived character '%s'", char.SessionID, existing.ID).
				WithMeta("session_id", char.SessionID).
				WithMeta("character_id", existing.ID)
		}
	}

	r.characters[char.ID] = cloneCharacter(char)
	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.characters[id]
	if !exists {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	return cloneCharacter(char), nil
}

// GetBySession retrieves the character archived for a session
func (r *InMemoryRepository) GetBySession(ctx context.Context, sessionID string) (*character.Character, error) {
	if sessionID == "" {
		return nil, dnderr.InvalidArgument("session ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char := r.findBySession(sessionID)
	if char == nil {
		return nil, dnderr.NotFoundf("no character archived for session '%s'", sessionID).
			WithMeta("session_id", sessionID)
	}
	return cloneCharacter(char), nil
}

func (r *InMemoryRepository) findBySession(sessionID string) *character.Character {
	for _, char := range r.characters {
		if char.SessionID == sessionID {
			return char
		}
	}
	return nil
}

// ListByOwner returns the owner's characters, oldest first
func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*character.Character{}
	for _, char := range r.characters {
		if char.OwnerID == ownerID {
			result = append(result, cloneCharacter(char))
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func cloneCharacter(c *character.Character) *character.Character {
	out := *c
	out.Hooks = append([]string{}, c.Hooks...)
	out.Tips = append([]string{}, c.Tips...)
	out.TopStats = append(out.TopStats[:0:0], c.TopStats...)
	if c.Stats != nil {
		out.Stats = c.Stats.Clone()
	}
	if c.Reference != nil {
		ref := *c.Reference
		out.Reference = &ref
	}
	return &out
}
