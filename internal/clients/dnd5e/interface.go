package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

import (
	"github.com/KirkDiggler/character-forge/internal/domain/rulebook"
)

// Client looks up SRD reference data
type Client interface {
	ListClasses() ([]*rulebook.ClassReference, error)
	GetClass(key string) (*rulebook.ClassReference, error)
	GetRace(key string) (*rulebook.RaceReference, error)
}
