package services

import (
	"github.com/KirkDiggler/character-forge/internal/clients/dnd5e"
	"github.com/KirkDiggler/character-forge/internal/domain/forge"
	"github.com/KirkDiggler/character-forge/internal/domain/quiz"
	"github.com/KirkDiggler/character-forge/internal/repositories/characters"
	"github.com/KirkDiggler/character-forge/internal/repositories/quizsessions"
	quizService "github.com/KirkDiggler/character-forge/internal/services/quiz"
	referenceService "github.com/KirkDiggler/character-forge/internal/services/reference"
)

// Provider holds all service instances
type Provider struct {
	QuizService      quizService.Service
	ReferenceService referenceService.Service // nil without an SRD client
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	DNDClient           dnd5e.Client // Optional, disables SRD enrichment if nil
	SessionRepository   quizsessions.Repository
	CharacterRepository characters.Repository
	Catalog             quiz.Catalog
	Engine              *forge.Engine
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	sessionRepo := cfg.SessionRepository
	if sessionRepo == nil {
		sessionRepo = quizsessions.NewInMemoryRepository()
	}

	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	engine := cfg.Engine
	if engine == nil {
		engine = forge.NewEngine(nil)
	}

	var refService referenceService.Service
	if cfg.DNDClient != nil {
		refService = referenceService.NewService(&referenceService.ServiceConfig{
			Client:   cfg.DNDClient,
			Rulebook: engine.Rulebook(),
		})
	}

	quizSvc := quizService.NewService(&quizService.ServiceConfig{
		Sessions:   sessionRepo,
		Characters: charRepo,
		Catalog:    cfg.Catalog,
		Engine:     engine,
		Reference:  refService,
	})

	return &Provider{
		QuizService:      quizSvc,
		ReferenceService: refService,
	}
}
