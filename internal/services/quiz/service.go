// Package quiz orchestrates quiz sessions: it walks a user through the
// catalog, synthesizes the character once every question is answered, and
// archives the result.
package quiz

//go:generate mockgen -destination=mock/mock_service.go -package=mockquiz -source=service.go

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/character-forge/internal/dice"
	"github.com/KirkDiggler/character-forge/internal/domain/character"
	"github.com/KirkDiggler/character-forge/internal/domain/forge"
	quizdomain "github.com/KirkDiggler/character-forge/internal/domain/quiz"
	"github.com/KirkDiggler/character-forge/internal/domain/traits"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
	"github.com/KirkDiggler/character-forge/internal/repositories/characters"
	"github.com/KirkDiggler/character-forge/internal/repositories/quizsessions"
	"github.com/KirkDiggler/character-forge/internal/services/reference"
	"github.com/KirkDiggler/character-forge/internal/uuid"
)

// Service defines the quiz service interface
type Service interface {
	// Questions returns the catalog sessions walk through
	Questions() quizdomain.Catalog

	// StartSession opens a new session for ownerID
	StartSession(ctx context.Context, ownerID string) (*quizdomain.Session, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, sessionID string) (*quizdomain.Session, error)

	// CurrentQuestion returns the next unanswered question of a session
	CurrentQuestion(ctx context.Context, sessionID string) (*QuestionView, error)

	// Answer applies choice to the session's current question
	Answer(ctx context.Context, sessionID, choice string) (*AnswerResult, error)

	// Finish synthesizes and archives the session's character
	Finish(ctx context.Context, input *FinishInput) (*character.Character, error)

	// ListSessions lists an owner's sessions, oldest first
	ListSessions(ctx context.Context, ownerID string) ([]*quizdomain.Session, error)

	// ListCharacters lists an owner's archived characters, oldest first
	ListCharacters(ctx context.Context, ownerID string) ([]*character.Character, error)

	// GetCharacter retrieves an archived character
	GetCharacter(ctx context.Context, characterID string) (*character.Character, error)

	// Synthesize runs a one-off synthesis without a session or archive
	Synthesize(ctx context.Context, input *SynthesizeInput) (*character.Character, error)

	// Demo answers the quiz at random and synthesizes the result
	Demo(ctx context.Context, seed *int64) (*forge.DemoRun, error)
}

// QuestionView is a question plus its position in the catalog
type QuestionView struct {
	Index    int                  `json:"index"`
	Total    int                  `json:"total"`
	Question *quizdomain.Question `json:"question"`
}

// AnswerResult is the session after an answer. Next is nil once every
// question has been answered.
type AnswerResult struct {
	Session *quizdomain.Session `json:"session"`
	Next    *QuestionView       `json:"next,omitempty"`
}

// FinishInput selects the session to finish and an optional seed
type FinishInput struct {
	SessionID string
	Seed      *int64 // Optional, drawn from entropy if nil
}

// SynthesizeInput is a raw trait vector and an optional seed
type SynthesizeInput struct {
	Stats traits.Vector
	Seed  *int64 // Optional, drawn from entropy if nil
}

// service implements the Service interface
type service struct {
	catalog       quizdomain.Catalog
	engine        *forge.Engine
	sessions      quizsessions.Repository
	characters    characters.Repository
	reference     reference.Service
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
	newSeed       func() (int64, error)
	locks         *sessionLocks
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Sessions      quizsessions.Repository // Required
	Characters    characters.Repository   // Required
	Catalog       quizdomain.Catalog      // Optional, defaults to the shipped catalog
	Engine        *forge.Engine           // Optional, defaults to the shipped rulebook
	Reference     reference.Service       // Optional, characters are not enriched if nil
	UUIDGenerator uuid.Generator          // Optional, will use default if nil
	TimeProvider  TimeProvider            // Optional, will use wall clock if nil
	SeedSource    func() (int64, error)   // Optional, defaults to dice.NewSeed
}

// NewService creates a new quiz service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Sessions == nil {
		panic("session repository is required")
	}
	if cfg.Characters == nil {
		panic("character repository is required")
	}

	svc := &service{
		catalog:       cfg.Catalog,
		engine:        cfg.Engine,
		sessions:      cfg.Sessions,
		characters:    cfg.Characters,
		reference:     cfg.Reference,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
		newSeed:       cfg.SeedSource,
		locks:         newSessionLocks(),
	}

	if svc.catalog == nil {
		svc.catalog = quizdomain.DefaultCatalog()
	}
	if svc.engine == nil {
		svc.engine = forge.NewEngine(nil)
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.timeProvider == nil {
		svc.timeProvider = RealTimeProvider{}
	}
	if svc.newSeed == nil {
		svc.newSeed = dice.NewSeed
	}

	return svc
}

func (s *service) Questions() quizdomain.Catalog {
	return s.catalog
}

func (s *service) StartSession(ctx context.Context, ownerID string) (*quizdomain.Session, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	session := quizdomain.NewSession(s.uuidGenerator.New(), ownerID, s.timeProvider.Now())
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, dnderr.Wrap(err, "failed to create session").
			WithMeta("owner_id", ownerID)
	}

	logrus.WithFields(logrus.Fields{
		"session_id": session.ID,
		"owner_id":   ownerID,
	}).Info("quiz session started")

	return session, nil
}

func (s *service) GetSession(ctx context.Context, sessionID string) (*quizdomain.Session, error) {
	if sessionID == "" {
		return nil, dnderr.InvalidArgument("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get session '%s'", sessionID).
			WithMeta("session_id", sessionID)
	}
	return session, nil
}

func (s *service) CurrentQuestion(ctx context.Context, sessionID string) (*QuestionView, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Answered(s.catalog) {
		return nil, dnderr.FailedPreconditionf("session '%s' has answered every question", sessionID).
			WithMeta("session_id", sessionID)
	}

	return s.view(session.Current)
}

func (s *service) Answer(ctx context.Context, sessionID, choice string) (*AnswerResult, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.Answered(s.catalog) {
		q, err := s.catalog.Question(session.Current)
		if err != nil {
			return nil, err
		}
		choice = q.Resolve(choice)
	}

	if err := session.Answer(s.catalog, choice, s.timeProvider.Now()); err != nil {
		return nil, err
	}

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, dnderr.Wrapf(err, "failed to save session '%s'", sessionID).
			WithMeta("session_id", sessionID)
	}

	logrus.WithFields(logrus.Fields{
		"session_id": sessionID,
		"question":   session.Current - 1,
		"choice":     choice,
	}).Debug("quiz answer recorded")

	result := &AnswerResult{Session: session}
	if !session.Answered(s.catalog) {
		result.Next, err = s.view(session.Current)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *service) Finish(ctx context.Context, input *FinishInput) (*character.Character, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}

	unlock := s.locks.lock(input.SessionID)
	defer unlock()

	session, err := s.GetSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.Status == quizdomain.SessionStatusCompleted {
		return s.GetCharacter(ctx, session.CharacterID)
	}
	if !session.Answered(s.catalog) {
		return nil, dnderr.FailedPreconditionf("session '%s' has %d unanswered questions",
			session.ID, s.catalog.Len()-session.Current).
			WithMeta("session_id", session.ID).
			WithMeta("current", session.Current)
	}

	seed, err := s.resolveSeed(input.Seed)
	if err != nil {
		return nil, err
	}

	char, err := s.engine.SynthesizeSeed(session.Vector, seed)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to synthesize character for session '%s'", session.ID)
	}

	now := s.timeProvider.Now()
	char.ID = s.uuidGenerator.New()
	char.OwnerID = session.OwnerID
	char.SessionID = session.ID
	char.CreatedAt = now
	s.enrich(ctx, char)

	if err := s.characters.Create(ctx, char); err != nil {
		if !dnderr.Is(err, dnderr.CodeAlreadyExists) {
			return nil, dnderr.Wrap(err, "failed to archive character").
				WithMeta("session_id", session.ID)
		}

		// Another process finished this session first
		char, err = s.characters.GetBySession(ctx, session.ID)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to load character for session '%s'", session.ID)
		}
	}

	session.Complete(char.ID, now)
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, dnderr.Wrapf(err, "failed to complete session '%s'", session.ID).
			WithMeta("character_id", char.ID)
	}

	logrus.WithFields(logrus.Fields{
		"session_id":   session.ID,
		"owner_id":     session.OwnerID,
		"character_id": char.ID,
		"class":        char.Class,
		"seed":         char.Seed,
	}).Info("character forged")

	return char, nil
}

func (s *service) ListSessions(ctx context.Context, ownerID string) ([]*quizdomain.Session, error) {
	sessions, err := s.sessions.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list sessions for owner '%s'", ownerID)
	}
	return sessions, nil
}

func (s *service) ListCharacters(ctx context.Context, ownerID string) ([]*character.Character, error) {
	chars, err := s.characters.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list characters for owner '%s'", ownerID)
	}
	return chars, nil
}

func (s *service) GetCharacter(ctx context.Context, characterID string) (*character.Character, error) {
	char, err := s.characters.Get(ctx, characterID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get character '%s'", characterID).
			WithMeta("character_id", characterID)
	}
	return char, nil
}

func (s *service) Synthesize(ctx context.Context, input *SynthesizeInput) (*character.Character, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}

	seed, err := s.resolveSeed(input.Seed)
	if err != nil {
		return nil, err
	}

	return s.engine.SynthesizeSeed(input.Stats, seed)
}

func (s *service) Demo(ctx context.Context, seed *int64) (*forge.DemoRun, error) {
	resolved, err := s.resolveSeed(seed)
	if err != nil {
		return nil, err
	}

	run, err := s.engine.Demo(s.catalog, resolved)
	if err != nil {
		return nil, dnderr.Wrapf(err, "demo run failed for seed %d", resolved)
	}

	logrus.WithFields(logrus.Fields{
		"seed":  resolved,
		"class": run.Character.Class,
	}).Debug("demo character forged")

	return run, nil
}

func (s *service) resolveSeed(seed *int64) (int64, error) {
	if seed != nil {
		return *seed, nil
	}

	drawn, err := s.newSeed()
	if err != nil {
		return 0, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to draw seed")
	}
	return drawn, nil
}

// enrich attaches SRD references. Lookup failures leave the character
// without references.
func (s *service) enrich(ctx context.Context, char *character.Character) {
	if s.reference == nil {
		return
	}

	ref, err := s.reference.Lookup(ctx, char)
	if err != nil {
		logrus.WithError(err).WithField("class", char.Class).Warn("SRD lookup failed")
		return
	}
	char.Reference = ref
}

func (s *service) view(index int) (*QuestionView, error) {
	q, err := s.catalog.Question(index)
	if err != nil {
		return nil, err
	}
	return &QuestionView{
		Index:    index,
		Total:    s.catalog.Len(),
		Question: q,
	}, nil
}
