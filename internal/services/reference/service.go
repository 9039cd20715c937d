// Package reference enriches characters with SRD details.
package reference

//go:generate mockgen -destination=mock/mock_service.go -package=mockreference -source=service.go

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/character-forge/internal/clients/dnd5e"
	"github.com/KirkDiggler/character-forge/internal/domain/character"
	"github.com/KirkDiggler/character-forge/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
)

// Service looks up SRD reference data for a character
type Service interface {
	// Lookup returns the class and race references for char. A race the SRD
	// does not carry yields a nil Race.
	Lookup(ctx context.Context, char *character.Character) (*character.Reference, error)
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Client   dnd5e.Client       // Required
	Rulebook *rulebook.Rulebook // Optional, defaults to rulebook.Default
}

type service struct {
	client   dnd5e.Client
	rulebook *rulebook.Rulebook

	mu      sync.RWMutex
	classes map[string]*rulebook.ClassReference
	races   map[string]*rulebook.RaceReference
}

// NewService creates a reference service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Client == nil {
		panic("dnd5e client is required")
	}

	rb := cfg.Rulebook
	if rb == nil {
		rb = rulebook.Default()
	}

	return &service{
		client:   cfg.Client,
		rulebook: rb,
		classes:  make(map[string]*rulebook.ClassReference),
		races:    make(map[string]*rulebook.RaceReference),
	}
}

func (s *service) Lookup(ctx context.Context, char *character.Character) (*character.Reference, error) {
	if char == nil {
		return nil, dnderr.InvalidArgument("character cannot be nil")
	}

	class, err := s.rulebook.Class(char.Class)
	if err != nil {
		return nil, err
	}
	race, err := s.rulebook.Race(char.Race)
	if err != nil {
		return nil, err
	}

	ref := &character.Reference{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		classRef, err := s.getClass(class.Key)
		if err != nil {
			return err
		}
		ref.Class = classRef
		return nil
	})
	if race.SRDKey != "" {
		g.Go(func() error {
			raceRef, err := s.getRace(race.SRDKey)
			if err != nil {
				return err
			}
			ref.Race = raceRef
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ref, nil
}

func (s *service) getClass(key string) (*rulebook.ClassReference, error) {
	s.mu.RLock()
	cached, ok := s.classes[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	classRef, err := s.client.GetClass(key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.classes[key] = classRef
	s.mu.Unlock()

	logrus.WithField("class_key", key).Debug("cached SRD class")
	return classRef, nil
}

func (s *service) getRace(key string) (*rulebook.RaceReference, error) {
	s.mu.RLock()
	cached, ok := s.races[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	raceRef, err := s.client.GetRace(key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.races[key] = raceRef
	s.mu.Unlock()

	logrus.WithField("race_key", key).Debug("cached SRD race")
	return raceRef, nil
}
