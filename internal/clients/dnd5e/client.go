// Package dnd5e adapts the dnd5eapi.co client to the forge's reference types.
package dnd5e

import (
	"net/http"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	"github.com/KirkDiggler/character-forge/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
)

type client struct {
	client dnd5e.Interface
}

// Config holds the HTTP client used for API calls
type Config struct {
	HttpClient *http.Client
}

// New creates an SRD client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("cfg is required")
	}

	dndClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to create dnd5e api client")
	}

	return &client{
		client: dndClient,
	}, nil
}

func (c *client) ListClasses() ([]*rulebook.ClassReference, error) {
	response, err := c.client.ListClasses()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list classes")
	}

	return apiReferenceItemsToClasses(response), nil
}

func (c *client) GetClass(key string) (*rulebook.ClassReference, error) {
	response, err := c.client.GetClass(key)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get class %s", key).
			WithMeta("class_key", key)
	}

	return apiClassToClass(response), nil
}

func (c *client) GetRace(key string) (*rulebook.RaceReference, error) {
	response, err := c.client.GetRace(key)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get race %s", key).
			WithMeta("race_key", key)
	}

	return apiRaceToRace(response), nil
}
