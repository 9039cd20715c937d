package api

import (
	"github.com/KirkDiggler/character-forge/internal/domain/character"
	quizdomain "github.com/KirkDiggler/character-forge/internal/domain/quiz"
	"github.com/KirkDiggler/character-forge/internal/domain/traits"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// QuestionsResponse lists the catalog.
type QuestionsResponse struct {
	Items quizdomain.Catalog `json:"items"`
	Total int                `json:"total"`
}

// SessionsResponse lists an owner's sessions.
type SessionsResponse struct {
	Items []*quizdomain.Session `json:"items"`
	Total int                   `json:"total"`
}

// CharactersResponse lists an owner's archived characters.
type CharactersResponse struct {
	Items []*character.Character `json:"items"`
	Total int                    `json:"total"`
}

// StartSessionRequest opens a quiz session.
type StartSessionRequest struct {
	OwnerID string `json:"owner_id"`
}

// AnswerRequest answers the session's current question.
type AnswerRequest struct {
	Choice string `json:"choice"`
}

// SeedRequest carries an optional seed; one is drawn when it is absent.
type SeedRequest struct {
	Seed *int64 `json:"seed"`
}

// SynthesizeRequest is a raw trait vector keyed by trait name.
type SynthesizeRequest struct {
	Stats map[string]int `json:"stats"`
	Seed  *int64         `json:"seed"`
}

func (r SynthesizeRequest) vector() traits.Vector {
	v := make(traits.Vector, len(r.Stats))
	for name, value := range r.Stats {
		v[traits.Trait(name)] = value
	}
	return v
}
