// Package character defines the record a synthesis produces.
package character

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/character-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/character-forge/internal/domain/traits"
)

// Character is a synthesized character profile. It is never modified after
// the archive stores it.
type Character struct {
	ID        string `json:"id,omitempty"`
	OwnerID   string `json:"owner_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`

	Class           string         `json:"class"`
	Subclass        string         `json:"subclass_suggestion"`
	Background      string         `json:"background"`
	BackgroundBlurb string         `json:"background_blurb"`
	Race            string         `json:"race_suggestion"`
	Alignment       string         `json:"alignment"`
	Quirk           string         `json:"quirk"`
	Flaw            string         `json:"flaw"`
	Tone            string         `json:"tone"`
	Hooks           []string       `json:"hooks"`
	Stats           traits.Vector  `json:"stats"`
	TopStats        []traits.Trait `json:"top_stats"`
	Summary         string         `json:"summary"`
	Tips            []string       `json:"tips"`

	// Seed regenerates this exact record from Stats
	Seed      int64      `json:"seed"`
	CreatedAt time.Time  `json:"created_at"`
	Reference *Reference `json:"reference,omitempty"`
}

// Reference carries optional SRD details for the class and race
type Reference struct {
	Class *rulebook.ClassReference `json:"class,omitempty"`
	Race  *rulebook.RaceReference  `json:"race,omitempty"`
}

// ComposeSummary renders the five-line summary of c
func ComposeSummary(c *Character) string {
	top := make([]string, len(c.TopStats))
	for i, t := range c.TopStats {
		top[i] = string(t)
	}

	lines := []string{
		fmt.Sprintf("You are a %s %s (%s) — %s.", c.Race, c.Class, c.Subclass, c.Alignment),
		fmt.Sprintf("Background: %s — %s", c.Background, c.BackgroundBlurb),
		fmt.Sprintf("Tone: %s. Quirk: %s", c.Tone, c.Quirk),
		fmt.Sprintf("Flaw: %s. Roleplay hooks: %s.", c.Flaw, strings.Join(c.Hooks, ", ")),
		"Leading stats: " + strings.Join(top, ", "),
	}
	return strings.Join(lines, "\n")
}

// Title is a one-line label such as "Half-Elf Rogue (Thief)"
func (c *Character) Title() string {
	return fmt.Sprintf("%s %s (%s)", c.Race, c.Class, c.Subclass)
}
