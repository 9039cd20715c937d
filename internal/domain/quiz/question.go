// Package quiz holds the question catalog and the per-user quiz session.
package quiz

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/character-forge/internal/domain/traits"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
)

// Option is one answer to a question
type Option struct {
	Key   string       `json:"key"`
	Text  string       `json:"text"`
	Delta traits.Delta `json:"-"`
}

// Question is a prompt with an ordered, non-empty set of options.
// Default, when set, is the key an empty answer selects.
type Question struct {
	Prompt  string    `json:"prompt"`
	Options []*Option `json:"options"`
	Default string    `json:"default,omitempty"`
}

// Option returns the option with the given key
func (q *Question) Option(key string) (*Option, bool) {
	for _, opt := range q.Options {
		if opt.Key == key {
			return opt, true
		}
	}
	return nil, false
}

// Resolve maps raw user input to an option key. Blank input falls back to
// Default; keys are matched case-insensitively.
func (q *Question) Resolve(input string) string {
	key := strings.ToLower(strings.TrimSpace(input))
	if key == "" {
		return q.Default
	}
	return key
}

// Keys returns the option keys in sorted order
func (q *Question) Keys() []string {
	keys := make([]string, len(q.Options))
	for i, opt := range q.Options {
		keys[i] = opt.Key
	}
	sort.Strings(keys)
	return keys
}

// Catalog is the ordered list of questions a quiz walks through
type Catalog []*Question

// Len returns the number of questions
func (c Catalog) Len() int {
	return len(c)
}

// Question returns the question at index
func (c Catalog) Question(index int) (*Question, error) {
	if index < 0 || index >= len(c) {
		return nil, dnderr.InvalidArgumentf("question index %d out of range [0, %d)", index, len(c)).
			WithMeta("question_index", index)
	}
	return c[index], nil
}

// Apply answers question index with optionKey and returns the updated,
// clamped vector. The input vector is never modified.
func (c Catalog) Apply(v traits.Vector, index int, optionKey string) (traits.Vector, error) {
	if index < 0 || index >= len(c) {
		return nil, dnderr.InvalidOptionf("no question %d to answer", index).
			WithMeta("question_index", index)
	}
	q := c[index]

	opt, ok := q.Option(optionKey)
	if !ok {
		return nil, dnderr.InvalidOptionf("option %q is not valid for question %d", optionKey, index).
			WithMeta("question_index", index).
			WithMeta("valid_keys", q.Keys())
	}

	return v.Apply(opt.Delta)
}
