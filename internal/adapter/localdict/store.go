// Package localdict holds the curated Swedish synonym dictionary that ships
// with the binary. The data is embedded at build time and never changes
// while the process runs.
package localdict

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/synonymer/internal/domain"
)

//go:embed swedish.json
var swedishJSON []byte

// Store is an immutable mapping from normalized word to synonyms.
type Store struct {
	entries map[string][]string
}

// New returns a Store backed by the embedded Swedish dictionary.
func New() (*Store, error) {
	return Parse(swedishJSON)
}

// Parse builds a Store from a JSON object of word -> synonyms.
// Keys are normalized; synonym order is preserved as curated.
func Parse(data []byte) (*Store, error) {
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("localdict: decode json: %w", err)
	}
	return FromMap(raw), nil
}

// FromMap builds a Store from an in-memory map. The map is copied.
func FromMap(m map[string][]string) *Store {
	entries := make(map[string][]string, len(m))
	for word, synonyms := range m {
		key := domain.NormalizeWord(word)
		if key == "" {
			continue
		}
		entries[key] = append([]string(nil), synonyms...)
	}
	return &Store{entries: entries}
}

// Lookup returns the synonyms stored for word, or an empty slice when the
// word is absent. The returned slice is a copy.
func (s *Store) Lookup(word string) []string {
	synonyms, ok := s.entries[domain.NormalizeWord(word)]
	if !ok {
		return []string{}
	}
	return append([]string(nil), synonyms...)
}

// Len returns the number of words in the store.
func (s *Store) Len() int {
	return len(s.entries)
}
