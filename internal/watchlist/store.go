// Package watchlist owns the persisted ordered set of saved titles.
package watchlist

import (
	"encoding/json"
	"log/slog"

	"github.com/jwhitford/marquee/internal/domain"
)

// storageKey is the single key the serialized watchlist lives under.
const storageKey = "watchlist"

// Store is the persisted watchlist. Entries keep their append order and
// every mutation writes through synchronously; there is no background
// writer, so no locking is needed.
type Store struct {
	kv      domain.KV
	entries []domain.MovieSummary
	logger  *slog.Logger
}

// NewStore loads the watchlist from the key-value store. A missing or
// malformed persisted value is treated as an empty watchlist, never an
// error.
func NewStore(kv domain.KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{kv: kv, logger: logger}

	raw, ok := kv.ReadString(storageKey)
	if !ok {
		return s
	}
	if err := json.Unmarshal([]byte(raw), &s.entries); err != nil {
		logger.Warn("discarding malformed watchlist", "error", err)
		s.entries = nil
	}
	return s
}

// Add appends the entry and persists. Adding an id that is already saved
// is a no-op.
func (s *Store) Add(entry domain.MovieSummary) error {
	if s.Contains(entry.ID) {
		return nil
	}
	s.entries = append(s.entries, entry)
	return s.persist()
}

// Remove deletes the entry by id and persists. Removing an absent id is a
// no-op.
func (s *Store) Remove(id string) error {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// Contains reports whether the id is on the watchlist. This backs the
// membership glyph next to rows in both lists.
func (s *Store) Contains(id string) bool {
	for _, e := range s.entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

// All returns the saved entries in insertion order.
func (s *Store) All() []domain.MovieSummary {
	out := make([]domain.MovieSummary, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of saved entries.
func (s *Store) Len() int { return len(s.entries) }

func (s *Store) persist() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return err
	}
	if err := s.kv.WriteString(storageKey, string(data)); err != nil {
		s.logger.Error("persisting watchlist failed", "error", err)
		return err
	}
	return nil
}
