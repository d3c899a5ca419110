// Package search exposes the popularity and role index the gacha pool
// is drawn from. The index covers the external catalog only; installed
// packs contribute candidates separately.
package search

import (
	"context"

	"github.com/noctale/noctale/internal/entities/catalog"
	"github.com/noctale/noctale/internal/rating"
)

// Entry is one indexed character candidate.
type Entry struct {
	// ID is the compound id of the character.
	ID string `json:"id"`
	// MediaID is the compound id of the character's first media.
	MediaID string `json:"mediaId,omitempty"`
	// Popularity of the character, or of its first media when the
	// character itself has none.
	Popularity int `json:"popularity"`
	// Role of the character in its first media.
	Role catalog.CharacterRole `json:"role,omitempty"`
}

// Range is an inclusive popularity interval. A nil Upper means
// unbounded above.
type Range struct {
	Lower int
	Upper *int
}

// Contains reports whether n falls inside the range.
func (r Range) Contains(n int) bool {
	if n < r.Lower {
		return false
	}
	return r.Upper == nil || n <= *r.Upper
}

// PoolFilter narrows the index to a candidate pool. Zero value matches
// everything.
type PoolFilter struct {
	Popularity *Range
	Role       *catalog.CharacterRole
	Rating     *int
}

func (f PoolFilter) matches(e Entry) bool {
	if f.Popularity != nil && !f.Popularity.Contains(e.Popularity) {
		return false
	}
	if f.Role != nil && e.Role != *f.Role {
		return false
	}
	if f.Rating != nil && rating.Stars(e.Popularity, e.Role) != *f.Rating {
		return false
	}
	return true
}

// Index answers pool queries.
type Index interface {
	// Pool returns every indexed entry matching the filter.
	Pool(ctx context.Context, filter PoolFilter) ([]Entry, error)
}

type memoryIndex struct {
	entries []Entry
}

// NewFromEntries builds an in-memory index over a fixed entry set.
func NewFromEntries(entries []Entry) Index {
	return &memoryIndex{entries: entries}
}

func (idx *memoryIndex) Pool(_ context.Context, filter PoolFilter) ([]Entry, error) {
	var out []Entry
	for _, e := range idx.entries {
		if filter.matches(e) {
			out = append(out, e)
		}
	}
	return out, nil
}
