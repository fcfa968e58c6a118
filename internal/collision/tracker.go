// Package collision detects repeated names in record lists.
package collision

import (
	"iter"
	"strings"

	"github.com/mhdkit/netbin/internal/hash"
)

type entry struct {
	name   string
	folded string
	count  int
}

// Tracker counts names case-insensitively.
//
// Names are bucketed by the xxHash64 of their folded form, so the common case
// compares one string per hash. Different names that share a hash are kept
// apart and flagged through HasCollision.
type Tracker struct {
	sum          func(string) uint64
	buckets      map[uint64][]int // hash → indexes into entries
	entries      []entry
	hasCollision bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		sum:     hash.ID,
		buckets: make(map[uint64][]int),
	}
}

// Track records name and reports whether an equal name, ignoring case, was
// tracked before.
func (t *Tracker) Track(name string) bool {
	folded := strings.ToLower(name)
	h := t.sum(folded)

	bucket := t.buckets[h]
	for _, i := range bucket {
		if t.entries[i].folded == folded {
			t.entries[i].count++
			return true
		}
	}
	if len(bucket) > 0 {
		t.hasCollision = true
	}

	t.buckets[h] = append(bucket, len(t.entries))
	t.entries = append(t.entries, entry{name: name, folded: folded, count: 1})

	return false
}

// Duplicates yields each name tracked more than once, spelled as first seen,
// with the number of times it was tracked. Names come in first-seen order.
func (t *Tracker) Duplicates() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, e := range t.entries {
			if e.count > 1 && !yield(e.name, e.count) {
				return
			}
		}
	}
}

// HasCollision reports whether two different names hashed to the same value.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Count returns the number of distinct names tracked.
func (t *Tracker) Count() int {
	return len(t.entries)
}

// Reset clears all tracked names and collision state.
func (t *Tracker) Reset() {
	clear(t.buckets)
	t.entries = t.entries[:0]
	t.hasCollision = false
}
