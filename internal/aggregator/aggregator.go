// Package aggregator accumulates dataset records across sources into a
// single insertion-ordered, deduplicated working set. It is the one shared
// mutable resource of the pipeline: concurrent fetch stages all feed this
// single-writer point, so Add is mutex-serialized.
package aggregator

import (
	"sync"

	"github.com/ethodata/datascout/internal/domain"
)

// Aggregator merges records across sources, dropping later records whose
// name was already seen. Matching is case-sensitive exact.
type Aggregator struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	records []domain.DatasetRecord
	final   bool
}

// New creates an empty aggregator.
func New() *Aggregator {
	return &Aggregator{
		seen: make(map[string]struct{}),
	}
}

// Add inserts a record unless its name is empty, was already seen, or the
// set was already finalized. Returns true when the record was kept.
// First-seen wins across overlapping sources.
func (a *Aggregator) Add(record domain.DatasetRecord) bool {
	if record.Name == "" {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.final {
		return false
	}

	if _, dup := a.seen[record.Name]; dup {
		return false
	}

	a.seen[record.Name] = struct{}{}
	a.records = append(a.records, record)

	return true
}

// Len returns the current number of accumulated records.
func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.records)
}

// Finalize returns the accumulated result set and seals the aggregator.
// Further Add calls are no-ops; the returned set is the caller's to keep.
func (a *Aggregator) Finalize() domain.ResultSet {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.final = true

	records := make([]domain.DatasetRecord, len(a.records))
	copy(records, a.records)

	return domain.ResultSet{Records: records}
}
