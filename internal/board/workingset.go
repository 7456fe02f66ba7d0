// Package board holds the engine's in-memory working set of issues and the
// resolver that turns a drag gesture into a new placement.
package board

import (
	"sync"

	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// Change moves one issue to a new placement
type Change struct {
	ID types.IssueID
	To models.Placement
}

// WorkingSet is the single owned container of issues. All mutation goes
// through its methods, which hold the write lock for the whole batch so the
// (column, position) pair of every touched issue changes atomically.
type WorkingSet struct {
	mu      sync.RWMutex
	lanes   []models.Column
	items   map[types.IssueID]models.Issue
	version uint64
	cached  *Snapshot
}

// NewWorkingSet creates an empty working set for the given lanes
func NewWorkingSet(lanes []models.Column) *WorkingSet {
	if len(lanes) == 0 {
		lanes = models.DefaultColumns()
	}
	return &WorkingSet{
		lanes: append([]models.Column(nil), lanes...),
		items: make(map[types.IssueID]models.Issue),
	}
}

// Snapshot returns an immutable view of the current state.
// The snapshot is rebuilt lazily after a mutation and shared until the next one.
func (w *WorkingSet) Snapshot() Snapshot {
	w.mu.RLock()
	if w.cached != nil {
		s := *w.cached
		w.mu.RUnlock()
		return s
	}
	w.mu.RUnlock()

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cached == nil {
		s := newSnapshot(w.lanes, w.items, w.version)
		w.cached = &s
	}
	return *w.cached
}

// Get returns a copy of one issue
func (w *WorkingSet) Get(id types.IssueID) (models.Issue, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	it, ok := w.items[id]
	if !ok {
		return models.Issue{}, false
	}
	return it.Clone(), true
}

// Lanes returns the configured lane order
func (w *WorkingSet) Lanes() []models.Column {
	return append([]models.Column(nil), w.lanes...)
}

// Apply moves every issue named in changes and returns the placements they had
// before. It fails with ErrNotFound, without touching anything, if any id is missing.
func (w *WorkingSet) Apply(changes []Change) (map[types.IssueID]models.Placement, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, ch := range changes {
		if _, ok := w.items[ch.ID]; !ok {
			return nil, ErrNotFound
		}
	}

	before := make(map[types.IssueID]models.Placement, len(changes))
	for _, ch := range changes {
		it := w.items[ch.ID]
		if _, seen := before[ch.ID]; !seen {
			before[ch.ID] = it.Placement()
		}
		it.Column = ch.To.Column
		it.Position = ch.To.Position
		w.items[ch.ID] = it
	}
	w.touch()
	return before, nil
}

// Restore puts issues back to the given placements. Ids no longer present
// (deleted by a resync) are skipped.
func (w *WorkingSet) Restore(placements map[types.IssueID]models.Placement) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for id, p := range placements {
		it, ok := w.items[id]
		if !ok {
			continue
		}
		it.Column = p.Column
		it.Position = p.Position
		w.items[id] = it
	}
	w.touch()
}

// Replace swaps the whole content for a fresh list from the source of truth,
// then re-applies overlay so moves that are still in flight stay visible.
func (w *WorkingSet) Replace(issues []models.Issue, overlay map[types.IssueID]models.Placement) {
	w.mu.Lock()
	defer w.mu.Unlock()

	items := make(map[types.IssueID]models.Issue, len(issues))
	for _, it := range issues {
		items[it.ID] = it.Clone()
	}
	for id, p := range overlay {
		it, ok := items[id]
		if !ok {
			continue
		}
		it.Column = p.Column
		it.Position = p.Position
		items[id] = it
	}
	w.items = items
	w.touch()
}

// touch invalidates the cached snapshot; callers hold the write lock
func (w *WorkingSet) touch() {
	w.version++
	w.cached = nil
}
