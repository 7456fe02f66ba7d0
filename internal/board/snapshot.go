package board

import (
	"sort"

	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// Snapshot is an immutable, fully ordered view of the working set.
// Readers hold on to a Snapshot instead of the live container, so they never
// observe a half-applied move.
type Snapshot struct {
	lanes   []models.Column
	laneIdx map[models.Column]int
	byID    map[types.IssueID]models.Issue
	columns map[models.Column][]models.Issue
	version uint64
}

func newSnapshot(lanes []models.Column, items map[types.IssueID]models.Issue, version uint64) Snapshot {
	s := Snapshot{
		lanes:   lanes,
		laneIdx: laneIndex(lanes),
		byID:    make(map[types.IssueID]models.Issue, len(items)),
		columns: make(map[models.Column][]models.Issue, len(lanes)),
		version: version,
	}
	for id, it := range items {
		c := it.Clone()
		s.byID[id] = c
		s.columns[c.Column] = append(s.columns[c.Column], c)
	}
	for col := range s.columns {
		sortColumn(s.columns[col])
	}
	return s
}

// Version increases every time the working set changes
func (s Snapshot) Version() uint64 {
	return s.version
}

// Lanes returns the configured lane order
func (s Snapshot) Lanes() []models.Column {
	return append([]models.Column(nil), s.lanes...)
}

// HasLane reports whether col is one of the configured lanes
func (s Snapshot) HasLane(col models.Column) bool {
	_, ok := s.laneIdx[col]
	return ok
}

// Get returns the issue with the given id
func (s Snapshot) Get(id types.IssueID) (models.Issue, bool) {
	it, ok := s.byID[id]
	return it, ok
}

// Len returns the number of issues in the snapshot
func (s Snapshot) Len() int {
	return len(s.byID)
}

// Column returns the issues of one lane ordered by (position, id)
func (s Snapshot) Column(col models.Column) []models.Issue {
	return append([]models.Issue(nil), s.columns[col]...)
}

// Issues returns every issue ordered by (lane, position, id).
// Issues whose column is not a configured lane sort after all lanes.
func (s Snapshot) Issues() []models.Issue {
	out := make([]models.Issue, 0, len(s.byID))
	for _, col := range s.lanes {
		out = append(out, s.columns[col]...)
	}
	var stray []models.Column
	for col := range s.columns {
		if !s.HasLane(col) {
			stray = append(stray, col)
		}
	}
	sort.Slice(stray, func(i, j int) bool { return stray[i] < stray[j] })
	for _, col := range stray {
		out = append(out, s.columns[col]...)
	}
	return out
}

// sortColumn orders issues by position, breaking ties by id so the observed
// order is total even when raw positions collide
func sortColumn(items []models.Issue) {
	sort.Slice(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
}

func less(a, b models.Issue) bool {
	if a.Position != b.Position {
		return a.Position < b.Position
	}
	return a.ID < b.ID
}

func laneIndex(lanes []models.Column) map[models.Column]int {
	idx := make(map[models.Column]int, len(lanes))
	for i, c := range lanes {
		idx[c] = i
	}
	return idx
}
