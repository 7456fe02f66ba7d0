package move

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var errStoreDown = errors.New("store unavailable")

type update struct {
	ID       types.IssueID
	Column   models.Column
	Position float64
}

// fakeStore is an in-memory Store. Issues with a gate block in UpdatePosition
// until the test sends the result to return on that gate.
type fakeStore struct {
	mu       sync.Mutex
	issues   map[types.IssueID]models.Issue
	gates    map[types.IssueID]chan error
	failIDs  map[types.IssueID]error
	updates  []update
	fetches  int
	fetchErr error

	fetchGate    chan struct{}
	fetchStarted chan struct{}

	// fetchHold blocks FetchAll after it has read the issues, so the result
	// can go stale before it is returned
	fetchHold chan struct{}
}

func newFakeStore(issues ...models.Issue) *fakeStore {
	f := &fakeStore{
		issues:  make(map[types.IssueID]models.Issue),
		gates:   make(map[types.IssueID]chan error),
		failIDs: make(map[types.IssueID]error),
	}
	for _, it := range issues {
		f.issues[it.ID] = it
	}
	return f
}

// gate makes UpdatePosition for id block until a result is sent
func (f *fakeStore) gate(id types.IssueID) chan error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan error)
	f.gates[id] = ch
	return ch
}

func (f *fakeStore) failFor(id types.IssueID, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failIDs[id] = err
}

func (f *fakeStore) UpdatePosition(ctx context.Context, id types.IssueID, column models.Column, position float64) error {
	f.mu.Lock()
	gate := f.gates[id]
	fail := f.failIDs[id]
	f.mu.Unlock()

	if gate != nil {
		select {
		case err := <-gate:
			if err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if fail != nil {
		return fail
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.issues[id]
	if !ok {
		return errors.New("no such issue")
	}
	it.Column = column
	it.Position = position
	f.issues[id] = it
	f.updates = append(f.updates, update{ID: id, Column: column, Position: position})
	return nil
}

func (f *fakeStore) FetchAll(ctx context.Context) ([]models.Issue, error) {
	f.mu.Lock()
	f.fetches++
	gate, started, hold := f.fetchGate, f.fetchStarted, f.fetchHold
	f.mu.Unlock()

	if started != nil && hold == nil {
		select {
		case started <- struct{}{}:
		default:
		}
	}
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	if f.fetchErr != nil {
		f.mu.Unlock()
		return nil, f.fetchErr
	}
	out := make([]models.Issue, 0, len(f.issues))
	for _, it := range f.issues {
		out = append(out, it)
	}
	f.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	if hold != nil {
		if started != nil {
			started <- struct{}{}
		}
		<-hold
	}
	return out, nil
}

func (f *fakeStore) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func (f *fakeStore) recorded() []update {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]update(nil), f.updates...)
}

func (f *fakeStore) get(id types.IssueID) models.Issue {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.issues[id]
}
