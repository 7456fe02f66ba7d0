package move

import (
	"context"
	"sync"

	"github.com/thenoetrevino/issueboard/internal/board"
	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// State is where a move is in its lifecycle:
// Idle -> Pending -> Committed | RolledBack | Superseded
type State int

const (
	StateIdle State = iota
	StatePending
	StateCommitted
	StateRolledBack
	StateSuperseded
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled_back"
	case StateSuperseded:
		return "superseded"
	default:
		return "idle"
	}
}

// Move is one optimistic change and its reconciliation with the store
type Move struct {
	ID         uint64
	IssueID    types.IssueID
	Resolution board.Resolution

	// before holds the placements the working set had when the move was applied
	before map[types.IssueID]models.Placement

	// prior are moves on the same issues that were still in flight; their
	// persistence must finish first so the store sees writes in order
	prior []*Move

	mu    sync.Mutex
	state State
	err   error
	done  chan struct{}
}

func newMove(id uint64, res board.Resolution) *Move {
	return &Move{
		ID:         id,
		IssueID:    res.IssueID,
		Resolution: res,
		state:      StateIdle,
		done:       make(chan struct{}),
	}
}

// State returns the current lifecycle state
func (m *Move) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Err returns the persistence error once the move has settled
func (m *Move) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Done is closed when the persistence call has returned and its outcome is applied
func (m *Move) Done() <-chan struct{} {
	return m.done
}

// Wait blocks until the move settles or ctx ends. It returns the
// *PersistenceError whenever the store write failed, nil otherwise. A
// superseded move keeps StateSuperseded even when its write failed.
func (m *Move) Wait(ctx context.Context) error {
	select {
	case <-m.done:
		return m.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Before returns the pre-move placement of an issue touched by this move
func (m *Move) Before(id types.IssueID) (models.Placement, bool) {
	p, ok := m.before[id]
	return p, ok
}

func (m *Move) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// supersede marks a pending move as superseded; it reports whether it did
func (m *Move) supersede() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StatePending {
		return false
	}
	m.state = StateSuperseded
	return true
}

// settle records the outcome and releases waiters
func (m *Move) settle(s State, err error) {
	m.mu.Lock()
	if m.state == StatePending {
		m.state = s
	}
	m.err = err
	m.mu.Unlock()
	close(m.done)
}

// targets returns the placement this move gives each issue it touches
func (m *Move) targets() map[types.IssueID]models.Placement {
	out := make(map[types.IssueID]models.Placement, len(m.Resolution.Changes))
	for _, ch := range m.Resolution.Changes {
		out[ch.ID] = ch.To
	}
	return out
}
