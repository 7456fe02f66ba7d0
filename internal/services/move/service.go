// Package move applies drag-and-drop moves to the working set optimistically
// and reconciles them with the store, rolling back on failure.
package move

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/thenoetrevino/issueboard/internal/board"
	"github.com/thenoetrevino/issueboard/internal/events"
	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/ordinal"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// DefaultPersistTimeout bounds a single persistence call
const DefaultPersistTimeout = 10 * time.Second

// Service defines the board reordering operations
type Service interface {
	// Drop resolves a drag gesture against the current working set and applies it
	Drop(ctx context.Context, draggedID types.IssueID, target board.DropTarget) (*Move, error)

	// Apply applies an already resolved move
	Apply(ctx context.Context, res board.Resolution) (*Move, error)

	// Renumber respaces a column evenly as one move
	Renumber(ctx context.Context, column models.Column) (*Move, error)

	// Resync replaces the working set with the store's content, keeping
	// pending moves visible
	Resync(ctx context.Context) error

	// Snapshot returns an immutable view for rendering
	Snapshot() board.Snapshot

	// Pending returns the moves still waiting on the store, oldest first
	Pending() []*Move

	// Wait blocks until every in-flight persistence call has settled
	Wait(ctx context.Context) error

	// Metrics returns move counters
	Metrics() MetricsSnapshot
}

// Options tune the service; zero values select the defaults
type Options struct {
	Policy         Policy
	Allocator      ordinal.Allocator
	Epsilon        float64
	PersistTimeout time.Duration
}

// service implements Service interface
type service struct {
	ws          *board.WorkingSet
	store       Store
	resolver    *board.Resolver
	eventClient events.EventPublisher
	policy      Policy
	timeout     time.Duration
	metrics     *Metrics

	mu     sync.Mutex // Serializes drops, completions and resync replacement
	nextID uint64
	latest map[types.IssueID]*Move // Most recent move touching each issue

	// inflight holds moves whose persistence has not finished yet
	inflight map[*Move]struct{}

	// While a resync fetch is running, committed holds the placements saved
	// after it started; the fetched rows may predate them
	fetching  bool
	committed map[types.IssueID]models.Placement

	resync singleflight.Group
}

// NewService creates a new move service over ws, persisting to store.
// eventClient may be nil.
func NewService(ws *board.WorkingSet, store Store, eventClient events.EventPublisher, opts Options) Service {
	alloc := opts.Allocator
	if alloc.Gap <= 0 {
		alloc = ordinal.Default()
	}
	policy := opts.Policy
	if policy == "" {
		policy = PolicyReject
	}
	timeout := opts.PersistTimeout
	if timeout <= 0 {
		timeout = DefaultPersistTimeout
	}

	return &service{
		ws:          ws,
		store:       store,
		resolver:    board.NewResolver(alloc, opts.Epsilon),
		eventClient: eventClient,
		policy:      policy,
		timeout:     timeout,
		metrics:     NewMetrics(),
		latest:      make(map[types.IssueID]*Move),
		inflight:    make(map[*Move]struct{}),
		committed:   make(map[types.IssueID]models.Placement),
	}
}

// Drop handles a drag-end event
func (s *service) Drop(ctx context.Context, draggedID types.IssueID, target board.DropTarget) (*Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.resolver.Resolve(draggedID, target, s.ws.Snapshot())
	if err != nil {
		slog.Debug("drop not applied", "issue_id", draggedID, "target", target.String(), "reason", err)
		return nil, err
	}
	return s.applyLocked(ctx, res)
}

// Renumber spreads the issues of column evenly, keeping their order
func (s *service) Renumber(ctx context.Context, column models.Column) (*Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.resolver.Respace(column, s.ws.Snapshot())
	if err != nil {
		return nil, err
	}
	return s.applyLocked(ctx, res)
}

// Apply applies a resolution computed by the caller
func (s *service) Apply(ctx context.Context, res board.Resolution) (*Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(ctx, res)
}

func (s *service) applyLocked(ctx context.Context, res board.Resolution) (*Move, error) {
	if len(res.Changes) == 0 {
		return nil, board.ErrNoChange
	}

	// Collect in-flight moves on the touched issues before deciding the policy
	var prior []*Move
	seen := make(map[*Move]bool)
	for _, ch := range res.Changes {
		m, ok := s.latest[ch.ID]
		if !ok || seen[m] {
			continue
		}
		seen[m] = true
		if m.State() == StatePending && s.policy == PolicyReject {
			s.metrics.MovesRejected.Add(1)
			return nil, fmt.Errorf("issue %s: %w", ch.ID, ErrMovePending)
		}
		prior = append(prior, m)
	}

	s.nextID++
	m := newMove(s.nextID, res)

	before, err := s.ws.Apply(res.Changes)
	if err != nil {
		return nil, err
	}
	m.before = before
	m.prior = prior
	m.setState(StatePending)

	for _, p := range prior {
		if p.supersede() {
			s.metrics.MovesSuperseded.Add(1)
			s.publishMoveEvent(events.EventMoveSuperseded, p, nil)
			slog.Info("move superseded", "move_id", p.ID, "by", m.ID, "issue_id", p.IssueID)
		}
	}
	for _, ch := range res.Changes {
		s.latest[ch.ID] = m
	}

	s.metrics.MovesApplied.Add(1)
	if res.Renumbered {
		s.metrics.Renumbers.Add(1)
		slog.Info("column renumbered", "column", res.To.Column, "issues", len(res.Changes))
	}
	s.publishMoveEvent(events.EventMoveApplied, m, nil)
	slog.Debug("move applied",
		"move_id", m.ID,
		"issue_id", m.IssueID,
		"from_column", res.From.Column,
		"to_column", res.To.Column,
		"position", res.To.Position)

	s.inflight[m] = struct{}{}
	go s.persist(context.WithoutCancel(ctx), m)

	return m, nil
}

// persist writes the move to the store once earlier moves on the same issues
// have settled, then applies the outcome
func (s *service) persist(ctx context.Context, m *Move) {
	defer func() {
		s.mu.Lock()
		delete(s.inflight, m)
		s.mu.Unlock()
	}()

	for _, p := range m.prior {
		<-p.done
	}

	pctx, cancel := context.WithTimeout(ctx, s.timeout)
	err := s.write(pctx, m.Resolution.Changes)
	cancel()

	s.finish(ctx, m, err)
}

// write persists every change; a renumber writes them concurrently and fails
// as a whole if any write fails
func (s *service) write(ctx context.Context, changes []board.Change) error {
	if len(changes) == 1 {
		ch := changes[0]
		return s.store.UpdatePosition(ctx, ch.ID, ch.To.Column, ch.To.Position)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, ch := range changes {
		g.Go(func() error {
			return s.store.UpdatePosition(gctx, ch.ID, ch.To.Column, ch.To.Position)
		})
	}
	return g.Wait()
}

// finish commits or rolls back m. A rollback only reverts issues whose most
// recent move is still m, so a newer optimistic state is never clobbered.
func (s *service) finish(ctx context.Context, m *Move, err error) {
	s.mu.Lock()
	if err == nil {
		if s.fetching {
			for id, p := range m.targets() {
				if s.latest[id] == m {
					s.committed[id] = p
				}
			}
		}
		s.releaseLocked(m)
		s.mu.Unlock()

		if m.State() == StateSuperseded {
			m.settle(StateSuperseded, nil)
			return
		}
		s.metrics.MovesCommitted.Add(1)
		s.publishMoveEvent(events.EventMoveCommitted, m, nil)
		slog.Debug("move committed", "move_id", m.ID, "issue_id", m.IssueID)
		m.settle(StateCommitted, nil)
		return
	}

	restore := make(map[types.IssueID]models.Placement)
	for id, p := range m.before {
		if s.latest[id] == m {
			restore[id] = p
			delete(s.latest, id)
		}
	}
	if len(restore) > 0 {
		s.ws.Restore(restore)
	}
	s.mu.Unlock()

	perr := &PersistenceError{MoveID: m.ID, IssueID: m.IssueID, Err: err}
	wasPending := m.State() == StatePending

	switch {
	case wasPending || len(restore) > 0:
		// A superseded renumber still reverts the issues no newer move took over
		s.metrics.MovesRolledBack.Add(1)
		s.publishMoveEvent(events.EventMoveRolledBack, m, perr)
		slog.Warn("move failed, reverted",
			"move_id", m.ID,
			"issue_id", m.IssueID,
			"superseded", !wasPending,
			"reverted", len(restore),
			"error", err)
	default:
		slog.Info("superseded move failed", "move_id", m.ID, "issue_id", m.IssueID, "error", err)
	}

	if wasPending || len(restore) > 0 {
		if rerr := s.Resync(ctx); rerr != nil {
			slog.Error("resync after failed move", "move_id", m.ID, "error", rerr)
		}
	}

	m.settle(StateRolledBack, perr)
}

// releaseLocked forgets m for issues it is still the latest move of
func (s *service) releaseLocked(m *Move) {
	for _, ch := range m.Resolution.Changes {
		if s.latest[ch.ID] == m {
			delete(s.latest, ch.ID)
		}
	}
}

// Resync fetches every issue from the store and replaces the working set.
// Concurrent calls share one fetch.
func (s *service) Resync(ctx context.Context) error {
	_, err, shared := s.resync.Do("resync", func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		s.mu.Lock()
		s.fetching = true
		s.mu.Unlock()

		issues, err := s.store.FetchAll(fctx)
		if err != nil {
			s.mu.Lock()
			s.endFetchLocked()
			s.mu.Unlock()
			s.metrics.ResyncFailures.Add(1)
			s.publishEvent(events.Event{Type: events.EventResyncFailed, Error: err.Error()})
			return nil, fmt.Errorf("failed to fetch issues: %w", err)
		}

		s.mu.Lock()
		overlay := s.committed
		for id, p := range s.pendingOverlayLocked() {
			overlay[id] = p
		}
		s.ws.Replace(issues, overlay)
		s.endFetchLocked()
		s.mu.Unlock()

		s.metrics.Resyncs.Add(1)
		s.publishEvent(events.Event{Type: events.EventResynced})
		slog.Debug("working set resynced", "issues", len(issues), "pending_overlay", len(overlay))
		return nil, nil
	})
	if shared {
		slog.Debug("resync coalesced")
	}
	return err
}

func (s *service) endFetchLocked() {
	s.fetching = false
	s.committed = make(map[types.IssueID]models.Placement)
}

// pendingOverlayLocked returns the target placements of moves still pending
func (s *service) pendingOverlayLocked() map[types.IssueID]models.Placement {
	overlay := make(map[types.IssueID]models.Placement)
	for id, m := range s.latest {
		if m.State() != StatePending {
			continue
		}
		if p, ok := m.targets()[id]; ok {
			overlay[id] = p
		}
	}
	return overlay
}

// Snapshot returns the current working set view
func (s *service) Snapshot() board.Snapshot {
	return s.ws.Snapshot()
}

// Pending returns the moves that have not settled yet, oldest first
func (s *service) Pending() []*Move {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[*Move]bool)
	var out []*Move
	for _, m := range s.latest {
		if seen[m] || m.State() != StatePending {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Wait drains every in-flight persistence call, including moves applied
// while it waits
func (s *service) Wait(ctx context.Context) error {
	for {
		s.mu.Lock()
		var waiting []*Move
		for m := range s.inflight {
			select {
			case <-m.done:
			default:
				waiting = append(waiting, m)
			}
		}
		s.mu.Unlock()

		if len(waiting) == 0 {
			return nil
		}
		for _, m := range waiting {
			select {
			case <-m.done:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Metrics returns a snapshot of the move counters
func (s *service) Metrics() MetricsSnapshot {
	return s.metrics.GetSnapshot()
}

// publishMoveEvent publishes a move event if an event client exists
func (s *service) publishMoveEvent(typ events.EventType, m *Move, err error) {
	ev := events.Event{
		Type:     typ,
		MoveID:   m.ID,
		IssueID:  m.IssueID,
		Column:   m.Resolution.To.Column,
		Position: m.Resolution.To.Position,
	}
	if err != nil {
		ev.Error = err.Error()
	}
	s.publishEvent(ev)
}

func (s *service) publishEvent(ev events.Event) {
	if s.eventClient == nil {
		return
	}
	ev.Timestamp = time.Now()
	if err := events.PublishWithRetry(s.eventClient, ev, 3); err != nil {
		slog.Debug("event not delivered", "event_type", ev.Type, "error", err)
	}
}
