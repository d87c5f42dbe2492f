// Package widget holds the embeddable controller core for the dashboard's
// four widget slots. A Board owns each slot's configuration and display
// state; rendering stays with the caller. Display updates follow completion
// order: the most recently completed refresh wins, and completions from a
// superseded configuration are discarded.
package widget

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"scorepulse/internal/domain"
	"scorepulse/internal/logging"
)

// SlotCount is the fixed number of widget slots.
const SlotCount = 4

var (
	// ErrInvalidSlot reports a widget index outside [0, SlotCount).
	ErrInvalidSlot = errors.New("widget index out of range")
	// ErrSlotUnconfigured reports a refresh against an empty slot.
	ErrSlotUnconfigured = errors.New("widget slot not configured")
	// errNoFetcher reports a Board constructed without a fetch function.
	errNoFetcher = errors.New("no fetch function configured")
)

// FetchFunc resolves the current GameState for a sport/team pair.
type FetchFunc func(ctx context.Context, sport, team string) (domain.GameState, error)

// Config binds one slot to a sport/team pair.
type Config struct {
	Sport string
	Team  string
}

// Phase is a slot's position in its lifecycle.
type Phase string

const (
	PhaseUnconfigured Phase = "unconfigured"
	PhaseAwaiting     Phase = "awaiting_first_fetch"
	PhaseDisplaying   Phase = "displaying"
)

// Snapshot is a point-in-time view of one slot.
type Snapshot struct {
	Index  int
	Phase  Phase
	Config Config
	State  domain.GameState
	Epoch  uint64
	// LastSeq is the issue sequence of the refresh whose result is shown.
	LastSeq uint64
}

type slot struct {
	config     Config
	configured bool
	epoch      uint64
	issued     uint64
	lastSeq    uint64
	phase      Phase
	state      domain.GameState
}

// Board owns the widget slots and applies refresh completions in order.
type Board struct {
	fetch  FetchFunc
	logger *slog.Logger

	mu    sync.Mutex
	slots [SlotCount]slot
}

// NewBoard constructs a Board that resolves scores through fetch.
func NewBoard(fetch FetchFunc, logger *slog.Logger) *Board {
	b := &Board{fetch: fetch, logger: logger}
	for i := range b.slots {
		b.slots[i].phase = PhaseUnconfigured
	}
	return b
}

// Configure binds a slot to a sport/team pair and discards any in-flight
// refresh for the previous binding. An empty sport clears the slot, matching
// the dashboard's "no selection" action.
func (b *Board) Configure(idx int, sport, team string) error {
	if idx < 0 || idx >= SlotCount {
		return ErrInvalidSlot
	}
	if strings.TrimSpace(sport) == "" {
		return b.Reset(idx)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	s := &b.slots[idx]
	s.config = Config{Sport: sport, Team: team}
	s.configured = true
	s.epoch++
	s.phase = PhaseAwaiting
	s.state = domain.GameState{}
	s.lastSeq = 0
	return nil
}

// Reset clears a slot. In-flight refreshes for the old binding are discarded
// when they complete.
func (b *Board) Reset(idx int) error {
	if idx < 0 || idx >= SlotCount {
		return ErrInvalidSlot
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	s := &b.slots[idx]
	s.config = Config{}
	s.configured = false
	s.epoch++
	s.phase = PhaseUnconfigured
	s.state = domain.GameState{}
	s.lastSeq = 0
	return nil
}

// Snapshot returns a copy of the slot's current view.
func (b *Board) Snapshot(idx int) (Snapshot, error) {
	if idx < 0 || idx >= SlotCount {
		return Snapshot{}, ErrInvalidSlot
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	s := &b.slots[idx]
	state := s.state
	if state.NextGame != nil {
		next := *state.NextGame
		state.NextGame = &next
	}
	return Snapshot{
		Index:   idx,
		Phase:   s.phase,
		Config:  s.config,
		State:   state,
		Epoch:   s.epoch,
		LastSeq: s.lastSeq,
	}, nil
}

// Refresh fetches the slot's current GameState and applies it. A result whose
// configuration epoch was superseded mid-flight is dropped. Fetch errors
// (validation, admission) leave the previous display untouched so the caller
// can back off instead of rendering "no data".
func (b *Board) Refresh(ctx context.Context, idx int) error {
	if idx < 0 || idx >= SlotCount {
		return ErrInvalidSlot
	}
	if b.fetch == nil {
		return errNoFetcher
	}

	b.mu.Lock()
	s := &b.slots[idx]
	if !s.configured {
		b.mu.Unlock()
		return ErrSlotUnconfigured
	}
	cfg := s.config
	epoch := s.epoch
	s.issued++
	seq := s.issued
	b.mu.Unlock()

	state, err := b.fetch(ctx, cfg.Sport, cfg.Team)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	s = &b.slots[idx]
	if s.epoch != epoch {
		logging.Debug(b.logger, "discarded stale widget refresh",
			slog.Int("widget_index", idx),
			slog.Uint64("stale_epoch", epoch),
			slog.Uint64("epoch", s.epoch),
		)
		return nil
	}
	// Applied under the lock at completion time, so the most recently
	// completed refresh wins regardless of issue order.
	s.state = state
	s.phase = PhaseDisplaying
	s.lastSeq = seq
	return nil
}

// CheckIn refreshes every configured slot in parallel. All slots are
// attempted; the first error is returned after everything settles.
func (b *Board) CheckIn(ctx context.Context) error {
	b.mu.Lock()
	indices := make([]int, 0, SlotCount)
	for i := range b.slots {
		if b.slots[i].configured {
			indices = append(indices, i)
		}
	}
	b.mu.Unlock()

	var g errgroup.Group
	for _, idx := range indices {
		idx := idx
		g.Go(func() error { return b.Refresh(ctx, idx) })
	}
	return g.Wait()
}
