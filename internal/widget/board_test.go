package widget

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"scorepulse/internal/domain"
	"scorepulse/internal/ratelimit"
)

func stateFor(opponent string) domain.GameState {
	return domain.GameState{
		Team:       "Los Angeles Lakers",
		Opponent:   opponent,
		StatusKind: domain.StatusFinal,
	}
}

// blockingFetch hands each invocation's reply channel to the test, letting it
// control completion order precisely.
func blockingFetch(calls chan chan domain.GameState) FetchFunc {
	return func(ctx context.Context, sport, team string) (domain.GameState, error) {
		reply := make(chan domain.GameState)
		calls <- reply
		return <-reply, nil
	}
}

func TestBoardLifecycle(t *testing.T) {
	board := NewBoard(func(ctx context.Context, sport, team string) (domain.GameState, error) {
		return stateFor("Boston Celtics"), nil
	}, nil)

	snap, err := board.Snapshot(0)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Phase != PhaseUnconfigured {
		t.Fatalf("expected unconfigured slot, got %s", snap.Phase)
	}

	if err := board.Configure(0, "nba", "Lakers"); err != nil {
		t.Fatalf("configure: %v", err)
	}
	snap, _ = board.Snapshot(0)
	if snap.Phase != PhaseAwaiting {
		t.Fatalf("expected awaiting first fetch, got %s", snap.Phase)
	}
	if snap.Config.Sport != "nba" || snap.Config.Team != "Lakers" {
		t.Fatalf("unexpected config %+v", snap.Config)
	}

	if err := board.Refresh(context.Background(), 0); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	snap, _ = board.Snapshot(0)
	if snap.Phase != PhaseDisplaying {
		t.Fatalf("expected displaying, got %s", snap.Phase)
	}
	if snap.State.Opponent != "Boston Celtics" {
		t.Fatalf("unexpected state %+v", snap.State)
	}

	if err := board.Reset(0); err != nil {
		t.Fatalf("reset: %v", err)
	}
	snap, _ = board.Snapshot(0)
	if snap.Phase != PhaseUnconfigured || snap.State.Opponent != "" {
		t.Fatalf("expected cleared slot, got %+v", snap)
	}
}

func TestBoardMostRecentlyCompletedRefreshWins(t *testing.T) {
	calls := make(chan chan domain.GameState, 2)
	board := NewBoard(blockingFetch(calls), nil)
	if err := board.Configure(1, "nba", "Lakers"); err != nil {
		t.Fatalf("configure: %v", err)
	}

	// Issue A, then B. B completes first; A completes second. The display
	// must show A's result: completion order, not issue order, decides.
	doneA := make(chan error, 1)
	go func() { doneA <- board.Refresh(context.Background(), 1) }()
	replyA := <-calls

	doneB := make(chan error, 1)
	go func() { doneB <- board.Refresh(context.Background(), 1) }()
	replyB := <-calls

	replyB <- stateFor("from-B")
	if err := <-doneB; err != nil {
		t.Fatalf("refresh B: %v", err)
	}
	snap, _ := board.Snapshot(1)
	if snap.State.Opponent != "from-B" {
		t.Fatalf("expected B displayed first, got %+v", snap.State)
	}

	replyA <- stateFor("from-A")
	if err := <-doneA; err != nil {
		t.Fatalf("refresh A: %v", err)
	}
	snap, _ = board.Snapshot(1)
	if snap.State.Opponent != "from-A" {
		t.Fatalf("expected A displayed after completing last, got %+v", snap.State)
	}
}

func TestBoardDiscardsCompletionFromSupersededEpoch(t *testing.T) {
	calls := make(chan chan domain.GameState, 1)
	board := NewBoard(blockingFetch(calls), nil)
	if err := board.Configure(0, "nba", "Lakers"); err != nil {
		t.Fatalf("configure: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- board.Refresh(context.Background(), 0) }()
	reply := <-calls

	// Reconfigure while the refresh is in flight.
	if err := board.Configure(0, "nba", "Celtics"); err != nil {
		t.Fatalf("reconfigure: %v", err)
	}

	reply <- stateFor("stale result")
	if err := <-done; err != nil {
		t.Fatalf("refresh: %v", err)
	}

	snap, _ := board.Snapshot(0)
	if snap.Phase != PhaseAwaiting {
		t.Fatalf("expected new config still awaiting, got %s", snap.Phase)
	}
	if snap.State.Opponent != "" {
		t.Fatalf("stale completion applied: %+v", snap.State)
	}
}

func TestBoardResetDiscardsInFlightRefresh(t *testing.T) {
	calls := make(chan chan domain.GameState, 1)
	board := NewBoard(blockingFetch(calls), nil)
	if err := board.Configure(0, "nba", "Lakers"); err != nil {
		t.Fatalf("configure: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- board.Refresh(context.Background(), 0) }()
	reply := <-calls

	if err := board.Reset(0); err != nil {
		t.Fatalf("reset: %v", err)
	}
	reply <- stateFor("stale result")
	if err := <-done; err != nil {
		t.Fatalf("refresh: %v", err)
	}

	snap, _ := board.Snapshot(0)
	if snap.Phase != PhaseUnconfigured || snap.State.Opponent != "" {
		t.Fatalf("expected cleared slot, got %+v", snap)
	}
}

func TestBoardFetchErrorKeepsPreviousDisplay(t *testing.T) {
	var fetchErr error
	board := NewBoard(func(ctx context.Context, sport, team string) (domain.GameState, error) {
		if fetchErr != nil {
			return domain.GameState{}, fetchErr
		}
		return stateFor("Boston Celtics"), nil
	}, nil)
	if err := board.Configure(0, "nba", "Lakers"); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if err := board.Refresh(context.Background(), 0); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	fetchErr = &ratelimit.Error{RetryAfter: 30 * time.Second, Scope: ratelimit.ScopeFamilyMinute}
	err := board.Refresh(context.Background(), 0)
	if _, ok := ratelimit.AsError(err); !ok {
		t.Fatalf("expected rate limit error surfaced, got %v", err)
	}

	snap, _ := board.Snapshot(0)
	if snap.State.Opponent != "Boston Celtics" {
		t.Fatalf("expected previous display kept, got %+v", snap.State)
	}
	if snap.Phase != PhaseDisplaying {
		t.Fatalf("expected displaying, got %s", snap.Phase)
	}
}

func TestBoardCheckInRefreshesConfiguredSlotsInParallel(t *testing.T) {
	calls := make(chan chan domain.GameState, 2)
	board := NewBoard(blockingFetch(calls), nil)
	if err := board.Configure(0, "nba", "Lakers"); err != nil {
		t.Fatalf("configure 0: %v", err)
	}
	if err := board.Configure(2, "mlb", "Dodgers"); err != nil {
		t.Fatalf("configure 2: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- board.CheckIn(context.Background()) }()

	// Both fetches must be in flight before either completes.
	first := <-calls
	second := <-calls
	first <- stateFor("x")
	second <- stateFor("y")

	if err := <-done; err != nil {
		t.Fatalf("check-in: %v", err)
	}
	for _, idx := range []int{0, 2} {
		snap, _ := board.Snapshot(idx)
		if snap.Phase != PhaseDisplaying {
			t.Fatalf("slot %d not refreshed: %s", idx, snap.Phase)
		}
	}
	// Unconfigured slots are untouched.
	snap, _ := board.Snapshot(1)
	if snap.Phase != PhaseUnconfigured {
		t.Fatalf("expected slot 1 unconfigured, got %s", snap.Phase)
	}
}

func TestBoardCheckInReportsErrorButRefreshesRest(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	board := NewBoard(func(ctx context.Context, sport, team string) (domain.GameState, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if sport == "mlb" {
			return domain.GameState{}, errors.New("boom")
		}
		return stateFor("Boston Celtics"), nil
	}, nil)
	_ = board.Configure(0, "nba", "Lakers")
	_ = board.Configure(1, "mlb", "Dodgers")

	if err := board.CheckIn(context.Background()); err == nil {
		t.Fatal("expected check-in to surface the failure")
	}
	if calls != 2 {
		t.Fatalf("expected both slots attempted, got %d", calls)
	}
	snap, _ := board.Snapshot(0)
	if snap.Phase != PhaseDisplaying {
		t.Fatalf("expected healthy slot refreshed, got %s", snap.Phase)
	}
}

func TestBoardConfigureWithEmptySportClearsSlot(t *testing.T) {
	board := NewBoard(func(ctx context.Context, sport, team string) (domain.GameState, error) {
		return stateFor("Boston Celtics"), nil
	}, nil)
	_ = board.Configure(0, "nba", "Lakers")
	_ = board.Refresh(context.Background(), 0)

	if err := board.Configure(0, "  ", "whatever"); err != nil {
		t.Fatalf("clearing configure: %v", err)
	}
	snap, _ := board.Snapshot(0)
	if snap.Phase != PhaseUnconfigured {
		t.Fatalf("expected cleared slot, got %s", snap.Phase)
	}
}

func TestBoardValidatesSlotIndex(t *testing.T) {
	board := NewBoard(nil, nil)
	if err := board.Configure(-1, "nba", "Lakers"); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected invalid slot, got %v", err)
	}
	if err := board.Configure(SlotCount, "nba", "Lakers"); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected invalid slot, got %v", err)
	}
	if err := board.Reset(99); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected invalid slot, got %v", err)
	}
	if _, err := board.Snapshot(4); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected invalid slot, got %v", err)
	}
	if err := board.Refresh(context.Background(), 7); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected invalid slot, got %v", err)
	}
}

func TestBoardRefreshUnconfiguredSlot(t *testing.T) {
	board := NewBoard(func(ctx context.Context, sport, team string) (domain.GameState, error) {
		return domain.GameState{}, nil
	}, nil)
	if err := board.Refresh(context.Background(), 0); !errors.Is(err, ErrSlotUnconfigured) {
		t.Fatalf("expected unconfigured error, got %v", err)
	}
}

func TestBoardSnapshotIsolatesNextGame(t *testing.T) {
	board := NewBoard(func(ctx context.Context, sport, team string) (domain.GameState, error) {
		return domain.GameState{
			Team:     "Los Angeles Lakers",
			NextGame: &domain.NextGame{Opponent: "Phoenix Suns"},
		}, nil
	}, nil)
	_ = board.Configure(0, "nba", "Lakers")
	_ = board.Refresh(context.Background(), 0)

	snap, _ := board.Snapshot(0)
	snap.State.NextGame.Opponent = "mutated"

	again, _ := board.Snapshot(0)
	if again.State.NextGame.Opponent != "Phoenix Suns" {
		t.Fatalf("snapshot leaked mutation: %+v", again.State.NextGame)
	}
}
