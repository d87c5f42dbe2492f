package scores

import (
	"testing"
	"time"

	"scorepulse/internal/domain"
)

func gameAt(kind domain.StatusKind, start time.Time, opponent string) domain.Game {
	return domain.Game{
		ID:        "game-" + opponent,
		Team:      "Los Angeles Lakers",
		Opponent:  opponent,
		Kind:      kind,
		StartTime: start,
	}
}

func TestSelectPrefersInPlayGame(t *testing.T) {
	now := time.Date(2025, 3, 7, 20, 0, 0, 0, time.UTC)
	games := []domain.Game{
		gameAt(domain.StatusFinal, now.Add(-24*time.Hour), "Warriors"),
		gameAt(domain.StatusLive, now.Add(-time.Hour), "Celtics"),
		gameAt(domain.StatusScheduled, now.Add(4*time.Hour), "Suns"),
	}

	primary, next, ok := Select(games)
	if !ok {
		t.Fatal("expected a selection")
	}
	if primary.Opponent != "Celtics" || primary.Kind != domain.StatusLive {
		t.Fatalf("expected live game primary, got %+v", primary)
	}
	if next == nil || next.Opponent != "Suns" {
		t.Fatalf("expected scheduled game attached as next, got %+v", next)
	}
}

func TestSelectHalftimeCountsAsInPlay(t *testing.T) {
	now := time.Date(2025, 3, 7, 20, 0, 0, 0, time.UTC)
	games := []domain.Game{
		gameAt(domain.StatusHalftime, now.Add(-time.Hour), "Celtics"),
	}

	primary, _, ok := Select(games)
	if !ok || primary.Kind != domain.StatusHalftime {
		t.Fatalf("expected halftime game primary, got %+v (ok=%v)", primary, ok)
	}
}

func TestSelectFinalYesterdayWithScheduledTomorrow(t *testing.T) {
	now := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	games := []domain.Game{
		gameAt(domain.StatusFinal, now.Add(-18*time.Hour), "Warriors"),
		gameAt(domain.StatusScheduled, now.Add(30*time.Hour), "Suns"),
	}

	primary, next, ok := Select(games)
	if !ok {
		t.Fatal("expected a selection")
	}
	if primary.Opponent != "Warriors" || primary.Kind != domain.StatusFinal {
		t.Fatalf("expected final game primary, got %+v", primary)
	}
	if next == nil || next.Opponent != "Suns" {
		t.Fatalf("expected scheduled game as next, got %+v", next)
	}
}

func TestSelectPicksMostRecentFinal(t *testing.T) {
	now := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	games := []domain.Game{
		gameAt(domain.StatusFinal, now.Add(-72*time.Hour), "Nuggets"),
		gameAt(domain.StatusFinal, now.Add(-24*time.Hour), "Warriors"),
		gameAt(domain.StatusFinal, now.Add(-48*time.Hour), "Celtics"),
	}

	primary, next, ok := Select(games)
	if !ok || primary.Opponent != "Warriors" {
		t.Fatalf("expected most recent final, got %+v (ok=%v)", primary, ok)
	}
	if next != nil {
		t.Fatalf("expected no next game without scheduled candidates, got %+v", next)
	}
}

func TestSelectEarliestScheduledAttachesSecondAsNext(t *testing.T) {
	now := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	games := []domain.Game{
		gameAt(domain.StatusScheduled, now.Add(96*time.Hour), "Nuggets"),
		gameAt(domain.StatusScheduled, now.Add(24*time.Hour), "Suns"),
		gameAt(domain.StatusScheduled, now.Add(48*time.Hour), "Celtics"),
	}

	primary, next, ok := Select(games)
	if !ok || primary.Opponent != "Suns" {
		t.Fatalf("expected earliest scheduled primary, got %+v (ok=%v)", primary, ok)
	}
	if next == nil || next.Opponent != "Celtics" {
		t.Fatalf("expected second-earliest as next, got %+v", next)
	}
}

func TestSelectSingleScheduledHasNoNext(t *testing.T) {
	now := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	games := []domain.Game{
		gameAt(domain.StatusScheduled, now.Add(24*time.Hour), "Suns"),
	}

	primary, next, ok := Select(games)
	if !ok || primary.Opponent != "Suns" {
		t.Fatalf("expected scheduled primary, got %+v (ok=%v)", primary, ok)
	}
	if next != nil {
		t.Fatalf("expected no next game, got %+v", next)
	}
}

func TestSelectFallsBackToMostRecentWhenNoBucketFits(t *testing.T) {
	now := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	games := []domain.Game{
		gameAt(domain.StatusPostponed, now.Add(-48*time.Hour), "Nuggets"),
		gameAt(domain.StatusCanceled, now.Add(-12*time.Hour), "Warriors"),
	}

	primary, next, ok := Select(games)
	if !ok || primary.Opponent != "Warriors" {
		t.Fatalf("expected most recent game as fallback, got %+v (ok=%v)", primary, ok)
	}
	if next != nil {
		t.Fatalf("expected no next game, got %+v", next)
	}
}

func TestSelectEmptyWindow(t *testing.T) {
	if _, _, ok := Select(nil); ok {
		t.Fatal("expected no selection from empty window")
	}
}
