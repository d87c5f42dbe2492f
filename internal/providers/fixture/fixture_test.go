package fixture

import (
	"context"
	"errors"
	"testing"
	"time"

	"scorepulse/internal/domain"
	"scorepulse/internal/providers"
)

func TestFetchTeamScheduleReturnsDeterministicGames(t *testing.T) {
	fixed := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	p := New()
	p.now = func() time.Time { return fixed }

	games, err := p.FetchTeamSchedule(context.Background(), "nba", "Lakers", providers.Window{DaysBack: 1, DaysAhead: 3})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}

	if games[0].Kind != domain.StatusFinal || games[1].Kind != domain.StatusLive || games[2].Kind != domain.StatusScheduled {
		t.Fatalf("unexpected game kinds %+v", games)
	}
	for _, game := range games {
		if game.Team != "Los Angeles Lakers" {
			t.Fatalf("expected matched roster name, got %+v", game)
		}
		if game.Opponent == game.Team {
			t.Fatalf("expected distinct opponent, got %+v", game)
		}
	}
	if games[2].TeamScore != "-" || games[2].OpponentScore != "-" {
		t.Fatalf("expected masked scores on scheduled game, got %+v", games[2])
	}
}

func TestFetchTeamScheduleWindowTrimsGames(t *testing.T) {
	fixed := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	p := New()
	p.now = func() time.Time { return fixed }

	games, err := p.FetchTeamSchedule(context.Background(), "nba", "Lakers", providers.Window{DaysBack: 0, DaysAhead: 0})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, game := range games {
		if game.Kind == domain.StatusScheduled && game.StartTime.After(fixed.AddDate(0, 0, 1)) {
			t.Fatalf("expected tomorrow's game trimmed, got %+v", games)
		}
	}
}

func TestFetchTeamScheduleUnknownTeamIsEmpty(t *testing.T) {
	p := New()

	games, err := p.FetchTeamSchedule(context.Background(), "nba", "Space Jammers", providers.Window{DaysBack: 1, DaysAhead: 3})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected no games for unknown team, got %+v", games)
	}
}

func TestFetchTeamScheduleUnknownSport(t *testing.T) {
	p := New()

	_, err := p.FetchTeamSchedule(context.Background(), "cricket", "Lakers", providers.Window{})
	if !errors.Is(err, providers.ErrUnsupportedSport) {
		t.Fatalf("expected unsupported sport error, got %v", err)
	}
}

func TestFetchTeamsReturnsRosterCopy(t *testing.T) {
	p := New()

	teams, err := p.FetchTeams(context.Background(), "wnba")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(teams) != 3 {
		t.Fatalf("expected fixture roster, got %v", teams)
	}

	teams[0] = "mutated"
	again, err := p.FetchTeams(context.Background(), "wnba")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if again[0] == "mutated" {
		t.Fatalf("expected roster copy, got shared slice")
	}
}

func TestFetchGameSummaryIsDeterministic(t *testing.T) {
	p := New()

	details, err := p.FetchGameSummary(context.Background(), "nba", "fixture-nba-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if details.GameID != "fixture-nba-1" || len(details.Teams) != 2 {
		t.Fatalf("unexpected details %+v", details)
	}
	if details.Teams[0].HomeAway != "home" || details.Teams[1].HomeAway != "away" {
		t.Fatalf("unexpected team orientation %+v", details.Teams)
	}
}

func TestProviderImplementsDataProvider(t *testing.T) {
	var _ providers.DataProvider = New()
}
