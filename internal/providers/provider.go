package providers

import (
	"context"

	"scorepulse/internal/domain"
)

// Window bounds a schedule lookup around "today" in the provider's configured
// timezone: DaysBack days behind through DaysAhead days ahead, inclusive.
type Window struct {
	DaysBack  int
	DaysAhead int
}

// Days returns the number of calendar days the window spans.
func (w Window) Days() int {
	back, ahead := w.DaysBack, w.DaysAhead
	if back < 0 {
		back = 0
	}
	if ahead < 0 {
		ahead = 0
	}
	return back + ahead + 1
}

// ScheduleProvider fetches the normalized candidate games for one team within
// a date window. Providers filter to games the requested team plays in; they
// do not rank them.
type ScheduleProvider interface {
	FetchTeamSchedule(ctx context.Context, sport, team string, window Window) ([]domain.Game, error)
}

// TeamProvider fetches the team names available for a sport.
type TeamProvider interface {
	FetchTeams(ctx context.Context, sport string) ([]string, error)
}

// SummaryProvider fetches the expanded view of a single game.
type SummaryProvider interface {
	FetchGameSummary(ctx context.Context, sport, gameID string) (domain.GameDetails, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	ScheduleProvider
	TeamProvider
	SummaryProvider
}
