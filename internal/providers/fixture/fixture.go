package fixture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"scorepulse/internal/domain"
	"scorepulse/internal/providers"
	"scorepulse/internal/teammatch"
)

// Provider serves a deterministic multi-sport schedule useful for local
// development and bootstrapping without upstream credentials or network.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

var rosters = map[string][]string{
	"nba": {
		"Boston Celtics", "Golden State Warriors", "Los Angeles Lakers",
		"Miami Heat", "New York Knicks", "Phoenix Suns",
	},
	"wnba": {
		"Las Vegas Aces", "New York Liberty", "Seattle Storm",
	},
	"nfl": {
		"Buffalo Bills", "Kansas City Chiefs", "Philadelphia Eagles",
	},
	"mlb": {
		"Boston Red Sox", "Los Angeles Dodgers", "New York Yankees",
	},
	"nhl": {
		"Boston Bruins", "Colorado Avalanche", "Toronto Maple Leafs",
	},
	"mls": {
		"Inter Miami CF", "LA Galaxy", "Seattle Sounders FC",
	},
	"premier league": {
		"Arsenal", "Liverpool", "Manchester City",
	},
	"la liga": {
		"Barcelona", "Real Madrid", "Sevilla",
	},
}

// FetchTeamSchedule synthesizes three games around now for the requested
// team: a final yesterday, a live game today, and a scheduled game tomorrow.
func (p *Provider) FetchTeamSchedule(ctx context.Context, sport, team string, window providers.Window) ([]domain.Game, error) {
	_ = ctx

	roster, err := rosterFor(sport)
	if err != nil {
		return nil, err
	}

	matched := ""
	for _, name := range roster {
		if teammatch.Matches(team, name) {
			matched = name
			break
		}
	}
	if matched == "" {
		return []domain.Game{}, nil
	}

	opponent := roster[0]
	if opponent == matched && len(roster) > 1 {
		opponent = roster[1]
	}

	now := p.now().UTC().Truncate(time.Minute)
	games := []domain.Game{
		{
			ID:            fixtureGameID(sport, matched, 1),
			Team:          matched,
			Opponent:      opponent,
			TeamScore:     "104",
			OpponentScore: "99",
			Kind:          domain.StatusFinal,
			StatusText:    "Final",
			StartTime:     now.AddDate(0, 0, -1),
			Venue:         "Fixture Park",
		},
		{
			ID:            fixtureGameID(sport, matched, 2),
			Team:          matched,
			Opponent:      opponent,
			TeamScore:     "55",
			OpponentScore: "51",
			Kind:          domain.StatusLive,
			StatusText:    "8:24 - 3rd",
			StartTime:     now.Add(-time.Hour),
			Venue:         "Fixture Park",
		},
		{
			ID:            fixtureGameID(sport, matched, 3),
			Team:          matched,
			Opponent:      opponent,
			TeamScore:     "-",
			OpponentScore: "-",
			Kind:          domain.StatusScheduled,
			StatusText:    "Scheduled",
			StartTime:     now.AddDate(0, 0, 1),
			Venue:         "Fixture Park",
		},
	}

	// Trim to the requested window.
	back := window.DaysBack
	if back < 0 {
		back = 0
	}
	ahead := window.DaysAhead
	if ahead < 0 {
		ahead = 0
	}
	from := now.AddDate(0, 0, -back-1)
	to := now.AddDate(0, 0, ahead+1)

	out := make([]domain.Game, 0, len(games))
	for _, game := range games {
		if game.StartTime.Before(from) || game.StartTime.After(to) {
			continue
		}
		out = append(out, game)
	}
	return out, nil
}

// FetchTeams returns the sport's fixture roster.
func (p *Provider) FetchTeams(ctx context.Context, sport string) ([]string, error) {
	_ = ctx
	roster, err := rosterFor(sport)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(roster))
	copy(out, roster)
	return out, nil
}

// FetchGameSummary returns a deterministic summary for any fixture game id.
func (p *Provider) FetchGameSummary(ctx context.Context, sport, gameID string) (domain.GameDetails, error) {
	_ = ctx
	if _, err := rosterFor(sport); err != nil {
		return domain.GameDetails{}, err
	}

	return domain.GameDetails{
		GameID:     gameID,
		Team:       "Fixture Home",
		Opponent:   "Fixture Away",
		StatusKind: domain.StatusFinal,
		StatusText: "Final",
		Venue:      "Fixture Park",
		Teams: []domain.TeamDetail{
			{
				Name:       "Fixture Home",
				HomeAway:   "home",
				Score:      "104",
				Linescores: []string{"28", "24", "30", "22"},
				Statistics: map[string]string{"Rebounds": "44", "Assists": "27"},
			},
			{
				Name:       "Fixture Away",
				HomeAway:   "away",
				Score:      "99",
				Linescores: []string{"25", "26", "24", "24"},
				Statistics: map[string]string{"Rebounds": "39", "Assists": "22"},
			},
		},
		Leaders: []domain.StatLeader{
			{Team: "HOME", Category: "Points", Athlete: "Jane Doe", Value: "32"},
			{Team: "AWAY", Category: "Points", Athlete: "John Smith", Value: "28"},
		},
		ScoringPlays: []domain.ScoringPlay{
			{Period: "1st", Clock: "10:12", Team: "HOME", Text: "Opening layup", ScoreValue: 2},
		},
	}, nil
}

func rosterFor(sport string) ([]string, error) {
	roster, ok := rosters[strings.ToLower(strings.TrimSpace(sport))]
	if !ok {
		return nil, providers.ErrUnsupportedSport
	}
	return roster, nil
}

func fixtureGameID(sport, team string, n int) string {
	return fmt.Sprintf("fixture-%s-%s-%d", slugify(sport), slugify(team), n)
}

func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
