package espn

import (
	"errors"
	"sort"
	"testing"

	"scorepulse/internal/providers"
)

func TestLeaguePath(t *testing.T) {
	cases := []struct {
		sport string
		want  string
	}{
		{"nba", "basketball/nba"},
		{"wnba", "basketball/wnba"},
		{"nfl", "football/nfl"},
		{"mlb", "baseball/mlb"},
		{"nhl", "hockey/nhl"},
		{"mls", "soccer/usa.1"},
		{"premier league", "soccer/eng.1"},
		{"la liga", "soccer/esp.1"},
		{"NBA", "basketball/nba"},
		{"  Premier League  ", "soccer/eng.1"},
	}

	for _, tc := range cases {
		t.Run(tc.sport, func(t *testing.T) {
			got, err := LeaguePath(tc.sport)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("LeaguePath(%q) = %s, want %s", tc.sport, got, tc.want)
			}
		})
	}
}

func TestLeaguePathUnknownSport(t *testing.T) {
	_, err := LeaguePath("cricket")
	if !errors.Is(err, providers.ErrUnsupportedSport) {
		t.Fatalf("expected unsupported sport error, got %v", err)
	}
}

func TestSupportedSportsSorted(t *testing.T) {
	sports := SupportedSports()
	if len(sports) != len(leaguePaths) {
		t.Fatalf("expected %d sports, got %d", len(leaguePaths), len(sports))
	}
	if !sort.StringsAreSorted(sports) {
		t.Fatalf("expected sorted sports, got %v", sports)
	}
}
