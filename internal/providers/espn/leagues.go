package espn

import (
	"sort"
	"strings"

	"scorepulse/internal/providers"
)

// leaguePaths maps a normalized sport name to its upstream league path under
// the site API root.
var leaguePaths = map[string]string{
	"nba":            "basketball/nba",
	"wnba":           "basketball/wnba",
	"nfl":            "football/nfl",
	"mlb":            "baseball/mlb",
	"nhl":            "hockey/nhl",
	"mls":            "soccer/usa.1",
	"premier league": "soccer/eng.1",
	"la liga":        "soccer/esp.1",
}

// LeaguePath resolves a sport name to its upstream league path. Unknown
// sports fail with ErrUnsupportedSport; the error never carries the requested
// name, which stays in server-side logs only.
func LeaguePath(sport string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(sport))
	path, ok := leaguePaths[normalized]
	if !ok {
		return "", providers.ErrUnsupportedSport
	}
	return path, nil
}

// SupportedSports lists the sports with a league mapping, sorted by name.
func SupportedSports() []string {
	sports := make([]string, 0, len(leaguePaths))
	for sport := range leaguePaths {
		sports = append(sports, sport)
	}
	sort.Strings(sports)
	return sports
}
