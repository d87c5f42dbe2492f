package config

import "time"

const (
	envCacheCapacity   = "CACHE_CAPACITY"
	envCacheScoresTTL  = "CACHE_SCORES_TTL"
	envCacheTeamsTTL   = "CACHE_TEAMS_TTL"
	envCacheDetailsTTL = "CACHE_DETAILS_TTL"

	defaultCacheCapacity = 1000
	// Score data goes stale within minutes during live games.
	defaultCacheScoresTTL  = 5 * Duration(time.Minute)
	defaultCacheDetailsTTL = 5 * Duration(time.Minute)
	// Team lists change rarely; hold them much longer.
	defaultCacheTeamsTTL = 12 * Duration(time.Hour)
)

// CacheConfig controls the in-memory response cache.
type CacheConfig struct {
	Capacity   int
	ScoresTTL  Duration
	TeamsTTL   Duration
	DetailsTTL Duration
}

func loadCache() CacheConfig {
	return CacheConfig{
		Capacity:   intEnvOrDefault(envCacheCapacity, defaultCacheCapacity),
		ScoresTTL:  durationEnvOrDefault(envCacheScoresTTL, defaultCacheScoresTTL),
		TeamsTTL:   durationEnvOrDefault(envCacheTeamsTTL, defaultCacheTeamsTTL),
		DetailsTTL: durationEnvOrDefault(envCacheDetailsTTL, defaultCacheDetailsTTL),
	}
}
