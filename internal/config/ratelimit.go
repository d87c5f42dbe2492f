package config

const (
	envRateScoresPerMinute  = "RATE_SCORES_PER_MINUTE"
	envRateTeamsPerMinute   = "RATE_TEAMS_PER_MINUTE"
	envRateDetailsPerMinute = "RATE_DETAILS_PER_MINUTE"
	envRateGlobalPerHour    = "RATE_GLOBAL_PER_HOUR"
	envRateGlobalPerDay     = "RATE_GLOBAL_PER_DAY"

	defaultRateScoresPerMinute = 20
	defaultRateTeamsPerMinute  = 30
	// Detail lookups fan out to the heaviest upstream endpoint.
	defaultRateDetailsPerMinute = 10
	defaultRateGlobalPerHour    = 50
	defaultRateGlobalPerDay     = 200
)

// RateLimitConfig holds per-family and global admission ceilings.
type RateLimitConfig struct {
	ScoresPerMinute  int
	TeamsPerMinute   int
	DetailsPerMinute int
	GlobalPerHour    int
	GlobalPerDay     int
}

func loadRateLimit() RateLimitConfig {
	return RateLimitConfig{
		ScoresPerMinute:  intEnvOrDefault(envRateScoresPerMinute, defaultRateScoresPerMinute),
		TeamsPerMinute:   intEnvOrDefault(envRateTeamsPerMinute, defaultRateTeamsPerMinute),
		DetailsPerMinute: intEnvOrDefault(envRateDetailsPerMinute, defaultRateDetailsPerMinute),
		GlobalPerHour:    intEnvOrDefault(envRateGlobalPerHour, defaultRateGlobalPerHour),
		GlobalPerDay:     intEnvOrDefault(envRateGlobalPerDay, defaultRateGlobalPerDay),
	}
}
