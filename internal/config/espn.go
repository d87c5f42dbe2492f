package config

import "time"

const (
	envEspnBaseURL           = "ESPN_BASE_URL"
	envEspnUserAgent         = "ESPN_USER_AGENT"
	envEspnTimezone          = "ESPN_TIMEZONE"
	envEspnTimeout           = "ESPN_TIMEOUT"
	envEspnScoreboardTimeout = "ESPN_SCOREBOARD_TIMEOUT"
	envEspnThrottleRPS       = "ESPN_THROTTLE_RPS"
	envEspnThrottleBurst     = "ESPN_THROTTLE_BURST"

	defaultEspnBaseURL   = "https://site.api.espn.com/apis/site/v2/sports"
	defaultEspnUserAgent = "scorepulse/1.0"
	// Upstream schedules are published in US Eastern time.
	defaultEspnTimezone = "America/New_York"
	defaultEspnTimeout  = 5 * Duration(time.Second)
	// Scoreboard pages are small; a tighter bound keeps multi-day fan-out snappy.
	defaultEspnScoreboardTimeout = 3 * Duration(time.Second)
	// Outbound pacing shared by every lookup, including scoreboard fan-out.
	defaultEspnThrottleRPS   = 4.0
	defaultEspnThrottleBurst = 8
)

// EspnConfig controls how we talk to the ESPN site API.
type EspnConfig struct {
	BaseURL           string
	UserAgent         string
	Timezone          string
	Timeout           Duration
	ScoreboardTimeout Duration
	ThrottleRPS       float64
	ThrottleBurst     int
}

func loadEspn() EspnConfig {
	return EspnConfig{
		BaseURL:           envOrDefault(envEspnBaseURL, defaultEspnBaseURL),
		UserAgent:         envOrDefault(envEspnUserAgent, defaultEspnUserAgent),
		Timezone:          envOrDefault(envEspnTimezone, defaultEspnTimezone),
		Timeout:           durationEnvOrDefault(envEspnTimeout, defaultEspnTimeout),
		ScoreboardTimeout: durationEnvOrDefault(envEspnScoreboardTimeout, defaultEspnScoreboardTimeout),
		ThrottleRPS:       float64EnvOrDefault(envEspnThrottleRPS, defaultEspnThrottleRPS),
		ThrottleBurst:     intEnvOrDefault(envEspnThrottleBurst, defaultEspnThrottleBurst),
	}
}
