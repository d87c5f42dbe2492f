package espn

import "time"

const providerName = "espn"

const (
	defaultBaseURL           = "https://site.api.espn.com/apis/site/v2/sports"
	defaultUserAgent         = "scorepulse/1.0"
	defaultTimezone          = "America/New_York"
	defaultTimeout           = 5 * time.Second
	defaultScoreboardTimeout = 3 * time.Second
	defaultThrottleRPS       = 4.0
	defaultThrottleBurst     = 8
	maxErrorBody             = 512
)
