package espn

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"scorepulse/internal/providers"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveUserAgent(ua string) string {
	if strings.TrimSpace(ua) == "" {
		return defaultUserAgent
	}
	return ua
}

func resolveLocation(name string) *time.Location {
	if name == "" {
		name = defaultTimezone
	}
	return providers.ResolveTimezone(name)
}

func resolveScoreboardTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return defaultScoreboardTimeout
	}
	return timeout
}

// resolveLimiter builds the outbound pacer that keeps scoreboard fan-outs
// within the upstream's tolerance.
func resolveLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		rps = defaultThrottleRPS
	}
	if burst <= 0 {
		burst = defaultThrottleBurst
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}
