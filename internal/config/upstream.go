package config

import "time"

const (
	envUpstreamMaxAttempts = "UPSTREAM_MAX_ATTEMPTS"
	envUpstreamRetryDelay  = "UPSTREAM_RETRY_BASE_DELAY"

	// Two attempts total: one retry on transient failure, never a retry loop.
	defaultUpstreamMaxAttempts = 2
	defaultUpstreamRetryDelay  = 200 * Duration(time.Millisecond)
)

// UpstreamConfig controls retry behavior for upstream calls, independent of
// which provider serves them.
type UpstreamConfig struct {
	MaxAttempts    int
	RetryBaseDelay Duration
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		MaxAttempts:    intEnvOrDefault(envUpstreamMaxAttempts, defaultUpstreamMaxAttempts),
		RetryBaseDelay: durationEnvOrDefault(envUpstreamRetryDelay, defaultUpstreamRetryDelay),
	}
}
