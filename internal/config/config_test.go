package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.Espn.BaseURL != defaultEspnBaseURL {
		t.Fatalf("expected default espn base url %s, got %s", defaultEspnBaseURL, cfg.Espn.BaseURL)
	}
	if cfg.Espn.Timezone != defaultEspnTimezone {
		t.Fatalf("expected default timezone %s, got %s", defaultEspnTimezone, cfg.Espn.Timezone)
	}
	if cfg.Upstream.MaxAttempts != defaultUpstreamMaxAttempts {
		t.Fatalf("expected default max attempts %d, got %d", defaultUpstreamMaxAttempts, cfg.Upstream.MaxAttempts)
	}
	if cfg.Cache.Capacity != defaultCacheCapacity {
		t.Fatalf("expected default cache capacity %d, got %d", defaultCacheCapacity, cfg.Cache.Capacity)
	}
	if cfg.Cache.ScoresTTL != defaultCacheScoresTTL {
		t.Fatalf("expected default scores ttl %s, got %s", defaultCacheScoresTTL, cfg.Cache.ScoresTTL)
	}
	if cfg.RateLimit.ScoresPerMinute != defaultRateScoresPerMinute {
		t.Fatalf("expected default scores ceiling %d, got %d", defaultRateScoresPerMinute, cfg.RateLimit.ScoresPerMinute)
	}
	if cfg.RateLimit.GlobalPerDay != defaultRateGlobalPerDay {
		t.Fatalf("expected default daily ceiling %d, got %d", defaultRateGlobalPerDay, cfg.RateLimit.GlobalPerDay)
	}
	if cfg.Lookup.ScoresDaysBack != defaultScoresDaysBack || cfg.Lookup.ScoresDaysAhead != defaultScoresDaysAhead {
		t.Fatalf("expected default scores window, got %+v", cfg.Lookup)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard cors default, got %+v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envEspnBaseURL, "http://example.com/api")
	t.Setenv(envEspnTimeout, "9s")
	t.Setenv(envCacheCapacity, "25")
	t.Setenv(envCacheTeamsTTL, "1h")
	t.Setenv(envRateScoresPerMinute, "7")
	t.Setenv(envScoresDaysAhead, "5")
	t.Setenv(envCORSOrigins, "https://a.example, https://b.example")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if cfg.Espn.BaseURL != "http://example.com/api" {
		t.Fatalf("expected espn base url override, got %s", cfg.Espn.BaseURL)
	}
	if cfg.Espn.Timeout != 9*time.Second {
		t.Fatalf("expected espn timeout 9s, got %s", cfg.Espn.Timeout)
	}
	if cfg.Cache.Capacity != 25 {
		t.Fatalf("expected cache capacity 25, got %d", cfg.Cache.Capacity)
	}
	if cfg.Cache.TeamsTTL != time.Hour {
		t.Fatalf("expected teams ttl 1h, got %s", cfg.Cache.TeamsTTL)
	}
	if cfg.RateLimit.ScoresPerMinute != 7 {
		t.Fatalf("expected scores ceiling 7, got %d", cfg.RateLimit.ScoresPerMinute)
	}
	if cfg.Lookup.ScoresDaysAhead != 5 {
		t.Fatalf("expected scores days ahead 5, got %d", cfg.Lookup.ScoresDaysAhead)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("expected two cors origins, got %+v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envCacheScoresTTL, "not-a-duration")

	cfg := Load()

	if cfg.Cache.ScoresTTL != defaultCacheScoresTTL {
		t.Fatalf("expected default scores ttl on invalid value, got %s", cfg.Cache.ScoresTTL)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envEspnTimeout, "0s")

	cfg := Load()

	if cfg.Espn.Timeout != defaultEspnTimeout {
		t.Fatalf("expected default espn timeout on non-positive value, got %s", cfg.Espn.Timeout)
	}
}
