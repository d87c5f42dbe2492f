package metrics

import (
	"context"
	"testing"
	"time"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledInitializesRecorderAndHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "scorepulse",
		// No OTLP endpoint; uses Prometheus exporter only.
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler == nil {
		t.Fatalf("expected handler when enabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}

	// Every event must land in the in-memory mirror even with otel wired.
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordProviderAttempt("espn", time.Millisecond, nil)
	rec.RecordRateLimit("espn", time.Second)
	rec.RecordCacheLookup("scores", true)
	rec.RecordCacheLookup("scores", false)
	rec.RecordCacheEviction(true)
	rec.RecordCacheEviction(false)
	rec.RecordAdmission("scores", false, "family_minute")

	if rec.ProviderCalls("espn") != 1 || rec.RateLimitHits("espn") != 1 {
		t.Fatalf("expected provider counters mirrored, got calls=%d hits=%d",
			rec.ProviderCalls("espn"), rec.RateLimitHits("espn"))
	}
	if rec.CacheHits("scores") != 1 || rec.CacheMisses("scores") != 1 {
		t.Fatalf("expected cache lookup counters mirrored")
	}
	if rec.CacheExpiries() != 1 || rec.CacheEvictions() != 1 {
		t.Fatalf("expected eviction reasons mirrored, got expiries=%d evictions=%d",
			rec.CacheExpiries(), rec.CacheEvictions())
	}
	if rec.AdmissionsRejected("scores") != 1 {
		t.Fatalf("expected admission rejection mirrored")
	}
}
