package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits   int
	misses int
}

type admissionStats struct {
	allowed  int
	rejected int
}

// Recorder captures lightweight, in-memory metrics about provider calls,
// cache lookups, and admission decisions. It is intentionally simple so it
// can be swapped for a real backend later.
type Recorder struct {
	mu             sync.Mutex
	stats          map[string]*providerStats
	cache          map[string]*cacheStats
	cacheEvictions int
	cacheExpiries  int
	admissions     map[string]*admissionStats
	otel           *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:      make(map[string]*providerStats),
		cache:      make(map[string]*cacheStats),
		admissions: make(map[string]*admissionStats),
		otel:       otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that an upstream response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordCacheLookup tracks a response-cache lookup outcome for a family.
func (r *Recorder) RecordCacheLookup(family string, hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.cache[family]
	if !ok {
		stats = &cacheStats{}
		r.cache[family] = stats
	}
	if hit {
		stats.hits++
	} else {
		stats.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(family, hit)
	}
}

// RecordCacheEviction tracks an entry displaced from the response cache.
// expired distinguishes TTL reclamation from capacity pressure on live
// entries.
func (r *Recorder) RecordCacheEviction(expired bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if expired {
		r.cacheExpiries++
	} else {
		r.cacheEvictions++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheEviction(expired)
	}
}

// RecordAdmission tracks a rate-limiter decision for a family. Scope is only
// meaningful for rejections.
func (r *Recorder) RecordAdmission(family string, allowed bool, scope string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.admissions[family]
	if !ok {
		stats = &admissionStats{}
		r.admissions[family] = stats
	}
	if allowed {
		stats.allowed++
	} else {
		stats.rejected++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAdmission(family, allowed, scope)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of upstream rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// CacheHits returns the cache hits recorded for a family.
func (r *Recorder) CacheHits(family string) int {
	hits, _ := r.cacheCounts(family)
	return hits
}

// CacheMisses returns the cache misses recorded for a family.
func (r *Recorder) CacheMisses(family string) int {
	_, misses := r.cacheCounts(family)
	return misses
}

// CacheEvictions returns live entries displaced by capacity pressure.
func (r *Recorder) CacheEvictions() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cacheEvictions
}

// CacheExpiries returns expired entries reclaimed from the cache.
func (r *Recorder) CacheExpiries() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cacheExpiries
}

// AdmissionsAllowed returns the allowed admissions recorded for a family.
func (r *Recorder) AdmissionsAllowed(family string) int {
	allowed, _ := r.admissionCounts(family)
	return allowed
}

// AdmissionsRejected returns the rejected admissions recorded for a family.
func (r *Recorder) AdmissionsRejected(family string) int {
	_, rejected := r.admissionCounts(family)
	return rejected
}

// Snapshot is a point-in-time copy of the counters for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// Snapshot returns a copy of the current stats for the provider.
func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return Snapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			RateLimitHits:   stats.rateLimitHits,
			LastRetryAfter:  stats.lastRetryAfter,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return Snapshot{}
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) cacheCounts(family string) (hits, misses int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.cache[family]; ok {
		return stats.hits, stats.misses
	}
	return 0, 0
}

func (r *Recorder) admissionCounts(family string) (allowed, rejected int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.admissions[family]; ok {
		return stats.allowed, stats.rejected
	}
	return 0, 0
}
