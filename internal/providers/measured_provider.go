package providers

import (
	"context"
	"time"

	"scorepulse/internal/domain"
	"scorepulse/internal/health"
	"scorepulse/internal/metrics"
)

// measuredProvider records the outcome of every logical fetch against the
// metrics recorder and the upstream health tracker. It is meant to wrap the
// retry decorator, so one observation covers the whole retried call.
type measuredProvider struct {
	inner   DataProvider
	name    string
	metrics *metrics.Recorder
	health  *health.Tracker
	now     func() time.Time
}

// NewMeasuredProvider wraps inner so fetch outcomes feed the recorder and
// tracker. name labels the provider in metrics. recorder and tracker may be
// nil.
func NewMeasuredProvider(inner DataProvider, name string, recorder *metrics.Recorder, tracker *health.Tracker) DataProvider {
	return &measuredProvider{
		inner:   inner,
		name:    name,
		metrics: recorder,
		health:  tracker,
		now:     time.Now,
	}
}

func (m *measuredProvider) FetchTeamSchedule(ctx context.Context, sport, team string, window Window) ([]domain.Game, error) {
	start := m.now()
	games, err := m.inner.FetchTeamSchedule(ctx, sport, team, window)
	m.observe(m.now().Sub(start), err)
	return games, err
}

func (m *measuredProvider) FetchTeams(ctx context.Context, sport string) ([]string, error) {
	start := m.now()
	teams, err := m.inner.FetchTeams(ctx, sport)
	m.observe(m.now().Sub(start), err)
	return teams, err
}

func (m *measuredProvider) FetchGameSummary(ctx context.Context, sport, gameID string) (domain.GameDetails, error) {
	start := m.now()
	details, err := m.inner.FetchGameSummary(ctx, sport, gameID)
	m.observe(m.now().Sub(start), err)
	return details, err
}

// observe feeds metrics unconditionally. Health only moves on upstream
// outcomes: caller mistakes (unsupported sport) and caller cancellation say
// nothing about whether the upstream is reachable.
func (m *measuredProvider) observe(elapsed time.Duration, err error) {
	m.metrics.RecordProviderAttempt(m.name, elapsed, err)

	if rlErr, ok := AsRateLimitError(err); ok {
		m.metrics.RecordRateLimit(m.name, rlErr.RetryAfter)
		m.health.RecordFailure(rlErr)
		return
	}
	if upErr, ok := AsUpstreamError(err); ok {
		m.health.RecordFailure(upErr)
		return
	}
	if err == nil {
		m.health.RecordSuccess()
	}
}
