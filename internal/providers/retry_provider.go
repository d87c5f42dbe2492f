package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"scorepulse/internal/domain"
	"scorepulse/internal/logging"
)

const (
	defaultRetryAttempts  = 2
	defaultRetryBaseDelay = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider with retry/backoff behavior. Only
// transient failures are retried; bad responses and unsupported sports fail
// immediately.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	maxAttempts int
	baseDelay   time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/baseDelay are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, maxAttempts int, baseDelay time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if baseDelay <= 0 {
		baseDelay = defaultRetryBaseDelay
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
	}
}

func (r *retryingProvider) FetchTeamSchedule(ctx context.Context, sport, team string, window Window) ([]domain.Game, error) {
	return retryOp(ctx, r, "schedule", func() ([]domain.Game, error) {
		return r.inner.FetchTeamSchedule(ctx, sport, team, window)
	})
}

func (r *retryingProvider) FetchTeams(ctx context.Context, sport string) ([]string, error) {
	return retryOp(ctx, r, "teams", func() ([]string, error) {
		return r.inner.FetchTeams(ctx, sport)
	})
}

func (r *retryingProvider) FetchGameSummary(ctx context.Context, sport, gameID string) (domain.GameDetails, error) {
	return retryOp(ctx, r, "summary", func() (domain.GameDetails, error) {
		return r.inner.FetchGameSummary(ctx, sport, gameID)
	})
}

func retryOp[T any](ctx context.Context, r *retryingProvider, op string, fn func() (T, error)) (T, error) {
	var zero T
	attempt := 0
	var retryAfter time.Duration

	work := func() (T, error) {
		attempt++
		out, err := fn()
		if err == nil {
			return out, nil
		}
		if !Transient(err) {
			return zero, backoff.Permanent(err)
		}
		if rlErr, ok := AsRateLimitError(err); ok {
			retryAfter = rlErr.RetryAfter
		}
		return zero, err
	}

	notify := func(err error, delay time.Duration) {
		r.logWarn(ctx, "provider call retry",
			"op", op,
			logging.FieldAttempt, attempt,
			"max_attempts", r.maxAttempts,
			"delay", delay,
			"err", err,
		)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(
			&retryAfterBackoff{delegate: newRetryBackoff(r.baseDelay), pending: &retryAfter},
			uint64(r.maxAttempts-1),
		),
		ctx,
	)

	out, err := backoff.RetryNotifyWithData(work, policy, notify)
	if err != nil {
		r.logWarn(ctx, "provider call failed", "op", op, "attempts", attempt, "err", err)
		return zero, err
	}
	return out, nil
}

func newRetryBackoff(base time.Duration) backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = base
	bo.RandomizationFactor = 0.2
	bo.Multiplier = 2
	bo.MaxInterval = 2 * time.Second
	bo.MaxElapsedTime = 0
	return bo
}

// retryAfterBackoff prefers an upstream Retry-After hint over the computed
// delay when the hint is longer. The hint applies to the next wait only.
type retryAfterBackoff struct {
	delegate backoff.BackOff
	pending  *time.Duration
}

func (b *retryAfterBackoff) NextBackOff() time.Duration {
	next := b.delegate.NextBackOff()
	if next == backoff.Stop {
		return next
	}
	if hint := *b.pending; hint > 0 {
		*b.pending = 0
		if hint > next {
			return hint
		}
	}
	return next
}

func (b *retryAfterBackoff) Reset() { b.delegate.Reset() }

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
