package server

import (
	"log/slog"

	"scorepulse/internal/config"
	"scorepulse/internal/health"
	"scorepulse/internal/metrics"
	"scorepulse/internal/providers"
)

// providerFactory assembles the provider with the shared wrappers
// (retry + measurement).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	health  *health.Tracker
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder, tracker *health.Tracker) providerFactory {
	return providerFactory{logger: logger, metrics: recorder, health: tracker}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

// wrap layers retries inside measurement so the recorder and health tracker
// see one outcome per lookup rather than one per attempt.
func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	retried := providers.NewRetryingProvider(base, f.logger, cfg.Upstream.MaxAttempts, cfg.Upstream.RetryBaseDelay)
	return providers.NewMeasuredProvider(retried, normalizeProviderName(cfg.Provider, base), f.metrics, f.health)
}
