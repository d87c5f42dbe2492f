// Package teams mediates team-roster lookups: validate the sport, admit the
// caller, then serve the league's team names from cache or upstream. Rosters
// change rarely, so the teams family carries a much longer TTL than scores.
package teams

import (
	"context"
	"log/slog"
	"time"

	"scorepulse/internal/cache"
	"scorepulse/internal/domain"
	"scorepulse/internal/logging"
	"scorepulse/internal/metrics"
	"scorepulse/internal/providers"
	"scorepulse/internal/ratelimit"
	"scorepulse/internal/validate"
)

const defaultTTL = 12 * time.Hour

// Config wires a Service.
type Config struct {
	Validator *validate.Validator
	Limiter   *ratelimit.Limiter
	Cache     *cache.Cache
	Provider  providers.TeamProvider
	Metrics   *metrics.Recorder
	Logger    *slog.Logger
	TTL       time.Duration
}

// Service mediates team-list lookups. Unlike scores there is no degraded
// shape: an upstream failure surfaces as an error.
type Service struct {
	validator *validate.Validator
	limiter   *ratelimit.Limiter
	cache     *cache.Cache
	provider  providers.TeamProvider
	metrics   *metrics.Recorder
	logger    *slog.Logger
	ttl       time.Duration
}

// NewService constructs the mediator.
func NewService(cfg Config) *Service {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{
		validator: cfg.Validator,
		limiter:   cfg.Limiter,
		cache:     cfg.Cache,
		provider:  cfg.Provider,
		metrics:   cfg.Metrics,
		logger:    cfg.Logger,
		ttl:       ttl,
	}
}

// RequestTeams returns the team names available for a sport.
func (s *Service) RequestTeams(ctx context.Context, clientKey, sport string) ([]string, error) {
	cleanSport, err := s.validator.Sport(sport)
	if err != nil {
		return nil, err
	}

	decision := s.limiter.Admit(clientKey, domain.FamilyTeams)
	s.metrics.RecordAdmission(string(domain.FamilyTeams), decision.Allowed, string(decision.Scope))
	if !decision.Allowed {
		return nil, decision.Err()
	}

	key := cache.NewKey(domain.FamilyTeams, cleanSport, "")
	if cached, ok := s.cache.Get(key); ok {
		if names, isList := cached.([]string); isList {
			s.metrics.RecordCacheLookup(string(domain.FamilyTeams), true)
			return copyNames(names), nil
		}
	}
	s.metrics.RecordCacheLookup(string(domain.FamilyTeams), false)

	names, err := s.provider.FetchTeams(ctx, cleanSport)
	if err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "team list fetch failed", err,
			slog.String(logging.FieldSport, cleanSport),
		)
		return nil, err
	}

	s.cache.Put(key, copyNames(names), s.ttl)
	return names, nil
}

// copyNames keeps the cached slice isolated from callers.
func copyNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
