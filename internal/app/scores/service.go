// Package scores implements the score-refresh mediator. It stands between the
// widgets and the upstream schedule source: validating input, applying
// admission control, serving repeat lookups from the response cache, and
// folding the upstream's candidate games into the GameState widgets render.
package scores

import (
	"context"
	"errors"
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

const (
	defaultTTL = 5 * time.Minute

	noGamesOpponent = "No games found"
	noGamesStatus   = "No upcoming games"
	errorStatusText = "Score temporarily unavailable"
	venueTBD        = "TBD"
	blankField      = "-"
)

// Config wires a Service.
type Config struct {
	Validator *validate.Validator
	Limiter   *ratelimit.Limiter
	Cache     *cache.Cache
	Provider  providers.ScheduleProvider
	Metrics   *metrics.Recorder
	Logger    *slog.Logger
	Window    providers.Window
	TTL       time.Duration
	Timezone  string
	Now       func() time.Time
}

// Service mediates widget score lookups. Validation and admission failures
// are terminal errors; upstream failures degrade to an Error-kind GameState
// so callers always have something renderable.
type Service struct {
	validator *validate.Validator
	limiter   *ratelimit.Limiter
	cache     *cache.Cache
	provider  providers.ScheduleProvider
	metrics   *metrics.Recorder
	logger    *slog.Logger
	window    providers.Window
	ttl       time.Duration
	loc       *time.Location
	now       func() time.Time
}

// NewService constructs the mediator.
func NewService(cfg Config) *Service {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	loc := providers.ResolveTimezone(cfg.Timezone)
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		validator: cfg.Validator,
		limiter:   cfg.Limiter,
		cache:     cfg.Cache,
		provider:  cfg.Provider,
		metrics:   cfg.Metrics,
		logger:    cfg.Logger,
		window:    cfg.Window,
		ttl:       ttl,
		loc:       loc,
		now:       now,
	}
}

// RequestScore resolves the most relevant game for (sport, team) into a
// renderable GameState. Errors are limited to validation failures, denied
// admissions, unsupported sports, and caller cancellation; upstream failures
// come back as a GameState with StatusKind Error.
func (s *Service) RequestScore(ctx context.Context, clientKey, sport, team string) (domain.GameState, error) {
	in, err := s.validator.SportTeam(sport, team)
	if err != nil {
		return domain.GameState{}, err
	}

	decision := s.limiter.Admit(clientKey, domain.FamilyScores)
	s.metrics.RecordAdmission(string(domain.FamilyScores), decision.Allowed, string(decision.Scope))
	if !decision.Allowed {
		return domain.GameState{}, decision.Err()
	}

	key := cache.NewKey(domain.FamilyScores, in.Sport, in.Team)
	if cached, ok := s.cache.Get(key); ok {
		if state, isState := cached.(domain.GameState); isState {
			s.metrics.RecordCacheLookup(string(domain.FamilyScores), true)
			return cloneState(state), nil
		}
	}
	s.metrics.RecordCacheLookup(string(domain.FamilyScores), false)

	games, err := s.provider.FetchTeamSchedule(ctx, in.Sport, in.Team, s.window)
	if err != nil {
		if errors.Is(err, providers.ErrUnsupportedSport) {
			return domain.GameState{}, err
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return domain.GameState{}, err
		}
		logging.Error(logging.FromContext(ctx, s.logger), "score lookup degraded", err,
			slog.String(logging.FieldSport, in.Sport),
			slog.String(logging.FieldTeam, in.Team),
		)
		return s.errorState(in.Team), nil
	}

	logging.Debug(logging.FromContext(ctx, s.logger), "schedule fetched",
		slog.String(logging.FieldSport, in.Sport),
		slog.String(logging.FieldTeam, in.Team),
		slog.Int(logging.FieldCount, len(games)),
	)

	state := s.compose(in.Team, games)
	s.cache.Put(key, state, s.ttl)
	return cloneState(state), nil
}

// compose folds the candidate games into a GameState, or the no-games
// sentinel when the window is empty.
func (s *Service) compose(team string, games []domain.Game) domain.GameState {
	primary, next, ok := Select(games)
	if !ok {
		return s.noGamesState(team)
	}

	state := domain.GameState{
		Team:          primary.Team,
		Opponent:      primary.Opponent,
		TeamScore:     primary.TeamScore,
		OpponentScore: primary.OpponentScore,
		StatusKind:    primary.Kind,
		StatusText:    primary.StatusText,
		Venue:         orDefault(primary.Venue, venueTBD),
		LastUpdated:   s.now(),
	}
	if !primary.StartTime.IsZero() {
		state.GameTimeISO = primary.StartTime.In(s.loc).Format(time.RFC3339)
	}
	if next != nil {
		state.NextGame = &domain.NextGame{
			Opponent:    next.Opponent,
			GameTimeISO: next.StartTime.In(s.loc).Format(time.RFC3339),
			Venue:       orDefault(next.Venue, venueTBD),
		}
	}
	return state
}

// noGamesState is the sentinel for an empty lookup window: a valid, expected
// outcome rather than an error.
func (s *Service) noGamesState(team string) domain.GameState {
	return domain.GameState{
		Team:          team,
		Opponent:      noGamesOpponent,
		TeamScore:     blankField,
		OpponentScore: blankField,
		StatusKind:    domain.StatusNoGames,
		StatusText:    noGamesStatus,
		Venue:         blankField,
		LastUpdated:   s.now(),
	}
}

// errorState is the degraded GameState returned when the upstream is down:
// still renderable, never cached.
func (s *Service) errorState(team string) domain.GameState {
	return domain.GameState{
		Team:          team,
		Opponent:      blankField,
		TeamScore:     blankField,
		OpponentScore: blankField,
		StatusKind:    domain.StatusError,
		StatusText:    errorStatusText,
		Venue:         blankField,
		LastUpdated:   s.now(),
	}
}

// cloneState returns a copy that shares nothing with the cached record, so a
// caller mutating the result cannot corrupt what other widgets see.
func cloneState(state domain.GameState) domain.GameState {
	if state.NextGame != nil {
		next := *state.NextGame
		state.NextGame = &next
	}
	return state
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
