// Package details mediates game-detail lookups: resolve the team's current
// primary game with the same selection policy scores use, then fetch and
// normalize its box score, leaders, and scoring plays.
package details

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"scorepulse/internal/app/scores"
	"scorepulse/internal/cache"
	"scorepulse/internal/domain"
	"scorepulse/internal/logging"
	"scorepulse/internal/metrics"
	"scorepulse/internal/providers"
	"scorepulse/internal/ratelimit"
	"scorepulse/internal/teammatch"
	"scorepulse/internal/validate"
)

const defaultTTL = 5 * time.Minute

// ErrNoCurrentGame reports that the lookup window held no game to detail.
// Expected when a team is between games; not an upstream failure.
var ErrNoCurrentGame = errors.New("no recent or upcoming games found")

// Config wires a Service.
type Config struct {
	Validator *validate.Validator
	Limiter   *ratelimit.Limiter
	Cache     *cache.Cache
	Schedule  providers.ScheduleProvider
	Summary   providers.SummaryProvider
	Metrics   *metrics.Recorder
	Logger    *slog.Logger
	Window    providers.Window
	TTL       time.Duration
	Now       func() time.Time
}

// Service mediates detail lookups. There is no degraded shape here: callers
// either get full details, ErrNoCurrentGame, or a typed failure.
type Service struct {
	validator *validate.Validator
	limiter   *ratelimit.Limiter
	cache     *cache.Cache
	schedule  providers.ScheduleProvider
	summary   providers.SummaryProvider
	metrics   *metrics.Recorder
	logger    *slog.Logger
	window    providers.Window
	ttl       time.Duration
	now       func() time.Time
}

// NewService constructs the mediator.
func NewService(cfg Config) *Service {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		validator: cfg.Validator,
		limiter:   cfg.Limiter,
		cache:     cfg.Cache,
		schedule:  cfg.Schedule,
		summary:   cfg.Summary,
		metrics:   cfg.Metrics,
		logger:    cfg.Logger,
		window:    cfg.Window,
		ttl:       ttl,
		now:       now,
	}
}

// RequestDetails resolves the team's current primary game and returns its
// expanded view, oriented so Team is the requested side.
func (s *Service) RequestDetails(ctx context.Context, clientKey, sport, team string) (domain.GameDetails, error) {
	in, err := s.validator.SportTeam(sport, team)
	if err != nil {
		return domain.GameDetails{}, err
	}

	decision := s.limiter.Admit(clientKey, domain.FamilyDetails)
	s.metrics.RecordAdmission(string(domain.FamilyDetails), decision.Allowed, string(decision.Scope))
	if !decision.Allowed {
		return domain.GameDetails{}, decision.Err()
	}

	key := cache.NewKey(domain.FamilyDetails, in.Sport, in.Team)
	if cached, ok := s.cache.Get(key); ok {
		if details, isDetails := cached.(domain.GameDetails); isDetails {
			s.metrics.RecordCacheLookup(string(domain.FamilyDetails), true)
			return cloneDetails(details), nil
		}
	}
	s.metrics.RecordCacheLookup(string(domain.FamilyDetails), false)

	games, err := s.schedule.FetchTeamSchedule(ctx, in.Sport, in.Team, s.window)
	if err != nil {
		s.logFailure(ctx, "schedule lookup failed", err, in)
		return domain.GameDetails{}, err
	}

	primary, _, ok := scores.Select(games)
	if !ok || primary.ID == "" {
		return domain.GameDetails{}, ErrNoCurrentGame
	}

	details, err := s.summary.FetchGameSummary(ctx, in.Sport, primary.ID)
	if err != nil {
		s.logFailure(ctx, "summary lookup failed", err, in)
		return domain.GameDetails{}, err
	}

	orientToTeam(&details, in.Team)
	details.LastUpdated = s.now()

	s.cache.Put(key, cloneDetails(details), s.ttl)
	return details, nil
}

func (s *Service) logFailure(ctx context.Context, msg string, err error, in validate.Inputs) {
	logging.Error(logging.FromContext(ctx, s.logger), msg, err,
		slog.String(logging.FieldSport, in.Sport),
		slog.String(logging.FieldTeam, in.Team),
	)
}

// orientToTeam flips Team/Opponent when the summary's home-first orientation
// put the requested team on the opponent side.
func orientToTeam(details *domain.GameDetails, team string) {
	if teammatch.Matches(team, details.Team) {
		return
	}
	if teammatch.Matches(team, details.Opponent) {
		details.Team, details.Opponent = details.Opponent, details.Team
	}
}

// cloneDetails deep-copies the slices and maps a GameDetails carries so the
// cached record stays isolated from callers.
func cloneDetails(details domain.GameDetails) domain.GameDetails {
	if details.Teams != nil {
		teams := make([]domain.TeamDetail, len(details.Teams))
		for i, td := range details.Teams {
			if td.Linescores != nil {
				scores := make([]string, len(td.Linescores))
				copy(scores, td.Linescores)
				td.Linescores = scores
			}
			if td.Statistics != nil {
				stats := make(map[string]string, len(td.Statistics))
				for k, v := range td.Statistics {
					stats[k] = v
				}
				td.Statistics = stats
			}
			teams[i] = td
		}
		details.Teams = teams
	}
	if details.Leaders != nil {
		leaders := make([]domain.StatLeader, len(details.Leaders))
		copy(leaders, details.Leaders)
		details.Leaders = leaders
	}
	if details.ScoringPlays != nil {
		plays := make([]domain.ScoringPlay, len(details.ScoringPlays))
		copy(plays, details.ScoringPlays)
		details.ScoringPlays = plays
	}
	return details
}
