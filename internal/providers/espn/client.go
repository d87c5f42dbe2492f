package espn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"scorepulse/internal/domain"
	"scorepulse/internal/providers"
	"scorepulse/internal/timeutil"
)

// Config controls how the client reaches the upstream site API.
type Config struct {
	BaseURL           string
	UserAgent         string
	HTTPClient        *http.Client
	Timezone          string
	ScoreboardTimeout time.Duration
	ThrottleRPS       float64
	ThrottleBurst     int
	Logger            *slog.Logger
}

// Client fetches scoreboards, team lists, and game summaries from the
// upstream site API and maps them to domain models. Schedule lookups bucket
// days in the configured timezone, matching how the upstream publishes
// scoreboards.
type Client struct {
	baseURL           string
	userAgent         string
	httpClient        httpDoer
	limiter           *rate.Limiter
	logger            *slog.Logger
	now               func() time.Time
	loc               *time.Location
	scoreboardTimeout time.Duration
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:           normalizeBaseURL(cfg.BaseURL),
		userAgent:         resolveUserAgent(cfg.UserAgent),
		httpClient:        resolveHTTPClient(cfg.HTTPClient),
		limiter:           resolveLimiter(cfg.ThrottleRPS, cfg.ThrottleBurst),
		logger:            cfg.Logger,
		now:               time.Now,
		loc:               resolveLocation(cfg.Timezone),
		scoreboardTimeout: resolveScoreboardTimeout(cfg.ScoreboardTimeout),
	}
}

// FetchTeamSchedule scans the scoreboard for each day in the window and
// returns the games involving the given team, ordered by start time. Days are
// fetched concurrently; individual day failures are tolerated as long as at
// least one day succeeds.
func (c *Client) FetchTeamSchedule(ctx context.Context, sport, team string, window providers.Window) ([]domain.Game, error) {
	league, err := LeaguePath(sport)
	if err != nil {
		return nil, err
	}

	back := window.DaysBack
	if back < 0 {
		back = 0
	}
	days := window.Days()
	now := c.now().In(c.loc)

	type dayResult struct {
		games []domain.Game
		err   error
	}
	results := make([]dayResult, days)

	var g errgroup.Group
	for i := 0; i < days; i++ {
		i := i
		date := now.AddDate(0, 0, i-back)
		g.Go(func() error {
			games, fetchErr := c.fetchDayGames(ctx, league, team, date)
			if fetchErr != nil {
				providers.LogWithProvider(ctx, c.logger, slog.LevelWarn, providerName,
					"scoreboard day fetch failed",
					"date", timeutil.FormatCompactDate(date),
					"err", fetchErr,
				)
			}
			results[i] = dayResult{games: games, err: fetchErr}
			return nil
		})
	}
	_ = g.Wait()

	games := make([]domain.Game, 0, 2)
	failed := 0
	var firstErr error
	for _, res := range results {
		if res.err != nil {
			failed++
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		games = append(games, res.games...)
	}
	// Partial day failures are tolerated; the lookup only fails when every
	// day in the window failed.
	if failed == days {
		return nil, firstErr
	}

	sort.Slice(games, func(i, j int) bool { return games[i].StartTime.Before(games[j].StartTime) })
	return games, nil
}

// FetchTeams returns the display names of every team in the sport's league,
// sorted alphabetically.
func (c *Client) FetchTeams(ctx context.Context, sport string) ([]string, error) {
	league, err := LeaguePath(sport)
	if err != nil {
		return nil, err
	}

	var payload teamsResponse
	if err := c.getJSON(ctx, c.baseURL+"/"+league+"/teams", 0, &payload); err != nil {
		return nil, err
	}

	names := make([]string, 0, 32)
	for _, sportEntry := range payload.Sports {
		for _, leagueEntry := range sportEntry.Leagues {
			for _, entry := range leagueEntry.Teams {
				if name := strings.TrimSpace(entry.Team.DisplayName); name != "" {
					names = append(names, name)
				}
			}
		}
	}
	if len(names) == 0 {
		return nil, &providers.UpstreamError{
			Kind:     providers.KindBadResponse,
			Provider: providerName,
			Err:      errors.New("no teams in response"),
		}
	}
	sort.Strings(names)
	return names, nil
}

// FetchGameSummary retrieves the expanded view of a single game. Team and
// Opponent are oriented home-first; callers reorder for the requesting team.
func (c *Client) FetchGameSummary(ctx context.Context, sport, gameID string) (domain.GameDetails, error) {
	league, err := LeaguePath(sport)
	if err != nil {
		return domain.GameDetails{}, err
	}
	if strings.TrimSpace(gameID) == "" {
		return domain.GameDetails{}, &providers.UpstreamError{
			Kind:     providers.KindBadResponse,
			Provider: providerName,
			Err:      errors.New("missing game id"),
		}
	}

	endpoint := c.baseURL + "/" + league + "/summary?event=" + url.QueryEscape(gameID)
	var payload summaryResponse
	if err := c.getJSON(ctx, endpoint, 0, &payload); err != nil {
		return domain.GameDetails{}, err
	}
	return mapSummary(gameID, payload, c.loc), nil
}

func (c *Client) fetchDayGames(ctx context.Context, league, team string, date time.Time) ([]domain.Game, error) {
	endpoint := c.baseURL + "/" + league + "/scoreboard?dates=" + timeutil.FormatCompactDate(date)
	var payload scoreboardResponse
	if err := c.getJSON(ctx, endpoint, c.scoreboardTimeout, &payload); err != nil {
		return nil, err
	}
	return matchTeamGames(payload.Events, team, c.loc), nil
}

// getJSON performs a paced GET against the upstream and decodes the body.
// Failures are classified into typed upstream errors.
func (c *Client) getJSON(ctx context.Context, endpoint string, timeout time.Duration, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return &providers.UpstreamError{Kind: providers.KindTimeout, Provider: providerName, Err: err}
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &providers.UpstreamError{Kind: providers.KindBadResponse, Provider: providerName, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return classifyStatus(resp)
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		return &providers.UpstreamError{Kind: providers.KindBadResponse, Provider: providerName, Err: decodeErr}
	}
	return nil
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	kind := providers.KindUnreachable
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = providers.KindTimeout
	}
	return &providers.UpstreamError{Kind: kind, Provider: providerName, Err: err}
}

func classifyStatus(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(body))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    msg,
		}
	case resp.StatusCode >= 500:
		return &providers.UpstreamError{
			Kind:     providers.KindUnreachable,
			Provider: providerName,
			Err:      fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg),
		}
	default:
		return &providers.UpstreamError{
			Kind:     providers.KindBadResponse,
			Provider: providerName,
			Err:      fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg),
		}
	}
}

func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
