// Package handlers wires HTTP routes to the mediator services.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"scorepulse/internal/app/details"
	"scorepulse/internal/app/scores"
	"scorepulse/internal/app/teams"
	"scorepulse/internal/health"
	"scorepulse/internal/http/requestutil"
	"scorepulse/internal/providers"
	"scorepulse/internal/ratelimit"
	"scorepulse/internal/validate"
)

// Handler exposes the widget-facing endpoints backed by the mediators.
type Handler struct {
	scores  *scores.Service
	teams   *teams.Service
	details *details.Service
	health  *health.Tracker
	logger  *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(scoresSvc *scores.Service, teamsSvc *teams.Service, detailsSvc *details.Service, tracker *health.Tracker, logger *slog.Logger) *Handler {
	return &Handler{
		scores:  scoresSvc,
		teams:   teamsSvc,
		details: detailsSvc,
		health:  tracker,
		logger:  logger,
	}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, loggerFromContext(r, h.logger))
}

type readyResponse struct {
	Status   string        `json:"status"`
	Upstream health.Status `json:"upstream"`
}

// Ready reports readiness based on recent upstream fetch outcomes.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	status := h.health.Status()
	if h.health.IsReady() {
		writeJSON(w, http.StatusOK, readyResponse{Status: "ready", Upstream: status}, logger)
		return
	}
	writeJSON(w, http.StatusServiceUnavailable, readyResponse{Status: "unavailable", Upstream: status}, logger)
}

// Scores serves GET /api/scores/{sport}/{team}. Upstream failures arrive from
// the mediator already degraded to a renderable Error-kind GameState, so a
// reachable service answers 200 for every admitted, valid request.
func (h *Handler) Scores(w http.ResponseWriter, r *http.Request) {
	sport := chi.URLParam(r, "sport")
	team := chi.URLParam(r, "team")

	state, err := h.scores.RequestScore(r.Context(), requestutil.ClientKey(r), sport, team)
	if err != nil {
		h.writeLookupError(w, r, err, http.StatusInternalServerError, "score temporarily unavailable")
		return
	}
	writeJSON(w, http.StatusOK, state, loggerFromContext(r, h.logger))
}

type teamsResponse struct {
	Sport string   `json:"sport"`
	Teams []string `json:"teams"`
}

// Teams serves GET /api/teams/{sport}.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	sport := chi.URLParam(r, "sport")

	names, err := h.teams.RequestTeams(r.Context(), requestutil.ClientKey(r), sport)
	if err != nil {
		h.writeLookupError(w, r, err, http.StatusServiceUnavailable, "team list temporarily unavailable")
		return
	}
	writeJSON(w, http.StatusOK, teamsResponse{Sport: canonicalSport(sport), Teams: names}, loggerFromContext(r, h.logger))
}

// GameDetails serves GET /api/game-details/{sport}/{team}.
func (h *Handler) GameDetails(w http.ResponseWriter, r *http.Request) {
	sport := chi.URLParam(r, "sport")
	team := chi.URLParam(r, "team")

	detail, err := h.details.RequestDetails(r.Context(), requestutil.ClientKey(r), sport, team)
	if err != nil {
		if errors.Is(err, details.ErrNoCurrentGame) {
			writeError(w, r, http.StatusNotFound, "no recent or upcoming games found", h.logger)
			return
		}
		h.writeLookupError(w, r, err, http.StatusBadGateway, "game details temporarily unavailable")
		return
	}
	writeJSON(w, http.StatusOK, detail, loggerFromContext(r, h.logger))
}

// writeLookupError maps the shared mediator error taxonomy onto HTTP statuses.
// upstreamStatus and upstreamMessage cover errors outside the taxonomy, which
// for teams and details means an exhausted upstream.
func (h *Handler) writeLookupError(w http.ResponseWriter, r *http.Request, err error, upstreamStatus int, upstreamMessage string) {
	var vErr *validate.Error
	if errors.As(err, &vErr) {
		writeError(w, r, http.StatusBadRequest, invalidParamMessage(vErr), h.logger)
		return
	}
	if rlErr, ok := ratelimit.AsError(err); ok {
		writeRateLimited(w, r, rlErr, h.logger)
		return
	}
	if errors.Is(err, providers.ErrUnsupportedSport) {
		writeError(w, r, http.StatusBadRequest, "unsupported sport", h.logger)
		return
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// Caller is gone or the request timed out; the timeout middleware
		// owns the response in the latter case.
		return
	}
	writeError(w, r, upstreamStatus, upstreamMessage, h.logger)
}

// invalidParamMessage names only the rejected field. The offending value stays
// in server-side logs.
func invalidParamMessage(vErr *validate.Error) string {
	if vErr == nil || vErr.Field == "" {
		return "invalid parameter"
	}
	return "invalid " + vErr.Field + " parameter"
}

// canonicalSport normalizes an already-validated sport path segment for
// echoing in responses.
func canonicalSport(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = raw
	}
	return strings.ToLower(strings.TrimSpace(decoded))
}
