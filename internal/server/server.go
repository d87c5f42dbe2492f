package server

import (
	"context"
	"log/slog"
	"net/http"

	"scorepulse/internal/app/details"
	"scorepulse/internal/app/scores"
	"scorepulse/internal/app/teams"
	"scorepulse/internal/cache"
	"scorepulse/internal/config"
	"scorepulse/internal/domain"
	"scorepulse/internal/health"
	httpapi "scorepulse/internal/http"
	"scorepulse/internal/http/handlers"
	"scorepulse/internal/metrics"
	"scorepulse/internal/providers"
	"scorepulse/internal/ratelimit"
	"scorepulse/internal/validate"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	health         *health.Tracker
	scoresService  *scores.Service
	teamsService   *teams.Service
	detailsService *details.Service
	httpServer     httpServer
	metricsServer  httpServer
	metricsStop    func(context.Context) error
}

// New constructs a server around the configured provider, wrapped in the
// standard retry and measurement decorators.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	tracker := health.NewTracker(0)

	factory := newProviderFactory(logger, recorder, tracker)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	scoresSvc, teamsSvc, detailsSvc := buildServices(cfg, logger, recorder, provider)
	httpSrv := buildHTTPServer(cfg, logger, recorder, tracker, scoresSvc, teamsSvc, detailsSvc)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		health:         tracker,
		scoresService:  scoresSvc,
		teamsService:   teamsSvc,
		detailsService: detailsSvc,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		metricsStop:    metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

// buildServices wires the three lookup mediators around one shared cache,
// limiter, and validator so the global admission buckets actually span all
// request families.
func buildServices(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, provider providers.DataProvider) (*scores.Service, *teams.Service, *details.Service) {
	validator := validate.New(logger)
	limiter := ratelimit.New(ratelimit.Limits{
		PerMinute: map[domain.Family]int{
			domain.FamilyScores:  cfg.RateLimit.ScoresPerMinute,
			domain.FamilyTeams:   cfg.RateLimit.TeamsPerMinute,
			domain.FamilyDetails: cfg.RateLimit.DetailsPerMinute,
		},
		GlobalPerHour: cfg.RateLimit.GlobalPerHour,
		GlobalPerDay:  cfg.RateLimit.GlobalPerDay,
	})
	store := cache.NewWithRecorder(cfg.Cache.Capacity, recorder)

	scoresSvc := scores.NewService(scores.Config{
		Validator: validator,
		Limiter:   limiter,
		Cache:     store,
		Provider:  provider,
		Metrics:   recorder,
		Logger:    logger,
		Window:    providers.Window{DaysBack: cfg.Lookup.ScoresDaysBack, DaysAhead: cfg.Lookup.ScoresDaysAhead},
		TTL:       cfg.Cache.ScoresTTL,
		Timezone:  cfg.Espn.Timezone,
	})
	teamsSvc := teams.NewService(teams.Config{
		Validator: validator,
		Limiter:   limiter,
		Cache:     store,
		Provider:  provider,
		Metrics:   recorder,
		Logger:    logger,
		TTL:       cfg.Cache.TeamsTTL,
	})
	detailsSvc := details.NewService(details.Config{
		Validator: validator,
		Limiter:   limiter,
		Cache:     store,
		Schedule:  provider,
		Summary:   provider,
		Metrics:   recorder,
		Logger:    logger,
		Window:    providers.Window{DaysBack: cfg.Lookup.DetailsDaysBack, DaysAhead: cfg.Lookup.DetailsDaysAhead},
		TTL:       cfg.Cache.DetailsTTL,
	})
	return scoresSvc, teamsSvc, detailsSvc
}

func buildHTTPServer(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, tracker *health.Tracker, scoresSvc *scores.Service, teamsSvc *teams.Service, detailsSvc *details.Service) httpServer {
	h := handlers.NewHandler(scoresSvc, teamsSvc, detailsSvc, tracker, logger)
	router := httpapi.NewRouter(h, logger, recorder, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the app and metrics servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.Otlp.ServiceName,
		OtlpEndpoint: cfg.Metrics.Otlp.Endpoint,
		OtlpInsecure: cfg.Metrics.Otlp.Insecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
