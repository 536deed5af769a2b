// Package server wires configuration, the ESPN provider, the synthesizer,
// and the HTTP surface into a runnable service.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"fantasy-recap-service/internal/app/recaps"
	"fantasy-recap-service/internal/audio"
	"fantasy-recap-service/internal/config"
	httpserver "fantasy-recap-service/internal/http"
	"fantasy-recap-service/internal/http/handlers"
	"fantasy-recap-service/internal/http/middleware"
	"fantasy-recap-service/internal/logging"
	"fantasy-recap-service/internal/metrics"
	"fantasy-recap-service/internal/providers"
	"fantasy-recap-service/internal/providers/espn"
	"fantasy-recap-service/internal/tts"
	"fantasy-recap-service/internal/tts/gtranslate"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	service       *recaps.Service
	store         *audio.Store
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the default ESPN provider and Translate TTS
// synthesizer. cfg must have passed Validate.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithDeps(cfg, logger, nil, nil)
}

// newServerWithDeps lets tests inject a provider and synthesizer.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, provider providers.LeagueProvider, synth tts.Synthesizer) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = buildProvider(cfg, logger, recorder)
	}
	if synth == nil {
		synth = gtranslate.NewSynthesizer(gtranslate.Config{
			BaseURL:  cfg.TTS.BaseURL,
			Language: cfg.TTS.Language,
		})
	}

	store := audio.NewStore(cfg.AudioDir)
	service := recaps.NewService(provider, synth, store, logger, recorder)
	httpSrv := buildHTTPServer(cfg, service, store, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		service:       service,
		store:         store,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.LeagueProvider {
	leagueID, _ := cfg.ESPN.LeagueIDInt()
	client := espn.NewClient(espn.Config{
		BaseURL:  cfg.ESPN.BaseURL,
		LeagueID: leagueID,
		ESPNS2:   cfg.ESPN.ESPNS2,
		SWID:     cfg.ESPN.SWID,
	})
	return providers.NewRetryingProvider(client, logger, recorder, "espn",
		cfg.Provider.MaxRetries, cfg.Provider.RetryInterval)
}

func buildHTTPServer(cfg config.Config, service *recaps.Service, store *audio.Store, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(service, store, logger, cfg.WebDir)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP server and waits for context cancellation to shut down
// gracefully.
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

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
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
