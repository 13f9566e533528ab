package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/hyperifyio/scpinfo/internal/scp"
)

// Scraper runs the article pipeline. *scp.Scraper satisfies it.
type Scraper interface {
	Scrape(ctx context.Context, n int) scp.Result
}

// Config holds server configuration.
type Config struct {
	// Addr is the listen address (default: ":8080")
	Addr    string
	Scraper Scraper
	Logger  zerolog.Logger
	// Version is reported by /healthz.
	Version string
}

// Server is the scpinfo HTTP API.
type Server struct {
	httpServer *http.Server
	logger     zerolog.Logger
}

// New builds the server and its routes. It does not start listening.
func New(cfg Config) (*Server, error) {
	if cfg.Scraper == nil {
		return nil, errors.New("server: scraper is required")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	s := &Server{logger: cfg.Logger}
	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      Handler(cfg),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s, nil
}

// Handler returns the routed and instrumented handler without a listener,
// for embedding and tests.
func Handler(cfg Config) http.Handler {
	mux := http.NewServeMux()
	scrape := &scrapeEndpoint{scraper: cfg.Scraper}
	mux.Handle("GET /api/scp", scrape)
	// Root alias for single-function deployments.
	mux.Handle("GET /{$}", scrape)
	mux.Handle("GET /healthz", &healthEndpoint{version: cfg.Version})
	return withLogging(cfg.Logger, mux)
}

func withLogging(logger zerolog.Logger, next http.Handler) http.Handler {
	h := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(next)
	h = hlog.RequestIDHandler("req_id", "X-Request-Id")(h)
	return hlog.NewHandler(logger)(h)
}

// Start listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("starting HTTP server")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info().Msg("server stopped")
	return nil
}
