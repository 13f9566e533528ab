package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/scpinfo/internal/extract"
	"github.com/hyperifyio/scpinfo/internal/fetch"
	"github.com/hyperifyio/scpinfo/internal/scp"
	"github.com/hyperifyio/scpinfo/internal/server"
)

type App struct {
	cfg     Config
	scraper *scp.Scraper
}

// New validates cfg and wires the fetcher, extractor and scraper.
func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	client := &fetch.Client{
		HTTPClient:        newUpstreamHTTPClient(cfg.FetchTimeout),
		UserAgent:         cfg.UserAgent,
		PerRequestTimeout: cfg.FetchTimeout,
		RedirectMaxHops:   cfg.RedirectMaxHops,
	}
	a := &App{
		cfg: cfg,
		scraper: &scp.Scraper{
			BaseURL:   cfg.BaseURL,
			Fetcher:   client,
			Extractor: extract.LabelExtractor{},
		},
	}
	log.Debug().
		Str("baseURL", cfg.BaseURL).
		Dur("timeout", cfg.FetchTimeout).
		Int("redirectMaxHops", cfg.RedirectMaxHops).
		Msg("app configured")
	return a, nil
}

// Lookup validates a raw id and scrapes it. Only invalid input is an error.
func (a *App) Lookup(ctx context.Context, raw string) (scp.Result, error) {
	n, err := scp.ParseID(raw)
	if err != nil {
		return scp.Result{}, err
	}
	return a.scraper.Scrape(log.Logger.WithContext(ctx), n), nil
}

// Serve runs the HTTP API until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	srv, err := server.New(server.Config{
		Addr:    a.cfg.Addr,
		Scraper: a.scraper,
		Logger:  log.Logger,
		Version: BuildVersion,
	})
	if err != nil {
		return fmt.Errorf("init server: %w", err)
	}
	return srv.Start(ctx)
}
