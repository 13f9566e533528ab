package scp

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hyperifyio/scpinfo/internal/extract"
)

// DefaultBaseURL is the article locator prefix; the harmonized id is appended.
const DefaultBaseURL = "http://www.scpwiki.com/scp-"

// Fetcher retrieves a page body. *fetch.Client satisfies it.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, string, error)
}

// Scraper runs the fetch -> extract -> assemble pipeline for one article.
type Scraper struct {
	BaseURL   string
	Fetcher   Fetcher
	Extractor extract.Extractor
}

// URL returns the article locator for a harmonized id.
func (s *Scraper) URL(id string) string {
	base := s.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return base + id
}

// Scrape fetches article n and returns its record. Failures are reported in
// the Result rather than as an error.
func (s *Scraper) Scrape(ctx context.Context, n int) Result {
	id := HarmonizeID(n)
	target := s.URL(id)
	logger := zerolog.Ctx(ctx).With().Str("scp", id).Str("url", target).Logger()

	logger.Debug().Msg("fetching article")
	body, contentType, err := s.Fetcher.Get(ctx, target)
	if err != nil {
		logger.Warn().Err(err).Msg("fetch failed")
		return Result{Err: fmt.Sprintf("Error fetching %s: %s", target, err.Error())}
	}
	logger.Debug().Int("bytes", len(body)).Str("contentType", contentType).Msg("fetched article")

	ex := s.Extractor
	if ex == nil {
		ex = extract.LabelExtractor{}
	}
	doc, err := ex.Extract(body)
	switch {
	case errors.Is(err, extract.ErrContentNotFound):
		logger.Warn().Msg("page content not found")
		return Result{Err: fmt.Sprintf("Could not find page content for SCP-%s", id)}
	case err != nil:
		logger.Warn().Err(err).Msg("extract failed")
		return Result{Err: fmt.Sprintf("Error fetching %s: %s", target, err.Error())}
	}

	res := Assemble(id, doc.Fields)
	logger.Debug().Int("fields", doc.Fields.Len()).Int("moreInfo", res.MoreInfo.Len()).Msg("extracted article")
	return res
}
