package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goarticle/internal/extract"
	"github.com/hyperifyio/goarticle/internal/fetch"
)

// Record is the assembled result of one scrape call, immutable once built.
// Success is always true when a record exists at all: extraction falls back
// to field defaults instead of failing, so only validation and fetch errors
// prevent assembly.
type Record struct {
	URL           string `json:"url" yaml:"url"`
	Title         string `json:"title" yaml:"title"`
	Content       string `json:"content" yaml:"content"`
	Author        string `json:"author" yaml:"author"`
	ContentLength int    `json:"content_length" yaml:"content_length"`
	StatusCode    int    `json:"status_code" yaml:"status_code"`
	Success       bool   `json:"success" yaml:"success"`
}

// Scraper ties the fetch client to the extraction cascade. Instances hold no
// mutable state between calls; concurrent Scrape calls are safe.
type Scraper struct {
	cfg    Config
	client *fetch.Client
}

func New(cfg Config) *Scraper {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	return &Scraper{
		cfg:    cfg,
		client: &fetch.Client{UserAgent: cfg.UserAgent, Timeout: cfg.Timeout},
	}
}

// Scrape fetches one article URL, runs the field extractors against the
// parsed page, and assembles the record. Errors occur only before
// extraction: ErrInvalidURL for malformed input, *TransportError for fetch
// failures, and a wrapped unexpected failure otherwise.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (Record, error) {
	if !validURL(rawURL) {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	log.Info().Str("url", rawURL).Msg("fetching article")
	body, status, err := s.client.Get(ctx, rawURL)
	if err != nil {
		return Record{}, s.transportError(rawURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		// The parser is best-effort and tolerates malformed markup, so any
		// failure here is outside the anticipated taxonomy.
		return Record{}, fmt.Errorf("unexpected failure: parse document: %w", err)
	}

	title := extract.Title(doc)
	content := extract.Content(doc)
	author := extract.Author(doc)

	rec := Record{
		URL:           rawURL,
		Title:         title.Value,
		Content:       content.Value,
		Author:        author.Value,
		ContentLength: utf8.RuneCountInString(content.Value),
		StatusCode:    status,
		Success:       true,
	}
	log.Info().
		Str("title", truncate(rec.Title, 50)).
		Int("chars", rec.ContentLength).
		Msg("article scraped")
	return rec, nil
}

// validURL requires both a scheme and a network location, mirroring the
// pre-fetch gate: anything else is rejected without touching the network.
func validURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// transportError maps a fetch failure to the uniform transport kind with a
// cause description. The timeout message carries the configured timeout so
// operators can see what bound was hit.
func (s *Scraper) transportError(rawURL string, err error) error {
	var ne net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()):
		return &TransportError{Cause: fmt.Sprintf("request timeout after %s", s.cfg.Timeout), Err: err}
	case isConnectionError(err):
		return &TransportError{Cause: fmt.Sprintf("connection error while accessing %s", rawURL), Err: err}
	default:
		return &TransportError{Cause: fmt.Sprintf("request failed: %v", err), Err: err}
	}
}

func isConnectionError(err error) bool {
	var oe *net.OpError
	return errors.As(err, &oe)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// Back up to a rune boundary so the log field stays valid UTF-8.
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
