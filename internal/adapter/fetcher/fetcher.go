// Package fetcher performs the HTTP GET requests the synonym sources depend on.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/synonymer/internal/domain"
)

const (
	// DefaultUserAgent identifies the plugin to the scraped sites.
	DefaultUserAgent = "Mozilla/5.0 (compatible; ObsidianSynonymPlugin/1.0)"
	defaultTimeout   = 10 * time.Second
	maxBodyBytes     = 4 << 20
)

// Config holds fetcher settings.
type Config struct {
	Timeout   time.Duration
	UserAgent string
}

// Fetcher issues GET requests and returns status and body without treating
// HTTP error statuses as failures.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	log        *slog.Logger
}

// New creates a Fetcher. Zero config values fall back to defaults.
func New(cfg Config, logger *slog.Logger) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
		log:        logger.With("adapter", "fetcher"),
	}
}

// Fetch performs a GET for rawURL. A non-2xx status is returned as a normal
// RawPage. Transport failures are returned as *domain.NetworkError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (domain.RawPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domain.RawPage{}, fmt.Errorf("fetcher: create request: %w", err)
	}
	req.Header.Set("Accept", "text/html")
	req.Header.Set("User-Agent", f.userAgent)

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return domain.RawPage{}, &domain.NetworkError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.RawPage{}, &domain.NetworkError{URL: rawURL, Err: fmt.Errorf("read body: %w", err)}
	}

	f.log.DebugContext(ctx, "fetch complete",
		slog.String("url", rawURL),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
		slog.Duration("duration", time.Since(start)),
	)

	return domain.RawPage{Status: resp.StatusCode, Body: string(body)}, nil
}
