package extract

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"github.com/heartmarshall/synonymer/internal/domain"
)

// PageFetcher retrieves a page without failing on HTTP error statuses.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (domain.RawPage, error)
}

// Endpoint is one URL shape of a source together with the cascade that
// understands its markup.
type Endpoint struct {
	Name    string
	BaseURL string
	// PathPrefix is joined with the escaped, lowercased word.
	PathPrefix string
	Cascade    Cascade
}

// URL builds the request URL for word.
func (e Endpoint) URL(word string) string {
	return strings.TrimRight(e.BaseURL, "/") + e.PathPrefix + url.PathEscape(domain.NormalizeWord(word))
}

// Scrape fetches word from e and extracts synonyms. Only transport failures
// are returned as errors; bad statuses, unusable markup and request build
// failures are logged and yield an empty result.
func Scrape(ctx context.Context, f PageFetcher, e Endpoint, word string, log *slog.Logger) ([]string, error) {
	reqURL := e.URL(word)
	log.DebugContext(ctx, "source request",
		slog.String("source", e.Name),
		slog.String("url", reqURL),
	)

	page, err := f.Fetch(ctx, reqURL)
	if err != nil {
		log.ErrorContext(ctx, "source request failed",
			slog.String("source", e.Name),
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		if errors.Is(err, domain.ErrNetwork) {
			return []string{}, err
		}
		return []string{}, nil
	}

	if !page.OK() {
		log.WarnContext(ctx, "source returned non-200 status",
			slog.String("source", e.Name),
			slog.String("word", word),
			slog.Int("status", page.Status),
		)
		return []string{}, nil
	}

	synonyms := e.Cascade.Extract(word, page.Body)
	if len(synonyms) == 0 {
		log.InfoContext(ctx, "no synonyms found in page",
			slog.String("source", e.Name),
			slog.String("word", word),
		)
		return synonyms, nil
	}

	log.DebugContext(ctx, "source synonyms extracted",
		slog.String("source", e.Name),
		slog.String("word", word),
		slog.Int("count", len(synonyms)),
	)
	return synonyms, nil
}

// ScrapeEach tries endpoints in order and returns the first non-empty result.
// An error is returned only when every endpoint failed at the transport level.
func ScrapeEach(ctx context.Context, f PageFetcher, endpoints []Endpoint, word string, log *slog.Logger) ([]string, error) {
	var errs []error
	for _, e := range endpoints {
		synonyms, err := Scrape(ctx, f, e, word, log)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if len(synonyms) > 0 {
			return synonyms, nil
		}
	}
	if len(endpoints) > 0 && len(errs) == len(endpoints) {
		return []string{}, errors.Join(errs...)
	}
	return []string{}, nil
}
