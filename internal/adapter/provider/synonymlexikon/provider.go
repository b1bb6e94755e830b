// Package synonymlexikon scrapes synonymlexikon.se.
package synonymlexikon

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/synonymer/internal/adapter/provider/extract"
)

const defaultBaseURL = "https://www.synonymlexikon.se"

var (
	ItemRule = extract.MustRule("synonymlexikon.synonym-item/v1", "",
		`<li class="synonym-item">.*?>(.*?)</a>`)
	WordRule = extract.MustRule("synonymlexikon.dd-word/v1", "",
		`<dd class="word">(.*?)</dd>`)
)

// Provider fetches synonyms from synonymlexikon.se.
type Provider struct {
	fetcher  extract.PageFetcher
	endpoint extract.Endpoint
	log      *slog.Logger
}

// NewProvider creates a Provider with the default synonymlexikon.se URL.
func NewProvider(fetcher extract.PageFetcher, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, fetcher, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, fetcher extract.PageFetcher, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		fetcher: fetcher,
		endpoint: extract.Endpoint{
			Name:       "synonymlexikon.se",
			BaseURL:    baseURL,
			PathPrefix: "/sv-syn/",
			Cascade:    extract.Cascade{ItemRule, WordRule},
		},
		log: logger.With("adapter", "synonymlexikon"),
	}
}

func (p *Provider) Name() string { return "synonymlexikon.se" }

// Extract parses a synonymlexikon.se page for word.
func (p *Provider) Extract(word, html string) []string {
	return p.endpoint.Cascade.Extract(word, html)
}

// FetchSynonyms returns synonyms for word, or a network error when the
// page could not be reached at all.
func (p *Provider) FetchSynonyms(ctx context.Context, word string) ([]string, error) {
	return extract.Scrape(ctx, p.fetcher, p.endpoint, word, p.log)
}
