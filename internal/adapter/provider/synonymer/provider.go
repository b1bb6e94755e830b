// Package synonymer scrapes synonymer.se, the most reliable remote source,
// with svenska-synonymer.se as a backup page shape.
package synonymer

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/synonymer/internal/adapter/provider/extract"
)

const (
	defaultBaseURL   = "https://synonymer.se"
	defaultBackupURL = "https://svenska-synonymer.se"
)

// Markup rules for synonymer.se, most specific first.
var (
	MainRule = extract.MustRule("synonymer.main/v1",
		`<div[^>]*class="main"[^>]*>([\s\S]*?)</div>`,
		`<a[^>]*>([^<]+)</a>`)
	WordSpanRule = extract.MustRule("synonymer.span-word/v1", "",
		`<span class="word"[^>]*>([^<]+)</span>`)
	SynonymLinkRule = extract.MustRule("synonymer.sv-syn-link/v1", "",
		`<a href="/sv-syn/[^"]+"[^>]*>([^<]+)</a>`)
	WordCellRule = extract.MustRule("synonymer.td-word/v1", "",
		`<td class="word"[^>]*>([^<]+)</td>`)
)

// BackupRule isolates the synonyms section on svenska-synonymer.se and
// collects the link texts inside it.
var BackupRule = func() extract.Rule {
	r := extract.MustRule("svenska-synonymer.synonyms/v1",
		`<div[^>]*class="synonyms"[^>]*>([\s\S]*?)</div>`,
		`<a[^>]*>([^<]+)</a>`)
	r.FirstScopeOnly = true
	return r
}()

// Provider fetches synonyms from synonymer.se, falling back to
// svenska-synonymer.se when the first page gives nothing.
type Provider struct {
	fetcher extract.PageFetcher
	primary extract.Endpoint
	backup  extract.Endpoint
	log     *slog.Logger
}

// NewProvider creates a Provider against the production hosts.
func NewProvider(fetcher extract.PageFetcher, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, defaultBackupURL, fetcher, logger)
}

// NewProviderWithURL creates a Provider with custom hosts (for testing).
func NewProviderWithURL(baseURL, backupURL string, fetcher extract.PageFetcher, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if backupURL == "" {
		backupURL = defaultBackupURL
	}
	return &Provider{
		fetcher: fetcher,
		primary: extract.Endpoint{
			Name:       "synonymer.se",
			BaseURL:    baseURL,
			PathPrefix: "/sv-syn/",
			Cascade:    extract.Cascade{MainRule, WordSpanRule, SynonymLinkRule, WordCellRule},
		},
		backup: extract.Endpoint{
			Name:       "svenska-synonymer.se",
			BaseURL:    backupURL,
			PathPrefix: "/synonymer-till-",
			Cascade:    extract.Cascade{BackupRule},
		},
		log: logger.With("adapter", "synonymer"),
	}
}

// Name identifies the source in logs.
func (p *Provider) Name() string { return "synonymer.se" }

// Extract parses a synonymer.se page for word.
func (p *Provider) Extract(word, html string) []string {
	return p.primary.Cascade.Extract(word, html)
}

// ExtractBackup parses a svenska-synonymer.se page for word.
func (p *Provider) ExtractBackup(word, html string) []string {
	return p.backup.Cascade.Extract(word, html)
}

// FetchSynonyms returns synonyms for word. An error is returned only when
// both pages failed at the transport level.
func (p *Provider) FetchSynonyms(ctx context.Context, word string) ([]string, error) {
	return extract.ScrapeEach(ctx, p.fetcher, []extract.Endpoint{p.primary, p.backup}, word, p.log)
}
