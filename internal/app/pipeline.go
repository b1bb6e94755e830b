package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/synonymer/internal/adapter/fetcher"
	"github.com/heartmarshall/synonymer/internal/adapter/localdict"
	"github.com/heartmarshall/synonymer/internal/adapter/provider/synonymer"
	"github.com/heartmarshall/synonymer/internal/adapter/provider/synonymlexikon"
	"github.com/heartmarshall/synonymer/internal/adapter/settingsfile"
	"github.com/heartmarshall/synonymer/internal/config"
	"github.com/heartmarshall/synonymer/internal/service/synonym"
)

// Pipeline is the wired synonym resolver shared by the server and the CLI.
type Pipeline struct {
	Service    *synonym.Service
	Dictionary *localdict.Store
	Settings   synonym.SettingsProvider

	store *settingsfile.Store
}

// NewPipeline builds the local dictionary, the page fetcher, both remote
// sources and the settings provider, and hands them to the synonym service.
// When cfg.Synonyms.SettingsPath is set the settings come from that file,
// layered over the configured defaults.
func NewPipeline(cfg *config.Config, logger *slog.Logger) (*Pipeline, error) {
	dict, err := localdict.New()
	if err != nil {
		return nil, fmt.Errorf("app: load local dictionary: %w", err)
	}

	var (
		settings synonym.SettingsProvider = synonym.StaticSettings(cfg.Synonyms.Defaults)
		store    *settingsfile.Store
	)
	if cfg.Synonyms.SettingsPath != "" {
		store, err = settingsfile.Open(cfg.Synonyms.SettingsPath, cfg.Synonyms.Defaults, logger)
		if err != nil {
			return nil, fmt.Errorf("app: open settings: %w", err)
		}
		settings = store
	}

	f := fetcher.New(fetcher.Config{
		Timeout:   cfg.Sources.FetchTimeout,
		UserAgent: cfg.Sources.UserAgent,
	}, logger)

	sources := []synonym.Source{
		synonymer.NewProviderWithURL(cfg.Sources.SynonymerURL, cfg.Sources.SvenskaSynonymerURL, f, logger),
		synonymlexikon.NewProviderWithURL(cfg.Sources.SynonymlexikonURL, f, logger),
	}

	logger.Info("synonym pipeline ready",
		slog.Int("dictionary_entries", dict.Len()),
		slog.String("settings_path", cfg.Synonyms.SettingsPath),
	)

	return &Pipeline{
		Service:    synonym.NewService(logger, dict, settings, sources...),
		Dictionary: dict,
		Settings:   settings,
		store:      store,
	}, nil
}

// WatchSettings follows the settings file until ctx is done. It returns nil
// immediately when settings are static.
func (p *Pipeline) WatchSettings(ctx context.Context) error {
	if p.store == nil {
		return nil
	}
	return p.store.Watch(ctx)
}
