package synonym

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/synonymer/internal/domain"
)

type localDictionary interface {
	Lookup(word string) []string
}

// Source is one remote synonym source. FetchSynonyms absorbs its own
// failures and returns an error only when it could not reach its site at all.
type Source interface {
	Name() string
	FetchSynonyms(ctx context.Context, word string) ([]string, error)
}

// SettingsProvider hands out the current settings snapshot.
type SettingsProvider interface {
	Settings() domain.Settings
}

// StaticSettings is a SettingsProvider that never changes.
type StaticSettings domain.Settings

func (s StaticSettings) Settings() domain.Settings { return domain.Settings(s) }

// Service resolves a word to a ranked list of synonyms from the local
// dictionary and remote sources.
type Service struct {
	log      *slog.Logger
	local    localDictionary
	sources  []Source
	settings SettingsProvider
}

// NewService creates a synonym Service. Sources are consulted in the order
// given, most reliable first.
func NewService(
	logger *slog.Logger,
	local localDictionary,
	settings SettingsProvider,
	sources ...Source,
) *Service {
	s := &Service{
		log:      logger.With("service", "synonym"),
		local:    local,
		sources:  sources,
		settings: settings,
	}

	cfg := settings.Settings()
	s.log.Info("synonym service initialized",
		slog.Bool("enable_online_lookup", cfg.EnableOnlineLookup),
		slog.String("api_source", cfg.APISource.String()),
		slog.Bool("has_api_key", cfg.APIKey != ""),
		slog.Int("max_synonyms", cfg.MaxSynonyms),
		slog.Bool("fallback_to_local_dictionary", cfg.FallbackToLocalDictionary),
		slog.Bool("always_try_online", cfg.AlwaysTryOnline),
		slog.Int("sources", len(sources)),
	)

	return s
}

// Resolve returns at most MaxSynonyms distinct synonyms for word.
//
// Local results are returned directly when online lookup is disabled or when
// they exist and AlwaysTryOnline is off. Otherwise remote sources are tried in
// order and merged; local results serve as fallback when remote lookup gives
// nothing. A *domain.ResolutionError is returned only when every remote source
// was unreachable and no local fallback applies. An unknown or blank word
// yields an empty slice and no error.
func (s *Service) Resolve(ctx context.Context, word string) ([]string, error) {
	if domain.NormalizeWord(word) == "" {
		return []string{}, nil
	}

	cfg := s.settings.Settings()
	limit := cfg.MaxSynonyms

	s.log.DebugContext(ctx, "resolving synonyms", slog.String("word", word))

	local := s.local.Lookup(word)
	s.log.DebugContext(ctx, "local lookup", slog.String("word", word), slog.Int("count", len(local)))

	if (len(local) > 0 && !cfg.AlwaysTryOnline) || !cfg.EnableOnlineLookup {
		return domain.Truncate(domain.Dedupe(local), limit), nil
	}

	canFallback := len(local) > 0 && cfg.FallbackToLocalDictionary

	remote, err := s.fetchRemote(ctx, word, limit)
	if err != nil {
		s.log.ErrorContext(ctx, "online lookup failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		if canFallback {
			s.log.InfoContext(ctx, "using local synonyms after online failure", slog.String("word", word))
			return domain.Truncate(domain.Dedupe(local), limit), nil
		}
		return nil, &domain.ResolutionError{Word: word, Err: err}
	}

	if len(remote) > 0 {
		s.log.InfoContext(ctx, "online synonyms found",
			slog.String("word", word),
			slog.Int("count", len(remote)),
		)
		return domain.Truncate(remote, limit), nil
	}

	if canFallback {
		s.log.InfoContext(ctx, "using local synonyms as fallback", slog.String("word", word))
		return domain.Truncate(domain.Dedupe(local), limit), nil
	}

	s.log.InfoContext(ctx, "no synonyms found", slog.String("word", word))
	return []string{}, nil
}

// fetchRemote queries the sources in order, one at a time, and stops as soon
// as limit distinct synonyms are collected. It returns an error only when every
// source it consulted reported a transport failure.
func (s *Service) fetchRemote(ctx context.Context, word string, limit int) ([]string, error) {
	var (
		merged []string
		errs   []error
	)

	for _, src := range s.sources {
		found, err := src.FetchSynonyms(ctx, word)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		s.log.DebugContext(ctx, "source result",
			slog.String("source", src.Name()),
			slog.String("word", word),
			slog.Int("count", len(found)),
		)

		merged = domain.Dedupe(append(merged, found...))
		if len(merged) >= limit {
			break
		}
	}

	if len(s.sources) > 0 && len(errs) == len(s.sources) {
		return nil, errors.Join(errs...)
	}

	return domain.Dedupe(merged), nil
}
