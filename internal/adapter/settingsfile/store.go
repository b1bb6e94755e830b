// Package settingsfile serves the lookup policy from a YAML file owned by the
// host application and reloads it when the file changes on disk.
package settingsfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/synonymer/internal/domain"
)

// Store holds the latest valid settings snapshot read from path.
type Store struct {
	path    string
	base    domain.Settings
	current atomic.Pointer[domain.Settings]
	log     *slog.Logger
}

// Open reads path once. Fields missing from the file keep the values from
// base; a missing file yields base unchanged.
func Open(path string, base domain.Settings, logger *slog.Logger) (*Store, error) {
	s := &Store{
		path: path,
		base: base,
		log:  logger.With("adapter", "settingsfile"),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Settings returns the current snapshot.
func (s *Store) Settings() domain.Settings {
	return *s.current.Load()
}

// Reload re-reads the file. On failure the previous snapshot stays active.
func (s *Store) Reload() error {
	next, err := s.read()
	if err != nil {
		return err
	}
	s.current.Store(&next)
	s.log.Info("settings loaded",
		slog.String("path", s.path),
		slog.Bool("enable_online_lookup", next.EnableOnlineLookup),
		slog.Int("max_synonyms", next.MaxSynonyms),
		slog.Bool("always_try_online", next.AlwaysTryOnline),
	)
	return nil
}

func (s *Store) read() (domain.Settings, error) {
	settings := s.base

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return domain.Settings{}, fmt.Errorf("settingsfile: open %s: %w", s.path, err)
	}
	defer f.Close()

	if err := cleanenv.ParseYAML(f, &settings); err != nil && !errors.Is(err, io.EOF) {
		return domain.Settings{}, fmt.Errorf("settingsfile: parse %s: %w", s.path, err)
	}
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("settingsfile: %s: %w", s.path, err)
	}
	return settings, nil
}

// Watch reloads the settings whenever the file is written, created or
// replaced. It blocks until ctx is done. The parent directory is watched so
// that editors which save by rename are picked up.
func (s *Store) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("settingsfile: create watcher: %w", err)
	}
	defer w.Close()

	target, err := filepath.Abs(s.path)
	if err != nil {
		return fmt.Errorf("settingsfile: resolve path: %w", err)
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("settingsfile: watch %s: %w", filepath.Dir(target), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := s.Reload(); err != nil {
				s.log.WarnContext(ctx, "settings reload failed, keeping previous",
					slog.String("path", s.path),
					slog.String("error", err.Error()),
				)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.WarnContext(ctx, "settings watcher error", slog.String("error", err.Error()))
		}
	}
}
