// Package watch runs a callback whenever a file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce collapses bursts of events, such as an editor's
// write-then-rename, into a single callback.
const DefaultDebounce = 200 * time.Millisecond

// Watcher invokes OnChange after Path is written, created or replaced.
type Watcher struct {
	Path     string
	Debounce time.Duration
	OnChange func(context.Context) error
	Logger   zerolog.Logger
}

// Run watches until ctx is cancelled. The parent directory is watched so
// that files replaced by rename are still noticed. Errors returned by
// OnChange are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	path, err := filepath.Abs(w.Path)
	if err != nil {
		return fmt.Errorf("watch: resolve %s: %w", w.Path, err)
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := fw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch: add %s: %w", filepath.Dir(path), err)
	}

	w.Logger.Info().
		Str("event", "watch.started").
		Str("path", path).
		Msg("watching file for changes")

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Logger.Info().Str("event", "watch.stopped").Msg("watcher stopped")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.Logger.Debug().
				Str("event", "watch.file_changed").
				Str("op", event.Op.String()).
				Msg("file changed")
			timer.Reset(debounce)

		case <-timer.C:
			if err := w.OnChange(ctx); err != nil {
				w.Logger.Error().
					Err(err).
					Str("event", "watch.callback_failed").
					Msg("change handler failed")
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.Logger.Error().
				Err(err).
				Str("event", "watch.error").
				Msg("watcher error")
		}
	}
}
