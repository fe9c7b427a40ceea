// Package watch re-runs ingestion whenever the export file changes on disk,
// for the CLI's live mode. Events are debounced because editors and export
// tools write in bursts.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration

	// OnChange runs after the debounce window on every write to the file.
	OnChange func(path string) error
	// OnError receives watch and OnChange failures; nil means they are
	// silently dropped.
	OnError func(err error)
}

// New builds a watcher for a single file. The containing directory is
// watched, since many tools replace files instead of writing in place.
func New(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	return &Watcher{
		watcher:  fsWatcher,
		path:     absPath,
		debounce: 500 * time.Millisecond,
	}, nil
}

// Run blocks until ctx is cancelled, firing OnChange for debounced writes to
// the watched file.
func (w *Watcher) Run(ctx context.Context) error {
	var timerMu sync.Mutex
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			w.watcher.Close()
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			absPath, err := filepath.Abs(event.Name)
			if err != nil || absPath != w.path {
				continue
			}

			timerMu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				if w.OnChange == nil {
					return
				}
				if err := w.OnChange(w.path); err != nil && w.OnError != nil {
					w.OnError(err)
				}
			})
			timerMu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if w.OnError != nil {
				w.OnError(err)
			}
		}
	}
}
