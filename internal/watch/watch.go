// Package watch re-runs a callback whenever a catalog file changes.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/cellbutton/internal/logger"
)

// Watcher observes a single file. The parent directory is watched so that
// editors replacing the file through a rename are still noticed.
type Watcher struct {
	path     string
	debounce time.Duration
	log      *logger.Logger
	ready    chan struct{}
	armed    sync.Once
}

// New creates a watcher for path. Bursts of events closer together than
// debounce trigger a single callback.
func New(path string, debounce time.Duration, log *logger.Logger) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		log:      log,
		ready:    make(chan struct{}),
	}
}

// Ready is closed once the file is being watched by the first Run.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled. Callback errors are logged and do not
// stop the watcher.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.armed.Do(func() { close(w.ready) })

	log := w.log.WithFields(map[string]any{"path": w.path})
	log.Info("watching for changes")

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)
			pending = timer.C

		case <-pending:
			pending = nil
			log.Debug("change detected")
			if err := onChange(ctx); err != nil {
				log.Error(err, "rebuild failed")
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error: " + err.Error())
		}
	}
}
