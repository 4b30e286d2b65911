package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher reloads a catalog whenever its dataset file changes
type Watcher struct {
	catalog  *Catalog
	path     string
	debounce time.Duration
	log      logrus.FieldLogger
}

// NewWatcher creates a watcher for the dataset file at path
func NewWatcher(c *Catalog, path string, log logrus.FieldLogger) *Watcher {
	return &Watcher{
		catalog:  c,
		path:     filepath.Clean(path),
		debounce: defaultDebounce,
		log:      log.WithFields(logrus.Fields{"module": "catalog", "path": path}),
	}
}

// Run watches until ctx is done. The parent directory is watched rather
// than the file so editors that replace the file by rename keep working.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	w.log.Info("watching dataset")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("watcher error")

		case <-fire:
			fire = nil
			if err := w.catalog.Reload(ctx); err != nil {
				w.log.WithError(err).Warn("keeping previous snapshot")
			}
		}
	}
}
