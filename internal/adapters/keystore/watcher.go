package keystore

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultDebounceWindow is the quiet period after the last file event before reloading.
const DefaultDebounceWindow = 100 * time.Millisecond

// Watcher reloads a Store when its file is rewritten by another process.
type Watcher struct {
	store  *Store
	logger ports.Logger
	window time.Duration
}

// NewWatcher creates a watcher for store.
func NewWatcher(store *Store, logger ports.Logger) *Watcher {
	return &Watcher{store: store, logger: logger, window: DefaultDebounceWindow}
}

// Run watches the store directory until ctx is done.
// The directory is watched rather than the file because atomic rewrites replace the inode.
func (w *Watcher) Run(ctx context.Context) error {
	dir := filepath.Dir(w.store.Path())
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(domain.WrapCause(domain.ErrStoreCreateFailed, err), "dir", dir)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create key store watcher")
	}
	defer func() { _ = fsWatcher.Close() }()

	if err := fsWatcher.Add(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch key store directory"), "dir", dir)
	}

	deb := newDebouncer(w.window, w.reload)
	defer deb.Stop()

	name := filepath.Base(w.store.Path())
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				deb.Trigger()
			}
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error(zerr.Wrap(err, "key store watcher"))
		}
	}
}

func (w *Watcher) reload() {
	changed, err := w.store.reload()
	if err != nil {
		w.logger.Error(zerr.Wrap(err, "reload key store"))
		return
	}
	if changed {
		w.logger.Info("key store reloaded", "path", w.store.Path(), "keys", len(w.store.Keys()))
	}
}
