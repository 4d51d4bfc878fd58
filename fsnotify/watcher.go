// Package fsnotify watches a content tree and reports settled batches of
// changes, so authors running a preview can rebuild the navigation without
// restarting it by hand.
package fsnotify

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"sitenav"
)

const (
	// defaultSettle is how long the tree must stay quiet before a batch
	// of changes is considered complete. Editors save in flurries.
	defaultSettle = 500 * time.Millisecond

	// pollInterval is how often pending events are checked for settling.
	pollInterval = 100 * time.Millisecond
)

// Watcher reports batches of filesystem changes under a content root.
// Subdirectories are watched recursively, including ones created while the
// watch is running.
type Watcher struct {
	// Root is the content directory to watch.
	Root string

	// Skip filters entry names that never carry content, typically
	// fs.SkipName. Nil watches everything.
	Skip func(name string) bool

	// Limit caps how often batches are delivered; changes keep coalescing
	// while the limiter holds them back. Nil allows one batch per second.
	Limit *rate.Limiter

	// Settle overrides the quiet period required before a batch is
	// delivered. Zero uses the default.
	Settle time.Duration

	// Logger records watch errors. Nil means slog.Default().
	Logger *slog.Logger
}

// Watch blocks, invoking fn once per settled batch with the sorted paths
// that changed. It returns nil when ctx is canceled; the only errors are
// setup failures (the root cannot be watched).
func (w *Watcher) Watch(ctx context.Context, fn func(changed []string)) error {
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}
	settle := w.Settle
	if settle <= 0 {
		settle = defaultSettle
	}
	limit := w.Limit
	if limit == nil {
		limit = rate.NewLimiter(rate.Every(time.Second), 1)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return sitenav.Errorf(sitenav.EINTERNAL, "start watcher: %v", err)
	}
	defer watcher.Close()

	if err := w.addTree(watcher, logger, w.Root); err != nil {
		return err
	}

	pending := make(map[string]struct{})
	var last time.Time

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if w.skip(filepath.Base(event.Name)) {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				// New directories join the watch immediately so
				// changes inside them are not missed.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(watcher, logger, event.Name); err != nil {
						logger.Error("content watch add", "dir", event.Name, "err", err)
					}
				}
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			pending[event.Name] = struct{}{}
			last = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("content watch", "root", w.Root, "err", err)

		case <-ticker.C:
			if len(pending) == 0 || time.Since(last) < settle {
				continue
			}
			if !limit.Allow() {
				continue
			}
			changed := make([]string, 0, len(pending))
			for path := range pending {
				changed = append(changed, path)
			}
			sort.Strings(changed)
			pending = make(map[string]struct{})
			fn(changed)
		}
	}
}

// addTree registers root and every non-skipped directory below it with the
// watcher. A failure on root itself is returned; failures deeper in the
// tree are logged and skipped.
func (w *Watcher) addTree(watcher *fsnotify.Watcher, logger *slog.Logger, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return sitenav.Errorf(sitenav.EUNAVAILABLE, "watch %s: %v", root, err)
			}
			logger.Error("content watch skipped subtree", "dir", path, "err", err)
			return fs.SkipDir
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.skip(d.Name()) {
			return fs.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			if path == root {
				return sitenav.Errorf(sitenav.EUNAVAILABLE, "watch %s: %v", root, err)
			}
			logger.Error("content watch skipped subtree", "dir", path, "err", err)
			return fs.SkipDir
		}
		return nil
	})
}

func (w *Watcher) skip(name string) bool {
	return w.Skip != nil && w.Skip(name)
}
