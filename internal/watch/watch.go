// Package watch reruns a handler when watched source files change.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceWindow is how long a burst of events may grow before the
// handler runs. Editors fire several events per save; one re-check
// covers them all.
const DebounceWindow = 200 * time.Millisecond

// Handler receives the deduplicated paths of a debounced burst of
// changes, in first-seen order.
type Handler func(paths []string)

// Watcher calls a handler for files changed under the watched roots.
// Directories are watched recursively, and directories created while
// watching are picked up.
type Watcher struct {
	fsw       *fsnotify.Watcher
	match     func(path string) bool
	handler   Handler
	debounce  time.Duration
	closeOnce sync.Once
}

// New creates a watcher calling handler for changed files accepted by
// match. A nil match accepts every file.
func New(match func(path string) bool, handler Handler) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fsw: fsw, match: match, handler: handler, debounce: DebounceWindow}, nil
}

// Add watches a file or a directory tree. For a plain file the parent
// directory is watched: editors replace files on save, and the watch
// would die with the old inode.
func (w *Watcher) Add(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return w.fsw.Add(filepath.Dir(root))
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		return w.fsw.Add(path)
	})
}

// Close stops event delivery; a blocked Run returns.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		w.fsw.Close()
	})
}

// Run blocks, firing the handler after each debounced burst of changes,
// until ctx is canceled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	var batch []string
	var timer *time.Timer
	var timerC <-chan time.Time

	flush := func() {
		if len(batch) > 0 && w.handler != nil {
			w.handler(dedup(batch))
		}
		batch = batch[:0]
		timer, timerC = nil, nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.Add(ev.Name); err != nil {
						slog.Warn("cannot watch new directory", "path", ev.Name, "error", err)
					}
					continue
				}
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if w.match != nil && !w.match(ev.Name) {
				continue
			}

			batch = append(batch, ev.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)

		case <-timerC:
			flush()
		}
	}
}

func dedup(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	res := make([]string, 0, len(paths))
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			res = append(res, p)
		}
	}
	return res
}
