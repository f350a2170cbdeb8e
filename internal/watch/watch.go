// Package watch reports batches of changed files under a directory tree.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long a path must stay quiet before it is reported.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches a directory tree recursively. New directories are added as
// they appear.
type Watcher struct {
	fsw      *fsnotify.Watcher
	root     string
	debounce time.Duration
	skip     func(dir string) bool
	logger   *zap.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce. Non-positive values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithSkip excludes directories for which skip returns true. The root is
// never skipped.
func WithSkip(skip func(dir string) bool) Option {
	return func(w *Watcher) {
		w.skip = skip
	}
}

// WithLogger sets the logger for watch errors and debug events.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// New starts watching root and every directory below it.
func New(root string, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	w := &Watcher{
		fsw:      fsw,
		root:     filepath.Clean(root),
		debounce: DefaultDebounce,
		skip:     func(string) bool { return false },
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if err := w.addTree(w.root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Close stops the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && w.skip(path) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run delivers changed paths to onChange until ctx is done. Paths are sorted
// and each appears once per batch. Removed and renamed paths are included;
// onChange must cope with files that no longer exist.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context, paths []string)) error {
	pending := make(map[string]time.Time)
	tick := time.NewTicker(w.debounce / 2)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			if ev.Op.Has(fsnotify.Create) && w.isDir(ev.Name) {
				if err := w.addTree(ev.Name); err != nil {
					w.logger.Warn("watch new directory", zap.Error(err))
				}
				continue
			}
			w.logger.Debug("change", zap.String("path", ev.Name), zap.Stringer("op", ev.Op))
			pending[ev.Name] = time.Now()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))

		case now := <-tick.C:
			var ready []string
			for path, at := range pending {
				if now.Sub(at) >= w.debounce {
					ready = append(ready, path)
					delete(pending, path)
				}
			}
			if len(ready) > 0 {
				sort.Strings(ready)
				onChange(ctx, ready)
			}
		}
	}
}

func (w *Watcher) isDir(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
