// Package watch triggers a new build cycle when content files change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/punchlinehub/sitecontent/internal/logfields"
)

// RebuildFunc runs one complete build cycle.
type RebuildFunc func(ctx context.Context) error

// Watcher watches content directories and calls a RebuildFunc once changes
// settle for the debounce interval.
type Watcher struct {
	dirs     []string
	debounce time.Duration
	rebuild  RebuildFunc
	log      *slog.Logger
}

// New creates a watcher over dirs. Directories that do not exist yet are
// skipped; their parent is watched instead so their creation is noticed.
func New(dirs []string, debounce time.Duration, rebuild RebuildFunc, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{dirs: dirs, debounce: debounce, rebuild: rebuild, log: logger}
}

// Run blocks until ctx is cancelled. Rebuilds run one at a time on the
// watch goroutine; events arriving during a rebuild start a new debounce.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if err := fw.Close(); err != nil {
			w.log.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	for _, dir := range w.watchTargets() {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		w.log.Debug("Watching directory", logfields.Path(dir))
	}
	w.log.Info("Watching content for changes", logfields.Count(len(fw.WatchList())))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			w.log.Debug("Content change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			if event.Has(fsnotify.Create) {
				w.addIfDir(fw, event.Name)
			}
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("Content watcher error", logfields.Error(err))
		case <-timer.C:
			start := time.Now()
			if err := w.rebuild(ctx); err != nil {
				w.log.Error("Rebuild failed", logfields.Error(err))
				continue
			}
			w.log.Info("Rebuild complete", logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
		}
	}
}

// watchTargets returns each existing dir, or the nearest existing parent of
// a missing one, without duplicates.
func (w *Watcher) watchTargets() []string {
	seen := map[string]bool{}
	var out []string
	for _, dir := range w.dirs {
		target := filepath.Clean(dir)
		for {
			if info, err := os.Stat(target); err == nil && info.IsDir() {
				break
			}
			parent := filepath.Dir(target)
			if parent == target {
				break
			}
			target = parent
		}
		if !seen[target] {
			seen[target] = true
			out = append(out, target)
		}
	}
	return out
}

func (w *Watcher) addIfDir(fw *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	for _, dir := range w.dirs {
		if filepath.Clean(dir) == filepath.Clean(path) {
			if err := fw.Add(path); err != nil {
				w.log.Warn("Failed to watch new directory", logfields.Path(path), logfields.Error(err))
			}
			return
		}
	}
}

// relevant reports whether event can change a build: markdown files and
// directories, ignoring hidden entries and pure permission changes.
func relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	ext := filepath.Ext(base)
	return ext == ".md" || ext == ""
}
