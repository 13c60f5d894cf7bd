package style

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/singleflight"
)

// Watcher monitors the configured source directories and triggers a format
// callback whenever a matching file is written.
type Watcher struct {
	walker *Walker
	logger *slog.Logger

	// Ready is closed once all directories are registered and events flow.
	Ready chan struct{}

	// group coalesces concurrent callbacks for the same path: debounce
	// timers fire on their own goroutines, and editors routinely emit
	// bursts of writes for one save.
	group singleflight.Group

	newWatcher func() (*fsnotify.Watcher, error)
}

// NewWatcher creates a Watcher over the walker's source directories.
func NewWatcher(w *Walker, logger *slog.Logger) *Watcher {
	return &Watcher{
		walker:     w,
		logger:     logger.With("component", "watcher"),
		Ready:      make(chan struct{}),
		newWatcher: fsnotify.NewWatcher,
	}
}

const debounceDuration = 100 * time.Millisecond

// Watch blocks until the context is cancelled, invoking format for every
// matching file that is created or written. New subdirectories are picked up
// as they appear.
func (w *Watcher) Watch(ctx context.Context, format func(path string) error) error {
	watcher, err := w.newWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range w.walker.SourceDirs() {
		if err := w.addRecursive(watcher, dir); err != nil {
			return err
		}
	}

	w.logger.Info("Watching for changes", "dirs", strings.Join(w.walker.SourceDirs(), ", "))
	if w.Ready != nil {
		close(w.Ready)
	}

	timers := make(map[string]*time.Timer)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case wErr := <-watcher.Errors:
			w.logger.Error("Watcher error", "error", wErr)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			path := w.handleEvent(watcher, event)
			if path == "" {
				continue
			}
			if timer, exists := timers[path]; exists {
				timer.Reset(debounceDuration)
				continue
			}
			timers[path] = time.AfterFunc(debounceDuration, func() {
				w.formatOnce(path, format)
			})
		}
	}
}

// formatOnce runs the format callback for path, coalescing concurrent calls.
func (w *Watcher) formatOnce(path string, format func(path string) error) {
	_, err, _ := w.group.Do(path, func() (any, error) {
		return nil, format(path)
	})
	if err != nil {
		w.logger.Error("Format failed", "path", path, "error", err)
	}
}

// handleEvent processes a single fsnotify event. New directories are added to
// the watch; a relevant file change returns the file's path.
func (w *Watcher) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event) string {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return ""
	}

	if event.Has(fsnotify.Create) {
		info, err := os.Stat(event.Name)
		if err == nil && info.IsDir() {
			if aErr := w.addRecursive(watcher, event.Name); aErr != nil {
				w.logger.Error("Failed to watch new directory", "path", event.Name, "error", aErr)
			}
			return ""
		}
	}

	if !w.walker.Matches(filepath.Base(event.Name)) {
		return ""
	}
	return event.Name
}

// addRecursive adds the given path and all its non-hidden subdirectories to the watcher.
func (w *Watcher) addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && skipDir(filepath.Base(path)) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
