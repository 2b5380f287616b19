// Package watcher re-triggers packing when watched source files change.
package watcher

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// skipDirs are directories never watched; they churn constantly and are
// excluded from packing anyway.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
	"__pycache__":  true,
}

// Watcher watches a directory tree and fires a debounced callback with the
// batch of changed files.
type Watcher struct {
	fsw          *fsnotify.Watcher
	root         string
	outputPath   string
	debounceTime time.Duration

	accumulated   map[string]bool
	accumulatedMu sync.Mutex

	debounceTimer *time.Timer
	timerMu       sync.Mutex
}

// New creates a Watcher over root. outputPath is the pack's own output
// file; changes to it never trigger a re-pack.
func New(root, outputPath string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:          fsw,
		root:         root,
		outputPath:   outputPath,
		debounceTime: 500 * time.Millisecond,
		accumulated:  make(map[string]bool),
	}

	if err := w.addDirectoriesRecursively(root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run blocks until ctx is cancelled, invoking callback with each debounced
// batch of changed files.
func (w *Watcher) Run(ctx context.Context, callback func(files []string)) error {
	fireCh := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			w.stopDebounceTimer()
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}

			// Watch directories created after startup.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addDirectoriesRecursively(event.Name); err != nil {
						log.Printf("Warning: failed to watch new directory %s: %v", event.Name, err)
					}
				}
			}

			if !w.shouldProcessEvent(event) {
				continue
			}

			w.accumulatedMu.Lock()
			w.accumulated[event.Name] = true
			w.accumulatedMu.Unlock()

			w.resetDebounceTimer(fireCh)

		case <-fireCh:
			w.fire(callback)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// fire drains the accumulated batch and invokes the callback.
func (w *Watcher) fire(callback func(files []string)) {
	w.accumulatedMu.Lock()
	if len(w.accumulated) == 0 {
		w.accumulatedMu.Unlock()
		return
	}
	files := make([]string, 0, len(w.accumulated))
	for file := range w.accumulated {
		files = append(files, file)
	}
	w.accumulated = make(map[string]bool)
	w.accumulatedMu.Unlock()

	callback(files)
}

// resetDebounceTimer restarts the quiet period, properly stopping the old
// timer first.
func (w *Watcher) resetDebounceTimer(fireCh chan struct{}) {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceTime, func() {
		select {
		case fireCh <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopDebounceTimer() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
}

// shouldProcessEvent filters events down to content changes of files that
// could appear in the pack.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
		return false
	}

	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".contextpack-") {
		// Temp output files from our own atomic writes.
		return false
	}

	if w.outputPath != "" && w.outputPath != "-" {
		if abs, err := filepath.Abs(w.outputPath); err == nil {
			if evAbs, err := filepath.Abs(event.Name); err == nil && evAbs == abs {
				return false
			}
		}
	}

	return true
}

// addDirectoriesRecursively adds all directories in the tree to the watcher.
func (w *Watcher) addDirectoriesRecursively(rootPath string) error {
	return filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == rootPath {
				return err
			}
			log.Printf("Warning: error accessing %s: %v", path, err)
			return nil
		}

		if !info.IsDir() {
			return nil
		}
		if skipDirs[info.Name()] && path != rootPath {
			return filepath.SkipDir
		}

		if err := w.fsw.Add(path); err != nil {
			log.Printf("Warning: failed to watch directory %s: %v", path, err)
		}
		return nil
	})
}
