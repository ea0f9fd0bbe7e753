// Package fsnotify implements the ports.Watcher interface using
// github.com/fsnotify/fsnotify. It watches the cached pages directory,
// filters out everything that is not a pageN.csv file, and debounces rapid
// events (downloads and editors often trigger multiple writes per file).
package fsnotify

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval suppresses repeat events for the same file. Page files
// are rewritten whole, so anything inside the window is the same change.
const debounceInterval = 200 * time.Millisecond

// Watcher implements ports.Watcher over a flat pages directory.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch starts monitoring dir (non-recursive — pages live flat).
// onChange is called with the absolute path of each changed page file.
func (w *Watcher) Watch(dir string, onChange func(path string)) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if err := w.fw.Add(absDir); err != nil {
		return err
	}

	// Debounce state: last event time per file.
	debounce := make(map[string]time.Time)
	var dmu sync.Mutex

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				path := event.Name
				if !isPageFile(path) {
					continue
				}

				dmu.Lock()
				last, seen := debounce[path]
				now := time.Now()
				if seen && now.Sub(last) < debounceInterval {
					dmu.Unlock()
					continue
				}
				debounce[path] = now
				dmu.Unlock()

				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					onChange(path)
				}

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Errors are swallowed — fsnotify recovers automatically

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}

// isPageFile reports whether path looks like a pageN.csv file. Temp files
// from atomic-rename downloads (.tmp, .partial) never trigger onChange.
func isPageFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, "page") && strings.HasSuffix(base, ".csv")
}
