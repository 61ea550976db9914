package app

import (
	"log"
	"os"
	"sync"
	"time"
)

// FileWatcher polls a set of files and triggers a callback when any of them
// is modified, so an edited session, chart metadata or track file is picked
// up without restarting.
type FileWatcher struct {
	mu            sync.Mutex
	modTimes      map[string]time.Time
	checkInterval time.Duration
	stopCh        chan struct{}
	onChange      func(paths []string) // Called from the watcher goroutine
}

// NewFileWatcher creates a watcher with the current modification times of
// paths as its baseline. Empty paths are ignored.
func NewFileWatcher(checkInterval time.Duration, paths ...string) *FileWatcher {
	w := &FileWatcher{
		modTimes:      make(map[string]time.Time),
		checkInterval: checkInterval,
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		w.modTimes[p] = modTime(p)
	}
	return w
}

// OnChange sets the callback invoked with the modified paths.
func (w *FileWatcher) OnChange(callback func(paths []string)) {
	w.onChange = callback
}

// Paths returns the number of watched files.
func (w *FileWatcher) Paths() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.modTimes)
}

// Start begins polling in a background goroutine.
func (w *FileWatcher) Start() {
	w.stopCh = make(chan struct{})
	go w.watchLoop(w.stopCh)
}

// Stop stops the watcher goroutine.
func (w *FileWatcher) Stop() {
	if w.stopCh != nil {
		close(w.stopCh)
		w.stopCh = nil
	}
}

func (w *FileWatcher) watchLoop(stop chan struct{}) {
	ticker := time.NewTicker(w.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if changed := w.Changed(); len(changed) > 0 && w.onChange != nil {
				log.Printf("Watch: %d file(s) changed: %v", len(changed), changed)
				w.onChange(changed)
			}
		}
	}
}

// Changed returns the paths modified since the last call and moves the
// baseline forward. A file that disappears is not reported until it returns.
func (w *FileWatcher) Changed() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var changed []string
	for p, last := range w.modTimes {
		cur := modTime(p)
		if cur.IsZero() {
			continue
		}
		if cur.After(last) {
			changed = append(changed, p)
			w.modTimes[p] = cur
		}
	}
	return changed
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
