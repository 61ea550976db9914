package app

import (
	"log"
	"sync"
	"time"

	"mfd-charts/internal/project"
)

// SessionWatcher keeps one FileWatcher on the files of the current session.
// Watch may be called from any goroutine, including from inside the reload
// callback of the watcher it replaces.
type SessionWatcher struct {
	mu       sync.Mutex
	watcher  *FileWatcher
	path     string
	interval time.Duration
	reload   func(path string)
}

// NewSessionWatcher creates a watcher that calls reload with the session
// path when any of the session's files changes.
func NewSessionWatcher(interval time.Duration, reload func(path string)) *SessionWatcher {
	return &SessionWatcher{interval: interval, reload: reload}
}

// Watch stops watching the previous session and starts on path.
func (sw *SessionWatcher) Watch(path string, sess *project.File) {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	sw.stopLocked()
	if path == "" || sess == nil {
		return
	}
	w := NewFileWatcher(sw.interval, path, sess.GetChartMetaPath(path), sess.GetTrackPath(path))
	w.OnChange(func([]string) {
		if sw.reload != nil {
			sw.reload(path)
		}
	})
	w.Start()
	sw.watcher = w
	sw.path = path
	log.Printf("Watch: %s (%d files)", path, w.Paths())
}

// Path returns the session currently watched, or "".
func (sw *SessionWatcher) Path() string {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.path
}

// Stop stops watching.
func (sw *SessionWatcher) Stop() {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.stopLocked()
}

func (sw *SessionWatcher) stopLocked() {
	if sw.watcher != nil {
		sw.watcher.Stop()
		sw.watcher = nil
	}
	sw.path = ""
}
