// Package app provides application lifecycle management, session state, and events.
package app

import (
	"fmt"
	"log"
	"sync"
	"time"

	"mfd-charts/internal/chart"
	"mfd-charts/internal/project"
	"mfd-charts/internal/simvar"
)

// State holds the application state: the open session, its chart and the
// simulator variables driving the ownship marker.
type State struct {
	mu sync.RWMutex

	SessionPath string
	Session     *project.File

	// Chart currently shown and the image it points to
	Chart      *chart.Chart
	ChartImage string

	// Simulator variables and the optional replay feeding them
	Sim   *simvar.Store
	Track *simvar.Track

	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventSessionLoaded EventType = iota
	EventChartChanged
	EventTrackChanged
	EventChartImageReady
	EventChartImageFailed
	EventCursorMoved
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new application state.
func NewState() *State {
	return &State{
		Sim:       simvar.NewStore(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetChart replaces the current chart and image source.
func (s *State) SetChart(imagePath string, c *chart.Chart) {
	s.mu.Lock()
	s.ChartImage = imagePath
	s.Chart = c
	s.mu.Unlock()
	s.Emit(EventChartChanged, c)
}

// SetTrack replaces the flight track replay.
func (s *State) SetTrack(tr *simvar.Track) {
	s.mu.Lock()
	s.Track = tr
	s.mu.Unlock()
	s.Emit(EventTrackChanged, tr)
}

// LoadSession loads a session file with its chart metadata and track.
func (s *State) LoadSession(path string) error {
	sess, err := project.Load(path)
	if err != nil {
		return err
	}

	var c *chart.Chart
	if metaPath := sess.GetChartMetaPath(path); metaPath != "" {
		c, err = chart.Load(metaPath)
		if err != nil {
			return fmt.Errorf("session %s: %w", path, err)
		}
	}

	var tr *simvar.Track
	if trackPath := sess.GetTrackPath(path); trackPath != "" {
		tr, err = simvar.LoadTrack(trackPath)
		if err != nil {
			return fmt.Errorf("session %s: %w", path, err)
		}
		tr.Loop = sess.LoopTrack
		log.Printf("Track: %d samples over %s", len(tr.Samples), tr.Duration())
	}

	s.mu.Lock()
	s.SessionPath = path
	s.Session = sess
	s.mu.Unlock()

	s.SetChart(sess.GetChartImagePath(path), c)
	s.SetTrack(tr)
	s.Emit(EventSessionLoaded, sess)
	return nil
}

// Tick advances the flight track replay, if any.
func (s *State) Tick(dt time.Duration) {
	s.mu.RLock()
	tr := s.Track
	s.mu.RUnlock()
	if tr != nil {
		tr.Advance(dt, s.Sim)
	}
}

// CurrentChart returns the chart and image path under the read lock.
func (s *State) CurrentChart() (string, *chart.Chart) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ChartImage, s.Chart
}

// CurrentSession returns the session path and file under the read lock.
func (s *State) CurrentSession() (string, *project.File) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.SessionPath, s.Session
}
