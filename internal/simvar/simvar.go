// Package simvar provides access to simulator variables (aircraft position,
// heading and ground state) through a small host interface.
package simvar

import (
	"strings"
	"sync"
)

// Variable names read by the chart view.
const (
	PlaneLatitude       = "PLANE LATITUDE"
	PlaneLongitude      = "PLANE LONGITUDE"
	PlaneHeadingTrue    = "PLANE HEADING DEGREES TRUE"
	GPSGroundTrueTrack  = "GPS GROUND TRUE TRACK"
	SimOnGround         = "SIM ON GROUND"
	UnitDegreeLatitude  = "degree latitude"
	UnitDegreeLongitude = "degree longitude"
	UnitDegree          = "degree"
	UnitBool            = "bool"
)

// Host exposes named simulator readings.
type Host interface {
	// Number returns the value of name in the given unit.
	Number(name, unit string) float64
	// Bool returns a boolean variable.
	Bool(name string) bool
}

// Store is an in-memory Host. Values are kept in the unit they were set in;
// the unit argument on reads is accepted for interface compatibility only.
type Store struct {
	mu     sync.RWMutex
	values map[string]float64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]float64)}
}

func key(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Set stores a numeric variable.
func (s *Store) Set(name string, value float64) {
	s.mu.Lock()
	s.values[key(name)] = value
	s.mu.Unlock()
}

// SetBool stores a boolean variable as 0 or 1.
func (s *Store) SetBool(name string, value bool) {
	v := 0.0
	if value {
		v = 1
	}
	s.Set(name, v)
}

// Number implements Host. Unknown variables read as 0.
func (s *Store) Number(name, unit string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key(name)]
}

// Bool implements Host.
func (s *Store) Bool(name string) bool {
	return s.Number(name, UnitBool) != 0
}

// Position is an aircraft state sample.
type Position struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Heading  float64 `json:"heading"` // true heading, degrees
	Track    float64 `json:"track"`   // ground track, degrees
	OnGround bool    `json:"on_ground"`
}

// Apply writes the sample into the store.
func (s *Store) Apply(p Position) {
	s.mu.Lock()
	s.values[PlaneLatitude] = p.Lat
	s.values[PlaneLongitude] = p.Lon
	s.values[PlaneHeadingTrue] = p.Heading
	s.values[GPSGroundTrueTrack] = p.Track
	if p.OnGround {
		s.values[SimOnGround] = 1
	} else {
		s.values[SimOnGround] = 0
	}
	s.mu.Unlock()
}

// Read returns the aircraft state currently visible through h.
func Read(h Host) Position {
	return Position{
		Lat:      h.Number(PlaneLatitude, UnitDegreeLatitude),
		Lon:      h.Number(PlaneLongitude, UnitDegreeLongitude),
		Heading:  h.Number(PlaneHeadingTrue, UnitDegree),
		Track:    h.Number(GPSGroundTrueTrack, UnitDegree),
		OnGround: h.Bool(SimOnGround),
	}
}

// DisplayHeading returns the heading the chart marker should point to:
// true heading on the ground, ground track in the air.
func (p Position) DisplayHeading() float64 {
	if p.OnGround {
		return p.Heading
	}
	return p.Track
}
