package simvar

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreReadsBack(t *testing.T) {
	s := NewStore()
	s.Set("plane latitude", 37.6)
	s.Set(PlaneLongitude, -122.4)
	s.SetBool(SimOnGround, true)

	if got := s.Number(PlaneLatitude, UnitDegreeLatitude); got != 37.6 {
		t.Errorf("Expected latitude 37.6, got %v", got)
	}
	if !s.Bool(SimOnGround) {
		t.Error("Expected on-ground flag")
	}
	if got := s.Number("UNSET VAR", UnitDegree); got != 0 {
		t.Errorf("Expected unset variable to read 0, got %v", got)
	}
}

func TestDisplayHeading(t *testing.T) {
	s := NewStore()
	s.Apply(Position{Lat: 1, Lon: 2, Heading: 280, Track: 275, OnGround: true})
	if got := Read(s).DisplayHeading(); got != 280 {
		t.Errorf("On ground: expected true heading 280, got %v", got)
	}
	s.SetBool(SimOnGround, false)
	if got := Read(s).DisplayHeading(); got != 275 {
		t.Errorf("Airborne: expected ground track 275, got %v", got)
	}
}

func TestTrackInterpolation(t *testing.T) {
	tr := &Track{Samples: []Sample{
		{T: 0, Position: Position{Lat: 10, Lon: 20, Heading: 350, Track: 350}},
		{T: 10 * time.Second, Position: Position{Lat: 20, Lon: 40, Heading: 10, Track: 10}},
	}}

	p := tr.At(5 * time.Second)
	if p.Lat != 15 || p.Lon != 30 {
		t.Errorf("Expected midpoint (15, 30), got (%v, %v)", p.Lat, p.Lon)
	}
	if math.Abs(p.Heading) > 1e-9 && math.Abs(p.Heading-360) > 1e-9 {
		t.Errorf("Expected heading to wrap through north, got %v", p.Heading)
	}

	if p := tr.At(time.Minute); p.Lat != 20 {
		t.Errorf("Expected clamp to last sample, got %v", p.Lat)
	}
}

func TestTrackAdvanceLoops(t *testing.T) {
	tr := &Track{Loop: true, Samples: []Sample{
		{T: 0, Position: Position{Lat: 0}},
		{T: 4 * time.Second, Position: Position{Lat: 4}},
	}}
	s := NewStore()
	tr.Advance(5*time.Second, s)
	if got := s.Number(PlaneLatitude, UnitDegreeLatitude); got != 1 {
		t.Errorf("Expected looped latitude 1, got %v", got)
	}
}

func TestLoadTrack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.json")
	data := `[{"t": 0, "lat": 37.6, "lon": -122.4, "heading": 280, "track": 281, "on_ground": true},
	          {"t": 2.5, "lat": 37.61, "lon": -122.45, "heading": 280, "track": 281}]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tr, err := LoadTrack(path)
	if err != nil {
		t.Fatalf("LoadTrack failed: %v", err)
	}
	if tr.Duration() != 2500*time.Millisecond {
		t.Errorf("Expected duration 2.5s, got %v", tr.Duration())
	}
	if !tr.Samples[0].OnGround {
		t.Error("Expected first sample on ground")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(bad, []byte(`[{"t": 3}, {"t": 1}]`), 0644)
	if _, err := LoadTrack(bad); err == nil {
		t.Error("Expected error for non-monotonic track")
	}
}
