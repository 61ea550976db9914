package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mfd-charts/internal/chart"
	"mfd-charts/internal/project"
	"mfd-charts/internal/simvar"
)

const chartJSON = `{
  "icao_airport_identifier": "KSFO",
  "index_number": "11-1",
  "procedure_identifier": "ILS OR LOC RWY 28L",
  "georef": true,
  "planview": {"bbox_local": [60, 1400, 1000, 500], "bbox_geo": [-122.6, 37.5, -122.2, 37.8]}
}`

const trackJSON = `[
  {"t": 0, "lat": 37.6, "lon": -122.5, "heading": 280, "track": 280},
  {"t": 10, "lat": 37.62, "lon": -122.4, "heading": 280, "track": 282}
]`

func writeSession(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	sessionPath := filepath.Join(dir, "session.json")
	metaPath := filepath.Join(dir, "ksfo.json")
	trackPath := filepath.Join(dir, "track.json")
	if err := os.WriteFile(metaPath, []byte(chartJSON), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(trackPath, []byte(trackJSON), 0644); err != nil {
		t.Fatal(err)
	}

	f := project.New("KSFO")
	f.SetChartImage(sessionPath, filepath.Join(dir, "ksfo.png"))
	f.SetChartMeta(sessionPath, metaPath)
	f.SetTrack(sessionPath, trackPath)
	if err := f.Save(sessionPath); err != nil {
		t.Fatal(err)
	}
	return sessionPath
}

func TestLoadSession(t *testing.T) {
	sessionPath := writeSession(t)
	s := NewState()

	var events []EventType
	for _, ev := range []EventType{EventSessionLoaded, EventChartChanged, EventTrackChanged} {
		ev := ev
		s.On(ev, func(interface{}) { events = append(events, ev) })
	}

	if err := s.LoadSession(sessionPath); err != nil {
		t.Fatalf("LoadSession failed: %v", err)
	}
	if len(events) != 3 || events[0] != EventChartChanged || events[2] != EventSessionLoaded {
		t.Errorf("Unexpected event order %v", events)
	}

	img, c := s.CurrentChart()
	if filepath.Base(img) != "ksfo.png" {
		t.Errorf("Unexpected image path %q", img)
	}
	if c == nil || c.IndexText() != "KSFO 11-1" {
		t.Fatalf("Chart metadata not loaded: %+v", c)
	}

	s.Tick(5 * time.Second)
	pos := simvar.Read(s.Sim)
	if pos.Lat <= 37.6 || pos.Lat >= 37.62 {
		t.Errorf("Track replay did not interpolate latitude: %v", pos.Lat)
	}
}

func TestLoadSessionBadMeta(t *testing.T) {
	sessionPath := writeSession(t)
	meta := filepath.Join(filepath.Dir(sessionPath), "ksfo.json")
	os.WriteFile(meta, []byte("{not json"), 0644)

	s := NewState()
	if err := s.LoadSession(sessionPath); err == nil {
		t.Fatal("Expected error for corrupt chart metadata")
	}
	if s.Session != nil {
		t.Error("Session should not be replaced on failure")
	}
}

func TestSetChartEmits(t *testing.T) {
	s := NewState()
	var got *chart.Chart
	s.On(EventChartChanged, func(data interface{}) {
		got, _ = data.(*chart.Chart)
	})
	c := &chart.Chart{ICAOAirportIdentifier: "KOAK"}
	s.SetChart("koak.png", c)
	if got != c {
		t.Error("Listener did not receive the chart")
	}
}
