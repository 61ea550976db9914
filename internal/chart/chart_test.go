package chart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleJSON = `{
  "id": "KSFO-11-1",
  "icao_airport_identifier": "KSFO",
  "index_number": "11-1",
  "procedure_identifier": "ILS OR LOC RWY 28L",
  "georef": true,
  "planview": {
    "bbox_local": [60, 1400, 1000, 500],
    "bbox_geo": [-122.6, 37.5, -122.2, 37.8]
  },
  "insets": [
    {"bbox_local": [700, 1350, 950, 1100]}
  ]
}`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c.IndexText() != "KSFO 11-1" {
		t.Errorf("Expected index text 'KSFO 11-1', got '%s'", c.IndexText())
	}
	if c.ProcedureIdentifier != "ILS OR LOC RWY 28L" {
		t.Errorf("Unexpected procedure identifier '%s'", c.ProcedureIdentifier)
	}
	if !c.IsGeoreferenced() {
		t.Error("Expected chart to be georeferenced")
	}
	if c.PlanView == nil || c.PlanView.BBoxGeo[0] != -122.6 {
		t.Fatalf("Plan view not decoded: %+v", c.PlanView)
	}
	if len(c.Insets) != 1 || c.Insets[0].BBoxLocal[1] != 1350 {
		t.Errorf("Insets not decoded: %+v", c.Insets)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte(`{"georef": "yes"`)); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestNilChartIsNotGeoreferenced(t *testing.T) {
	var c *Chart
	if c.IsGeoreferenced() {
		t.Error("Expected nil chart to report no georeference")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "chart.json")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.PlanView.BBoxLocal != c.PlanView.BBoxLocal {
		t.Errorf("bbox_local mismatch: %v vs %v", loaded.PlanView.BBoxLocal, c.PlanView.BBoxLocal)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped not-exist error, got %v", err)
	}
}

func TestInsetAt(t *testing.T) {
	c, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !c.InsetAt(800, 1200) {
		t.Error("Expected point inside inset")
	}
	if !c.InsetAt(700, 1100) {
		t.Error("Expected inset corner to be inclusive")
	}
	if c.InsetAt(600, 1200) {
		t.Error("Expected point left of inset to be outside")
	}
	if c.InsetAt(800, 1351) {
		t.Error("Expected point below inset to be outside")
	}
}

func TestInsetIndexMany(t *testing.T) {
	var insets []Inset
	for i := 0; i < 20; i++ {
		x := float64(i * 100)
		insets = append(insets, Inset{BBoxLocal: [4]float64{x, 90, x + 50, 10}})
	}
	idx := NewInsetIndex(insets)
	if !idx.Contains(25, 50) {
		t.Error("Expected point inside first inset")
	}
	if !idx.Contains(1925, 50) {
		t.Error("Expected point inside last inset")
	}
	if idx.Contains(1975, 50) {
		t.Error("Expected point in gap to be outside")
	}
}
