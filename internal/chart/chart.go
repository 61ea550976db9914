// Package chart provides procedure chart metadata and its JSON representation.
package chart

import (
	"encoding/json"
	"fmt"
	"os"

	"mfd-charts/pkg/geometry"
)

// Chart describes one procedure chart image and its georeference data.
// Field names follow the chart provider's JSON.
type Chart struct {
	ID                    string    `json:"id,omitempty"`
	ICAOAirportIdentifier string    `json:"icao_airport_identifier"`
	IndexNumber           string    `json:"index_number"`
	ProcedureIdentifier   string    `json:"procedure_identifier"`
	Georef                bool      `json:"georef"`
	PlanView              *PlanView `json:"planview,omitempty"`
	Insets                []Inset   `json:"insets,omitempty"`

	insetIndex *InsetIndex
}

// PlanView is the georeferenced part of the chart image.
type PlanView struct {
	BBoxLocal geometry.BBox `json:"bbox_local"`
	BBoxGeo   geometry.BBox `json:"bbox_geo"`
}

// Inset is a detail region drawn inside the chart (an airport diagram, for
// example) where the plan view mapping does not apply.
type Inset struct {
	BBoxLocal geometry.BBox `json:"bbox_local"`
}

// IndexText returns the header text shown for the chart, e.g. "KSFO 11-1".
func (c *Chart) IndexText() string {
	return fmt.Sprintf("%s %s", c.ICAOAirportIdentifier, c.IndexNumber)
}

// IsGeoreferenced reports whether the aircraft overlay applies.
func (c *Chart) IsGeoreferenced() bool {
	return c != nil && c.Georef
}

// InsetAt reports whether the local pixel point is covered by an inset.
// The spatial index is built on first use.
func (c *Chart) InsetAt(x, y float64) bool {
	if len(c.Insets) == 0 {
		return false
	}
	if c.insetIndex == nil {
		c.insetIndex = NewInsetIndex(c.Insets)
	}
	return c.insetIndex.Contains(x, y)
}

// Parse decodes chart metadata from JSON.
func Parse(data []byte) (*Chart, error) {
	var c Chart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse chart metadata: %w", err)
	}
	return &c, nil
}

// Load reads chart metadata from a JSON file.
func Load(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart metadata: %w", err)
	}
	return Parse(data)
}

// Save writes chart metadata to a JSON file.
func (c *Chart) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
