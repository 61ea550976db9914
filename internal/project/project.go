// Package project provides chart session file handling and persistence.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// File represents a chart session file (.chartsession.json): which chart
// image and metadata to show and, optionally, a flight track to replay.
type File struct {
	Version  int       `json:"version"`
	Name     string    `json:"name"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`

	// Paths (relative to the session file)
	ChartImagePath string `json:"chart_image"`
	ChartMetaPath  string `json:"chart_meta,omitempty"`
	TrackPath      string `json:"track,omitempty"`

	LoopTrack bool `json:"loop_track,omitempty"`
}

// New creates a new session file.
func New(name string) *File {
	now := time.Now()
	return &File{
		Version:  1,
		Name:     name,
		Created:  now,
		Modified: now,
	}
}

// Load loads a session from a file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse session %s: %w", path, err)
	}
	if f.ChartImagePath == "" {
		return nil, fmt.Errorf("session %s names no chart image", path)
	}
	return &f, nil
}

// Save saves the session to a file.
func (p *File) Save(path string) error {
	p.Modified = time.Now()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SetChartImage sets the chart image path (relative to the session).
func (p *File) SetChartImage(sessionPath, imagePath string) {
	p.ChartImagePath = relativeTo(sessionPath, imagePath)
	p.Modified = time.Now()
}

// SetChartMeta sets the chart metadata path (relative to the session).
func (p *File) SetChartMeta(sessionPath, metaPath string) {
	p.ChartMetaPath = relativeTo(sessionPath, metaPath)
	p.Modified = time.Now()
}

// SetTrack sets the flight track path (relative to the session).
func (p *File) SetTrack(sessionPath, trackPath string) {
	p.TrackPath = relativeTo(sessionPath, trackPath)
	p.Modified = time.Now()
}

// GetChartImagePath returns the absolute path to the chart image.
func (p *File) GetChartImagePath(sessionPath string) string {
	return resolve(sessionPath, p.ChartImagePath)
}

// GetChartMetaPath returns the absolute path to the chart metadata, or "".
func (p *File) GetChartMetaPath(sessionPath string) string {
	return resolve(sessionPath, p.ChartMetaPath)
}

// GetTrackPath returns the absolute path to the flight track, or "".
func (p *File) GetTrackPath(sessionPath string) string {
	return resolve(sessionPath, p.TrackPath)
}

func relativeTo(sessionPath, path string) string {
	rel, err := filepath.Rel(filepath.Dir(sessionPath), path)
	if err != nil {
		return path
	}
	return rel
}

func resolve(sessionPath, path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(sessionPath), path)
}
