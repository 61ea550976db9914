// Package prefs provides JSON-based application preferences.
package prefs

import (
	"encoding/json"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"mfd-charts/internal/chartview"
	"mfd-charts/pkg/colorutil"
)

const prefsFile = "preferences.json"

// Prefs stores application preferences as a key-value map.
type Prefs struct {
	mu     sync.RWMutex
	values map[string]interface{}
	path   string
}

// Preference keys.
const (
	KeyRenderCooldownMs = "renderCooldownMs"
	KeyPanStep          = "panStep"
	KeyShowPanBox       = "showPanBox"
	KeyMarkerColor      = "markerColor"
	KeyLastSession      = "lastSession"
	KeyLastDir          = "lastDirectory"
	KeyWindowWidth      = "windowWidth"
	KeyWindowHeight     = "windowHeight"
)

// Load reads preferences from ~/.config/mfd-charts/preferences.json.
// Returns a Prefs with defaults if the file doesn't exist.
func Load() *Prefs {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return LoadFrom(filepath.Join(configDir, "mfd-charts", prefsFile))
}

// LoadFrom reads preferences from an explicit file path.
func LoadFrom(path string) *Prefs {
	p := &Prefs{
		values: make(map[string]interface{}),
		path:   path,
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return p
	}
	if err := json.Unmarshal(data, &p.values); err != nil {
		log.Printf("Prefs: ignoring %s: %v", path, err)
	}
	return p
}

// ViewConfig builds the chart view configuration from stored preferences.
func (p *Prefs) ViewConfig() chartview.Config {
	cooldown := p.FloatWithFallback(KeyRenderCooldownMs, 50)
	return chartview.DefaultConfig().
		WithRenderCooldown(time.Duration(cooldown * float64(time.Millisecond))).
		WithPanStep(p.FloatWithFallback(KeyPanStep, 40)).
		WithPanBox(p.Bool(KeyShowPanBox, false))
}

// MarkerColor returns the ownship marker color, or fallback if unset or invalid.
func (p *Prefs) MarkerColor(fallback color.RGBA) color.RGBA {
	s := p.String(KeyMarkerColor)
	if s == "" {
		return fallback
	}
	c, err := colorutil.ParseHex(s)
	if err != nil {
		log.Printf("Prefs: %v", err)
		return fallback
	}
	return c
}

// Path returns the file preferences are saved to.
func (p *Prefs) Path() string {
	return p.path
}

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	p.mu.RLock()
	data, err := json.MarshalIndent(p.values, "", "  ")
	p.mu.RUnlock()
	if err != nil {
		return err
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

// Float returns a float64 preference, or 0 if not set.
func (p *Prefs) Float(key string) float64 {
	return p.FloatWithFallback(key, 0)
}

// FloatWithFallback returns a float64 preference, or fallback if not set.
func (p *Prefs) FloatWithFallback(key string, fallback float64) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return fallback
}

// SetFloat stores a float64 preference.
func (p *Prefs) SetFloat(key string, val float64) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// String returns a string preference, or "" if not set.
func (p *Prefs) String(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// SetString stores a string preference.
func (p *Prefs) SetString(key string, val string) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// Bool returns a bool preference, or fallback if not set.
func (p *Prefs) Bool(key string, fallback bool) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		switch b := v.(type) {
		case bool:
			return b
		}
	}
	return fallback
}

// SetBool stores a bool preference.
func (p *Prefs) SetBool(key string, val bool) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}
