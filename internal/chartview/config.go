package chartview

import "time"

// Config holds the tunable constants of the chart view.
type Config struct {
	RenderCooldown time.Duration // minimum time between non-dirty renders
	PanStep        float64       // canvas pixels per joystick event
	Border         float64       // print margin trimmed from each image edge
	BottomPadding  float64       // extra scroll room below the chart

	PortraitZoom  float64
	LandscapeZoom float64
	// Landscape charts are fitted to the canvas height times this factor.
	LandscapeOverscan float64
	// Icon size divisor while zoomed in.
	ZoomedIconScale float64

	ShowPanBox bool // outline of the visible area while at zoom 1
}

// DefaultConfig returns the cockpit display defaults.
func DefaultConfig() Config {
	return Config{
		RenderCooldown:    50 * time.Millisecond,
		PanStep:           40,
		Border:            54,
		BottomPadding:     20,
		PortraitZoom:      2.0,
		LandscapeZoom:     1.6,
		LandscapeOverscan: 1.2,
		ZoomedIconScale:   1.5,
	}
}

// WithRenderCooldown returns a copy of cfg with a different render throttle.
func (cfg Config) WithRenderCooldown(d time.Duration) Config {
	if d > 0 {
		cfg.RenderCooldown = d
	}
	return cfg
}

// WithPanStep returns a copy of cfg with a different joystick step.
func (cfg Config) WithPanStep(step float64) Config {
	if step > 0 {
		cfg.PanStep = step
	}
	return cfg
}

// WithPanBox returns a copy of cfg with the pan box enabled or disabled.
func (cfg Config) WithPanBox(show bool) Config {
	cfg.ShowPanBox = show
	return cfg
}
