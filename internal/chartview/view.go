// Package chartview implements the MFD chart viewer: fitting a procedure
// chart image to the display, pan and zoom through discrete events, and the
// ownship overlay on georeferenced charts.
//
// The view is single-threaded. The host calls Update every frame, forwards
// events through HandleEvent, and hands decoded images back through
// OnLoadComplete.
package chartview

import (
	"image"
	"time"

	"mfd-charts/internal/chart"
	chartimage "mfd-charts/internal/image"
	"mfd-charts/internal/simvar"
	"mfd-charts/pkg/geometry"
)

// InfoPanel receives the chart header texts.
type InfoPanel interface {
	SetIndexNumber(text string)
	SetProcedureIdentifier(text string)
	SetNoGeorefVisible(visible bool)
}

// Loader starts decoding a chart image and returns a handle for it.
type Loader interface {
	Begin(url string) chartimage.Handle
}

// View is the chart viewer component.
type View struct {
	cfg     Config
	state   *State
	surface Surface
	info    InfoPanel
	loader  Loader
	sim     simvar.Host
	icon    image.Image

	renderTmr time.Duration
	pending   chartimage.Handle
}

// New creates a chart view. info and sim may be nil.
func New(cfg Config, surface Surface, loader Loader, sim simvar.Host, info InfoPanel) *View {
	return &View{
		cfg:       cfg,
		state:     NewState(cfg),
		surface:   surface,
		info:      info,
		loader:    loader,
		sim:       sim,
		renderTmr: cfg.RenderCooldown,
	}
}

// SetIcon sets the ownship icon image.
func (v *View) SetIcon(icon image.Image) {
	v.icon = icon
	v.state.Dirty = true
}

// State exposes the view state for inspection.
func (v *View) State() *State {
	return v.state
}

// IsVisible reports whether the view is shown.
func (v *View) IsVisible() bool {
	return v.state.Visible
}

// IsPortrait reports whether the current chart image is taller than wide.
func (v *View) IsPortrait() bool {
	return v.state.IsPortrait()
}

// LoadChart starts loading url (when non-empty) and applies chart metadata
// (when non-nil). The returned handle is 0 if no load was started.
func (v *View) LoadChart(url string, c *chart.Chart) chartimage.Handle {
	var h chartimage.Handle
	if url != "" {
		v.state.Loading = true
		h = v.loader.Begin(url)
		v.pending = h
	}
	if c != nil {
		v.state.Chart = c
		if v.info != nil {
			v.info.SetIndexNumber(c.IndexText())
			v.info.SetProcedureIdentifier(c.ProcedureIdentifier)
			v.info.SetNoGeorefVisible(!c.Georef)
		}
	}
	return h
}

// OnLoadComplete finishes the load identified by h. Completions for any
// handle other than the latest are ignored. A nil img means decoding
// failed; the view then shows the no-chart placeholder.
func (v *View) OnLoadComplete(h chartimage.Handle, img image.Image) bool {
	if h == 0 || h != v.pending {
		return false
	}
	v.pending = 0
	v.syncCanvas()
	v.state.ready(img)
	return true
}

// Show fits the surface to its container and makes the view visible.
func (v *View) Show() {
	v.surface.FitToContainer()
	v.syncCanvas()
	v.state.Dirty = true
	v.state.Visible = true
}

// Hide makes the view invisible. Updates and events are ignored while hidden.
func (v *View) Hide() {
	v.state.Visible = false
}

// Update advances the render throttle by dt and renders when the cooldown
// has elapsed or the view is dirty. It reports whether a frame was drawn.
func (v *View) Update(dt time.Duration) bool {
	if !v.state.Visible || v.state.Loading {
		return false
	}
	v.renderTmr -= dt
	if v.renderTmr > 0 && !v.state.Dirty {
		return false
	}
	v.renderTmr = v.cfg.RenderCooldown
	v.state.Dirty = false
	v.syncCanvas()
	Render(v.surface, v.state, v.sim, v.icon)
	return true
}

// HandleEvent applies a discrete event. Events are ignored while hidden.
func (v *View) HandleEvent(event string) bool {
	if !v.state.Visible {
		return false
	}
	v.syncCanvas()
	return HandleEvent(v.state, event)
}

// ChartPointAt maps a canvas position to fitted chart pixels and, for
// georeferenced charts inside the plan view, to latitude/longitude.
func (v *View) ChartPointAt(canvasX, canvasY float64) (p geometry.Point2D, lat, lon float64, geo bool) {
	st := v.state
	inv, ok := geometry.ZoomPan(st.Zoom, st.xOffset, st.yOffset).Inverse()
	if !ok {
		return geometry.Point2D{}, 0, 0, false
	}
	p = inv.Apply(geometry.Point2D{X: canvasX, Y: canvasY})
	lat, lon, geo = GeoAt(st.Chart, st.Dims, p.X, p.Y)
	return p, lat, lon, geo
}

func (v *View) syncCanvas() {
	w, h := v.surface.Size()
	v.state.SetCanvasSize(w, h)
}
