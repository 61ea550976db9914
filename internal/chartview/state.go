package chartview

import (
	"image"
	"math"

	"mfd-charts/internal/chart"
)

// Dimensions are derived from the loaded image and the canvas. They are
// recomputed when an image finishes loading, not every frame.
type Dimensions struct {
	Border float64

	// Source image size with the border trimmed off.
	BBoxW, BBoxH float64
	ImgRatio     float64

	// Fitted chart size in canvas pixels at zoom 1.
	ChartW, ChartH float64

	// Trimmed source pixels to fitted pixels.
	ScaleW, ScaleH float64

	// Georeference measures, zero for charts without georef.
	PlanW, PlanH        float64
	PxPerLong, PxPerLat float64
}

// Fit fits an imgW x imgH source image to the canvas.
func Fit(imgW, imgH, canvasW, canvasH float64, c *chart.Chart, cfg Config) Dimensions {
	d := Dimensions{Border: cfg.Border}
	if imgW <= 0 || imgH <= 0 {
		return d
	}

	d.BBoxW = imgW - cfg.Border*2
	d.BBoxH = imgH - cfg.Border*2

	d.ImgRatio = imgW / imgH
	d.ChartW = canvasW
	d.ChartH = d.ChartW / d.ImgRatio
	if !(imgH > imgW) {
		// landscape charts get overscan and need panning
		d.ChartH = canvasH * cfg.LandscapeOverscan
		d.ChartW = d.ChartW * d.ImgRatio * cfg.LandscapeOverscan
	}

	d.ScaleW = d.ChartW / d.BBoxW
	d.ScaleH = d.ChartH / d.BBoxH

	if c.IsGeoreferenced() {
		pv := c.PlanView
		d.PlanW = pv.BBoxLocal.SpanX()
		d.PlanH = pv.BBoxLocal.PixelSpanY()
		d.PxPerLong = d.PlanW / pv.BBoxGeo.SpanX()
		d.PxPerLat = d.PlanH / pv.BBoxGeo.GeoSpanY()
	}
	return d
}

// State is the mutable view state. Offsets are only written through
// SetXOffset/SetYOffset, which keep the scaled chart covering the canvas.
type State struct {
	Zoom    float64
	Dirty   bool
	Loading bool
	Visible bool

	Image image.Image
	Chart *chart.Chart
	Dims  Dimensions

	xOffset, yOffset float64
	canvasW, canvasH float64
	cfg              Config
}

// NewState creates an empty view state.
func NewState(cfg Config) *State {
	return &State{
		Zoom:  1,
		Dirty: true,
		Dims:  Dimensions{Border: cfg.Border},
		cfg:   cfg,
	}
}

// Config returns the configuration the state was created with.
func (s *State) Config() Config {
	return s.cfg
}

// SetCanvasSize records the drawing surface size used by the clamps.
func (s *State) SetCanvasSize(width, height float64) {
	s.canvasW, s.canvasH = width, height
}

// CanvasSize returns the last recorded surface size.
func (s *State) CanvasSize() (width, height float64) {
	return s.canvasW, s.canvasH
}

// XOffset returns the horizontal pan in canvas pixels (always <= 0).
func (s *State) XOffset() float64 {
	return s.xOffset
}

// YOffset returns the vertical pan in canvas pixels (always <= 0).
func (s *State) YOffset() float64 {
	return s.yOffset
}

// XBounds returns the allowed horizontal offset range.
func (s *State) XBounds() (lo, hi float64) {
	return -(s.Dims.ChartW*s.Zoom - s.canvasW), 0
}

// YBounds returns the allowed vertical offset range.
func (s *State) YBounds() (lo, hi float64) {
	return -(s.Dims.ChartH*s.Zoom - s.canvasH) - s.cfg.BottomPadding, 0
}

// SetXOffset clamps and stores the horizontal pan.
func (s *State) SetXOffset(v float64) {
	lo, hi := s.XBounds()
	s.xOffset = math.Min(hi, math.Max(lo, v))
}

// SetYOffset clamps and stores the vertical pan.
func (s *State) SetYOffset(v float64) {
	lo, hi := s.YBounds()
	s.yOffset = math.Min(hi, math.Max(lo, v))
}

// IsPortrait reports whether the loaded image is taller than wide.
func (s *State) IsPortrait() bool {
	if s.Image == nil {
		return false
	}
	b := s.Image.Bounds()
	return b.Dy() > b.Dx()
}

// ZoomedLevel returns the magnification used when zoomed in.
func (s *State) ZoomedLevel() float64 {
	if s.IsPortrait() {
		return s.cfg.PortraitZoom
	}
	return s.cfg.LandscapeZoom
}

// ready resets the view for a freshly decoded image.
func (s *State) ready(img image.Image) {
	s.Image = img
	s.Zoom = 1
	s.xOffset = 0
	s.yOffset = 0
	if img == nil {
		s.Dims = Dimensions{Border: s.cfg.Border}
	} else {
		b := img.Bounds()
		s.Dims = Fit(float64(b.Dx()), float64(b.Dy()), s.canvasW, s.canvasH, s.Chart, s.cfg)
	}
	s.Loading = false
	s.Dirty = true
}

// toggleZoom flips between fit and magnified views, keeping the chart point
// at canvas center in place. At zoom 1 offsets are in fitted pixels; when
// zoomed they are in magnified pixels, hence divide one way and multiply
// the other.
func (s *State) toggleZoom() {
	ctrX := s.canvasW/2 + math.Abs(s.xOffset)
	ctrY := s.canvasH/2 + math.Abs(s.yOffset)
	z := s.ZoomedLevel()
	if s.Zoom == 1 {
		s.Zoom = z
		s.SetXOffset(-(ctrX * z) + s.canvasW/2)
		s.SetYOffset(-(ctrY * z) + s.canvasH/2)
	} else {
		s.Zoom = 1
		s.SetXOffset(-(ctrX / z) + s.canvasW/2)
		s.SetYOffset(-(ctrY / z) + s.canvasH/2)
	}
}
