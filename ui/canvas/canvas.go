// Package canvas provides the fyne widget that presents the chart surface and
// turns keyboard, wheel and mouse input into named chart events.
package canvas

import (
	"image"
	"math"

	"mfd-charts/internal/chartview"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// FrameSource supplies the last committed frame.
type FrameSource interface {
	Frame() *image.RGBA
}

// ChartCanvas displays rendered chart frames.
type ChartCanvas struct {
	widget.BaseWidget

	frames FrameSource
	raster *fynecanvas.Raster

	// Drag distance not yet turned into pan events
	dragX, dragY float64
	panStep      float64

	lastSize fyne.Size

	// Callbacks
	onEvent  func(name string)
	onResize func(width, height int)
	onTap    func(x, y float64)
}

var (
	_ fyne.Focusable  = (*ChartCanvas)(nil)
	_ fyne.Tappable   = (*ChartCanvas)(nil)
	_ fyne.Draggable  = (*ChartCanvas)(nil)
	_ fyne.Scrollable = (*ChartCanvas)(nil)
)

// NewChartCanvas creates a canvas presenting frames from src. Drags are
// converted to pan events every panStep pixels.
func NewChartCanvas(src FrameSource, panStep float64) *ChartCanvas {
	cc := &ChartCanvas{
		frames:  src,
		panStep: panStep,
	}
	cc.raster = fynecanvas.NewRaster(cc.draw)
	cc.raster.ScaleMode = fynecanvas.ImageScaleSmooth
	cc.raster.SetMinSize(fyne.NewSize(320, 400))
	cc.ExtendBaseWidget(cc)
	return cc
}

// OnEvent sets the callback receiving chart event names.
func (cc *ChartCanvas) OnEvent(callback func(name string)) {
	cc.onEvent = callback
}

// OnResize sets the callback invoked when the widget size changes.
func (cc *ChartCanvas) OnResize(callback func(width, height int)) {
	cc.onResize = callback
}

// OnTap sets the callback receiving tap positions in surface pixels.
func (cc *ChartCanvas) OnTap(callback func(x, y float64)) {
	cc.onTap = callback
}

// draw is the raster drawing function.
func (cc *ChartCanvas) draw(w, h int) image.Image {
	if cc.frames == nil {
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return cc.frames.Frame()
}

func (cc *ChartCanvas) emit(name string) {
	if cc.onEvent != nil {
		cc.onEvent(name)
	}
}

// TypedKey handles arrow and page keys.
func (cc *ChartCanvas) TypedKey(ev *fyne.KeyEvent) {
	if name, ok := KeyToEvent(ev.Name); ok {
		cc.emit(name)
	}
}

// TypedRune handles the zoom keys.
func (cc *ChartCanvas) TypedRune(r rune) {
	if name, ok := RuneToEvent(r); ok {
		cc.emit(name)
	}
}

func (cc *ChartCanvas) FocusGained() {}
func (cc *ChartCanvas) FocusLost()   {}

// Scrolled uses the mouse wheel for zooming.
func (cc *ChartCanvas) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		cc.emit(chartview.EventZoomInc)
	} else if ev.Scrolled.DY < 0 {
		cc.emit(chartview.EventZoomDec)
	}
}

// Dragged pans the chart in pan-step increments.
func (cc *ChartCanvas) Dragged(ev *fyne.DragEvent) {
	var names []string
	names, cc.dragX, cc.dragY = DragEvents(cc.dragX+float64(ev.Dragged.DX), cc.dragY+float64(ev.Dragged.DY), cc.panStep)
	for _, name := range names {
		cc.emit(name)
	}
}

func (cc *ChartCanvas) DragEnd() {
	cc.dragX, cc.dragY = 0, 0
}

// Tapped focuses the canvas and reports the tap position.
func (cc *ChartCanvas) Tapped(ev *fyne.PointEvent) {
	if a := fyne.CurrentApp(); a != nil {
		if c := a.Driver().CanvasForObject(cc); c != nil {
			c.Focus(cc)
		}
	}

	// Workaround for Fyne bug: reject clicks outside widget bounds
	size := cc.Size()
	if ev.Position.X < 0 || ev.Position.Y < 0 ||
		ev.Position.X > size.Width || ev.Position.Y > size.Height {
		return
	}
	if cc.onTap != nil {
		cc.onTap(float64(ev.Position.X), float64(ev.Position.Y))
	}
}

// Refresh redraws the raster from the latest frame.
func (cc *ChartCanvas) Refresh() {
	cc.raster.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (cc *ChartCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &chartCanvasRenderer{canvas: cc}
}

// KeyToEvent maps a physical key to a chart event name.
func KeyToEvent(key fyne.KeyName) (string, bool) {
	switch key {
	case fyne.KeyUp:
		return chartview.EventPanUp, true
	case fyne.KeyDown:
		return chartview.EventPanDown, true
	case fyne.KeyLeft:
		return chartview.EventPanLeft, true
	case fyne.KeyRight:
		return chartview.EventPanRight, true
	case fyne.KeyPageUp:
		return chartview.EventZoomInc, true
	case fyne.KeyPageDown:
		return chartview.EventZoomDec, true
	}
	return "", false
}

// RuneToEvent maps a typed character to a chart event name.
func RuneToEvent(r rune) (string, bool) {
	switch r {
	case '+', '=':
		return chartview.EventZoomInc, true
	case '-':
		return chartview.EventZoomDec, true
	}
	return "", false
}

// DragEvents converts an accumulated drag distance into pan events, one per
// step along each axis, and returns the remainder. Dragging right moves the
// chart right, which the joystick vocabulary calls LEFT.
func DragEvents(dx, dy, step float64) (names []string, remX, remY float64) {
	if step <= 0 {
		return nil, 0, 0
	}
	for math.Abs(dx) >= step {
		if dx > 0 {
			names = append(names, chartview.EventPanLeft)
			dx -= step
		} else {
			names = append(names, chartview.EventPanRight)
			dx += step
		}
	}
	for math.Abs(dy) >= step {
		if dy > 0 {
			names = append(names, chartview.EventPanUp)
			dy -= step
		} else {
			names = append(names, chartview.EventPanDown)
			dy += step
		}
	}
	return names, dx, dy
}

type chartCanvasRenderer struct {
	canvas *ChartCanvas
}

func (r *chartCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.raster.Resize(size)
	if size == r.canvas.lastSize {
		return
	}
	r.canvas.lastSize = size
	if r.canvas.onResize != nil && size.Width > 0 && size.Height > 0 {
		r.canvas.onResize(int(size.Width), int(size.Height))
	}
}

func (r *chartCanvasRenderer) MinSize() fyne.Size {
	return r.canvas.raster.MinSize()
}

func (r *chartCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *chartCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.raster}
}

func (r *chartCanvasRenderer) Destroy() {}
