// Package render provides a 2D drawing surface backed by an RGBA image.
package render

import (
	"image"
	"image/color"
	"sync"

	"mfd-charts/pkg/colorutil"
	"mfd-charts/pkg/geometry"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextScale enlarges the 7x13 bitmap face to roughly the 26px cockpit font.
const TextScale = 2

// Surface draws into a back buffer; Commit publishes it to the front buffer
// that Frame reads, so a presenter never sees a half-drawn frame.
type Surface struct {
	back       *image.RGBA
	transform  geometry.AffineTransform
	background color.RGBA
	interp     draw.Interpolator

	containerW, containerH int

	mu    sync.Mutex
	front *image.RGBA
}

// NewSurface creates a surface of the given pixel size.
func NewSurface(width, height int) *Surface {
	s := &Surface{
		transform:  geometry.Identity(),
		background: colorutil.Black,
		interp:     draw.ApproxBiLinear,
		containerW: width,
		containerH: height,
	}
	s.Resize(width, height)
	return s
}

// SetInterpolator selects the resampling kernel used by DrawImage.
func (s *Surface) SetInterpolator(interp draw.Interpolator) {
	s.interp = interp
}

// Size returns the surface size in pixels.
func (s *Surface) Size() (width, height float64) {
	b := s.back.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Resize reallocates the buffers. Contents are discarded.
func (s *Surface) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.back = image.NewRGBA(image.Rect(0, 0, width, height))
	s.mu.Lock()
	s.front = image.NewRGBA(image.Rect(0, 0, width, height))
	s.mu.Unlock()
}

// SetContainerSize records the size of the widget hosting the surface.
func (s *Surface) SetContainerSize(width, height int) {
	s.containerW, s.containerH = width, height
}

// FitToContainer resizes the surface to the last recorded container size.
func (s *Surface) FitToContainer() {
	w, h := s.Size()
	if int(w) == s.containerW && int(h) == s.containerH {
		return
	}
	s.Resize(s.containerW, s.containerH)
}

// Clear fills the back buffer with the background color.
func (s *Surface) Clear() {
	draw.Draw(s.back, s.back.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
}

// SetTransform replaces the current transform.
func (s *Surface) SetTransform(t geometry.AffineTransform) {
	s.transform = t
}

// DrawImage maps the src rectangle of img onto dst (in transformed space).
func (s *Surface) DrawImage(img image.Image, src image.Rectangle, dst geometry.Rect) {
	if img == nil || src.Empty() || dst.Empty() {
		return
	}
	srcRect := geometry.NewRect(float64(src.Min.X), float64(src.Min.Y), float64(src.Dx()), float64(src.Dy()))
	m := s.transform.Compose(geometry.RectToRect(srcRect, dst))
	s.interp.Transform(s.back, m.Aff3(), img, src, draw.Over, nil)
}

// StrokeRect outlines r (in transformed space, axis-aligned transforms only).
func (s *Surface) StrokeRect(r geometry.Rect, col color.Color, width int) {
	tl := s.transform.Apply(geometry.Point2D{X: r.X, Y: r.Y})
	br := s.transform.Apply(geometry.Point2D{X: r.X + r.Width, Y: r.Y + r.Height})
	b := geometry.NewRect(tl.X, tl.Y, br.X-tl.X, br.Y-tl.Y).ToImage()
	x1, y1, x2, y2 := b.Min.X, b.Min.Y, b.Max.X, b.Max.Y
	u := image.NewUniform(col)
	for t := 0; t < width; t++ {
		draw.Draw(s.back, image.Rect(x1, y1+t, x2, y1+t+1), u, image.Point{}, draw.Over)
		draw.Draw(s.back, image.Rect(x1, y2-t-1, x2, y2-t), u, image.Point{}, draw.Over)
		draw.Draw(s.back, image.Rect(x1+t, y1, x1+t+1, y2), u, image.Point{}, draw.Over)
		draw.Draw(s.back, image.Rect(x2-t-1, y1, x2-t, y2), u, image.Point{}, draw.Over)
	}
}

// FillTextCentered draws text horizontally centered on x with its baseline
// at y. Text ignores the current transform.
func (s *Surface) FillTextCentered(text string, x, y float64, col color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{Face: face}
	w := d.MeasureString(text).Ceil()
	m := face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()

	glyphs := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = glyphs
	d.Src = image.NewUniform(col)
	d.Dot = fixed.Point26_6{X: 0, Y: m.Ascent}
	d.DrawString(text)

	sw, sh := w*TextScale, h*TextScale
	left := int(x) - sw/2
	top := int(y) - m.Ascent.Ceil()*TextScale
	draw.NearestNeighbor.Scale(s.back, image.Rect(left, top, left+sw, top+sh), glyphs, glyphs.Bounds(), draw.Over, nil)
}

// Commit publishes the back buffer.
func (s *Surface) Commit() {
	s.mu.Lock()
	copy(s.front.Pix, s.back.Pix)
	s.mu.Unlock()
}

// Frame returns a copy of the last committed frame.
func (s *Surface) Frame() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := image.NewRGBA(s.front.Bounds())
	copy(out.Pix, s.front.Pix)
	return out
}

// Image exposes the back buffer, e.g. for encoding a rendered frame.
func (s *Surface) Image() *image.RGBA {
	return s.back
}
