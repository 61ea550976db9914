package chartview

import (
	"image"
	"image/color"
	"math"

	"mfd-charts/internal/simvar"
	"mfd-charts/pkg/colorutil"
	"mfd-charts/pkg/geometry"
)

// NoChartText is drawn when no image is loaded.
const NoChartText = "NO CHART AVAILABLE"

// Surface is the 2D drawing target of the view.
type Surface interface {
	Size() (width, height float64)
	Clear()
	SetTransform(t geometry.AffineTransform)
	DrawImage(img image.Image, src image.Rectangle, dst geometry.Rect)
	StrokeRect(r geometry.Rect, col color.Color, width int)
	FillTextCentered(text string, x, y float64, col color.Color)
	FitToContainer()
}

// Render draws one frame of st onto s. sim may be nil, in which case no
// ownship marker is drawn.
func Render(s Surface, st *State, sim simvar.Host, icon image.Image) {
	w, h := s.Size()
	s.SetTransform(geometry.Identity())
	s.Clear()

	if st.Image == nil {
		s.FillTextCentered(NoChartText, w/2, h/2, colorutil.Placeholder)
		return
	}

	view := geometry.ZoomPan(st.Zoom, st.xOffset, st.yOffset)
	s.SetTransform(view)
	s.DrawImage(st.Image, trimmedBounds(st.Image, st.Dims.Border), geometry.NewRect(0, 0, st.Dims.ChartW, st.Dims.ChartH))

	if sim != nil && icon != nil && st.Chart.IsGeoreferenced() {
		m, ok := PlaneMarker(st.Chart, st.Dims, simvar.Read(sim), st.Zoom, st.cfg)
		if ok {
			s.SetTransform(view.
				Compose(geometry.Translation(m.X, m.Y)).
				Compose(geometry.Rotation(m.Rotation)))
			s.DrawImage(icon, icon.Bounds(), m.IconRect())
		}
	}
	s.SetTransform(geometry.Identity())

	if st.cfg.ShowPanBox && st.Zoom == 1 {
		s.StrokeRect(PanBox(st), colorutil.Green, 4)
	}
}

func trimmedBounds(img image.Image, border float64) image.Rectangle {
	b := img.Bounds()
	n := int(border)
	return image.Rect(b.Min.X+n, b.Min.Y+n, b.Max.X-n, b.Max.Y-n)
}

// PanBox returns the scroll indicator rectangle in canvas pixels.
func PanBox(st *State) geometry.Rect {
	cw, ch := st.canvasW, st.canvasH
	gapX := st.Dims.ChartW - cw
	gapY := st.Dims.ChartH - ch
	var percX, percY float64
	if gapX != 0 {
		percX = math.Min(1, math.Abs(st.xOffset/gapX))
	}
	if gapY != 0 {
		percY = math.Min(1, math.Abs(st.yOffset/gapY))
	}
	boxW := cw * 0.6
	boxH := ch * 0.6
	return geometry.NewRect(
		(cw-boxW-4)*percX+2,
		(ch-boxH-24)*percY+2,
		boxW, boxH,
	)
}
