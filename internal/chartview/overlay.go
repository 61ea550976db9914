package chartview

import (
	"math"

	"mfd-charts/internal/chart"
	"mfd-charts/internal/simvar"
	"mfd-charts/pkg/geometry"
)

// Ownship icon size at zoom 1.
const (
	iconW = 40.0
	iconH = 47.0
)

// Marker places the ownship icon in fitted chart pixels (before zoom/pan).
type Marker struct {
	X, Y     float64
	Rotation float64 // radians, clockwise from north
	Scale    float64 // icon size divisor
}

// IconRect returns the icon destination rectangle centered on the origin.
func (m Marker) IconRect() geometry.Rect {
	return geometry.NewRect(-iconW/2/m.Scale, -iconH/2/m.Scale, iconW/m.Scale, iconH/m.Scale)
}

// LocalPixel converts a position inside the plan view to border-trimmed
// source pixels. ok is false outside the plan view's geographic box.
func LocalPixel(c *chart.Chart, d Dimensions, lat, lon float64) (p geometry.Point2D, ok bool) {
	pv := c.PlanView
	if !pv.BBoxGeo.ContainsGeo(lat, lon) {
		return geometry.Point2D{}, false
	}
	x := (lon - pv.BBoxGeo[0]) * d.PxPerLong
	y := math.Abs(lat-pv.BBoxGeo[3]) * d.PxPerLat
	x += pv.BBoxLocal[0] - d.Border
	y += pv.BBoxLocal[3] - d.Border
	return geometry.Point2D{X: x, Y: y}, true
}

// PlaneMarker computes the ownship marker for pos. It returns false when the
// chart has no georeference, the aircraft is outside the plan view, or the
// aircraft is under an inset.
func PlaneMarker(c *chart.Chart, d Dimensions, pos simvar.Position, zoom float64, cfg Config) (Marker, bool) {
	if !c.IsGeoreferenced() {
		return Marker{}, false
	}
	p, ok := LocalPixel(c, d, pos.Lat, pos.Lon)
	if !ok {
		return Marker{}, false
	}
	if c.InsetAt(p.X, p.Y) {
		return Marker{}, false
	}

	scale := 1.0
	if zoom > 1 {
		scale = cfg.ZoomedIconScale
	}
	return Marker{
		X:        math.Abs(p.X) * d.ScaleW,
		Y:        math.Abs(p.Y) * d.ScaleH,
		Rotation: math.Round(pos.DisplayHeading()) * (math.Pi / 180),
		Scale:    scale,
	}, true
}

// GeoAt maps a fitted chart pixel back to latitude/longitude.
func GeoAt(c *chart.Chart, d Dimensions, chartX, chartY float64) (lat, lon float64, ok bool) {
	if !c.IsGeoreferenced() || d.ScaleW == 0 || d.ScaleH == 0 || d.PxPerLong == 0 || d.PxPerLat == 0 {
		return 0, 0, false
	}
	pv := c.PlanView
	x := chartX/d.ScaleW - (pv.BBoxLocal[0] - d.Border)
	y := chartY/d.ScaleH - (pv.BBoxLocal[3] - d.Border)
	lon = pv.BBoxGeo[0] + x/d.PxPerLong
	lat = pv.BBoxGeo[3] - y/d.PxPerLat
	return lat, lon, pv.BBoxGeo.ContainsGeo(lat, lon)
}
