package geometry

// BBox is a four-element bounding box as published in chart metadata.
//
// Geographic boxes are ordered [west, south, east, north]. Local (pixel)
// boxes are ordered [left, bottom, right, top]; pixel Y grows downward,
// so index 1 is numerically the larger Y value.
type BBox [4]float64

// ContainsGeo reports whether lon/lat lies inside a geographic box.
// Edges are inclusive.
func (b BBox) ContainsGeo(lat, lon float64) bool {
	return b[0] <= lon && lon <= b[2] && b[1] <= lat && lat <= b[3]
}

// ContainsPixel reports whether x/y lies inside a local pixel box.
// Edges are inclusive and the vertical bounds run from b[3] up to b[1].
func (b BBox) ContainsPixel(x, y float64) bool {
	return b[0] <= x && x <= b[2] && b[3] <= y && y <= b[1]
}

// SpanX returns b[2] - b[0].
func (b BBox) SpanX() float64 {
	return b[2] - b[0]
}

// GeoSpanY returns the latitude span (north minus south).
func (b BBox) GeoSpanY() float64 {
	return b[3] - b[1]
}

// PixelSpanY returns the pixel height (bottom minus top).
func (b BBox) PixelSpanY() float64 {
	return b[1] - b[3]
}
