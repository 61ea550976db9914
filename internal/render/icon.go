package render

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// Ownship icon size in pixels at zoom 1.
const (
	IconWidth  = 40
	IconHeight = 47
)

// aircraft outline in a 40x47 box, nose up
var aircraftOutline = [][2]float32{
	{20, 0}, {23, 4}, {23, 16}, {40, 27}, {40, 31}, {23, 25},
	{22, 39}, {29, 44}, {29, 47}, {20, 44}, {11, 47}, {11, 44},
	{18, 39}, {17, 25}, {0, 31}, {0, 27}, {17, 16}, {17, 4},
}

// AircraftIcon rasterizes the ownship symbol in the given color.
func AircraftIcon(col color.Color) *image.RGBA {
	r := vector.NewRasterizer(IconWidth, IconHeight)
	r.MoveTo(aircraftOutline[0][0], aircraftOutline[0][1])
	for _, p := range aircraftOutline[1:] {
		r.LineTo(p[0], p[1])
	}
	r.ClosePath()

	dst := image.NewRGBA(image.Rect(0, 0, IconWidth, IconHeight))
	r.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
	return dst
}
