// Package colorutil provides the display palette shared by the chart renderer and the UI.
package colorutil

import (
	"fmt"
	"image/color"
)

// Display colors used throughout the application.
var (
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Placeholder = color.RGBA{R: 0xcc, G: 0xca, B: 0xc8, A: 255} // "no chart" message
	Magenta     = color.RGBA{R: 255, G: 0, B: 255, A: 255}      // ownship marker
	Cyan        = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Green       = color.RGBA{R: 0, G: 255, B: 0, A: 255} // pan box
	Amber       = color.RGBA{R: 0xff, G: 0xb0, B: 0x00, A: 255}
)

// ParseHex parses "#rrggbb" or "#rrggbbaa" into a color.
func ParseHex(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("invalid color length %d", len(s))
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}
