package render

import (
	"image"
	"image/color"
	"testing"

	"mfd-charts/pkg/colorutil"
	"mfd-charts/pkg/geometry"

	"golang.org/x/image/draw"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestClearFillsBackground(t *testing.T) {
	s := NewSurface(10, 10)
	s.Clear()
	if got := s.Image().RGBAAt(5, 5); got != colorutil.Black {
		t.Errorf("Expected black background, got %v", got)
	}
}

func TestDrawImageMapsSourceRect(t *testing.T) {
	s := NewSurface(100, 100)
	s.Clear()
	src := solid(20, 20, color.RGBA{R: 255, A: 255})
	s.DrawImage(src, image.Rect(5, 5, 15, 15), geometry.NewRect(0, 0, 50, 50))

	if got := s.Image().RGBAAt(25, 25); got.R < 250 {
		t.Errorf("Expected red inside destination, got %v", got)
	}
	if got := s.Image().RGBAAt(75, 75); got != colorutil.Black {
		t.Errorf("Expected background outside destination, got %v", got)
	}
}

func TestDrawImageHonorsTransform(t *testing.T) {
	s := NewSurface(100, 100)
	s.Clear()
	s.SetTransform(geometry.ZoomPan(2, -20, 0))
	src := solid(10, 10, color.RGBA{G: 255, A: 255})
	// Destination (10..30, 0..20) lands at canvas (0..40, 0..40).
	s.DrawImage(src, src.Bounds(), geometry.NewRect(10, 0, 20, 20))

	if got := s.Image().RGBAAt(35, 35); got.G < 250 {
		t.Errorf("Expected green at (35,35), got %v", got)
	}
	if got := s.Image().RGBAAt(45, 10); got != colorutil.Black {
		t.Errorf("Expected background at (45,10), got %v", got)
	}
}

func TestFillTextCenteredDrawsNearCenter(t *testing.T) {
	s := NewSurface(400, 200)
	s.Clear()
	s.FillTextCentered("NO CHART AVAILABLE", 200, 100, colorutil.Placeholder)

	img := s.Image()
	minX, maxX := img.Bounds().Dx(), -1
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if img.RGBAAt(x, y) != colorutil.Black {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
	}
	if maxX < 0 {
		t.Fatal("Expected text pixels to be drawn")
	}
	center := (minX + maxX) / 2
	if center < 190 || center > 210 {
		t.Errorf("Expected text centered near x=200, got span %d..%d", minX, maxX)
	}
}

func TestCommitPublishesFrame(t *testing.T) {
	s := NewSurface(4, 4)
	s.Clear()
	if got := s.Frame().RGBAAt(1, 1); got.A != 0 {
		t.Errorf("Expected empty front buffer before commit, got %v", got)
	}
	s.Commit()
	if got := s.Frame().RGBAAt(1, 1); got != colorutil.Black {
		t.Errorf("Expected committed background, got %v", got)
	}
}

func TestFitToContainer(t *testing.T) {
	s := NewSurface(10, 10)
	s.SetContainerSize(320, 240)
	s.FitToContainer()
	if w, h := s.Size(); w != 320 || h != 240 {
		t.Errorf("Expected 320x240, got %vx%v", w, h)
	}
}

func TestStrokeRectRoundsOutward(t *testing.T) {
	s := NewSurface(40, 40)
	s.Clear()
	s.StrokeRect(geometry.NewRect(10.4, 10.4, 9.2, 9.2), colorutil.Green, 1)

	img := s.Image()
	if img.RGBAAt(10, 15) != colorutil.Green {
		t.Errorf("Expected left edge at x=10, got %v", img.RGBAAt(10, 15))
	}
	if img.RGBAAt(19, 15) != colorutil.Green {
		t.Errorf("Expected right edge at x=19, got %v", img.RGBAAt(19, 15))
	}
	if img.RGBAAt(15, 15) != colorutil.Black {
		t.Errorf("Expected interior untouched, got %v", img.RGBAAt(15, 15))
	}
}

func TestSetInterpolatorNearest(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, colorutil.Magenta)
	src.SetRGBA(1, 0, colorutil.Green)

	s := NewSurface(4, 1)
	s.SetInterpolator(draw.NearestNeighbor)
	s.Clear()
	s.DrawImage(src, src.Bounds(), geometry.NewRect(0, 0, 4, 1))

	img := s.Image()
	if img.RGBAAt(1, 0) != colorutil.Magenta || img.RGBAAt(2, 0) != colorutil.Green {
		t.Errorf("Expected hard edge between pixels 1 and 2, got %v %v", img.RGBAAt(1, 0), img.RGBAAt(2, 0))
	}
}

func TestAircraftIconHasBody(t *testing.T) {
	icon := AircraftIcon(colorutil.Magenta)
	if icon.Bounds().Dx() != IconWidth || icon.Bounds().Dy() != IconHeight {
		t.Fatalf("Unexpected icon size %v", icon.Bounds())
	}
	if icon.RGBAAt(20, 20).A == 0 {
		t.Error("Expected fuselage pixel to be opaque")
	}
	if icon.RGBAAt(2, 2).A != 0 {
		t.Error("Expected corner pixel to be transparent")
	}
}
