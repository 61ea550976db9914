// Command chartrender renders one frame of a chart at a given aircraft
// position and writes it as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"

	"mfd-charts/internal/chart"
	"mfd-charts/internal/chartview"
	chartimage "mfd-charts/internal/image"
	"mfd-charts/internal/render"
	"mfd-charts/internal/simvar"
	"mfd-charts/pkg/colorutil"

	"golang.org/x/image/draw"
)

// syncLoader decodes on Begin so the frame can be rendered without a host loop.
type syncLoader struct {
	next   chartimage.Handle
	result chartimage.Result
}

func (l *syncLoader) Begin(src string) chartimage.Handle {
	l.next++
	img, err := chartimage.Load(src)
	l.result = chartimage.Result{Handle: l.next, Source: src, Image: img, Err: err}
	return l.next
}

func main() {
	imagePath := flag.String("image", "", "Path to chart image (PNG, JPEG, TIFF, BMP, WebP)")
	metaPath := flag.String("meta", "", "Path to chart metadata JSON")
	lat := flag.Float64("lat", 0, "Aircraft latitude")
	lon := flag.Float64("lon", 0, "Aircraft longitude")
	heading := flag.Float64("heading", 0, "True heading, degrees")
	groundTrack := flag.Float64("gtrack", -1, "GPS ground track, degrees (default: heading)")
	onGround := flag.Bool("ground", false, "Aircraft is on the ground")
	replay := flag.String("replay", "", "Flight track JSON to take the position from")
	at := flag.Duration("at", 0, "Offset into the flight track")
	zoom := flag.Bool("zoom", false, "Render zoomed in")
	pan := flag.String("pan", "", "Comma-separated pan directions: up,down,left,right")
	width := flag.Int("width", 600, "Output width in pixels")
	height := flag.Int("height", 760, "Output height in pixels")
	out := flag.String("out", "chart.png", "Output PNG path")
	interp := flag.String("interp", "bilinear", "Resampling: nearest, bilinear, catmullrom")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: chartrender -image <path> [-meta chart.json] [-lat 37.6 -lon -122.4 -heading 280] [-out chart.png]")
		os.Exit(1)
	}

	var c *chart.Chart
	if *metaPath != "" {
		var err error
		c, err = chart.Load(*metaPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load chart metadata: %v\n", err)
			os.Exit(1)
		}
	}

	sim := simvar.NewStore()
	pos := simvar.Position{Lat: *lat, Lon: *lon, Heading: *heading, Track: *groundTrack, OnGround: *onGround}
	if pos.Track < 0 {
		pos.Track = pos.Heading
	}
	if *replay != "" {
		tr, err := simvar.LoadTrack(*replay)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load flight track: %v\n", err)
			os.Exit(1)
		}
		pos = tr.At(*at)
	}
	sim.Apply(pos)

	surface := render.NewSurface(*width, *height)
	kernel, ok := interpolators[*interp]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown interpolator %q\n", *interp)
		os.Exit(1)
	}
	surface.SetInterpolator(kernel)
	loader := &syncLoader{}
	view := chartview.New(chartview.DefaultConfig(), surface, loader, sim, nil)
	view.SetIcon(render.AircraftIcon(colorutil.Magenta))
	view.Show()

	h := view.LoadChart(*imagePath, c)
	if loader.result.Err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load chart image: %v\n", loader.result.Err)
		os.Exit(1)
	}
	view.OnLoadComplete(h, loader.result.Image)

	bounds := loader.result.Image.Bounds()
	fmt.Printf("Loaded chart image: %dx%d pixels (portrait=%v)\n", bounds.Dx(), bounds.Dy(), view.IsPortrait())
	if c != nil {
		fmt.Printf("Chart: %s  %s  georef=%v\n", c.IndexText(), c.ProcedureIdentifier, c.IsGeoreferenced())
	}

	if *zoom {
		view.HandleEvent(chartview.EventZoomInc)
	}
	for _, dir := range strings.Split(*pan, ",") {
		if dir = strings.TrimSpace(dir); dir == "" {
			continue
		}
		event, ok := panEvents[strings.ToLower(dir)]
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown pan direction %q\n", dir)
			os.Exit(1)
		}
		view.HandleEvent(event)
	}

	st := view.State()
	fmt.Printf("Zoom %.2f, offset (%.0f, %.0f)\n", st.Zoom, st.XOffset(), st.YOffset())
	if c.IsGeoreferenced() {
		if m, ok := chartview.PlaneMarker(c, st.Dims, pos, st.Zoom, st.Config()); ok {
			fmt.Printf("Ownship at chart (%.1f, %.1f), rotation %.3f rad\n", m.X, m.Y, m.Rotation)
		} else {
			fmt.Println("Ownship outside the plan view or inside an inset")
		}
	}

	if !view.Update(time.Duration(0)) {
		fmt.Fprintln(os.Stderr, "Nothing rendered")
		os.Exit(1)
	}

	if err := writePNG(*out, surface.Image()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *out)
}

var interpolators = map[string]draw.Interpolator{
	"nearest":    draw.NearestNeighbor,
	"bilinear":   draw.ApproxBiLinear,
	"catmullrom": draw.CatmullRom,
}

var panEvents = map[string]string{
	"up":    chartview.EventPanUp,
	"down":  chartview.EventPanDown,
	"left":  chartview.EventPanLeft,
	"right": chartview.EventPanRight,
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
