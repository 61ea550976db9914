package image

import (
	"errors"
	goimage "image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := goimage.NewRGBA(goimage.Rect(0, 0, w, h))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	path := filepath.Join(t.TempDir(), "chart.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestLoadPNG(t *testing.T) {
	path := writePNG(t, 30, 40)
	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 30 || img.Bounds().Dy() != 40 {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}
}

func TestLoadFileURI(t *testing.T) {
	path := writePNG(t, 8, 4)
	img, err := Load("file://" + path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("Unexpected width %d", img.Bounds().Dx())
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestLoadRefusesRemote(t *testing.T) {
	if _, err := Load("https://example.com/chart.png"); err == nil {
		t.Error("Expected remote URI to be refused")
	}
}

func TestIsSupportedFormat(t *testing.T) {
	if !IsSupportedFormat("/charts/KSFO.PNG") {
		t.Error("Expected .PNG to be supported")
	}
	if IsSupportedFormat("/charts/KSFO.pdf") {
		t.Error("Expected .pdf to be unsupported")
	}
}

func TestLoaderDeliversEveryHandle(t *testing.T) {
	l := NewLoader(4)
	l.load = func(src string) (goimage.Image, error) {
		if src == "bad" {
			return nil, errors.New("boom")
		}
		return goimage.NewRGBA(goimage.Rect(0, 0, 2, 3)), nil
	}

	h1 := l.Begin("good")
	h2 := l.Begin("bad")
	if h1 == 0 || h2 <= h1 {
		t.Fatalf("Expected increasing handles, got %d then %d", h1, h2)
	}
	if l.Latest() != h2 {
		t.Errorf("Expected latest %d, got %d", h2, l.Latest())
	}

	got := map[Handle]Result{}
	for len(got) < 2 {
		select {
		case r := <-l.Results():
			got[r.Handle] = r
		case <-time.After(2 * time.Second):
			t.Fatal("Timed out waiting for load results")
		}
	}
	if got[h1].Err != nil || got[h1].Image == nil {
		t.Errorf("Expected image for %d, got %+v", h1, got[h1])
	}
	if got[h2].Err == nil || got[h2].Image != nil {
		t.Errorf("Expected error for %d, got %+v", h2, got[h2])
	}
}
