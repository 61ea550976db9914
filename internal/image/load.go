// Package image provides chart image decoding and asynchronous loading.
package image

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2/storage"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode decodes a chart image from r.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// Load opens and decodes the chart image at src. src is a file path or a
// URI understood by fyne's storage repositories. Remote schemes are refused.
func Load(src string) (image.Image, error) {
	rc, err := open(src)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, _, err := Decode(rc)
	return img, err
}

func open(src string) (io.ReadCloser, error) {
	if !strings.Contains(src, "://") {
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("failed to open image: %w", err)
		}
		return f, nil
	}

	uri, err := storage.ParseURI(src)
	if err != nil {
		return nil, fmt.Errorf("invalid image URI %q: %w", src, err)
	}
	switch uri.Scheme() {
	case "file":
		f, err := os.Open(uri.Path())
		if err != nil {
			return nil, fmt.Errorf("failed to open image: %w", err)
		}
		return f, nil
	case "http", "https":
		return nil, fmt.Errorf("remote chart images are not supported: %s", src)
	}
	rc, err := storage.Reader(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return rc, nil
}

// SupportedFormats returns the list of supported image formats.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".tiff", ".tif", ".bmp", ".webp"}
}

// IsSupportedFormat checks if the given path has a supported image format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
