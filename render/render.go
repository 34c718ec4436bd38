package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat indicates the output path carries an extension no
// encoder is registered for.
var ErrUnsupportedFormat = errors.New("render: unsupported image format")

// Grid is the read-only query surface a renderer needs.
// *heightmap.HeightMap satisfies it.
type Grid interface {
	// Size returns the side length of the grid.
	Size() int
	// Get returns the stored height at (x,y) and whether one is set; any
	// integer coordinate must wrap onto the grid.
	Get(x, y int) (float64, bool)
}

// Image renders the whole grid; see ImageArea.
func Image(g Grid) *image.NRGBA {
	last := g.Size() - 1

	return ImageArea(g, 0, 0, last, last)
}

// ImageArea renders the inclusive window (x0,y0)-(x1,y1), one pixel per
// cell. The corners are used as given and each read wraps individually,
// so the window may straddle the torus seam. An inverted window yields an
// empty image.
// Complexity: O(area).
func ImageArea(g Grid, x0, y0, x1, y1 int) *image.NRGBA {
	if x1 < x0 || y1 < y0 {
		return image.NewNRGBA(image.Rectangle{})
	}

	img := image.NewNRGBA(image.Rect(0, 0, x1-x0+1, y1-y0+1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			h, ok := g.Get(x, y)
			if !ok {
				continue
			}
			v := gray(h)
			img.SetNRGBA(x-x0, y-y0, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}

	return img
}

// Save renders the whole grid and writes it to path, picking the encoder
// from the extension; see SaveArea.
func Save(g Grid, path string) error {
	last := g.Size() - 1

	return SaveArea(g, path, 0, 0, last, last)
}

// SaveArea renders the inclusive window (x0,y0)-(x1,y1) and writes it to
// path. The encoder comes from the lowercased extension: .png, .jpg/.jpeg,
// .bmp, .tif/.tiff; anything else yields ErrUnsupportedFormat before the
// file is created.
func SaveArea(g Grid, path string, x0, y0, x1, y1 int) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer f.Close()

	if err = encode(f, ImageArea(g, x0, y0, x1, y1)); err != nil {
		return fmt.Errorf("render: encode %s: %w", path, err)
	}

	return nil
}

// encoderFor maps a path extension to its encoder.
func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, nil)
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, nil)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// gray maps a height onto an 8-bit luminance level: 255·h truncated, with
// NaN and the ends saturated.
func gray(h float64) uint8 {
	v := 255 * h
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}

	return uint8(v)
}
