package transform

import (
	"errors"
	"fmt"

	"github.com/ironsheep/image-editor/internal/raster"
)

// ErrInvalidCrop is returned by Crop when the requested rectangle resolves
// to zero or negative area after clamping to the image bounds.
var ErrInvalidCrop = errors.New("invalid crop dimensions")

// RotateClockwise returns a new raster rotated 90 degrees clockwise.
// The output dimensions are (height, width) of the input; the input is
// left unmodified.
func RotateClockwise(img *raster.Image) *raster.Image {
	w, h := img.Width(), img.Height()
	out := raster.New(h, w)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := img.RGB(x, y)
			out.SetRGB(h-1-y, x, r, g, b)
		}
	}
	return out
}

// Crop returns an independent copy of the sub-rectangle (x1,y1)-(x2,y2).
//
// All four coordinates are clamped into [0,width]x[0,height] first; the
// width and height of the crop are computed from the clamped values. If
// either is not strictly positive the crop fails with ErrInvalidCrop and
// the input is untouched. The returned raster never aliases the input.
func Crop(img *raster.Image, x1, y1, x2, y2 int) (*raster.Image, error) {
	x1 = clampRange(x1, 0, img.Width())
	y1 = clampRange(y1, 0, img.Height())
	x2 = clampRange(x2, 0, img.Width())
	y2 = clampRange(y2, 0, img.Height())

	w := x2 - x1
	h := y2 - y1
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("crop region %dx%d: %w", w, h, ErrInvalidCrop)
	}

	out := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := img.RGB(x1+x, y1+y)
			out.SetRGB(x, y, r, g, b)
		}
	}
	return out, nil
}

func clampRange(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
