// Package transform implements the pixel-level operations of the editor.
//
// Operations come in two flavors with an asymmetry callers must respect:
//
//   - In-place filters (RedBlueSwap, Grayscale, Sepia, Waves, Brightness)
//     mutate the raster they are given and return nothing. A caller that
//     wants to keep the pre-filter image must copy it before calling.
//
//   - Geometry operations (RotateClockwise, Crop, FlipHorizontal,
//     FlipVertical, Blur) leave their input untouched and return a new
//     raster.
//
// All operations are total over well-formed non-empty rasters except Crop,
// which fails when the clamped rectangle has no area.
package transform

import (
	"math"

	"github.com/ironsheep/image-editor/internal/raster"
)

// RedBlueSwap swaps the red and blue channels of every pixel.
// Applying it twice restores the original image.
func RedBlueSwap(img *raster.Image) {
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			r, g, b := img.RGB(x, y)
			img.SetRGB(x, y, b, g, r)
		}
	}
}

// Grayscale converts the image to grayscale by averaging the three channels
// with integer division and writing the average back to all of them.
func Grayscale(img *raster.Image) {
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			r, g, b := img.RGB(x, y)
			avg := uint8((int(r) + int(g) + int(b)) / 3)
			img.SetRGB(x, y, avg, avg, avg)
		}
	}
}

// Sepia applies the standard sepia coefficient matrix to every pixel,
// truncating toward zero and clamping each channel to [0,255].
func Sepia(img *raster.Image) {
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			r, g, b := img.RGB(x, y)
			rf, gf, bf := float64(r), float64(g), float64(b)

			sr := clamp(int(0.393*rf + 0.769*gf + 0.189*bf))
			sg := clamp(int(0.349*rf + 0.686*gf + 0.168*bf))
			sb := clamp(int(0.272*rf + 0.534*gf + 0.131*bf))

			img.SetRGB(x, y, uint8(sr), uint8(sg), uint8(sb))
		}
	}
}

// Waves applies a wavy distortion driven by the pixel position.
//
// The angle fed to sin/cos is the raw integer remainder of the row or column
// by 10, interpreted as radians. That is not a scaled period; it is the
// historical behavior of this filter and is kept for reproducibility.
func Waves(img *raster.Image) {
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			r, g, b := img.RGB(x, y)

			nr := clamp(int(float64(r) + 50*math.Sin(float64(y%10))))
			ng := clamp(int(float64(g) + 50*math.Cos(float64(x%10))))
			nb := clamp(int(b) - (y+x)%50)

			img.SetRGB(x, y, uint8(nr), uint8(ng), uint8(nb))
		}
	}
}

// Brightness shifts every channel of every pixel by level*255/100 (integer
// division), clamping to [0,255]. Level is expected in [-100,100]; -100
// forces black, 100 forces white.
func Brightness(img *raster.Image, level int) {
	delta := level * 255 / 100

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			r, g, b := img.RGB(x, y)
			img.SetRGB(x, y,
				uint8(clamp(int(r)+delta)),
				uint8(clamp(int(g)+delta)),
				uint8(clamp(int(b)+delta)))
		}
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
