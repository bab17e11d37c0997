package transform

import (
	"math"

	"github.com/ironsheep/image-editor/internal/raster"
)

// EdgeDetect returns a new black-and-white raster marking the edges of the
// input: edge pixels are white (255), everything else black. The input is
// left unmodified.
//
// The implementation is Canny-style: luminance conversion, 5x5 Gaussian
// smoothing, Sobel gradients, non-maximum suppression, then double
// thresholding with hysteresis. Pixels whose gradient magnitude exceeds
// thresholdHigh are always edges; pixels between the thresholds survive
// only when touching a strong edge. Thresholds are on the 0-255 scale;
// 50/150 is a reasonable starting point for most images.
func EdgeDetect(img *raster.Image, thresholdLow, thresholdHigh int) *raster.Image {
	w, h := img.Width(), img.Height()
	out := raster.New(w, h)
	if img.Empty() {
		return out
	}

	// Luminance in [0,1] using ITU-R BT.601 weights.
	lum := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := img.RGB(x, y)
			lum[y*w+x] = (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
		}
	}

	smooth := smooth5x5(lum, w, h)

	// Sobel gradients.
	magnitude := make([]float64, w*h)
	direction := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := smooth[clampRange(y+ky, 0, h-1)*w+clampRange(x+kx, 0, w-1)]
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			magnitude[y*w+x] = math.Sqrt(gx*gx + gy*gy)
			direction[y*w+x] = math.Atan2(gy, gx)
		}
	}

	// Non-maximum suppression thins ridges to single-pixel width.
	suppressed := make([]float64, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			n1, n2 := gradientNeighbors(magnitude, direction[i], x, y, w)
			if magnitude[i] >= n1 && magnitude[i] >= n2 {
				suppressed[i] = magnitude[i]
			}
		}
	}

	low := float64(thresholdLow) / 255
	high := float64(thresholdHigh) / 255

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := suppressed[y*w+x]
			switch {
			case v >= high:
				out.SetRGB(x, y, 255, 255, 255)
			case v >= low && hasStrongNeighbor(suppressed, x, y, w, h, high):
				out.SetRGB(x, y, 255, 255, 255)
			}
		}
	}
	return out
}

var sobelX = [3][3]float64{
	{-1, 0, 1},
	{-2, 0, 2},
	{-1, 0, 1},
}

var sobelY = [3][3]float64{
	{-1, -2, -1},
	{0, 0, 0},
	{1, 2, 1},
}

// gradientNeighbors picks the two magnitude samples along the gradient
// direction, quantized to 45-degree sectors.
func gradientNeighbors(magnitude []float64, angle float64, x, y, w int) (n1, n2 float64) {
	switch {
	case (angle >= -math.Pi/8 && angle < math.Pi/8) || angle >= 7*math.Pi/8 || angle < -7*math.Pi/8:
		return magnitude[y*w+x-1], magnitude[y*w+x+1]
	case (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8):
		return magnitude[(y-1)*w+x+1], magnitude[(y+1)*w+x-1]
	case (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8):
		return magnitude[(y-1)*w+x], magnitude[(y+1)*w+x]
	default:
		return magnitude[(y-1)*w+x-1], magnitude[(y+1)*w+x+1]
	}
}

func hasStrongNeighbor(suppressed []float64, x, y, w, h int, high float64) bool {
	for ky := -1; ky <= 1; ky++ {
		for kx := -1; kx <= 1; kx++ {
			py := clampRange(y+ky, 0, h-1)
			px := clampRange(x+kx, 0, w-1)
			if suppressed[py*w+px] >= high {
				return true
			}
		}
	}
	return false
}

// smooth5x5 convolves with a 5x5 Gaussian kernel (sigma ~1.4, sum 273),
// replicating edge values at the borders.
func smooth5x5(src []float64, w, h int) []float64 {
	kernel := [5][5]float64{
		{1, 4, 7, 4, 1},
		{4, 16, 26, 16, 4},
		{7, 26, 41, 26, 7},
		{4, 16, 26, 16, 4},
		{1, 4, 7, 4, 1},
	}
	const kernelSum = 273.0

	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for ky := -2; ky <= 2; ky++ {
				for kx := -2; kx <= 2; kx++ {
					py := clampRange(y+ky, 0, h-1)
					px := clampRange(x+kx, 0, w-1)
					sum += src[py*w+px] * kernel[ky+2][kx+2]
				}
			}
			out[y*w+x] = sum / kernelSum
		}
	}
	return out
}
