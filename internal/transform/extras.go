package transform

import (
	"github.com/anthonynsimon/bild/blur"
	bildtransform "github.com/anthonynsimon/bild/transform"

	"github.com/ironsheep/image-editor/internal/raster"
)

// FlipHorizontal returns a new raster mirrored left-to-right.
func FlipHorizontal(img *raster.Image) *raster.Image {
	return raster.FromImage(bildtransform.FlipH(img.NRGBA()))
}

// FlipVertical returns a new raster mirrored top-to-bottom.
func FlipVertical(img *raster.Image) *raster.Image {
	return raster.FromImage(bildtransform.FlipV(img.NRGBA()))
}

// Blur returns a new raster blurred with a Gaussian kernel of the given
// radius. A non-positive radius returns a plain copy.
func Blur(img *raster.Image, radius float64) *raster.Image {
	if radius <= 0 {
		return img.Clone()
	}
	return raster.FromImage(blur.Gaussian(img.NRGBA(), radius))
}
