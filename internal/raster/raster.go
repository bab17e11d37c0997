package raster

import (
	"image"
	"image/color"
)

// Image is an in-memory grid of 8-bit RGB pixels.
//
// Pixels are stored in a single flat slice, three bytes per pixel in R, G, B
// order, row by row from the top-left corner. Alpha is not stored: images
// with transparency lose their alpha channel on import.
//
// The coordinate system is 0-based with (0,0) at the top-left, X increasing
// rightward and Y increasing downward.
//
// An Image is not safe for concurrent mutation. The caller is responsible for
// serializing access to a live image; use Clone to obtain an independent copy
// that can be kept or mutated without affecting the original.
type Image struct {
	width  int
	height int
	pix    []uint8 // len = width*height*3
}

// New returns a zeroed (all-black) raster of the given dimensions.
// Non-positive dimensions yield an empty raster; callers that require a
// well-formed live image must validate dimensions at the loading boundary.
func New(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}
}

// FromImage converts any Go image into a raster, dropping alpha.
// 16-bit-per-channel sources are reduced to 8 bits by discarding the low byte.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	img := New(bounds.Dx(), bounds.Dy())

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			img.pix[i] = uint8(r >> 8)
			img.pix[i+1] = uint8(g >> 8)
			img.pix[i+2] = uint8(b >> 8)
			i += 3
		}
	}
	return img
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.height }

// Empty reports whether the raster has no pixels.
func (m *Image) Empty() bool { return m.width == 0 || m.height == 0 }

// In reports whether (x, y) lies inside the raster.
func (m *Image) In(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// RGB returns the channel values of the pixel at (x, y).
// The coordinates must be inside the raster.
func (m *Image) RGB(x, y int) (r, g, b uint8) {
	i := (y*m.width + x) * 3
	return m.pix[i], m.pix[i+1], m.pix[i+2]
}

// SetRGB overwrites the pixel at (x, y).
// The coordinates must be inside the raster.
func (m *Image) SetRGB(x, y int, r, g, b uint8) {
	i := (y*m.width + x) * 3
	m.pix[i] = r
	m.pix[i+1] = g
	m.pix[i+2] = b
}

// Clone returns a deep copy of the raster. The copy shares no storage with
// the receiver, so mutating one never affects the other. This is the
// snapshot primitive used by the history manager.
func (m *Image) Clone() *Image {
	cp := &Image{
		width:  m.width,
		height: m.height,
		pix:    make([]uint8, len(m.pix)),
	}
	copy(cp.pix, m.pix)
	return cp
}

// Equal reports whether two rasters have identical dimensions and pixel data.
func (m *Image) Equal(other *Image) bool {
	if other == nil || m.width != other.width || m.height != other.height {
		return false
	}
	for i := range m.pix {
		if m.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// NRGBA converts the raster to a standard library image for encoding or for
// handing to image-processing libraries. Alpha is fully opaque.
func (m *Image) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.width, m.height))
	i := 0
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			out.SetNRGBA(x, y, color.NRGBA{
				R: m.pix[i],
				G: m.pix[i+1],
				B: m.pix[i+2],
				A: 255,
			})
			i += 3
		}
	}
	return out
}
