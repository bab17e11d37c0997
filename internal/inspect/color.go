// Package inspect answers read-only color questions about a raster.
package inspect

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-editor/internal/raster"
)

// RGB holds 8-bit color components.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSL holds a color in hue/saturation/lightness space: H in degrees
// (0-360), S and L as percentages (0-100).
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// Sample is a pixel color in several representations.
type Sample struct {
	Hex string `json:"hex"` // "#RRGGBB"
	RGB RGB    `json:"rgb"`
	HSL HSL    `json:"hsl"`
}

// At returns the color of the pixel at (x, y), or an error when the
// coordinates fall outside the raster.
func At(img *raster.Image, x, y int) (*Sample, error) {
	if !img.In(x, y) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d",
			x, y, img.Width(), img.Height())
	}

	r, g, b := img.RGB(x, y)
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, l := c.Hsl()

	return &Sample{
		Hex: fmt.Sprintf("#%02X%02X%02X", r, g, b),
		RGB: RGB{R: r, G: g, B: b},
		HSL: HSL{H: int(h), S: int(s * 100), L: int(l * 100)},
	}, nil
}

// Frequency is a quantized color and the share of pixels it covers.
type Frequency struct {
	Hex        string  `json:"hex"`
	RGB        RGB     `json:"rgb"`
	Percentage float64 `json:"percentage"` // 0-100
}

// Dominant returns the count most frequent colors of the image, most common
// first. Channels are quantized to multiples of 16 so near-identical shades
// group together.
func Dominant(img *raster.Image, count int) []Frequency {
	if img.Empty() || count <= 0 {
		return nil
	}

	type key struct{ r, g, b uint8 }
	counts := make(map[key]int)
	total := img.Width() * img.Height()

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			r, g, b := img.RGB(x, y)
			counts[key{r / 16 * 16, g / 16 * 16, b / 16 * 16}]++
		}
	}

	out := make([]Frequency, 0, len(counts))
	for k, n := range counts {
		out = append(out, Frequency{
			Hex:        fmt.Sprintf("#%02X%02X%02X", k.r, k.g, k.b),
			RGB:        RGB{R: k.r, G: k.g, B: k.b},
			Percentage: float64(n) / float64(total) * 100,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Percentage != out[j].Percentage {
			return out[i].Percentage > out[j].Percentage
		}
		return out[i].Hex < out[j].Hex
	})

	if len(out) > count {
		out = out[:count]
	}
	return out
}
