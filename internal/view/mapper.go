// Package view maps between display space and image space.
//
// The rendered image is scaled to fit its viewport while preserving aspect
// ratio and is centered on both axes. A selection rectangle dragged on the
// display therefore has to be shifted by the centering offsets and divided
// by the fit scale before it can be handed to the crop operation.
package view

import "math"

// Point is a pixel coordinate in display space.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned rectangle. Depending on context its coordinates
// are in display space or image space.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the rectangle has no area. A selection is
// well-formed only when it is not empty.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// BuildRectangle normalizes two arbitrary drag points into an axis-aligned
// rectangle. The points may be given in any order.
func BuildRectangle(a, b Point) Rect {
	x := a.X
	if b.X < x {
		x = b.X
	}
	y := a.Y
	if b.Y < y {
		y = b.Y
	}
	return Rect{
		X:      x,
		Y:      y,
		Width:  abs(a.X - b.X),
		Height: abs(a.Y - b.Y),
	}
}

// Fit describes how an image is rendered inside a viewport: a single
// uniform scale (the smaller of the two per-axis ratios) and the offsets
// that center the scaled image.
type Fit struct {
	Scale   float64
	OffsetX int
	OffsetY int
	ImageW  int
	ImageH  int
}

// ComputeFit derives the aspect-preserving fit of an image inside a
// viewport. Degenerate image dimensions yield a zero Fit whose ToImageSpace
// maps everything to an empty rectangle.
func ComputeFit(viewportW, viewportH, imageW, imageH int) Fit {
	if imageW <= 0 || imageH <= 0 {
		return Fit{ImageW: imageW, ImageH: imageH}
	}

	scale := math.Min(
		float64(viewportW)/float64(imageW),
		float64(viewportH)/float64(imageH),
	)
	scaledW := int(float64(imageW) * scale)
	scaledH := int(float64(imageH) * scale)

	return Fit{
		Scale:   scale,
		OffsetX: (viewportW - scaledW) / 2,
		OffsetY: (viewportH - scaledH) / 2,
		ImageW:  imageW,
		ImageH:  imageH,
	}
}

// ToImageSpace converts a display-space rectangle into image pixel
// coordinates: the centering offsets are subtracted, each component is
// divided by the uniform fit scale with truncation, and the result is
// clamped to the image bounds. The returned rectangle may be empty when the
// selection lies entirely outside the rendered image.
func (f Fit) ToImageSpace(r Rect) Rect {
	if f.Scale <= 0 {
		return Rect{}
	}

	x1 := int(float64(r.X-f.OffsetX) / f.Scale)
	y1 := int(float64(r.Y-f.OffsetY) / f.Scale)
	x2 := int(float64(r.X+r.Width-f.OffsetX) / f.Scale)
	y2 := int(float64(r.Y+r.Height-f.OffsetY) / f.Scale)

	x1 = clamp(x1, 0, f.ImageW)
	y1 = clamp(y1, 0, f.ImageH)
	x2 = clamp(x2, 0, f.ImageW)
	y2 = clamp(y2, 0, f.ImageH)

	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
