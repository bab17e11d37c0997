package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestNew(t *testing.T) {
	img := New(4, 3)

	if img.Width() != 4 || img.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", img.Width(), img.Height())
	}
	if img.Empty() {
		t.Error("4x3 raster should not be empty")
	}

	// All pixels start black
	r, g, b := img.RGB(2, 1)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("new raster pixel: got (%d,%d,%d), want (0,0,0)", r, g, b)
	}
}

func TestNew_NonPositive(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := New(tt.w, tt.h)
			if !img.Empty() {
				t.Errorf("raster %dx%d should be empty", tt.w, tt.h)
			}
		})
	}
}

func TestSetRGB(t *testing.T) {
	img := New(10, 10)
	img.SetRGB(3, 7, 10, 20, 30)

	r, g, b := img.RGB(3, 7)
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("got (%d,%d,%d), want (10,20,30)", r, g, b)
	}

	// Neighbors untouched
	r, g, b = img.RGB(4, 7)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("neighbor pixel modified: got (%d,%d,%d)", r, g, b)
	}
}

func TestIn(t *testing.T) {
	img := New(5, 4)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{4, 3, true},
		{5, 3, false},
		{4, 4, false},
		{-1, 0, false},
		{0, -1, false},
	}

	for _, tt := range tests {
		if got := img.In(tt.x, tt.y); got != tt.want {
			t.Errorf("In(%d,%d): got %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	src.SetNRGBA(2, 1, color.NRGBA{R: 0, G: 128, B: 255, A: 255})

	img := FromImage(src)

	if img.Width() != 3 || img.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", img.Width(), img.Height())
	}

	r, g, b := img.RGB(0, 0)
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("pixel (0,0): got (%d,%d,%d), want (255,0,0)", r, g, b)
	}
	r, g, b = img.RGB(2, 1)
	if r != 0 || g != 128 || b != 255 {
		t.Errorf("pixel (2,1): got (%d,%d,%d), want (0,128,255)", r, g, b)
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	// Sub-images have non-zero Min; conversion must normalize to (0,0).
	src := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	src.SetNRGBA(10, 20, color.NRGBA{R: 7, G: 8, B: 9, A: 255})

	img := FromImage(src)
	if img.Width() != 3 || img.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", img.Width(), img.Height())
	}
	r, g, b := img.RGB(0, 0)
	if r != 7 || g != 8 || b != 9 {
		t.Errorf("pixel (0,0): got (%d,%d,%d), want (7,8,9)", r, g, b)
	}
}

func TestClone_Independent(t *testing.T) {
	img := New(4, 4)
	img.SetRGB(1, 1, 100, 110, 120)

	cp := img.Clone()
	if !img.Equal(cp) {
		t.Fatal("clone should equal original")
	}

	// Mutating the original must not leak into the clone.
	img.SetRGB(1, 1, 1, 2, 3)
	r, g, b := cp.RGB(1, 1)
	if r != 100 || g != 110 || b != 120 {
		t.Errorf("clone changed after mutating original: got (%d,%d,%d)", r, g, b)
	}

	// And the other direction.
	cp.SetRGB(0, 0, 9, 9, 9)
	r, g, b = img.RGB(0, 0)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("original changed after mutating clone: got (%d,%d,%d)", r, g, b)
	}
}

func TestEqual(t *testing.T) {
	a := New(2, 2)
	b := New(2, 2)

	if !a.Equal(b) {
		t.Error("identical rasters should be equal")
	}

	b.SetRGB(1, 1, 0, 0, 1)
	if a.Equal(b) {
		t.Error("rasters with different pixels should not be equal")
	}

	if a.Equal(New(2, 3)) {
		t.Error("rasters with different dimensions should not be equal")
	}
	if a.Equal(nil) {
		t.Error("raster should not equal nil")
	}
}

func TestNRGBA_RoundTrip(t *testing.T) {
	img := New(3, 3)
	img.SetRGB(0, 0, 255, 0, 0)
	img.SetRGB(1, 1, 10, 20, 30)
	img.SetRGB(2, 2, 0, 0, 255)

	back := FromImage(img.NRGBA())
	if !img.Equal(back) {
		t.Error("NRGBA round trip should preserve pixel data")
	}
}
