// Package codec loads and saves rasters as image files.
//
// Decoding supports PNG, JPEG, GIF, TIFF, BMP and WebP; encoding supports
// every decodable format except WebP. The output format is chosen by file
// extension, falling back to PNG when the extension is absent or not
// recognized as an image format at all.
package codec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/ironsheep/image-editor/internal/raster"
)

// ErrUnsupportedFormat is returned by Save when the target extension names
// an image format the codec can read but not write (currently WebP).
var ErrUnsupportedFormat = errors.New("unsupported image format")

// SaveOptions control lossy encoders.
type SaveOptions struct {
	// JPEGQuality is the quality used for .jpg/.jpeg targets, 1-100.
	// Zero selects the default of 95.
	JPEGQuality int
}

// DefaultJPEGQuality is used when SaveOptions.JPEGQuality is unset.
const DefaultJPEGQuality = 95

// Load reads and decodes the image at path into a raster.
// Unreadable files and unrecognized image data both fail with a wrapped
// error; a decode that produces an empty image is rejected as well.
func Load(path string) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	src, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %q: %w", path, err)
	}

	img := raster.FromImage(src)
	if img.Empty() {
		return nil, fmt.Errorf("image %q decoded to zero pixels", path)
	}
	return img, nil
}

// Save encodes img to path. The format is picked from the lower-cased file
// extension; a missing or unrecognized extension falls back to PNG. WebP
// targets fail with ErrUnsupportedFormat. Parent directories are created
// as needed.
func Save(img *raster.Image, path string, opts SaveOptions) error {
	format, err := targetFormat(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	quality := opts.JPEGQuality
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}

	if err := imaging.Encode(f, img.NRGBA(), format, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("failed to encode %q: %w", path, err)
	}
	return nil
}

func targetFormat(path string) (imaging.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".webp" {
		return 0, fmt.Errorf("cannot write %q: %w", ext, ErrUnsupportedFormat)
	}

	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		// Absent or unrecognized extension: default to PNG.
		return imaging.PNG, nil
	}
	return format, nil
}
