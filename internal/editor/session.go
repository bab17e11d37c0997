// Package editor ties the raster, transform, history and view packages into
// a single editing session. It is the layer a user interface talks to, and
// the only place that enforces the snapshot protocol: the pre-mutation state
// is pushed onto the undo stack before every successful mutating operation,
// failed operations leave both the live image and the history untouched, and
// loading a new image resets the history to a baseline snapshot of the
// loaded file.
package editor

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-editor/internal/codec"
	"github.com/ironsheep/image-editor/internal/history"
	"github.com/ironsheep/image-editor/internal/raster"
	"github.com/ironsheep/image-editor/internal/transform"
	"github.com/ironsheep/image-editor/internal/view"
)

// ErrNoImage is returned by every operation that needs a live image when
// none has been loaded yet.
var ErrNoImage = errors.New("no image loaded")

// ErrNoSelection is returned by CropSelection when no well-formed selection
// exists.
var ErrNoSelection = errors.New("no selection")

// ErrBrightnessRange is returned for brightness levels outside [-100,100].
var ErrBrightnessRange = errors.New("brightness level must be in [-100,100]")

// Session is a single-image editing session. It owns the live raster; the
// caller must not mutate the image returned by Image directly. Session is
// not safe for concurrent use.
type Session struct {
	live      *raster.Image
	history   *history.Manager
	selection *view.Selection
	log       *logrus.Logger
	saveOpts  codec.SaveOptions
}

// NewSession returns an empty session. A nil logger discards all output.
func NewSession(log *logrus.Logger, saveOpts codec.SaveOptions) *Session {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Session{
		history:   history.NewManager(),
		selection: &view.Selection{},
		log:       log,
		saveOpts:  saveOpts,
	}
}

// Load reads the image at path and makes it the live image. Both history
// stacks and any selection are cleared, then the freshly loaded image is
// pushed as the baseline undo entry, so undoing past every edit restores
// the image as it was opened. A load failure leaves the previous live
// image and history in place.
func (s *Session) Load(path string) error {
	img, err := codec.Load(path)
	if err != nil {
		return err
	}

	s.history.ClearHistory()
	s.history.SaveState(img)
	s.selection.Clear()
	s.live = img

	s.log.WithFields(logrus.Fields{
		"path":   path,
		"width":  img.Width(),
		"height": img.Height(),
	}).Info("image loaded")
	return nil
}

// Save encodes the live image to path.
func (s *Session) Save(path string) error {
	if s.live == nil {
		return ErrNoImage
	}
	if err := codec.Save(s.live, path, s.saveOpts); err != nil {
		return err
	}
	s.log.WithField("path", path).Info("image saved")
	return nil
}

// HasImage reports whether an image has been loaded.
func (s *Session) HasImage() bool { return s.live != nil }

// Image returns the live raster, or nil before the first load. The caller
// may read it freely but must route all mutation through the session.
func (s *Session) Image() *raster.Image { return s.live }

// Selection returns the session's selection tracker. The UI layer feeds
// drag events into it and registers listeners on it.
func (s *Session) Selection() *view.Selection { return s.selection }

// CanUndo reports whether an undo entry is available.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether a redo entry is available.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// RedBlueSwap swaps the red and blue channels of the live image.
func (s *Session) RedBlueSwap() error {
	return s.applyInPlace("red-blue swap", transform.RedBlueSwap)
}

// Grayscale converts the live image to grayscale.
func (s *Session) Grayscale() error {
	return s.applyInPlace("grayscale", transform.Grayscale)
}

// Sepia applies the sepia filter to the live image.
func (s *Session) Sepia() error {
	return s.applyInPlace("sepia", transform.Sepia)
}

// Waves applies the wave distortion to the live image.
func (s *Session) Waves() error {
	return s.applyInPlace("waves", transform.Waves)
}

// Brightness shifts the brightness of the live image by level, which must
// lie in [-100,100].
func (s *Session) Brightness(level int) error {
	if level < -100 || level > 100 {
		return fmt.Errorf("level %d: %w", level, ErrBrightnessRange)
	}
	return s.applyInPlace("brightness", func(img *raster.Image) {
		transform.Brightness(img, level)
	})
}

// RotateClockwise rotates the live image 90 degrees clockwise.
func (s *Session) RotateClockwise() error {
	return s.replace("rotate", func(img *raster.Image) (*raster.Image, error) {
		return transform.RotateClockwise(img), nil
	})
}

// FlipHorizontal mirrors the live image left-to-right.
func (s *Session) FlipHorizontal() error {
	return s.replace("flip-horizontal", func(img *raster.Image) (*raster.Image, error) {
		return transform.FlipHorizontal(img), nil
	})
}

// FlipVertical mirrors the live image top-to-bottom.
func (s *Session) FlipVertical() error {
	return s.replace("flip-vertical", func(img *raster.Image) (*raster.Image, error) {
		return transform.FlipVertical(img), nil
	})
}

// Blur applies a Gaussian blur of the given radius to the live image.
func (s *Session) Blur(radius float64) error {
	return s.replace("blur", func(img *raster.Image) (*raster.Image, error) {
		return transform.Blur(img, radius), nil
	})
}

// EdgeDetect replaces the live image with a black-and-white edge map.
// Thresholds are on the 0-255 scale; see transform.EdgeDetect.
func (s *Session) EdgeDetect(thresholdLow, thresholdHigh int) error {
	return s.replace("edge-detect", func(img *raster.Image) (*raster.Image, error) {
		return transform.EdgeDetect(img, thresholdLow, thresholdHigh), nil
	})
}

// Crop replaces the live image with the sub-rectangle (x1,y1)-(x2,y2) in
// image coordinates. A failed crop leaves the live image and the history
// unchanged.
func (s *Session) Crop(x1, y1, x2, y2 int) error {
	return s.replace("crop", func(img *raster.Image) (*raster.Image, error) {
		return transform.Crop(img, x1, y1, x2, y2)
	})
}

// CropSelection crops to the current display-space selection, converted to
// image coordinates through fit. The selection is cleared on success.
func (s *Session) CropSelection(fit view.Fit) error {
	rect, ok := s.selection.Rect()
	if !ok {
		return ErrNoSelection
	}

	mapped := fit.ToImageSpace(rect)
	err := s.Crop(mapped.X, mapped.Y, mapped.X+mapped.Width, mapped.Y+mapped.Height)
	if err != nil {
		return err
	}
	s.selection.Clear()
	return nil
}

// Undo reverts the live image to the most recent history entry.
func (s *Session) Undo() error {
	if s.live == nil {
		return ErrNoImage
	}
	img, err := s.history.Undo(s.live)
	if err != nil {
		return err
	}
	s.live = img
	s.logOp("undo")
	return nil
}

// Redo reapplies the most recently undone state.
func (s *Session) Redo() error {
	if s.live == nil {
		return ErrNoImage
	}
	img, err := s.history.Redo(s.live)
	if err != nil {
		return err
	}
	s.live = img
	s.logOp("redo")
	return nil
}

// applyInPlace snapshots the live image and then runs an in-place filter on
// it. The snapshot has to come first: the filter destroys the pre-mutation
// state.
func (s *Session) applyInPlace(name string, fn func(*raster.Image)) error {
	if s.live == nil {
		return ErrNoImage
	}
	s.history.SaveState(s.live)
	fn(s.live)
	s.logOp(name)
	return nil
}

// replace runs an operation that builds a new raster from the live image.
// The snapshot is pushed only after the operation succeeds, so a failure
// never leaves a stray history entry.
func (s *Session) replace(name string, fn func(*raster.Image) (*raster.Image, error)) error {
	if s.live == nil {
		return ErrNoImage
	}
	out, err := fn(s.live)
	if err != nil {
		return err
	}
	s.history.SaveState(s.live)
	s.live = out
	s.logOp(name)
	return nil
}

func (s *Session) logOp(name string) {
	undo, redo := s.history.Depth()
	s.log.WithFields(logrus.Fields{
		"op":     name,
		"width":  s.live.Width(),
		"height": s.live.Height(),
		"undo":   undo,
		"redo":   redo,
	}).Debug("operation applied")
}
