package shell

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/image-editor/internal/codec"
	"github.com/ironsheep/image-editor/internal/editor"
	"github.com/ironsheep/image-editor/internal/raster"
)

// writeTestImage saves a small red/blue split image and returns its path.
func writeTestImage(t *testing.T) string {
	t.Helper()

	img := raster.New(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x < 5 {
				img.SetRGB(x, y, 255, 0, 0)
			} else {
				img.SetRGB(x, y, 0, 0, 255)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	if err := codec.Save(img, path, codec.SaveOptions{}); err != nil {
		t.Fatalf("setup save failed: %v", err)
	}
	return path
}

func newShell() *Shell {
	return New(editor.NewSession(nil, codec.SaveOptions{}), nil)
}

func run(t *testing.T, sh *Shell, script string) string {
	t.Helper()
	var out bytes.Buffer
	if err := sh.Run(strings.NewReader(script), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String()
}

func TestShell_OpenInfo(t *testing.T) {
	path := writeTestImage(t)
	out := run(t, newShell(), fmt.Sprintf("open %s\ninfo\n", path))

	if !strings.Contains(out, "10x10") {
		t.Errorf("info should report dimensions, got %q", out)
	}
	if !strings.Contains(out, "undo:true redo:false") {
		t.Errorf("fresh load should report the baseline undo entry, got %q", out)
	}
}

func TestShell_EditUndoRedo(t *testing.T) {
	path := writeTestImage(t)
	sh := newShell()

	out := run(t, sh, fmt.Sprintf("open %s\nswap\ninfo\nundo\ninfo\nredo\n", path))

	if !strings.Contains(out, "undo:true redo:false") {
		t.Errorf("after edit expected undo available, got %q", out)
	}
	if !strings.Contains(out, "undo:true redo:true") {
		t.Errorf("after undo expected redo available, got %q", out)
	}
}

func TestShell_UndoOnEmptyHistoryReportsError(t *testing.T) {
	path := writeTestImage(t)

	// The first undo consumes the load baseline; the second has nothing left.
	out := run(t, newShell(), fmt.Sprintf("open %s\nundo\nundo\n", path))

	if !strings.Contains(out, "error: no undo actions available") {
		t.Errorf("expected undo error message, got %q", out)
	}
}

func TestShell_CropAndSave(t *testing.T) {
	path := writeTestImage(t)
	outPath := filepath.Join(t.TempDir(), "out.png")
	sh := newShell()

	run(t, sh, fmt.Sprintf("open %s\ncrop 0 0 5 10\nsave %s\n", path, outPath))

	got, err := codec.Load(outPath)
	if err != nil {
		t.Fatalf("Load of saved crop failed: %v", err)
	}
	if got.Width() != 5 || got.Height() != 10 {
		t.Errorf("dimensions: got %dx%d, want 5x10", got.Width(), got.Height())
	}
	r, _, _ := got.RGB(2, 2)
	if r != 255 {
		t.Errorf("left half should be red, got r=%d", r)
	}
}

func TestShell_InvalidCropReportsError(t *testing.T) {
	path := writeTestImage(t)
	out := run(t, newShell(), fmt.Sprintf("open %s\ncrop 8 0 2 10\n", path))

	if !strings.Contains(out, "invalid crop dimensions") {
		t.Errorf("expected crop error, got %q", out)
	}
}

func TestShell_Sample(t *testing.T) {
	path := writeTestImage(t)
	out := run(t, newShell(), fmt.Sprintf("open %s\nsample 0 0\nsample 9 0\n", path))

	if !strings.Contains(out, "#FF0000") {
		t.Errorf("sample of left half should be red, got %q", out)
	}
	if !strings.Contains(out, "#0000FF") {
		t.Errorf("sample of right half should be blue, got %q", out)
	}
}

func TestShell_Colors(t *testing.T) {
	path := writeTestImage(t)
	out := run(t, newShell(), fmt.Sprintf("open %s\ncolors 2\n", path))

	if !strings.Contains(out, "#F00000") || !strings.Contains(out, "#0000F0") {
		t.Errorf("expected both dominant colors, got %q", out)
	}
}

func TestShell_CommandsWithoutImage(t *testing.T) {
	out := run(t, newShell(), "sepia\n")

	if !strings.Contains(out, "error: no image loaded") {
		t.Errorf("expected no-image error, got %q", out)
	}
}

func TestShell_UnknownCommand(t *testing.T) {
	out := run(t, newShell(), "frobnicate\n")

	if !strings.Contains(out, "unknown command: frobnicate") {
		t.Errorf("expected unknown-command message, got %q", out)
	}
}

func TestShell_BadArguments(t *testing.T) {
	path := writeTestImage(t)

	tests := []struct {
		name string
		cmd  string
	}{
		{"brightness no arg", "brightness"},
		{"brightness not a number", "brightness bright"},
		{"brightness out of range", "brightness 500"},
		{"crop wrong arity", "crop 1 2 3"},
		{"crop not numbers", "crop a b c d"},
		{"blur not a number", "blur soft"},
		{"sample wrong arity", "sample 1"},
		{"open missing path", "open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, newShell(), fmt.Sprintf("open %s\n%s\n", path, tt.cmd))
			if !strings.Contains(out, "error:") {
				t.Errorf("expected an error message, got %q", out)
			}
		})
	}
}

func TestShell_QuitStopsBeforeEOF(t *testing.T) {
	path := writeTestImage(t)
	sh := newShell()

	// The open after quit must never run.
	out := run(t, sh, fmt.Sprintf("quit\nopen %s\n", path))
	if strings.Contains(out, "ok") {
		t.Errorf("commands after quit should not execute, got %q", out)
	}
}

func TestShell_BlankLinesIgnored(t *testing.T) {
	out := run(t, newShell(), "\n\n   \nhelp\n")
	if !strings.Contains(out, "commands:") {
		t.Errorf("help should print usage, got %q", out)
	}
}
