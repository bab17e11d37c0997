// Package shell implements the line-oriented command interface of the
// editor binary. It reads one command per line, dispatches it against the
// editing session and prints the outcome; errors are reported to the user
// and never terminate the loop.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-editor/internal/editor"
	"github.com/ironsheep/image-editor/internal/inspect"
)

// Shell wraps an editing session with a textual command loop.
type Shell struct {
	session *editor.Session
	log     *logrus.Logger
}

// New returns a shell driving the given session. A nil logger discards
// all output.
func New(session *editor.Session, log *logrus.Logger) *Shell {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Shell{session: session, log: log}
}

// Run reads commands from in until EOF or a quit command, writing output
// and error messages to out.
func (s *Shell) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	// Generous buffer for long paths pasted into the shell.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := s.Execute(line, out); quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return nil
}

// Execute runs a single command line and reports whether the shell should
// exit. Unknown commands and operation failures are printed to out.
func (s *Shell) Execute(line string, out io.Writer) bool {
	args := strings.Fields(line)
	cmd := strings.ToLower(args[0])
	args = args[1:]
	s.log.WithField("cmd", cmd).Debug("executing command")

	var err error
	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		s.printHelp(out)
	case "open":
		err = s.withPath(args, s.session.Load)
	case "save":
		err = s.withPath(args, s.session.Save)
	case "swap":
		err = s.session.RedBlueSwap()
	case "gray", "grayscale":
		err = s.session.Grayscale()
	case "sepia":
		err = s.session.Sepia()
	case "waves":
		err = s.session.Waves()
	case "brightness":
		err = s.brightness(args)
	case "rotate":
		err = s.session.RotateClockwise()
	case "fliph":
		err = s.session.FlipHorizontal()
	case "flipv":
		err = s.session.FlipVertical()
	case "blur":
		err = s.blur(args)
	case "edges":
		err = s.edges(args)
	case "crop":
		err = s.crop(args)
	case "undo":
		err = s.session.Undo()
	case "redo":
		err = s.session.Redo()
	case "info":
		err = s.info(out)
	case "sample":
		err = s.sample(args, out)
	case "colors":
		err = s.colors(args, out)
	default:
		fmt.Fprintf(out, "unknown command: %s (try \"help\")\n", cmd)
		return false
	}

	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
	} else if mutating(cmd) {
		fmt.Fprintf(out, "ok\n")
	}
	return false
}

func mutating(cmd string) bool {
	switch cmd {
	case "open", "save", "swap", "gray", "grayscale", "sepia", "waves",
		"brightness", "rotate", "fliph", "flipv", "blur", "edges", "crop",
		"undo", "redo":
		return true
	}
	return false
}

func (s *Shell) withPath(args []string, fn func(string) error) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one path argument")
	}
	return fn(args[0])
}

func (s *Shell) brightness(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: brightness <level>")
	}
	level, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid brightness level %q", args[0])
	}
	return s.session.Brightness(level)
}

func (s *Shell) blur(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: blur <radius>")
	}
	radius, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid blur radius %q", args[0])
	}
	return s.session.Blur(radius)
}

func (s *Shell) edges(args []string) error {
	low, high := 50, 150
	if len(args) != 0 {
		if len(args) != 2 {
			return fmt.Errorf("usage: edges [low high]")
		}
		var err error
		if low, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid threshold %q", args[0])
		}
		if high, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("invalid threshold %q", args[1])
		}
	}
	return s.session.EdgeDetect(low, high)
}

func (s *Shell) crop(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: crop <x1> <y1> <x2> <y2>")
	}
	coords := make([]int, 4)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid crop coordinate %q", a)
		}
		coords[i] = v
	}
	return s.session.Crop(coords[0], coords[1], coords[2], coords[3])
}

func (s *Shell) info(out io.Writer) error {
	if !s.session.HasImage() {
		return editor.ErrNoImage
	}
	img := s.session.Image()
	fmt.Fprintf(out, "%dx%d  undo:%v redo:%v\n",
		img.Width(), img.Height(), s.session.CanUndo(), s.session.CanRedo())
	return nil
}

func (s *Shell) sample(args []string, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: sample <x> <y>")
	}
	if !s.session.HasImage() {
		return editor.ErrNoImage
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid x coordinate %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid y coordinate %q", args[1])
	}

	c, err := inspect.At(s.session.Image(), x, y)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s rgb(%d,%d,%d) hsl(%d,%d%%,%d%%)\n",
		c.Hex, c.RGB.R, c.RGB.G, c.RGB.B, c.HSL.H, c.HSL.S, c.HSL.L)
	return nil
}

func (s *Shell) colors(args []string, out io.Writer) error {
	if !s.session.HasImage() {
		return editor.ErrNoImage
	}
	count := 5
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v <= 0 {
			return fmt.Errorf("invalid color count %q", args[0])
		}
		count = v
	} else if len(args) > 1 {
		return fmt.Errorf("usage: colors [count]")
	}

	for _, c := range inspect.Dominant(s.session.Image(), count) {
		fmt.Fprintf(out, "%s %5.1f%%\n", c.Hex, c.Percentage)
	}
	return nil
}

func (s *Shell) printHelp(out io.Writer) {
	fmt.Fprint(out, `commands:
  open <path>            load an image (clears history)
  save <path>            save the current image (format by extension)
  swap                   swap red and blue channels
  gray                   convert to grayscale
  sepia                  apply sepia tone
  waves                  apply wave distortion
  brightness <level>     adjust brightness, level in [-100,100]
  rotate                 rotate 90 degrees clockwise
  fliph | flipv          mirror horizontally / vertically
  blur <radius>          Gaussian blur
  edges [low high]       Canny edge detection (default thresholds 50 150)
  crop <x1> <y1> <x2> <y2>  crop to the given rectangle
  undo | redo            step through edit history
  info                   show dimensions and history state
  sample <x> <y>         print the color at a pixel
  colors [count]         print the dominant colors
  quit                   exit
`)
}
