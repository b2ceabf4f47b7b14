// Package export saves turtle drawings to image files.
//
// A drawing is always written as PostScript. When the Inkscape
// converter is available on the PATH, the PostScript file is then
// converted to plain SVG and to PNG. Otherwise the export is
// degraded: only the PostScript file exists, and a warning is logged.
package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/benoitkugler/okspider/turtle"
	"github.com/benoitkugler/okspider/turtleps"
)

const (
	// DefaultConverter is the command used to convert PostScript files.
	DefaultConverter = "inkscape"

	// DefaultTimeout bounds each converter run.
	DefaultTimeout = 2 * time.Minute
)

// Exporter writes drawings to disk.
// The zero value uses Inkscape with the default timeout.
type Exporter struct {
	Converter string // command name, DefaultConverter if empty

	// Width and Height set the PNG size in pixels. They must be
	// both zero, to use the drawing extent, or both positive.
	Width, Height int

	// Timeout bounds each converter run: 0 means DefaultTimeout,
	// and a negative value disables the timeout.
	Timeout time.Duration

	Logger *slog.Logger // slog.Default() if nil

	// LookPath and Command default to exec.LookPath and exec.CommandContext.
	LookPath func(file string) (string, error)
	Command  func(ctx context.Context, name string, args ...string) *exec.Cmd
}

func (e *Exporter) converter() string {
	if e.Converter == "" {
		return DefaultConverter
	}
	return e.Converter
}

func (e *Exporter) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// ConverterPath looks for the converter on the PATH.
func (e *Exporter) ConverterPath() (string, error) {
	lookPath := e.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	return lookPath(e.converter())
}

// Export writes the drawing to `<dir>/<name>.ps`, creating `dir` if
// needed, then to `<name>.svg` and `<name>.png` if the converter is
// present.
// A missing converter is not an error: the returned artifact is marked
// as degraded. Other failures are returned as *ExportError.
func (e *Exporter) Export(ctx context.Context, rec *turtle.Recorder, dir, name string) (Artifact, error) {
	if (e.Width > 0) != (e.Height > 0) || e.Width < 0 || e.Height < 0 {
		return Artifact{}, fmt.Errorf("%w (got %dx%d)", ErrInvalidSize, e.Width, e.Height)
	}
	log := e.logger().With("name", name)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Artifact{}, &ExportError{Op: "mkdir", Path: dir, Err: err}
	}

	llx, lly, urx, ury := turtleps.BoundingBox(rec)
	art := Artifact{
		Base:   filepath.Join(dir, name),
		Extent: image.Rect(0, 0, urx-llx, ury-lly),
	}

	// the PostScript file is the source of all the other formats
	psPath := art.Path(PS)
	if err := turtleps.WriteFile(psPath, rec, name); err != nil {
		return Artifact{}, &ExportError{Op: "write", Path: psPath, Err: err}
	}
	art.Formats = append(art.Formats, PS)
	log.Info("wrote file", "path", psPath)

	bin, err := e.ConverterPath()
	if err != nil {
		art.Degraded = true
		art.Warning = fmt.Errorf("%w: %s", ErrConverterMissing, e.converter())
		log.Warn("converter not found on PATH, install Inkscape to generate SVG and PNG files",
			"converter", e.converter(), "err", err)
		return art, nil
	}

	// --export-plain-svg removes Inkscape specific attributes
	if err := e.convert(ctx, bin, art, SVG, "--export-plain-svg"); err != nil {
		return art, err
	}
	art.Formats = append(art.Formats, SVG)
	log.Info("wrote file", "path", art.Path(SVG))
	if info, err := ReadSVGInfoFile(art.Path(SVG)); err != nil {
		log.Warn("can't read SVG size", "path", art.Path(SVG), "err", err)
	} else {
		art.SVG = &info
	}

	var sizeArgs []string
	if e.Width > 0 {
		sizeArgs = []string{"-w", strconv.Itoa(e.Width), "-h", strconv.Itoa(e.Height)}
	}
	if err := e.convert(ctx, bin, art, PNG, sizeArgs...); err != nil {
		return art, err
	}
	art.Formats = append(art.Formats, PNG)
	log.Info("wrote file", "path", art.Path(PNG))

	return art, nil
}

// convert generates the `format` file from the PostScript file.
func (e *Exporter) convert(ctx context.Context, bin string, art Artifact, format Format, options ...string) error {
	out := art.Path(format)
	args := []string{art.Path(PS),
		"-D", // export the entire drawing, ignoring page size
	}
	args = append(args, options...)
	args = append(args, "-o", out)

	if err := e.run(ctx, bin, args...); err != nil {
		return &ExportError{Op: "convert", Path: out, Err: err}
	}
	return nil
}

func (e *Exporter) run(ctx context.Context, bin string, args ...string) error {
	timeout := e.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	command := e.Command
	if command == nil {
		command = exec.CommandContext
	}
	cmd := command(ctx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %v", ctxErr, err)
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return fmt.Errorf("%w: %s", err, msg)
	}
	return err
}
