package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benoitkugler/okspider/spider"
	"github.com/benoitkugler/okspider/turtle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHelperProcess is not a real test: it stands for the converter
// when run by fakeCommand.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("OKSPIDER_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	args = args[1:] // converter name, then its arguments

	switch os.Getenv("OKSPIDER_HELPER_MODE") {
	case "fail":
		fmt.Fprintln(os.Stderr, "unable to open input file")
		os.Exit(1)
	case "hang":
		time.Sleep(time.Minute)
	}

	var out string
	for i, a := range args {
		if a == "-o" && i+1 < len(args) {
			out = args[i+1]
		}
	}
	var content string
	switch filepath.Ext(out) {
	case ".svg":
		content = `<?xml version="1.0" encoding="UTF-8"?>` +
			`<svg xmlns="http://www.w3.org/2000/svg" width="330" height="330" viewBox="0 0 330 330"></svg>`
	default:
		content = strings.Join(args, " ")
	}
	if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	os.Exit(0)
}

func fakeCommand(mode string) func(ctx context.Context, name string, args ...string) *exec.Cmd {
	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cs := append([]string{"-test.run=TestHelperProcess", "--", name}, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], cs...)
		cmd.Env = append(os.Environ(), "OKSPIDER_HELPER_PROCESS=1", "OKSPIDER_HELPER_MODE="+mode)
		return cmd
	}
}

func found(string) (string, error) { return "/usr/bin/inkscape", nil }

func notFound(file string) (string, error) {
	return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
}

func drawing(t *testing.T) *turtle.Recorder {
	rec, _, err := spider.Sketch(spider.Options{
		Plan:       spider.MustParsePlan(spider.DefaultPlan),
		Scale:      20,
		Background: spider.Circle,
	})
	require.NoError(t, err)
	return rec
}

func TestExportDegraded(t *testing.T) {
	var logs bytes.Buffer
	e := Exporter{
		LookPath: notFound,
		Command:  fakeCommand(""),
		Logger:   slog.New(slog.NewTextHandler(&logs, nil)),
	}
	dir := filepath.Join(t.TempDir(), "imgs", "circle")
	art, err := e.Export(context.Background(), drawing(t), dir, "spider")
	require.NoError(t, err)

	assert.True(t, art.Degraded)
	assert.True(t, errors.Is(art.Warning, ErrConverterMissing))
	assert.Equal(t, []Format{PS}, art.Formats)

	st, err := os.Stat(filepath.Join(dir, "spider.ps"))
	require.NoError(t, err)
	assert.NotZero(t, st.Size())
	for _, ext := range []string{".svg", ".png"} {
		_, err := os.Stat(filepath.Join(dir, "spider"+ext))
		assert.True(t, os.IsNotExist(err), ext)
	}
	assert.Equal(t, 1, strings.Count(logs.String(), "level=WARN"))
	assert.Contains(t, logs.String(), "converter=inkscape")
	assert.Contains(t, logs.String(), "SVG and PNG")
}

func TestExportConverted(t *testing.T) {
	e := Exporter{LookPath: found, Command: fakeCommand(""), Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))}
	dir := t.TempDir()
	art, err := e.Export(context.Background(), drawing(t), dir, "spider")
	require.NoError(t, err)

	assert.False(t, art.Degraded)
	assert.NoError(t, art.Warning)
	assert.Equal(t, []Format{PS, SVG, PNG}, art.Formats)
	assert.True(t, art.Has(PNG))
	// the circle background covers the whole drawing
	assert.Equal(t, 330, art.Extent.Dx())
	assert.Equal(t, 330, art.Extent.Dy())
	require.NotNil(t, art.SVG)
	assert.Equal(t, "330", art.SVG.Width)
	assert.Equal(t, [4]float64{0, 0, 330, 330}, art.SVG.ViewBox)

	// without explicit size, the PNG uses the drawing extent
	png, err := os.ReadFile(art.Path(PNG))
	require.NoError(t, err)
	ps := art.Path(PS)
	assert.Equal(t, "/usr/bin/inkscape "+ps+" -D -o "+art.Path(PNG), string(png))
}

func TestExportPNGSize(t *testing.T) {
	e := Exporter{LookPath: found, Command: fakeCommand(""), Width: 64, Height: 64}
	art, err := e.Export(context.Background(), drawing(t), t.TempDir(), "spider")
	require.NoError(t, err)
	png, err := os.ReadFile(art.Path(PNG))
	require.NoError(t, err)
	assert.Contains(t, string(png), " -D -w 64 -h 64 -o ")

	e = Exporter{LookPath: found, Command: fakeCommand(""), Width: 64}
	_, err = e.Export(context.Background(), drawing(t), t.TempDir(), "spider")
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestExportIsIdempotent(t *testing.T) {
	e := Exporter{LookPath: notFound, Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))}
	dir := t.TempDir()
	rec := drawing(t)

	var contents [2][]byte
	for i := range contents {
		art, err := e.Export(context.Background(), rec, dir, "spider")
		require.NoError(t, err)
		contents[i], err = os.ReadFile(art.Path(PS))
		require.NoError(t, err)
	}
	assert.NotEmpty(t, contents[0])
	assert.Equal(t, contents[0], contents[1])
}

func TestExportConverterFailure(t *testing.T) {
	e := Exporter{LookPath: found, Command: fakeCommand("fail")}
	dir := t.TempDir()
	art, err := e.Export(context.Background(), drawing(t), dir, "spider")

	var eerr *ExportError
	require.True(t, errors.As(err, &eerr))
	assert.Equal(t, "convert", eerr.Op)
	assert.Equal(t, filepath.Join(dir, "spider.svg"), eerr.Path)
	assert.Contains(t, err.Error(), "unable to open input file")

	// the PostScript file is kept
	_, statErr := os.Stat(art.Path(PS))
	assert.NoError(t, statErr)
}

func TestExportTimeout(t *testing.T) {
	e := Exporter{LookPath: found, Command: fakeCommand("hang"), Timeout: 200 * time.Millisecond}
	_, err := e.Export(context.Background(), drawing(t), t.TempDir(), "spider")
	var eerr *ExportError
	require.True(t, errors.As(err, &eerr))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestExportWriteFailure(t *testing.T) {
	dir := t.TempDir()
	psPath := filepath.Join(dir, "spider.ps")
	require.NoError(t, os.Mkdir(psPath, 0o755))

	e := Exporter{LookPath: found, Command: fakeCommand("")}
	art, err := e.Export(context.Background(), drawing(t), dir, "spider")
	var eerr *ExportError
	require.True(t, errors.As(err, &eerr))
	assert.Equal(t, "write", eerr.Op)
	assert.Equal(t, psPath, eerr.Path)
	assert.Empty(t, art.Formats)

	// nothing is converted without the PostScript file
	_, statErr := os.Stat(filepath.Join(dir, "spider.svg"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportMkdirFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	e := Exporter{LookPath: notFound}
	_, err := e.Export(context.Background(), drawing(t), filepath.Join(file, "sub"), "spider")
	var eerr *ExportError
	require.True(t, errors.As(err, &eerr))
	assert.Equal(t, "mkdir", eerr.Op)
}
