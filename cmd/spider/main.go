// Command spider draws a spider and saves it as PostScript,
// and as SVG and PNG files when Inkscape is installed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/benoitkugler/okspider/config"
	"github.com/benoitkugler/okspider/export"
	"github.com/benoitkugler/okspider/spider"
	"github.com/benoitkugler/okspider/turtle"
	"github.com/benoitkugler/okspider/turtlepdf"
	"github.com/benoitkugler/okspider/turtleraster"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	// Flags
	configFile  = flag.String("config", "", "TOML configuration file")
	scale       = flag.Int("scale", 0, "Scaling constant (default 20)")
	plan        = flag.String("plan", "", "Body layout: 'L' is a leg, 'E' an eye and ' ' nothing")
	backgrounds = flag.String("bg", "", "Comma separated background variants: circle, square or none")
	outDir      = flag.String("out", "", "Output directory (default imgs)")
	name        = flag.String("name", "", "Base name of the output files (default spider)")
	width       = flag.Int("w", 0, "PNG width, requires -h")
	height      = flag.Int("h", 0, "PNG height, requires -w")
	preview     = flag.Bool("preview", false, "Also save an in-process raster preview")
	pdfOut      = flag.Bool("pdf", false, "Also save a PDF file")
	verbose     = flag.Bool("v", false, "Verbose logging, with the generated turtle instructions")
)

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	out := termenv.NewOutput(os.Stderr)
	colored := term.IsTerminal(int(os.Stderr.Fd()))
	decorate := func(s string, color string) string {
		if !colored {
			return s
		}
		return out.String(s).Foreground(out.Color(color)).String()
	}

	cfg, err := loadConfig()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, decorate("Invalid configuration: "+err.Error(), "1"))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	exporter := cfg.Exporter()
	exporter.Logger = logger
	for _, bg := range cfg.Backgrounds {
		art, err := draw(ctx, cfg, exporter, bg)
		if err != nil {
			var cerr *spider.ConfigurationError
			if errors.As(err, &cerr) {
				fmt.Fprintln(os.Stderr, decorate("Invalid configuration: "+err.Error(), "1"))
			} else {
				fmt.Fprintln(os.Stderr, decorate("Export failed: "+err.Error(), "1"))
			}
			os.Exit(1)
		}
		// the missing converter has already been logged by the exporter
		color := "2"
		if art.Degraded {
			color = "3"
		}
		fmt.Fprintln(os.Stderr, decorate(summary(art), color))
	}
}

// summary returns the status line of one export.
func summary(art export.Artifact) string {
	files := make([]string, len(art.Formats))
	for i, f := range art.Formats {
		files[i] = art.Path(f)
	}
	s := "Saved " + strings.Join(files, ", ")
	if art.Degraded {
		s += " (PostScript only)"
	}
	return s
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return cfg, err
		}
	}
	// flags override the file
	if *scale != 0 {
		cfg.Scale = *scale
	}
	if *plan != "" {
		cfg.Plan = *plan
	}
	if *backgrounds != "" {
		cfg.Backgrounds = strings.Split(*backgrounds, ",")
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *name != "" {
		cfg.Name = *name
	}
	if *width != 0 || *height != 0 {
		cfg.PNGWidth, cfg.PNGHeight = *width, *height
	}
	return cfg, nil
}

// draw draws and exports one background variant.
func draw(ctx context.Context, cfg config.Config, exporter *export.Exporter, bg string) (export.Artifact, error) {
	opts, err := cfg.Options(bg)
	if err != nil {
		return export.Artifact{}, err
	}
	rec, dims, err := spider.Sketch(opts)
	if err != nil {
		return export.Artifact{}, err
	}
	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		ins, _ := spider.Generate(opts.Plan, dims)
		slog.Debug("instructions", "background", bg, "program", "\n"+turtle.Format(ins))
	}
	slog.Info("drawing spider", "background", bg, "scale", dims.Scale,
		"legs", opts.Plan.Count(spider.Leg), "eyes", opts.Plan.Count(spider.Eye))

	dir := cfg.Directory(bg)
	art, err := exporter.Export(ctx, rec, dir, cfg.Name)
	if err != nil {
		return art, err
	}
	if err := extras(cfg, rec, art.Base); err != nil {
		return art, err
	}
	return art, nil
}

// extras writes the optional in-process outputs.
func extras(cfg config.Config, rec *turtle.Recorder, base string) error {
	if *preview {
		path := base + ".preview.png"
		if err := turtleraster.SavePreview(rec, path, cfg.PNGWidth, cfg.PNGHeight); err != nil {
			return &export.ExportError{Op: "write", Path: path, Err: err}
		}
		slog.Info("wrote file", "path", path)
	}
	if *pdfOut {
		path := base + ".pdf"
		if err := turtlepdf.RenderToPDF(rec, path); err != nil {
			return &export.ExportError{Op: "write", Path: path, Err: err}
		}
		slog.Info("wrote file", "path", path)
	}
	return nil
}
