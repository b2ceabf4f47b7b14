// Package config holds the settings of a drawing run,
// loaded from an optional TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/benoitkugler/okspider/export"
	"github.com/benoitkugler/okspider/spider"
	"github.com/pelletier/go-toml/v2"
)

// Config is the full set of settings of a run.
type Config struct {
	// Scale is the main scaling constant: change it to
	// make the spider bigger or smaller.
	Scale int `toml:"scale"`

	// Plan is the layout of the spider, see spider.ParsePlan.
	Plan string `toml:"plan"`

	// Backgrounds lists the variants to draw, one export each.
	Backgrounds []string `toml:"backgrounds"`

	WindowSize int `toml:"window_size"` // 0 for 20*scale

	OutputDir string `toml:"output_dir"`
	Name      string `toml:"name"` // base name of the files

	PNGWidth  int `toml:"png_width"`
	PNGHeight int `toml:"png_height"`

	Converter      string `toml:"converter"`
	TimeoutSeconds int    `toml:"timeout"` // in seconds, 0 for the default, negative for none
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Scale:       20,
		Plan:        spider.DefaultPlan,
		Backgrounds: []string{"circle", "square"},
		OutputDir:   "imgs",
		Name:        "spider",
		Converter:   export.DefaultConverter,
	}
}

// Load reads the TOML file `path` over the default settings:
// keys absent from the file (or set to a zero value) keep their
// default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Default(), err
	}
	var file Config
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Default(), fmt.Errorf("config: %s:%d:%d: %w", path, row, col, err)
		}
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return Default().overlay(file), nil
}

// overlay returns c updated with the non zero fields of o.
func (c Config) overlay(o Config) Config {
	if o.Scale != 0 {
		c.Scale = o.Scale
	}
	if o.Plan != "" {
		c.Plan = o.Plan
	}
	if o.Backgrounds != nil {
		c.Backgrounds = o.Backgrounds
	}
	if o.WindowSize != 0 {
		c.WindowSize = o.WindowSize
	}
	if o.OutputDir != "" {
		c.OutputDir = o.OutputDir
	}
	if o.Name != "" {
		c.Name = o.Name
	}
	if o.PNGWidth != 0 || o.PNGHeight != 0 {
		c.PNGWidth, c.PNGHeight = o.PNGWidth, o.PNGHeight
	}
	if o.Converter != "" {
		c.Converter = o.Converter
	}
	if o.TimeoutSeconds != 0 {
		c.TimeoutSeconds = o.TimeoutSeconds
	}
	return c
}

// Validate checks the settings, returning the first
// configuration error found.
func (c Config) Validate() error {
	plan, err := spider.ParsePlan(c.Plan)
	if err != nil {
		return err
	}
	if len(plan) == 0 {
		return &spider.ConfigurationError{Field: "body plan", Value: `""`, Reason: "must not be empty"}
	}
	if len(c.Backgrounds) == 0 {
		return &spider.ConfigurationError{Field: "backgrounds", Value: "[]", Reason: "at least one variant is required"}
	}
	for _, name := range c.Backgrounds {
		bg, err := spider.ParseBackground(name)
		if err != nil {
			return err
		}
		if _, err := spider.NewDimensions(c.Scale, bg != spider.NoBackground, c.WindowSize); err != nil {
			return err
		}
	}
	if (c.PNGWidth > 0) != (c.PNGHeight > 0) || c.PNGWidth < 0 || c.PNGHeight < 0 {
		return &spider.ConfigurationError{
			Field:  "PNG size",
			Value:  fmt.Sprintf("%dx%d", c.PNGWidth, c.PNGHeight),
			Reason: "width and height must be set together",
		}
	}
	if c.Name == "" {
		return &spider.ConfigurationError{Field: "name", Value: `""`, Reason: "must not be empty"}
	}
	return nil
}

// Timeout returns the converter timeout, as expected by export.Exporter.
func (c Config) Timeout() time.Duration {
	switch {
	case c.TimeoutSeconds > 0:
		return time.Duration(c.TimeoutSeconds) * time.Second
	case c.TimeoutSeconds < 0:
		return -1
	default:
		return 0
	}
}

// Directory returns the output directory of a background variant,
// with a sub-folder per variant when several are drawn.
func (c Config) Directory(background string) string {
	if len(c.Backgrounds) <= 1 {
		return c.OutputDir
	}
	return filepath.Join(c.OutputDir, background)
}

// Options returns the drawing options for a background variant.
// The configuration should have been validated.
func (c Config) Options(background string) (spider.Options, error) {
	plan, err := spider.ParsePlan(c.Plan)
	if err != nil {
		return spider.Options{}, err
	}
	bg, err := spider.ParseBackground(background)
	if err != nil {
		return spider.Options{}, err
	}
	return spider.Options{
		Plan:       plan,
		Scale:      c.Scale,
		WindowSize: c.WindowSize,
		Background: bg,
	}, nil
}

// Exporter returns an exporter configured with these settings.
func (c Config) Exporter() *export.Exporter {
	return &export.Exporter{
		Converter: c.Converter,
		Width:     c.PNGWidth,
		Height:    c.PNGHeight,
		Timeout:   c.Timeout(),
	}
}
