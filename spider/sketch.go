// Package spider draws a stylized spider from a compact
// body plan, using the turtle package.
//
// The drawing is made of an optional background, a body
// and legs and eyes placed on evenly spaced headings.
package spider

import (
	"image/color"

	"github.com/benoitkugler/okspider/turtle"
)

// Options are the tunable parameters of a drawing.
type Options struct {
	Plan            BodyPlan
	Scale           int
	WindowSize      int // 0 for the default
	Background      Background
	BackgroundColor color.RGBA // zero means white
}

// Sketch validates the options, then draws the background
// and the spider in a new recorder.
// Configuration errors are reported before anything is drawn.
func Sketch(opts Options) (*turtle.Recorder, Dimensions, error) {
	dims, err := NewDimensions(opts.Scale, opts.Background != NoBackground, opts.WindowSize)
	if err != nil {
		return nil, Dimensions{}, err
	}
	// reject invalid plans before drawing the background
	if _, err := Generate(opts.Plan, dims); err != nil {
		return nil, Dimensions{}, err
	}
	bgColor := opts.BackgroundColor
	if bgColor == (color.RGBA{}) {
		bgColor = turtle.White
	}

	rec := turtle.NewRecorder()
	if err := DrawBackground(rec, opts.Background, dims, bgColor); err != nil {
		return nil, Dimensions{}, err
	}
	r := Renderer{Plan: opts.Plan, Dimensions: dims}
	if err := r.Draw(turtle.NewPen(rec)); err != nil {
		return nil, Dimensions{}, err
	}
	return rec, dims, nil
}
