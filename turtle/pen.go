// Package turtle implements a turtle style pen, drawing
// on an abstract Canvas.
//
// A Pen executes Instruction values, one at a time,
// mutating its PenState and emitting primitives to the canvas.
// The Recorder canvas keeps these primitives in memory so that
// they may be exported with backends such as turtleps,
// turtleraster or turtlepdf.
package turtle

import (
	"errors"
	"image/color"
	"math"

	"golang.org/x/image/math/fixed"
)

// Point is a position in turtle space.
type Point struct{ X, Y float64 }

func (p Point) fixed() fixed.Point26_6 { return fToFixed(p.X, p.Y) }

var (
	Black = color.RGBA{A: 0xff}
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// ErrNotFilling is returned by EndFill when no fill is in progress.
var ErrNotFilling = errors.New("turtle: end of fill without begin")

// PenState holds the state of the drawing cursor.
type PenState struct {
	Pos     Point
	Heading float64 // in radians, counterclockwise from the X axis
	Down    bool
	Color   color.RGBA // used both for lines and fills
	Width   float64    // line width
	Filling bool
}

// DefaultState is the state of a new pen: at the origin,
// heading east, pen down, drawing black lines of width 1.
var DefaultState = PenState{
	Down:  true,
	Color: Black,
	Width: 1,
}

// Pen draws on a canvas. It is not safe for concurrent use:
// a pen is owned by one drawing session.
type Pen struct {
	state  PenState
	canvas Canvas

	fill []fixed.Point26_6 // polygon vertices, while filling
}

// NewPen returns a pen in the default state, drawing on `c`.
func NewPen(c Canvas) *Pen {
	return &Pen{state: DefaultState, canvas: c}
}

// State returns a copy of the current pen state.
func (p *Pen) State() PenState { return p.state }

// Exec executes the instructions in order, stopping at
// the first error.
func (p *Pen) Exec(ins ...Instruction) error {
	for _, in := range ins {
		if err := in.apply(p); err != nil {
			return err
		}
	}
	return nil
}

// moveTo moves the pen, drawing a line if the pen is down,
// and recording a vertex if a fill is in progress.
func (p *Pen) moveTo(to Point) {
	from := p.state.Pos
	p.state.Pos = to
	if p.state.Filling {
		p.fill = append(p.fill, to.fixed())
	}
	if !p.state.Down || from == to {
		return
	}
	var path Path
	path.Start(from.fixed())
	path.Line(to.fixed())
	p.canvas.Stroke(path, ToFixed(p.state.Width), p.state.Color)
}

func (p *Pen) forward(distance float64) {
	s, c := math.Sincos(p.state.Heading)
	p.moveTo(Point{X: p.state.Pos.X + distance*c, Y: p.state.Pos.Y + distance*s})
}

func (p *Pen) dot(diameter float64, c color.RGBA) {
	if c == (color.RGBA{}) {
		c = p.state.Color
	}
	p.canvas.Dot(p.state.Pos.fixed(), ToFixed(diameter), c)
}

func (p *Pen) beginFill() {
	p.state.Filling = true
	p.fill = append(p.fill[:0], p.state.Pos.fixed())
}

func (p *Pen) endFill() error {
	if !p.state.Filling {
		return ErrNotFilling
	}
	p.state.Filling = false
	if len(p.fill) > 2 {
		var path Path
		AddPolygon(&path, p.fill)
		p.canvas.Fill(path, p.state.Color)
	}
	p.fill = p.fill[:0]
	return nil
}
