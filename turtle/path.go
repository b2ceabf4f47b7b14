package turtle

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"
)

// This file defines the basic path structure shared by
// the pen and the canvas backends.

// Pather receives path commands. Backends (or their
// underlying rasterizers) implement it.
type Pather interface {
	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line adds a line from the current point to `b`
	Line(b fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Stop closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)
}

// Operation groups the different path commands
type Operation interface {
	// add itself on the pather `d`
	drawTo(d Pather)
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

// starts a new path at the given point.
func (op MoveTo) drawTo(d Pather) {
	d.Stop(false) // implicit close if currently in path.
	d.Start(fixed.Point26_6(op))
}

func (op LineTo) drawTo(d Pather) {
	d.Line(fixed.Point26_6(op))
}

func (op CubicTo) drawTo(d Pather) {
	d.CubeBezier(op[0], op[1], op[2])
}

func (op Close) drawTo(d Pather) {
	d.Stop(true)
}

// Path describes a sequence of basic operations.
type Path []Operation

// AddTo sends the path commands to `d`, ending with
// an open Stop if the path was not explicitly closed.
func (p Path) AddTo(d Pather) {
	for _, op := range p {
		op.drawTo(d)
	}
	if len(p) != 0 {
		if _, closed := p[len(p)-1].(Close); !closed {
			d.Stop(false)
		}
	}
}

// String returns a readable, SVG like, representation of a Path.
func (p Path) String() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f", float32(op[0].X)/64, float32(op[0].Y)/64,
				float32(op[1].X)/64, float32(op[1].Y)/64, float32(op[2].X)/64, float32(op[2].Y)/64)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Bounds returns the extent of the path, taking curve
// extrema into account. An empty path has empty bounds.
func (p Path) Bounds() fixed.Rectangle26_6 {
	var (
		bb      fixed.Rectangle26_6
		current fixed.Point26_6
		started bool
	)
	union := func(r fixed.Rectangle26_6) {
		if !started {
			bb, started = r, true
			return
		}
		bb = unionRect(bb, r)
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current = fixed.Point26_6(op)
			union(fixed.Rectangle26_6{Min: current, Max: current})
		case LineTo:
			union(computeBoundingBox(line{current, fixed.Point26_6(op)}))
			current = fixed.Point26_6(op)
		case CubicTo:
			union(computeBoundingBox(cubicBezier{current, op[0], op[1], op[2]}))
			current = op[2]
		}
	}
	return bb
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func fToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// ToFixed converts a length to the fixed point representation
// used by paths.
func ToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}

// FromFixed is the inverse of ToFixed.
func FromFixed(f fixed.Int26_6) float64 {
	return float64(f) / 64
}
