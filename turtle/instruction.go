package turtle

import (
	"fmt"
	"image/color"
	"strings"
)

// Instruction is one pen command.
type Instruction interface {
	// apply itself on the pen
	apply(p *Pen) error
}

// Home lifts the pen and moves it back to the origin,
// without drawing.
type Home struct{}

// SetHeading sets the absolute heading, in radians.
type SetHeading float64

// Forward moves the pen along its heading.
type Forward float64

// Goto moves the pen to an absolute position.
type Goto Point

type PenUp struct{}

type PenDown struct{}

type SetColor color.RGBA

// SetWidth sets the line width.
type SetWidth float64

// Dot paints a disc of the given diameter at the pen position,
// whatever the pen up/down state. A zero Color uses the pen color.
type Dot struct {
	Diameter float64
	Color    color.RGBA
}

// BeginFill starts recording a polygon, from the pen position.
type BeginFill struct{}

// EndFill fills the polygon recorded since BeginFill with the
// pen color.
type EndFill struct{}

func (Home) apply(p *Pen) error {
	p.state.Down = false
	p.moveTo(Point{})
	return nil
}

func (op SetHeading) apply(p *Pen) error {
	p.state.Heading = float64(op)
	return nil
}

func (op Forward) apply(p *Pen) error {
	p.forward(float64(op))
	return nil
}

func (op Goto) apply(p *Pen) error {
	p.moveTo(Point(op))
	return nil
}

func (PenUp) apply(p *Pen) error {
	p.state.Down = false
	return nil
}

func (PenDown) apply(p *Pen) error {
	p.state.Down = true
	return nil
}

func (op SetColor) apply(p *Pen) error {
	p.state.Color = color.RGBA(op)
	return nil
}

func (op SetWidth) apply(p *Pen) error {
	if op < 0 {
		return fmt.Errorf("turtle: negative line width %g", float64(op))
	}
	p.state.Width = float64(op)
	return nil
}

func (op Dot) apply(p *Pen) error {
	if op.Diameter < 0 {
		return fmt.Errorf("turtle: negative dot diameter %g", op.Diameter)
	}
	p.dot(op.Diameter, op.Color)
	return nil
}

func (BeginFill) apply(p *Pen) error {
	p.beginFill()
	return nil
}

func (EndFill) apply(p *Pen) error {
	return p.endFill()
}

// Format returns a readable listing of the instructions,
// one per line.
func Format(ins []Instruction) string {
	var b strings.Builder
	for _, in := range ins {
		switch in := in.(type) {
		case Home:
			b.WriteString("home")
		case SetHeading:
			fmt.Fprintf(&b, "heading %.4f", float64(in))
		case Forward:
			fmt.Fprintf(&b, "forward %g", float64(in))
		case Goto:
			fmt.Fprintf(&b, "goto %g %g", in.X, in.Y)
		case PenUp:
			b.WriteString("up")
		case PenDown:
			b.WriteString("down")
		case SetColor:
			fmt.Fprintf(&b, "color #%02x%02x%02x", in.R, in.G, in.B)
		case SetWidth:
			fmt.Fprintf(&b, "width %g", float64(in))
		case Dot:
			fmt.Fprintf(&b, "dot %g #%02x%02x%02x", in.Diameter, in.Color.R, in.Color.G, in.Color.B)
		case BeginFill:
			b.WriteString("begin_fill")
		case EndFill:
			b.WriteString("end_fill")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
