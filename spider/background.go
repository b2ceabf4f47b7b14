package spider

import (
	"image/color"

	"github.com/benoitkugler/okspider/turtle"
)

// Background is the shape drawn behind the spider.
type Background uint8

const (
	NoBackground Background = iota
	Circle
	Square
)

func (b Background) String() string {
	switch b {
	case NoBackground:
		return "none"
	case Circle:
		return "circle"
	case Square:
		return "square"
	default:
		return "<unknown Background>"
	}
}

// ParseBackground returns the background named `name`:
// "circle", "square", or "none" (also the empty string).
func ParseBackground(name string) (Background, error) {
	switch name {
	case "circle":
		return Circle, nil
	case "square":
		return Square, nil
	case "none", "":
		return NoBackground, nil
	default:
		return 0, &ConfigurationError{
			Field:  "background",
			Value:  name,
			Reason: `must be "circle" or "square"`,
		}
	}
}

// DrawBackground draws the background shape, sized to the screen,
// with a pen of its own on `canvas`. It must be called before
// drawing the spider so that the spider is on top.
func DrawBackground(canvas turtle.Canvas, bg Background, dims Dimensions, c color.RGBA) error {
	pen := turtle.NewPen(canvas)
	switch bg {
	case NoBackground:
		return nil
	case Circle:
		return pen.Exec(
			turtle.PenUp{},
			turtle.Dot{Diameter: float64(dims.ScreenSize), Color: c},
		)
	case Square:
		// distance from the side of the box to the center
		half := float64(dims.ScreenSize / 2)
		return pen.Exec(
			turtle.PenUp{},
			turtle.SetColor(c),
			turtle.Goto{X: -half, Y: -half},
			turtle.BeginFill{},
			turtle.Goto{X: half, Y: -half},
			turtle.Goto{X: half, Y: half},
			turtle.Goto{X: -half, Y: half},
			turtle.EndFill{},
		)
	default:
		return &ConfigurationError{Field: "background", Value: bg, Reason: "unknown shape"}
	}
}
