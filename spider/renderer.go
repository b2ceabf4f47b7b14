package spider

import (
	"image/color"

	"github.com/benoitkugler/okspider/turtle"
)

// Renderer draws the spider with a pen.
type Renderer struct {
	Plan       BodyPlan
	Dimensions Dimensions
	Color      color.RGBA // body and legs; zero means black
}

// Draw draws the body, then every part of the plan.
// The pen must not be shared with a concurrent drawing.
func (r Renderer) Draw(pen *turtle.Pen) error {
	ins, err := Generate(r.Plan, r.Dimensions)
	if err != nil {
		return err
	}
	c := r.Color
	if c == (color.RGBA{}) {
		c = turtle.Black
	}
	// the body is drawn at the origin, the parts on top of it
	err = pen.Exec(
		turtle.Home{},
		turtle.SetColor(c),
		turtle.Dot{Diameter: float64(2 * r.Dimensions.BodySize)},
		turtle.SetWidth(r.Dimensions.LegThickness),
	)
	if err != nil {
		return err
	}
	return pen.Exec(ins...)
}
