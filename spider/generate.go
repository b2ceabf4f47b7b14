package spider

import (
	"math"

	"github.com/benoitkugler/okspider/turtle"
)

// Headings returns the heading, in radians, of each of the `n`
// slots of a plan: 2π·i/n for the i-th slot.
func Headings(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 2 * math.Pi * float64(i) / float64(n)
	}
	return out
}

// Generate returns the pen instructions drawing the legs and eyes
// described by `plan`. Each part starts with the pen lifted at the
// origin, so that all parts emanate from the center whatever the
// previous state.
// The body itself is not included, see Renderer.
func Generate(plan BodyPlan, dims Dimensions) ([]turtle.Instruction, error) {
	headings := Headings(len(plan))
	var out []turtle.Instruction
	for i, part := range plan {
		out = append(out, turtle.Home{}, turtle.SetHeading(headings[i]))
		switch part {
		case Leg:
			out = append(out,
				turtle.PenDown{},
				turtle.Forward(dims.LegLength),
			)
		case Eye:
			out = append(out,
				turtle.Forward(dims.EyeOffset()),
				turtle.PenDown{},
				turtle.Dot{Diameter: float64(dims.EyeSize()), Color: turtle.White},
				turtle.Dot{Diameter: float64(dims.PupilSize()), Color: turtle.Black},
			)
		case Empty:
		default:
			return nil, &ConfigurationError{Field: "body part", Value: part, Reason: "unknown part"}
		}
	}
	return out, nil
}
