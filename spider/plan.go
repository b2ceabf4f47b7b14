package spider

import (
	"fmt"
	"strings"
)

// Part is one body part, placed at an angular slot.
type Part uint8

const (
	Empty Part = iota // nothing is drawn, only the slot is used
	Leg
	Eye
)

func (p Part) String() string {
	switch p {
	case Empty:
		return "Empty"
	case Leg:
		return "Leg"
	case Eye:
		return "Eye"
	default:
		return "<unknown Part>"
	}
}

// symbol returns the layout character of the part
func (p Part) symbol() (rune, bool) {
	switch p {
	case Empty:
		return ' ', true
	case Leg:
		return 'L', true
	case Eye:
		return 'E', true
	default:
		return 0, false
	}
}

// BodyPlan describes which part is drawn at each slot.
// The i-th part of a plan with n parts is drawn with heading 2π·i/n.
type BodyPlan []Part

// DefaultPlan is the layout of the spider: eight legs,
// a gap, and two eyes following it.
const DefaultPlan = "LLLL LLLL" + "EE"

// ParsePlan parses a layout string, where `L` is a leg,
// `E` an eye and ` ` nothing.
func ParsePlan(layout string) (BodyPlan, error) {
	plan := make(BodyPlan, 0, len(layout))
	for i, r := range layout {
		switch r {
		case 'L':
			plan = append(plan, Leg)
		case 'E':
			plan = append(plan, Eye)
		case ' ':
			plan = append(plan, Empty)
		default:
			return nil, &ConfigurationError{
				Field:  "body plan token",
				Value:  fmt.Sprintf("%q at %d", r, i),
				Reason: "a layout should only contain the characters 'L', 'E' and ' '",
			}
		}
	}
	return plan, nil
}

// MustParsePlan is like ParsePlan but panics on invalid layouts.
func MustParsePlan(layout string) BodyPlan {
	plan, err := ParsePlan(layout)
	if err != nil {
		panic(err)
	}
	return plan
}

// String returns the layout string of the plan.
func (bp BodyPlan) String() string {
	var b strings.Builder
	for _, p := range bp {
		if r, ok := p.symbol(); ok {
			b.WriteRune(r)
		} else {
			b.WriteRune('?')
		}
	}
	return b.String()
}

// Count returns the number of parts of the given kind.
func (bp BodyPlan) Count(kind Part) int {
	n := 0
	for _, p := range bp {
		if p == kind {
			n++
		}
	}
	return n
}
