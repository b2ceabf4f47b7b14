package turtle

import (
	"math"

	"golang.org/x/image/math/fixed"
)

const cubicsPerHalfCircle = 8 // Number of cubic beziers to approx half a circle

// AddCircle appends a closed circle of radius `r` centered on `c`
// to the path, approximated by cubic bezier curves.
func AddCircle(p Pather, c fixed.Point26_6, r fixed.Int26_6) {
	// Approximate the circular arc using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	// The method was simplified for circles.
	const deltaTheta = 2 * math.Pi
	segs := int(deltaTheta/(math.Pi/cubicsPerHalfCircle)) + 1
	dTheta := deltaTheta / float64(segs)
	tde := math.Tan(dTheta / 2)
	alpha := math.Sin(dTheta) * (math.Sqrt(4+3*tde*tde) - 1) / 3

	cx, cy := fixedTof(c)
	rf := FromFixed(r)
	point := func(theta float64) (x, y float64) {
		return cx + rf*math.Cos(theta), cy + rf*math.Sin(theta)
	}
	deriv := func(theta float64) (x, y float64) {
		return -rf * math.Sin(theta), rf * math.Cos(theta)
	}

	p.Start(fToFixed(point(0)))
	for i := 1; i <= segs; i++ {
		t1, t2 := dTheta*float64(i-1), dTheta*float64(i)
		x1, y1 := point(t1)
		dx1, dy1 := deriv(t1)
		x2, y2 := point(t2)
		dx2, dy2 := deriv(t2)
		p.CubeBezier(
			fToFixed(x1+alpha*dx1, y1+alpha*dy1),
			fToFixed(x2-alpha*dx2, y2-alpha*dy2),
			fToFixed(x2, y2),
		)
	}
	p.Stop(true)
}

// AddPolygon appends the closed polygon joining `points`.
func AddPolygon(p Pather, points []fixed.Point26_6) {
	if len(points) == 0 {
		return
	}
	p.Start(points[0])
	for _, pt := range points[1:] {
		p.Line(pt)
	}
	p.Stop(true)
}
