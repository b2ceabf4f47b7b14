// Implements a PDF backend to render turtle drawings,
// by writing content stream operations with github.com/benoitkugler/pdf.
package turtlepdf

import (
	"image/color"

	"github.com/benoitkugler/okspider/turtle"
	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
	"golang.org/x/image/math/fixed"
)

var _ turtle.Canvas = Renderer{} // assert interface conformance

type Renderer struct {
	pdf *contentstream.Appearance
}

// implements the path commands
type pather struct {
	pdf *contentstream.Appearance
}

// NewRenderer return a renderer which will
// write to the given content stream.
// Turtle coordinates are written as is: the caller
// should set up the transformation matrix.
func NewRenderer(cs *contentstream.Appearance) Renderer {
	return Renderer{pdf: cs}
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p pather) Start(a fixed.Point26_6) {
	x, y := fixedTof(a)
	p.pdf.Ops(contentstream.OpMoveTo{X: x, Y: y})
}

func (p pather) Line(b fixed.Point26_6) {
	x, y := fixedTof(b)
	p.pdf.Ops(contentstream.OpLineTo{X: x, Y: y})
}

func (p pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.Ops(contentstream.OpCubicTo{X1: cx0, Y1: cy0, X2: cx1, Y2: cy1, X3: x, Y3: y})
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.Ops(contentstream.OpClosePath{})
	}
}

func (r Renderer) Stroke(path turtle.Path, width fixed.Int26_6, c color.RGBA) {
	r.pdf.SetColorStroke(c)
	r.pdf.Ops(
		contentstream.OpSetLineWidth{W: float64(width) / 64},
		contentstream.OpSetLineCap{Style: 1},  // round
		contentstream.OpSetLineJoin{Style: 1}, // round
	)
	path.AddTo(pather{pdf: r.pdf})
	r.pdf.Ops(contentstream.OpStroke{})
}

func (r Renderer) Fill(path turtle.Path, c color.RGBA) {
	r.pdf.SetColorFill(c)
	path.AddTo(pather{pdf: r.pdf})
	r.pdf.Ops(contentstream.OpFill{})
}

func (r Renderer) Dot(center fixed.Point26_6, diameter fixed.Int26_6, c color.RGBA) {
	var circle turtle.Path
	turtle.AddCircle(&circle, center, diameter/2)
	r.Fill(circle, c)
}

// RenderToPDF renders the recorded drawing on a single page,
// sized to the drawing extent, and writes it into `pdfName`.
func RenderToPDF(rec *turtle.Recorder, pdfName string) error {
	bb := rec.Bounds()
	minX, minY := fixedTof(bb.Min)
	maxX, maxY := fixedTof(bb.Max)

	pdf := contentstream.NewAppearance(maxX-minX, maxY-minY)
	renderer := NewRenderer(&pdf)
	pdf.Ops(
		contentstream.OpSave{},
		contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, 1, -minX, -minY}},
	)
	rec.Replay(renderer)
	pdf.Ops(contentstream.OpRestore{})

	var (
		doc  model.Document
		page model.PageObject
	)
	pdf.ApplyToPageObject(&page, true)
	doc.Catalog.Pages.Kids = append(doc.Catalog.Pages.Kids, &page)
	return doc.WriteFile(pdfName, nil)
}
