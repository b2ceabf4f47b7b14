// Implements a PostScript backend to export turtle drawings,
// as an encapsulated PostScript (EPS) document covering the whole
// drawing extent.
// The output only depends on the drawing: encoding the same
// drawing twice produces the same bytes.
package turtleps

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/benoitkugler/okspider/turtle"
	"golang.org/x/image/math/fixed"
)

var _ turtle.Canvas = (*Renderer)(nil) // assert interface conformance

// Renderer writes PostScript drawing operators.
// Errors are sticky: the first write error is kept
// and reported by Err.
type Renderer struct {
	w   *bufio.Writer
	err error
}

// NewRenderer returns a renderer writing operators to `w`.
// The document header is not written, see Encode.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: bufio.NewWriter(w)}
}

// Err returns the first error encountered, after
// flushing the pending output.
func (r *Renderer) Err() error {
	if r.err == nil {
		r.err = r.w.Flush()
	}
	return r.err
}

func (r *Renderer) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// formats a fixed point number with the minimal number of digits
func num(v fixed.Int26_6) string {
	return strconv.FormatFloat(float64(v)/64, 'f', -1, 64)
}

func point(p fixed.Point26_6) string {
	return num(p.X) + " " + num(p.Y)
}

func colorOp(c color.RGBA) string {
	f := func(v uint8) string { return strconv.FormatFloat(float64(v)/255, 'f', 4, 64) }
	return f(c.R) + " " + f(c.G) + " " + f(c.B) + " setrgbcolor"
}

// pather writes the path construction operators.
type pather struct{ r *Renderer }

func (p pather) Start(a fixed.Point26_6) { p.r.printf("%s moveto\n", point(a)) }

func (p pather) Line(b fixed.Point26_6) { p.r.printf("%s lineto\n", point(b)) }

func (p pather) CubeBezier(b, c, d fixed.Point26_6) {
	p.r.printf("%s %s %s curveto\n", point(b), point(c), point(d))
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.r.printf("closepath\n")
	}
}

func (r *Renderer) Stroke(path turtle.Path, width fixed.Int26_6, c color.RGBA) {
	r.printf("%s\n%s setlinewidth\nnewpath\n", colorOp(c), num(width))
	path.AddTo(pather{r})
	r.printf("stroke\n")
}

func (r *Renderer) Fill(path turtle.Path, c color.RGBA) {
	r.printf("%s\nnewpath\n", colorOp(c))
	path.AddTo(pather{r})
	r.printf("fill\n")
}

func (r *Renderer) Dot(center fixed.Point26_6, diameter fixed.Int26_6, c color.RGBA) {
	r.printf("%s\nnewpath\n%s %s 0 360 arc\nclosepath\nfill\n", colorOp(c), point(center), num(diameter/2))
}

// BoundingBox returns the integer bounding box of the drawing,
// as required by the EPS header.
func BoundingBox(rec *turtle.Recorder) (llx, lly, urx, ury int) {
	bb := rec.Bounds()
	return int(math.Floor(turtle.FromFixed(bb.Min.X))), int(math.Floor(turtle.FromFixed(bb.Min.Y))),
		int(math.Ceil(turtle.FromFixed(bb.Max.X))), int(math.Ceil(turtle.FromFixed(bb.Max.Y)))
}

// Encode writes the recorded drawing as an EPS document.
// The drawing is translated so that its bounding box
// starts at the origin of the page.
func Encode(w io.Writer, rec *turtle.Recorder, title string) error {
	llx, lly, urx, ury := BoundingBox(rec)
	r := NewRenderer(w)
	r.printf("%%!PS-Adobe-3.0 EPSF-3.0\n")
	r.printf("%%%%Creator: okspider\n")
	r.printf("%%%%Title: %s\n", title)
	r.printf("%%%%BoundingBox: 0 0 %d %d\n", urx-llx, ury-lly)
	r.printf("%%%%Pages: 1\n")
	r.printf("%%%%EndComments\n")
	r.printf("%%%%Page: 1 1\n")
	r.printf("gsave\n%d %d translate\n1 setlinecap\n1 setlinejoin\n", -llx, -lly)
	rec.Replay(r)
	r.printf("grestore\nshowpage\n%%%%EOF\n")
	return r.Err()
}

// WriteFile encodes the drawing into the file `path`.
func WriteFile(path string, rec *turtle.Recorder, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, rec, title); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
