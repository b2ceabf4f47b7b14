// Implements a raster backend to render turtle drawings,
// by wrapping rasterx.
package turtleraster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/benoitkugler/okspider/turtle"
	"github.com/disintegration/imaging"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ turtle.Canvas = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance

	// position of the turtle origin, in image space
	origin fixed.Point26_6
}

// NewRenderer returns a renderer drawing in a `width` x `height` area,
// with the turtle origin at `origin` (in pixels).
// If scanner is nil, a scanner rasterx.ScannerGV is used on a new image.
func NewRenderer(width, height int, origin image.Point, scanner rasterx.Scanner) *Renderer {
	if scanner == nil {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		scanner = rasterx.NewScannerGV(width, height, img, img.Bounds())
	}
	return &Renderer{
		dasher: rasterx.NewDasher(width, height, scanner),
		filler: rasterx.NewFiller(width, height, scanner),
		origin: fixed.P(origin.X, origin.Y),
	}
}

// flipper maps turtle space (Y up) to image space (Y down)
type flipper struct {
	origin fixed.Point26_6
	dst    rasterx.Adder
}

func (f flipper) tr(a fixed.Point26_6) fixed.Point26_6 {
	return fixed.Point26_6{X: f.origin.X + a.X, Y: f.origin.Y - a.Y}
}

func (f flipper) Start(a fixed.Point26_6) { f.dst.Start(f.tr(a)) }

func (f flipper) Line(b fixed.Point26_6) { f.dst.Line(f.tr(b)) }

func (f flipper) CubeBezier(b, c, d fixed.Point26_6) { f.dst.CubeBezier(f.tr(b), f.tr(c), f.tr(d)) }

func (f flipper) Stop(closeLoop bool) { f.dst.Stop(closeLoop) }

func (rd *Renderer) Stroke(path turtle.Path, width fixed.Int26_6, c color.RGBA) {
	rd.dasher.Clear()
	rd.dasher.SetStroke(width, 4*64, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)
	path.AddTo(flipper{origin: rd.origin, dst: rd.dasher})
	rd.dasher.Scanner.SetColor(c)
	rd.dasher.Draw()
}

func (rd *Renderer) Fill(path turtle.Path, c color.RGBA) {
	rd.filler.Clear()
	rd.filler.SetWinding(true)
	path.AddTo(flipper{origin: rd.origin, dst: rd.filler})
	rd.filler.Scanner.SetColor(c)
	rd.filler.Draw()
}

func (rd *Renderer) Dot(center fixed.Point26_6, diameter fixed.Int26_6, c color.RGBA) {
	rd.filler.Clear()
	rd.filler.SetWinding(true)
	cx := float64(rd.origin.X+center.X) / 64
	cy := float64(rd.origin.Y-center.Y) / 64
	rasterx.AddCircle(cx, cy, float64(diameter)/128, rd.filler)
	rd.filler.Scanner.SetColor(c)
	rd.filler.Draw()
}

// Rasterize renders the recorded drawing on a new image, sized to the
// drawing extent, over the `background` color.
func Rasterize(rec *turtle.Recorder, background color.Color) *image.RGBA {
	bb := rec.Bounds()
	minX, minY := int(math.Floor(turtle.FromFixed(bb.Min.X))), int(math.Floor(turtle.FromFixed(bb.Min.Y)))
	maxX, maxY := int(math.Ceil(turtle.FromFixed(bb.Max.X))), int(math.Ceil(turtle.FromFixed(bb.Max.Y)))
	w, h := maxX-minX, maxY-minY

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	renderer := NewRenderer(w, h, image.Pt(-minX, maxY), scanner)
	rec.Replay(renderer)
	return img
}

// SavePreview rasterizes the drawing and saves it to `path`, the image
// format being deduced from the file extension.
// When width and height are both positive the image is resized to
// these dimensions first.
func SavePreview(rec *turtle.Recorder, path string, width, height int) error {
	var img image.Image = Rasterize(rec, color.White)
	if width > 0 && height > 0 {
		img = imaging.Resize(img, width, height, imaging.Lanczos)
	}
	return imaging.Save(img, path)
}
