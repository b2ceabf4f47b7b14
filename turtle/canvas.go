package turtle

import (
	"image/color"

	"golang.org/x/image/math/fixed"
)

// Canvas knows how to do the actual draw operations.
// Coordinates are in turtle space: the origin is the
// center of the drawing and the Y axis points up.
// Backends are responsible for mapping them to their
// own device space.
type Canvas interface {
	// Stroke draws the outline of `path`, with round caps and joins.
	Stroke(path Path, width fixed.Int26_6, c color.RGBA)

	// Fill paints the interior of `path`, using the non-zero winding rule.
	Fill(path Path, c color.RGBA)

	// Dot paints a disc of the given diameter, centered on `center`.
	Dot(center fixed.Point26_6, diameter fixed.Int26_6, c color.RGBA)
}

var _ Canvas = (*Recorder)(nil) // assert interface conformance

// Item is one drawing primitive stored by a Recorder.
// It is one of StrokeItem, FillItem or DotItem.
type Item interface {
	drawTo(c Canvas)
	bounds() fixed.Rectangle26_6
}

type StrokeItem struct {
	Path  Path
	Width fixed.Int26_6
	Color color.RGBA
}

type FillItem struct {
	Path  Path
	Color color.RGBA
}

type DotItem struct {
	Center   fixed.Point26_6
	Diameter fixed.Int26_6
	Color    color.RGBA
}

func (it StrokeItem) drawTo(c Canvas) { c.Stroke(it.Path, it.Width, it.Color) }

func (it FillItem) drawTo(c Canvas) { c.Fill(it.Path, it.Color) }

func (it DotItem) drawTo(c Canvas) { c.Dot(it.Center, it.Diameter, it.Color) }

// round caps extend the path by half the width
func (it StrokeItem) bounds() fixed.Rectangle26_6 { return inflate(it.Path.Bounds(), it.Width/2) }

func (it FillItem) bounds() fixed.Rectangle26_6 { return it.Path.Bounds() }

func (it DotItem) bounds() fixed.Rectangle26_6 {
	r := it.Diameter / 2
	return inflate(fixed.Rectangle26_6{Min: it.Center, Max: it.Center}, r)
}

// Recorder is an in-memory Canvas, keeping the drawn
// items in order so that they can be replayed on
// any other backend.
// The zero value is an empty, usable recorder.
type Recorder struct {
	items []Item
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Stroke(path Path, width fixed.Int26_6, c color.RGBA) {
	r.items = append(r.items, StrokeItem{Path: append(Path(nil), path...), Width: width, Color: c})
}

func (r *Recorder) Fill(path Path, c color.RGBA) {
	r.items = append(r.items, FillItem{Path: append(Path(nil), path...), Color: c})
}

func (r *Recorder) Dot(center fixed.Point26_6, diameter fixed.Int26_6, c color.RGBA) {
	r.items = append(r.items, DotItem{Center: center, Diameter: diameter, Color: c})
}

// Items returns the recorded items, in drawing order.
// The returned slice must not be modified.
func (r *Recorder) Items() []Item { return r.items }

// Len returns the number of recorded items.
func (r *Recorder) Len() int { return len(r.items) }

// Replay draws the recorded items on `c`, in order.
func (r *Recorder) Replay(c Canvas) {
	for _, it := range r.items {
		it.drawTo(c)
	}
}

// Bounds returns the extent of the whole drawing,
// including stroke widths.
func (r *Recorder) Bounds() fixed.Rectangle26_6 {
	var bb fixed.Rectangle26_6
	for i, it := range r.items {
		if i == 0 {
			bb = it.bounds()
			continue
		}
		bb = unionRect(bb, it.bounds())
	}
	return bb
}
