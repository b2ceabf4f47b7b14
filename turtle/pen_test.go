package turtle

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestForwardDrawsWhenDown(t *testing.T) {
	rec := NewRecorder()
	pen := NewPen(rec)
	if err := pen.Exec(SetWidth(10), SetHeading(math.Pi/2), Forward(100)); err != nil {
		t.Fatal(err)
	}
	if rec.Len() != 1 {
		t.Fatalf("expected one stroke, got %d items", rec.Len())
	}
	st, ok := rec.Items()[0].(StrokeItem)
	if !ok {
		t.Fatalf("unexpected item %T", rec.Items()[0])
	}
	if st.Width != ToFixed(10) {
		t.Errorf("unexpected width %v", st.Width)
	}
	end := pen.State().Pos
	if math.Abs(end.X) > 1e-9 || math.Abs(end.Y-100) > 1e-9 {
		t.Errorf("unexpected position %v", end)
	}
}

func TestPenUpAndHome(t *testing.T) {
	rec := NewRecorder()
	pen := NewPen(rec)
	if err := pen.Exec(PenUp{}, Forward(50), PenDown{}, Home{}); err != nil {
		t.Fatal(err)
	}
	if rec.Len() != 0 {
		t.Errorf("nothing should be drawn, got %d items", rec.Len())
	}
	st := pen.State()
	if st.Pos != (Point{}) || st.Down {
		t.Errorf("home should lift the pen at the origin, got %+v", st)
	}
}

func TestDot(t *testing.T) {
	rec := NewRecorder()
	pen := NewPen(rec)
	// dots are drawn even with the pen up
	if err := pen.Exec(PenUp{}, Goto{X: 3, Y: 4}, Dot{Diameter: 20}, Dot{Diameter: 8, Color: White}); err != nil {
		t.Fatal(err)
	}
	if rec.Len() != 2 {
		t.Fatalf("expected 2 dots, got %d", rec.Len())
	}
	first := rec.Items()[0].(DotItem)
	if first.Color != Black {
		t.Errorf("default dot color should be the pen color, got %v", first.Color)
	}
	if first.Center != fToFixed(3, 4) || first.Diameter != ToFixed(20) {
		t.Errorf("unexpected dot %+v", first)
	}
	if second := rec.Items()[1].(DotItem); second.Color != White {
		t.Errorf("unexpected color %v", second.Color)
	}

	if err := pen.Exec(Dot{Diameter: -1}); err == nil {
		t.Error("expected error for negative diameter")
	}
}

func TestFill(t *testing.T) {
	rec := NewRecorder()
	pen := NewPen(rec)
	err := pen.Exec(
		PenUp{}, SetColor(White),
		Goto{X: -5, Y: -5},
		BeginFill{},
		Goto{X: 5, Y: -5}, Goto{X: 5, Y: 5}, Goto{X: -5, Y: 5},
		EndFill{},
	)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Len() != 1 {
		t.Fatalf("expected one fill, got %d items", rec.Len())
	}
	fill := rec.Items()[0].(FillItem)
	if fill.Color != White {
		t.Errorf("unexpected color %v", fill.Color)
	}
	want := fixed.Rectangle26_6{Min: fToFixed(-5, -5), Max: fToFixed(5, 5)}
	if got := fill.Path.Bounds(); got != want {
		t.Errorf("expected bounds %v, got %v", want, got)
	}
	if pen.State().Filling {
		t.Error("fill should be over")
	}

	if err := pen.Exec(EndFill{}); !errors.Is(err, ErrNotFilling) {
		t.Errorf("expected ErrNotFilling, got %v", err)
	}
}

func TestRecorderBounds(t *testing.T) {
	rec := NewRecorder()
	pen := NewPen(rec)
	if err := pen.Exec(SetWidth(4), Forward(10), Home{}, Dot{Diameter: 30}); err != nil {
		t.Fatal(err)
	}
	want := fixed.Rectangle26_6{Min: fToFixed(-15, -15), Max: fToFixed(15, 15)}
	if got := rec.Bounds(); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	if got := NewRecorder().Bounds(); got != (fixed.Rectangle26_6{}) {
		t.Errorf("expected empty bounds, got %v", got)
	}
}

func TestCircleBounds(t *testing.T) {
	var p Path
	AddCircle(&p, fToFixed(10, 20), ToFixed(50))
	bb := p.Bounds()
	minX, minY := fixedTof(bb.Min)
	maxX, maxY := fixedTof(bb.Max)
	for _, c := range [...][2]float64{
		{minX, -40}, {minY, -30}, {maxX, 60}, {maxY, 70},
	} {
		if math.Abs(c[0]-c[1]) > 0.5 {
			t.Errorf("expected %g, got %g", c[1], c[0])
		}
	}
	if _, closed := p[len(p)-1].(Close); !closed {
		t.Error("circle should be closed")
	}
}

func TestFormat(t *testing.T) {
	got := Format([]Instruction{Home{}, SetHeading(0), PenDown{}, Forward(140)})
	want := "home\nheading 0.0000\ndown\nforward 140\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
