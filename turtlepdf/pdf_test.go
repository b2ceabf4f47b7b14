package turtlepdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/okspider/turtle"
)

func TestRenderToPDF(t *testing.T) {
	rec := turtle.NewRecorder()
	pen := turtle.NewPen(rec)
	err := pen.Exec(
		turtle.Dot{Diameter: 50},
		turtle.SetWidth(5),
		turtle.Forward(70),
		turtle.Home{},
		turtle.Goto{X: 10, Y: 10},
		turtle.BeginFill{},
		turtle.Goto{X: 30, Y: 10}, turtle.Goto{X: 30, Y: 30},
		turtle.EndFill{},
	)
	if err != nil {
		t.Fatal(err)
	}

	name := filepath.Join(t.TempDir(), "drawing.pdf")
	if err := RenderToPDF(rec, name); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Errorf("not a PDF file: %q", b[:10])
	}
	// one page, sized to the drawing
	if n := bytes.Count(b, []byte("/Type/Page\n")); n != 1 {
		t.Errorf("expected one page object, got %d", n)
	}
	if !bytes.Contains(b, []byte("/MediaBox")) {
		t.Error("missing page media box")
	}
}
