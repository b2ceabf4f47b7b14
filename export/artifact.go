package export

import "image"

// Format is an output file format.
type Format uint8

const (
	PS Format = iota
	SVG
	PNG
)

// Ext returns the file extension of the format, with the leading dot.
func (f Format) Ext() string {
	switch f {
	case PS:
		return ".ps"
	case SVG:
		return ".svg"
	case PNG:
		return ".png"
	default:
		return ""
	}
}

func (f Format) String() string {
	switch f {
	case PS:
		return "PostScript"
	case SVG:
		return "SVG"
	case PNG:
		return "PNG"
	default:
		return "<unknown Format>"
	}
}

// Artifact describes the files produced by an export.
type Artifact struct {
	Base    string   // path of the files, without extension
	Formats []Format // produced formats, PS first

	// Extent is the drawing extent in the PostScript file, in points.
	Extent image.Rectangle

	// SVG holds the size read back from the SVG file, if any.
	SVG *SVGInfo

	// Degraded is true when the converter was missing, in which
	// case Warning wraps ErrConverterMissing.
	Degraded bool
	Warning  error
}

// Path returns the file path for the given format.
func (a Artifact) Path(f Format) string { return a.Base + f.Ext() }

// Has returns true if the format was produced.
func (a Artifact) Has(f Format) bool {
	for _, g := range a.Formats {
		if g == f {
			return true
		}
	}
	return false
}
