package export

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// SVGInfo holds the size attributes of the root element
// of an SVG document.
type SVGInfo struct {
	Width, Height string     // as written, possibly with units
	ViewBox       [4]float64 // x, y, w, h; zero if absent
}

// ReadSVGInfo reads the root `svg` element of the document.
// The rest of the document is not read.
func ReadSVGInfo(stream io.Reader) (SVGInfo, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				return SVGInfo{}, errors.New("export: no svg element found")
			}
			return SVGInfo{}, err
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Local != "svg" {
			return SVGInfo{}, errors.New("export: root element is not svg: " + se.Name.Local)
		}
		var info SVGInfo
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "width":
				info.Width = attr.Value
			case "height":
				info.Height = attr.Value
			case "viewBox":
				info.ViewBox, err = parseViewBox(attr.Value)
				if err != nil {
					return SVGInfo{}, err
				}
			}
		}
		return info, nil
	}
}

func parseViewBox(s string) (out [4]float64, err error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 4 {
		return out, errors.New("export: invalid viewBox " + strconv.Quote(s))
	}
	for i, f := range fields {
		out[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// ReadSVGInfoFile reads the size of the named SVG file.
func ReadSVGInfoFile(name string) (SVGInfo, error) {
	f, err := os.Open(name)
	if err != nil {
		return SVGInfo{}, err
	}
	defer f.Close()
	return ReadSVGInfo(f)
}
