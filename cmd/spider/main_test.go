package main

import (
	"path/filepath"
	"testing"

	"github.com/benoitkugler/okspider/export"
	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	base := filepath.Join("imgs", "circle", "spider")

	s := summary(export.Artifact{Base: base, Formats: []export.Format{export.PS, export.SVG, export.PNG}})
	assert.Equal(t, "Saved "+base+".ps, "+base+".svg, "+base+".png", s)

	// the converter warning is only logged by the exporter
	s = summary(export.Artifact{Base: base, Formats: []export.Format{export.PS}, Degraded: true})
	assert.Equal(t, "Saved "+base+".ps (PostScript only)", s)
	assert.NotContains(t, s, "Inkscape")
}
