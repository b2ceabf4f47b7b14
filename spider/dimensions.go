package spider

// Dimensions are the sizes of the drawing, all derived
// from a single scale factor.
type Dimensions struct {
	Scale int

	BodySize     int // the body is a dot of diameter 2*BodySize
	LegThickness int
	LegLength    int
	BorderSize   int // margin of the background around the legs

	// WindowSize is the size of the window showing the drawing,
	// ScreenSize the size of the drawing area itself.
	WindowSize int
	ScreenSize int
}

// NewDimensions derives the dimensions from `scale`.
// `background` tells if a background is drawn around the spider,
// and `windowSize` overrides the default window size of 20*scale
// when positive.
// The drawing area must fit strictly inside the window.
func NewDimensions(scale int, background bool, windowSize int) (Dimensions, error) {
	if scale <= 0 {
		return Dimensions{}, &ConfigurationError{Field: "scale", Value: scale, Reason: "must be positive"}
	}
	d := Dimensions{
		Scale:        scale,
		BodySize:     4 * scale,
		LegThickness: scale / 2,
		LegLength:    7 * scale,
		BorderSize:   scale,
		WindowSize:   20 * scale,
	}
	if windowSize > 0 {
		d.WindowSize = windowSize
	}
	if background {
		d.ScreenSize = 2*(d.LegLength+d.BorderSize) + d.LegThickness
	} else {
		d.ScreenSize = 2*d.LegLength + d.LegThickness
	}
	if d.WindowSize <= d.ScreenSize {
		return Dimensions{}, &ConfigurationError{
			Field:  "window size",
			Value:  d.WindowSize,
			Reason: "must be greater than the screen size",
		}
	}
	return d, nil
}

// EyeOffset is the distance between the center and the eyes.
func (d Dimensions) EyeOffset() float64 { return float64(d.BodySize) * 2 / 3 }

// EyeSize is the diameter of the white of the eyes.
// It is zero when the legs have no thickness (scale 1).
func (d Dimensions) EyeSize() int {
	if s := 3*d.LegThickness - 1; s > 0 {
		return s
	}
	return 0
}

// PupilSize is the diameter of the pupils.
func (d Dimensions) PupilSize() int { return d.LegThickness }
