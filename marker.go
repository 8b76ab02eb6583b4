package gchart

import (
	"strconv"
	"strings"
)

// MarkerShape is the symbol drawn by a [ShapeMarker].
type MarkerShape string

const (
	Arrow    MarkerShape = "a"
	Cross    MarkerShape = "c"
	Diamond  MarkerShape = "d"
	Circle   MarkerShape = "o"
	Square   MarkerShape = "s"
	DropLine MarkerShape = "v"
	VLine    MarkerShape = "V"
	HLine    MarkerShape = "h"
	XShape   MarkerShape = "x"
)

// ShapeMarker calls attention to one data point.
type ShapeMarker struct {
	Shape   MarkerShape `yaml:"shape"`
	Color   string      `yaml:"color"`
	Dataset int         `yaml:"dataset"`
	Point   float64     `yaml:"point"`
	Size    int         `yaml:"size"`
}

// Fragment returns "<shape>,<color>,<dataset>,<point>,<size>".
func (m ShapeMarker) Fragment() string {
	shape := m.Shape
	if shape == "" {
		shape = Circle
	}
	return strings.Join([]string{
		string(shape),
		m.Color,
		strconv.Itoa(m.Dataset),
		formatNumber(m.Point),
		strconv.Itoa(m.Size),
	}, ",")
}

// RangeOrientation selects horizontal or vertical range bands.
type RangeOrientation string

const (
	Horizontal RangeOrientation = "r"
	Vertical   RangeOrientation = "R"
)

// RangeMarker is a colored band across the chart. Start and End are
// fractions of the axis, 0.0 to 1.0.
type RangeMarker struct {
	Orientation RangeOrientation `yaml:"orientation"`
	Color       string           `yaml:"color"`
	Start       float64          `yaml:"start"`
	End         float64          `yaml:"end"`
}

// Fragment returns "<r|R>,<color>,0,<start>,<end>".
func (m RangeMarker) Fragment() string {
	o := m.Orientation
	if o == "" {
		o = Horizontal
	}
	return string(o) + "," + m.Color + ",0," + formatNumber(m.Start) + "," + formatNumber(m.End)
}

// FillAreaKind selects whether a fill area sits between two lines or under
// one.
type FillAreaKind string

const (
	FillBetween FillAreaKind = "b"
	FillUnder   FillAreaKind = "B"
)

// FillArea fills the space between or under dataset lines.
type FillArea struct {
	Kind       FillAreaKind `yaml:"kind"`
	Color      string       `yaml:"color"`
	StartIndex int          `yaml:"start"`
	EndIndex   int          `yaml:"end"`
}

// Fragment returns "<b|B>,<color>,<start>,<end>,0".
func (a FillArea) Fragment() string {
	k := a.Kind
	if k == "" {
		k = FillUnder
	}
	return string(k) + "," + a.Color + "," + strconv.Itoa(a.StartIndex) + "," + strconv.Itoa(a.EndIndex) + ",0"
}
