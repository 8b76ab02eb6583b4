package gchart

import (
	"strconv"
	"strings"
)

// FillTarget selects the chart region a fill paints.
type FillTarget string

const (
	Background   FillTarget = "bg"
	ChartArea    FillTarget = "c"
	Transparency FillTarget = "a"
)

// ColorStop is a color paired with an offset (gradients) or a width
// (stripes), both expressed as a fraction of the chart.
type ColorStop struct {
	Color  string  `yaml:"color"`
	Offset float64 `yaml:"offset"`
}

// SolidFill paints a region with one color.
type SolidFill struct {
	Target FillTarget `yaml:"target"`
	Color  string     `yaml:"color"`
}

// Fragment returns "<target>,s,<color>".
func (f SolidFill) Fragment() string {
	return string(target(f.Target)) + ",s," + f.Color
}

// LinearGradientFill paints a region with a gradient at Angle degrees.
type LinearGradientFill struct {
	Target FillTarget  `yaml:"target"`
	Angle  int         `yaml:"angle"`
	Stops  []ColorStop `yaml:"stops"`
}

// Fragment returns "<target>,lg,<angle>,<color>,<offset>,...".
func (f LinearGradientFill) Fragment() string {
	return stopsFragment(target(f.Target), "lg", f.Angle, f.Stops)
}

// LinearStripesFill paints a region with stripes at Angle degrees. Each
// stop's Offset is the stripe width.
type LinearStripesFill struct {
	Target  FillTarget  `yaml:"target"`
	Angle   int         `yaml:"angle"`
	Stripes []ColorStop `yaml:"stripes"`
}

// Fragment returns "<target>,ls,<angle>,<color>,<width>,...".
func (f LinearStripesFill) Fragment() string {
	return stopsFragment(target(f.Target), "ls", f.Angle, f.Stripes)
}

func target(t FillTarget) FillTarget {
	if t == "" {
		return Background
	}
	return t
}

func stopsFragment(t FillTarget, kind string, angle int, stops []ColorStop) string {
	parts := make([]string, 0, 3+2*len(stops))
	parts = append(parts, string(t), kind, strconv.Itoa(angle))
	for _, s := range stops {
		parts = append(parts, s.Color, formatNumber(s.Offset))
	}
	return strings.Join(parts, ",")
}
