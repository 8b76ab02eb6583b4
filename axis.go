package gchart

import (
	"strconv"
	"strings"
)

// AxisType selects which edge of the chart an axis is drawn on.
type AxisType string

const (
	BottomAxis AxisType = "x"
	LeftAxis   AxisType = "y"
	TopAxis    AxisType = "t"
	RightAxis  AxisType = "r"
)

// AxisAlignment positions axis labels relative to their tick.
type AxisAlignment int

const (
	AlignLeft   AxisAlignment = -1
	AlignCenter AxisAlignment = 0
	AlignRight  AxisAlignment = 1
)

// AxisRange is the numeric range of an axis.
type AxisRange struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// AxisStyle sets the label color, font size and alignment of an axis.
type AxisStyle struct {
	Color     string        `yaml:"color"`
	FontSize  int           `yaml:"size"`
	Alignment AxisAlignment `yaml:"alignment"`
}

// Axis is a visible chart axis. Zero-valued optional fields render nothing.
type Axis struct {
	Type       AxisType   `yaml:"type"`
	Labels     []string   `yaml:"labels"`
	Positions  []float64  `yaml:"positions"`
	Range      *AxisRange `yaml:"range"`
	Style      *AxisStyle `yaml:"style"`
	TickLength int        `yaml:"ticks"`
}

var _ AxisRenderer = (*Axis)(nil)

// URLAxisType returns the axis type tag.
func (a *Axis) URLAxisType() string {
	if a.Type == "" {
		return string(BottomAxis)
	}
	return string(a.Type)
}

// URLLabels returns the labels, each preceded by "|".
func (a *Axis) URLLabels() string {
	var sb strings.Builder
	for _, l := range a.Labels {
		sb.WriteByte('|')
		sb.WriteString(l)
	}
	return sb.String()
}

// URLLabelPositions returns the comma-separated label positions.
func (a *Axis) URLLabelPositions() string {
	return joinNumbers(a.Positions)
}

// URLRange returns "start,end", or "" without a range.
func (a *Axis) URLRange() string {
	if a.Range == nil {
		return ""
	}
	return formatNumber(a.Range.Start) + "," + formatNumber(a.Range.End)
}

// URLStyle returns "color,size" with ",alignment" when the labels are not
// centered, or "" without a style.
func (a *Axis) URLStyle() string {
	if a.Style == nil {
		return ""
	}
	s := a.Style.Color + "," + strconv.Itoa(a.Style.FontSize)
	if a.Style.Alignment != AlignCenter {
		s += "," + strconv.Itoa(int(a.Style.Alignment))
	}
	return s
}

// URLTickMarks returns the tick length, or "" when unset.
func (a *Axis) URLTickMarks() string {
	if a.TickLength == 0 {
		return ""
	}
	return strconv.Itoa(a.TickLength)
}

func joinNumbers(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatNumber(v)
	}
	return strings.Join(parts, ",")
}
