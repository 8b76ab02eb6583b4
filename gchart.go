package gchart

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrFeatureNotSupported  = errors.New("feature not supported for chart type")
	ErrUnsupportedChartType = errors.New("unsupported chart type")
	ErrInvalidDefinition    = errors.New("invalid chart definition")
	ErrUnsupportedEncoding  = errors.New("unsupported encoding")
)

// DefaultEndpoint is the chart service base URL every chart URL starts with.
const DefaultEndpoint = "http://chart.apis.google.com/chart?"

// ChartType identifies a chart variant. Its value is the tag written to the
// cht parameter.
type ChartType string

const (
	LineChart   ChartType = "LineChart"
	ScatterPlot ChartType = "ScatterPlot"
	BarChart    ChartType = "BarChart"
	VennDiagram ChartType = "VennDiagram"
	PieChart    ChartType = "PieChart"
)

// capability is a feature a chart variant may declare.
type capability uint8

const (
	capGrid capability = 1 << iota
)

var chartTypes = []ChartType{LineChart, ScatterPlot, BarChart, VennDiagram, PieChart}

var capabilities = map[ChartType]capability{
	LineChart:   capGrid,
	ScatterPlot: capGrid,
}

// String returns the chart type tag.
func (t ChartType) String() string { return string(t) }

// SupportsGrid reports whether charts of this type accept grid lines.
func (t ChartType) SupportsGrid() bool { return capabilities[t]&capGrid != 0 }

// ChartTypes returns all known chart types.
func ChartTypes() []ChartType {
	out := make([]ChartType, len(chartTypes))
	copy(out, chartTypes)
	return out
}

// ParseChartType parses a chart type tag. Matching ignores case.
func ParseChartType(s string) (ChartType, error) {
	for _, t := range chartTypes {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedChartType, s)
}

// --- Collaborator Interfaces ---

// Fragmenter renders a chart feature (fill, marker, fill area) in the
// service's mini-syntax. The chart never inspects the feature beyond this.
type Fragmenter interface {
	Fragment() string
}

// AxisRenderer renders the six per-axis pieces of the axis parameters.
// An empty string means the axis has nothing for that parameter.
type AxisRenderer interface {
	URLAxisType() string
	URLLabels() string
	URLLabelPositions() string
	URLRange() string
	URLStyle() string
	URLTickMarks() string
}

// FragmentFunc adapts a plain function to [Fragmenter].
type FragmentFunc func() string

// Fragment calls f.
func (f FragmentFunc) Fragment() string { return f() }

// Param is a single key=value pair of the chart URL query.
type Param struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// String returns the param as written in the URL.
func (p Param) String() string { return p.Key + "=" + p.Value }
