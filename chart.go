package gchart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// gridUnset marks a grid dash or gap length that was never given.
const gridUnset = -1

// Chart holds the configuration of one chart and renders it as a URL.
//
// A Chart is built with [New], mutated through its setters and adders, and
// rendered with [Chart.URL]. Rendering does not change the chart, so URL
// returns the same string until the next mutation. A Chart is not safe for
// concurrent mutation.
type Chart struct {
	typ      ChartType
	endpoint string

	width  int
	height int

	title      string
	hasTitle   bool
	titleStyle string

	data   string
	colors []string

	legend []string
	axes   []AxisRenderer

	solidFills    []Fragmenter
	gradientFills []Fragmenter
	stripeFills   []Fragmenter

	shapeMarkers []Fragmenter
	rangeMarkers []Fragmenter
	fillAreas    []Fragmenter

	gridSet  bool
	gridX    float64
	gridY    float64
	gridDash float64
	gridGap  float64
}

// Option configures a [Chart].
type Option func(*Chart)

// WithEndpoint replaces [DefaultEndpoint] as the URL prefix.
func WithEndpoint(endpoint string) Option {
	return func(c *Chart) { c.endpoint = endpoint }
}

// New returns a chart of type t sized width x height pixels.
func New(t ChartType, width, height int, opts ...Option) *Chart {
	c := &Chart{
		typ:      t,
		endpoint: DefaultEndpoint,
		width:    width,
		height:   height,
		gridDash: gridUnset,
		gridGap:  gridUnset,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Type returns the chart variant.
func (c *Chart) Type() ChartType { return c.typ }

// Endpoint returns the URL prefix.
func (c *Chart) Endpoint() string { return c.endpoint }

// Width returns the chart width in pixels.
func (c *Chart) Width() int { return c.width }

// SetWidth sets the chart width in pixels.
func (c *Chart) SetWidth(width int) { c.width = width }

// Height returns the chart height in pixels.
func (c *Chart) Height() int { return c.height }

// SetHeight sets the chart height in pixels.
func (c *Chart) SetHeight(height int) { c.height = height }

// SetData encodes integer series with simple encoding over [0, 61].
func (c *Chart) SetData(series ...[]int) {
	c.data = EncodeInts(series)
}

// SetFloatData encodes floating-point series with extended encoding over
// [0, 100].
func (c *Chart) SetFloatData(series ...[]float64) {
	c.data = EncodeFloats(series)
}

// SetEncodedData encodes series with a caller-configured encoder. A nil
// encoder behaves like NewEncoder().
func (c *Chart) SetEncodedData(e *Encoder, series ...[]float64) {
	if e == nil {
		e = NewEncoder()
	}
	c.data = Encode(e, series...)
}

// SetTitle sets the chart title. Spaces are written as "+" and newlines as
// "|", the service's line break.
func (c *Chart) SetTitle(title string) {
	t := strings.ReplaceAll(title, " ", "+")
	t = strings.ReplaceAll(t, "\r\n", "|")
	c.title = strings.ReplaceAll(t, "\n", "|")
	c.hasTitle = true
}

// SetTitleColor sets the title color (RRGGBB) with the default font size.
func (c *Chart) SetTitleColor(color string) {
	c.titleStyle = color
}

// SetTitleStyle sets the title color (RRGGBB) and font size in pixels.
func (c *Chart) SetTitleStyle(color string, fontSize int) {
	c.titleStyle = color + "," + strconv.Itoa(fontSize)
}

// SetDatasetColors sets the colors (RRGGBB) of the datasets, in dataset
// order. A nil slice clears them.
func (c *Chart) SetDatasetColors(colors ...string) {
	if colors == nil {
		c.colors = nil
		return
	}
	c.colors = append([]string{}, colors...)
}

// SetGrid draws grid lines every x and y units of the axis range.
// It returns ErrFeatureNotSupported for chart types without grids.
func (c *Chart) SetGrid(x, y float64) error {
	return c.setGrid(x, y, gridUnset, gridUnset)
}

// SetGridDashed is like [Chart.SetGrid] with dashed lines of dash-length
// segments separated by gap-length blanks.
func (c *Chart) SetGridDashed(x, y, dash, gap float64) error {
	return c.setGrid(x, y, dash, gap)
}

func (c *Chart) setGrid(x, y, dash, gap float64) error {
	if !c.typ.SupportsGrid() {
		return fmt.Errorf("%w: grid on %s", ErrFeatureNotSupported, c.typ)
	}
	c.gridX, c.gridY = x, y
	c.gridDash, c.gridGap = dash, gap
	c.gridSet = true
	return nil
}

// AddSolidFill appends a solid fill.
func (c *Chart) AddSolidFill(f Fragmenter) { c.solidFills = append(c.solidFills, f) }

// AddLinearGradientFill appends a linear gradient fill.
func (c *Chart) AddLinearGradientFill(f Fragmenter) {
	c.gradientFills = append(c.gradientFills, f)
}

// AddLinearStripesFill appends a linear stripes fill.
func (c *Chart) AddLinearStripesFill(f Fragmenter) {
	c.stripeFills = append(c.stripeFills, f)
}

// AddShapeMarker appends a marker on a data point.
func (c *Chart) AddShapeMarker(m Fragmenter) { c.shapeMarkers = append(c.shapeMarkers, m) }

// AddRangeMarker appends a colored band.
func (c *Chart) AddRangeMarker(m Fragmenter) { c.rangeMarkers = append(c.rangeMarkers, m) }

// AddFillArea appends a fill between or under lines.
func (c *Chart) AddFillArea(a Fragmenter) { c.fillAreas = append(c.fillAreas, a) }

// AddLegend appends legend labels, one per dataset.
func (c *Chart) AddLegend(labels ...string) { c.legend = append(c.legend, labels...) }

// AddAxis appends an axis.
func (c *Chart) AddAxis(a AxisRenderer) { c.axes = append(c.axes, a) }

// URL returns the full chart URL.
func (c *Chart) URL() string {
	return assemble(c.endpoint, c.Params())
}

// String returns the chart URL.
func (c *Chart) String() string { return c.URL() }

// Fingerprint returns a 16 hex digit hash of the chart URL, usable as a
// cache key for the rendered image.
func (c *Chart) Fingerprint() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(c.URL()))
}
