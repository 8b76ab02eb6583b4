package gchart

import (
	"math"
	"strconv"
	"strings"
)

// Query parameter keys, in the order they appear in a chart URL.
const (
	keyType          = "cht"
	keySize          = "chs"
	keyData          = "chd"
	keyTitle         = "chtt"
	keyTitleStyle    = "chts"
	keyColors        = "chco"
	keyFills         = "chf"
	keyLegend        = "chdl"
	keyAxisTypes     = "chxt"
	keyAxisLabels    = "chxl"
	keyAxisPositions = "chxp"
	keyAxisRanges    = "chxr"
	keyAxisStyles    = "chxs"
	keyAxisTicks     = "chxtc"
	keyGrid          = "chg"
	keyMarkers       = "chm"
)

// Params returns the query parameters of the chart URL in order. Groups that
// were never configured are left out entirely.
func (c *Chart) Params() []Param {
	params := []Param{
		{keyType, c.typ.String()},
		{keySize, strconv.Itoa(c.width) + "x" + strconv.Itoa(c.height)},
		{keyData, c.data},
	}

	if c.hasTitle {
		params = append(params, Param{keyTitle, c.title})
	}
	if c.titleStyle != "" {
		params = append(params, Param{keyTitleStyle, c.titleStyle})
	}

	if c.colors != nil {
		params = append(params, Param{keyColors, strings.Join(c.colors, ",")})
	}

	if fills := fragments(c.solidFills, c.gradientFills, c.stripeFills); len(fills) > 0 {
		params = append(params, Param{keyFills, strings.Join(fills, "|")})
	}

	if len(c.legend) > 0 {
		params = append(params, Param{keyLegend, strings.Join(c.legend, "|")})
	}

	if len(c.axes) > 0 {
		params = append(params, axisParams(c.axes)...)
	}

	if c.gridSet {
		params = append(params, Param{keyGrid, c.gridValue()})
	}

	if markers := fragments(c.shapeMarkers, c.rangeMarkers, c.fillAreas); len(markers) > 0 {
		params = append(params, Param{keyMarkers, strings.Join(markers, "|")})
	}

	return params
}

// fragments renders every group in order into one list.
func fragments(groups ...[]Fragmenter) []string {
	var out []string
	for _, g := range groups {
		for _, f := range g {
			out = append(out, f.Fragment())
		}
	}
	return out
}

// axisParams builds the six axis parameters. Every axis contributes its type
// and labels; positions, range and style only when non-blank, tick marks
// only when non-empty. All six params are returned even when some are empty.
func axisParams(axes []AxisRenderer) []Param {
	var types, labels, positions, ranges, styles, ticks []string
	for i, a := range axes {
		idx := strconv.Itoa(i)
		types = append(types, a.URLAxisType())
		labels = append(labels, idx+":"+a.URLLabels())
		if s := a.URLLabelPositions(); strings.TrimSpace(s) != "" {
			positions = append(positions, idx+","+s)
		}
		if s := a.URLRange(); strings.TrimSpace(s) != "" {
			ranges = append(ranges, idx+","+s)
		}
		if s := a.URLStyle(); strings.TrimSpace(s) != "" {
			styles = append(styles, idx+","+s)
		}
		if s := a.URLTickMarks(); s != "" {
			ticks = append(ticks, idx+","+s)
		}
	}
	return []Param{
		{keyAxisTypes, strings.Join(types, ",")},
		{keyAxisLabels, strings.Join(labels, "|")},
		{keyAxisPositions, strings.Join(positions, "|")},
		{keyAxisRanges, strings.Join(ranges, "|")},
		{keyAxisStyles, strings.Join(styles, "|")},
		{keyAxisTicks, strings.Join(ticks, "|")},
	}
}

func (c *Chart) gridValue() string {
	s := formatStep(c.gridX) + "," + formatStep(c.gridY)
	if c.gridDash != gridUnset && c.gridGap != gridUnset {
		s += "," + formatStep(c.gridDash) + "," + formatStep(c.gridGap)
	}
	return s
}

// formatNumber writes f with as few digits as round-trip.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatStep is formatNumber with at least one fractional digit, so 10
// becomes "10.0". Non-finite values are written bare.
func formatStep(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 32)
	if !math.IsInf(f, 0) && !math.IsNaN(f) && !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
