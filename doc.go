// Package gchart builds chart URLs for the Google Chart API.
//
// A [Chart] collects everything that describes one chart: its type and size,
// its data, and any number of optional features. [Chart.URL] renders that
// state as a single URL. The package never fetches the image; it only
// produces the URL.
//
//	c := gchart.New(gchart.LineChart, 300, 200)
//	c.SetData([]int{10, 20, 30})
//	c.SetTitle("Q1 Report")
//	c.AddLegend("Sales")
//	url := c.URL()
//
// # Data Encoding
//
// Datasets are written with one of two encodings. [SimpleEncoding] writes
// one symbol per value from A-Z, a-z and 0-9 (62 levels). [ExtendedEncoding]
// writes two symbols per value from the same alphabet plus "-" and "."
// (4096 levels). An [Encoder] scales values linearly from its domain onto
// the encoding, clamping values outside the domain:
//
//	enc := gchart.NewEncoder(
//		gchart.WithEncoding(gchart.ExtendedEncoding),
//		gchart.WithDomain(-50, 50),
//	)
//	c.SetEncodedData(enc, temperatures)
//
// [Chart.SetData] uses simple encoding over [0, 61] and
// [Chart.SetFloatData] uses extended encoding over [0, 100].
//
// # Features
//
// Fills, markers and fill areas implement [Fragmenter]; axes implement
// [AxisRenderer]. The chart only places and joins what they render, so
// custom features can be added by implementing those interfaces:
//
//   - [SolidFill], [LinearGradientFill], [LinearStripesFill] → chf
//   - [ShapeMarker], [RangeMarker], [FillArea] → chm
//   - [Axis] → chxt, chxl, chxp, chxr, chxs, chxtc
//
// Each group keeps the order features were added in. Groups that were never
// configured do not appear in the URL at all.
//
// # Definitions
//
// [LoadDefinition] reads a chart from YAML and [Definition.Chart] builds it.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrFeatureNotSupported] — grid requested on a chart type without grids
//   - [ErrUnsupportedChartType] — unknown chart type name
//   - [ErrInvalidDefinition] — malformed chart definition
//   - [ErrUnsupportedEncoding] — unknown data encoding name
package gchart
