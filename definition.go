package gchart

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Definition is a chart described as a YAML document.
//
//	type: LineChart
//	width: 300
//	height: 200
//	title: {text: Q1 Report, color: "333333", size: 14}
//	data: {series: [[10, 20, 30]]}
//	legend: [Sales]
//	grid: {x: 10, y: 20}
type Definition struct {
	Type     string     `yaml:"type"`
	Width    int        `yaml:"width"`
	Height   int        `yaml:"height"`
	Endpoint string     `yaml:"endpoint"`
	Title    *TitleDef  `yaml:"title"`
	Data     DataDef    `yaml:"data"`
	Colors   []string   `yaml:"colors"`
	Legend   []string   `yaml:"legend"`
	Fills    FillsDef   `yaml:"fills"`
	Axes     []Axis     `yaml:"axes"`
	Grid     *GridDef   `yaml:"grid"`
	Markers  MarkersDef `yaml:"markers"`
}

// TitleDef is the chart title and its style.
type TitleDef struct {
	Text  string `yaml:"text"`
	Color string `yaml:"color"`
	Size  int    `yaml:"size"`
}

// DataDef is the chart data and how to encode it. Without an encoding the
// series are encoded as integers would be (simple, 0 to 61).
type DataDef struct {
	Encoding string      `yaml:"encoding"`
	Min      *float64    `yaml:"min"`
	Max      *float64    `yaml:"max"`
	Missing  *float64    `yaml:"missing"`
	Series   [][]float64 `yaml:"series"`
}

// FillsDef groups the three kinds of fills.
type FillsDef struct {
	Solid     []SolidFill          `yaml:"solid"`
	Gradients []LinearGradientFill `yaml:"gradients"`
	Stripes   []LinearStripesFill  `yaml:"stripes"`
}

// MarkersDef groups shape markers, range markers and fill areas.
type MarkersDef struct {
	Shapes []ShapeMarker `yaml:"shapes"`
	Ranges []RangeMarker `yaml:"ranges"`
	Areas  []FillArea    `yaml:"areas"`
}

// GridDef is the grid step with optional dash and gap lengths.
type GridDef struct {
	X    float64  `yaml:"x"`
	Y    float64  `yaml:"y"`
	Dash *float64 `yaml:"dash"`
	Gap  *float64 `yaml:"gap"`
}

// LoadDefinition decodes a YAML chart definition. Unknown fields are
// rejected.
func LoadDefinition(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d Definition
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return &d, nil
}

// Chart builds the chart the definition describes.
func (d *Definition) Chart() (*Chart, error) {
	t, err := ParseChartType(d.Type)
	if err != nil {
		return nil, err
	}
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidDefinition, d.Width, d.Height)
	}

	var opts []Option
	if d.Endpoint != "" {
		opts = append(opts, WithEndpoint(d.Endpoint))
	}
	c := New(t, d.Width, d.Height, opts...)

	enc, err := d.Data.encoder()
	if err != nil {
		return nil, err
	}
	c.SetEncodedData(enc, d.Data.Series...)

	if d.Title != nil {
		c.SetTitle(d.Title.Text)
		switch {
		case d.Title.Color != "" && d.Title.Size > 0:
			c.SetTitleStyle(d.Title.Color, d.Title.Size)
		case d.Title.Color != "":
			c.SetTitleColor(d.Title.Color)
		}
	}
	if d.Colors != nil {
		c.SetDatasetColors(d.Colors...)
	}
	for _, f := range d.Fills.Solid {
		c.AddSolidFill(f)
	}
	for _, f := range d.Fills.Gradients {
		c.AddLinearGradientFill(f)
	}
	for _, f := range d.Fills.Stripes {
		c.AddLinearStripesFill(f)
	}
	c.AddLegend(d.Legend...)
	for _, a := range d.Axes {
		c.AddAxis(&a)
	}
	if g := d.Grid; g != nil {
		if g.Dash != nil && g.Gap != nil {
			err = c.SetGridDashed(g.X, g.Y, *g.Dash, *g.Gap)
		} else {
			err = c.SetGrid(g.X, g.Y)
		}
		if err != nil {
			return nil, err
		}
	}
	for _, m := range d.Markers.Shapes {
		c.AddShapeMarker(m)
	}
	for _, m := range d.Markers.Ranges {
		c.AddRangeMarker(m)
	}
	for _, a := range d.Markers.Areas {
		c.AddFillArea(a)
	}
	return c, nil
}

func (d DataDef) encoder() (*Encoder, error) {
	var opts []EncoderOption
	lo, hi := 0.0, float64(simpleTop)
	if d.Encoding != "" {
		enc, err := ParseEncoding(d.Encoding)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
		}
		opts = append(opts, WithEncoding(enc))
		if enc == ExtendedEncoding {
			hi = 100
		}
	}
	if d.Min != nil {
		lo = *d.Min
	}
	if d.Max != nil {
		hi = *d.Max
	}
	opts = append(opts, WithDomain(lo, hi))
	if d.Missing != nil {
		opts = append(opts, WithMissing(*d.Missing))
	}
	return NewEncoder(opts...), nil
}
