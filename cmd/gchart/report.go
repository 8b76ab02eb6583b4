package main

import (
	"github.com/rs/zerolog"

	"github.com/bjaus/gchart"
	"github.com/bjaus/gchart/internal/render"
)

// report is the result of building one chart.
type report struct {
	Type        string         `json:"type" yaml:"type"`
	URL         string         `json:"url" yaml:"url"`
	Fingerprint string         `json:"fingerprint" yaml:"fingerprint"`
	Params      []gchart.Param `json:"params" yaml:"params"`
}

func newReport(c *gchart.Chart) report {
	return report{
		Type:        c.Type().String(),
		URL:         c.URL(),
		Fingerprint: c.Fingerprint(),
		Params:      c.Params(),
	}
}

func (r report) String() string { return r.URL }

func (r report) List() []string {
	out := make([]string, len(r.Params))
	for i, p := range r.Params {
		out[i] = p.String()
	}
	return out
}

func (r report) Pairs() []render.KeyValue {
	return []render.KeyValue{
		{Key: "GCHART_TYPE", Value: r.Type},
		{Key: "GCHART_URL", Value: r.URL},
		{Key: "GCHART_FINGERPRINT", Value: r.Fingerprint},
	}
}

func (r report) MarshalZerologObject(e *zerolog.Event) {
	e.Str("type", r.Type).
		Int("params", len(r.Params)).
		Int("length", len(r.URL)).
		Str("fingerprint", r.Fingerprint)
}

// rows returns one table row per URL parameter.
func (r report) rows() []paramRow {
	out := make([]paramRow, len(r.Params))
	for i, p := range r.Params {
		out[i] = paramRow(p)
	}
	return out
}

type paramRow gchart.Param

func (p paramRow) Row() []string    { return []string{p.Key, p.Value} }
func (p paramRow) Header() []string { return []string{"Param", "Value"} }
