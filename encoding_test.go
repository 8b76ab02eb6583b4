package gchart_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/gchart"
)

func TestParseEncoding(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    gchart.Encoding
		wantErr require.ErrorAssertionFunc
	}{
		"simple":     {input: "simple", want: gchart.SimpleEncoding, wantErr: require.NoError},
		"extended":   {input: "extended", want: gchart.ExtendedEncoding, wantErr: require.NoError},
		"tag":        {input: "e", want: gchart.ExtendedEncoding, wantErr: require.NoError},
		"mixed case": {input: "Simple", want: gchart.SimpleEncoding, wantErr: require.NoError},
		"unknown":    {input: "text", wantErr: require.Error},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := gchart.ParseEncoding(tc.input)
			tc.wantErr(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseEncodingSentinel(t *testing.T) {
	t.Parallel()
	_, err := gchart.ParseEncoding("text")
	require.ErrorIs(t, err, gchart.ErrUnsupportedEncoding)
	assert.Contains(t, err.Error(), `"text"`)
}

func TestEncodingString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "simple", gchart.SimpleEncoding.String())
	assert.Equal(t, "extended", gchart.ExtendedEncoding.String())
	assert.Equal(t, "Encoding(7)", gchart.Encoding(7).String())
	assert.Equal(t, "s", gchart.SimpleEncoding.Tag())
	assert.Equal(t, "e", gchart.ExtendedEncoding.Tag())
}

func TestEncodeInts(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		series [][]int
		opts   []gchart.EncoderOption
		want   string
	}{
		"identity":        {series: [][]int{{10, 20, 30}}, want: "s:KUe"},
		"alphabet edges":  {series: [][]int{{0, 25, 26, 51, 52, 61}}, want: "s:AZaz09"},
		"clamps":          {series: [][]int{{-5, 62, 1000}}, want: "s:A99"},
		"several series":  {series: [][]int{{0, 1}, {2, 3}}, want: "s:AB,CD"},
		"empty":           {series: nil, want: "s:"},
		"missing":         {series: [][]int{{-1, 5}}, opts: []gchart.EncoderOption{gchart.WithMissing(-1)}, want: "s:_F"},
		"custom domain":   {series: [][]int{{0, 100}}, opts: []gchart.EncoderOption{gchart.WithDomain(0, 100)}, want: "s:A9"},
		"extended":        {series: [][]int{{0, 4095}}, opts: []gchart.EncoderOption{gchart.WithEncoding(gchart.ExtendedEncoding), gchart.WithDomain(0, 4095)}, want: "e:AA.."},
		"degenerate span": {series: [][]int{{5, 7}}, opts: []gchart.EncoderOption{gchart.WithDomain(5, 5)}, want: "s:AA"},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, gchart.EncodeInts(tc.series, tc.opts...))
		})
	}
}

func TestEncodeFloats(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		series [][]float64
		opts   []gchart.EncoderOption
		want   string
	}{
		"percent domain": {series: [][]float64{{0, 50, 100}}, want: "e:AAgA.."},
		"nan is missing": {series: [][]float64{{math.NaN(), 100}}, want: "e:__.."},
		"infinities clamp": {
			series: [][]float64{{math.Inf(-1), math.Inf(1)}},
			want:   "e:AA..",
		},
		"simple override": {
			series: [][]float64{{0, 100}},
			opts:   []gchart.EncoderOption{gchart.WithEncoding(gchart.SimpleEncoding)},
			want:   "s:A9",
		},
		"negative domain": {
			series: [][]float64{{-50, 50}},
			opts:   []gchart.EncoderOption{gchart.WithDomain(-50, 50)},
			want:   "e:AA..",
		},
		"infinite domain is degenerate": {
			series: [][]float64{{-5, 0}},
			opts:   []gchart.EncoderOption{gchart.WithDomain(math.Inf(-1), 0)},
			want:   "e:AAAA",
		},
		"overflowing span is degenerate": {
			series: [][]float64{{math.MaxFloat64, 0}},
			opts:   []gchart.EncoderOption{gchart.WithDomain(-math.MaxFloat64, math.MaxFloat64)},
			want:   "e:AAAA",
		},
		"nan domain is degenerate": {
			series: [][]float64{{1, 2}},
			opts:   []gchart.EncoderOption{gchart.WithDomain(math.NaN(), 10)},
			want:   "e:AAAA",
		},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, gchart.EncodeFloats(tc.series, tc.opts...))
		})
	}
}

func TestEncodeLength(t *testing.T) {
	t.Parallel()
	values := []float64{3, -2, 0.5, 61, 12.25, 99, 1e6}
	for n := 1; n <= len(values); n++ {
		in := values[:n]
		simple := gchart.Encode(gchart.NewEncoder(), in)
		extended := gchart.Encode(gchart.NewEncoder(gchart.WithEncoding(gchart.ExtendedEncoding)), in)
		assert.Len(t, simple, len("s:")+n)
		assert.Len(t, extended, len("e:")+2*n)
	}
}

func TestEncoderMonotonic(t *testing.T) {
	t.Parallel()
	encoders := map[string]*gchart.Encoder{
		"simple":   gchart.NewEncoder(gchart.WithDomain(-10, 10)),
		"extended": gchart.NewEncoder(gchart.WithEncoding(gchart.ExtendedEncoding), gchart.WithDomain(-10, 10)),
	}
	for name, enc := range encoders {
		enc := enc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			prev := enc.Index(-20)
			for v := -20.0; v <= 20; v += 0.37 {
				idx := enc.Index(v)
				assert.GreaterOrEqual(t, idx, prev, "value %v", v)
				prev = idx
			}
		})
	}
}

func TestEncoderIndex(t *testing.T) {
	t.Parallel()
	enc := gchart.NewEncoder(gchart.WithMissing(-1))
	assert.Equal(t, -1, enc.Index(-1))
	assert.Equal(t, -1, enc.Index(math.NaN()))
	assert.Equal(t, 0, enc.Index(-2))
	assert.Equal(t, 61, enc.Index(100))

	lo, hi := enc.Domain()
	assert.InDelta(t, 0, lo, 0)
	assert.InDelta(t, 61, hi, 0)
	assert.Equal(t, gchart.SimpleEncoding, enc.Encoding())
}

func TestEncodeGenericTypes(t *testing.T) {
	t.Parallel()
	enc := gchart.NewEncoder()
	assert.Equal(t, "s:KUe", gchart.Encode(enc, []uint8{10, 20, 30}))
	assert.Equal(t, "s:KUe", gchart.Encode(enc, []float32{10, 20, 30}))
	assert.Equal(t, "s:KUe", gchart.Encode(enc, []int64{10, 20, 30}))
}
