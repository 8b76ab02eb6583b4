package gchart

import (
	"fmt"
	"math"
	"strings"
)

// Encoding selects how dataset values are written into the chd parameter.
type Encoding int

const (
	// SimpleEncoding writes one symbol per value, 62 levels.
	SimpleEncoding Encoding = iota
	// ExtendedEncoding writes two symbols per value, 4096 levels.
	ExtendedEncoding
)

const (
	simpleAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	extendedAlphabet = simpleAlphabet + "-."

	simpleTop   = len(simpleAlphabet) - 1
	extendedTop = len(extendedAlphabet)*len(extendedAlphabet) - 1

	simpleMissing   = "_"
	extendedMissing = "__"
)

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case SimpleEncoding:
		return "simple"
	case ExtendedEncoding:
		return "extended"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// Tag returns the scheme prefix the service uses to tell encodings apart.
func (e Encoding) Tag() string {
	if e == ExtendedEncoding {
		return "e"
	}
	return "s"
}

// ParseEncoding parses an encoding name ("simple" or "extended").
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(s) {
	case "simple", "s":
		return SimpleEncoding, nil
	case "extended", "e":
		return ExtendedEncoding, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, s)
	}
}

// Number is any numeric type a dataset may hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Encoder maps numeric series onto one of the two text encodings.
//
// Values are scaled linearly from the encoder's domain onto the encoding's
// symbol range. Values outside the domain clamp to the first or last symbol.
// NaN and the declared missing value are written as the reserved missing
// symbol. The zero value is not usable; create encoders with [NewEncoder].
type Encoder struct {
	encoding   Encoding
	min, max   float64
	missing    float64
	hasMissing bool
}

// EncoderOption configures an [Encoder].
type EncoderOption func(*Encoder)

// WithEncoding selects the output encoding.
func WithEncoding(enc Encoding) EncoderOption {
	return func(e *Encoder) { e.encoding = enc }
}

// WithDomain sets the value range mapped onto the encoding's symbols.
func WithDomain(lo, hi float64) EncoderOption {
	return func(e *Encoder) {
		e.min = lo
		e.max = hi
	}
}

// WithMissing declares a value that marks a missing data point.
func WithMissing(v float64) EncoderOption {
	return func(e *Encoder) {
		e.missing = v
		e.hasMissing = true
	}
}

// NewEncoder returns an encoder. Without options it produces simple encoding
// over the domain [0, 61], so integers 0..61 map onto their own symbol.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{encoding: SimpleEncoding, min: 0, max: float64(simpleTop)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encoding returns the encoding the encoder writes.
func (e *Encoder) Encoding() Encoding { return e.encoding }

// Domain returns the value range mapped onto the encoding's symbols.
func (e *Encoder) Domain() (lo, hi float64) { return e.min, e.max }

// Encode writes every series as one token: the scheme tag, a colon, and the
// series separated by commas.
func Encode[T Number](e *Encoder, series ...[]T) string {
	var sb strings.Builder
	sb.WriteString(e.encoding.Tag())
	sb.WriteByte(':')
	for i, s := range series {
		if i > 0 {
			sb.WriteByte(',')
		}
		for _, v := range s {
			e.writeValue(&sb, float64(v))
		}
	}
	return sb.String()
}

// EncodeInts encodes integer series. The default is simple encoding over
// [0, 61]; opts override it.
func EncodeInts(series [][]int, opts ...EncoderOption) string {
	return Encode(NewEncoder(opts...), series...)
}

// EncodeFloats encodes floating-point series. The default is extended
// encoding over [0, 100]; opts override it.
func EncodeFloats(series [][]float64, opts ...EncoderOption) string {
	base := []EncoderOption{WithEncoding(ExtendedEncoding), WithDomain(0, 100)}
	return Encode(NewEncoder(append(base, opts...)...), series...)
}

// Index returns the symbol index v maps to, or -1 for a missing value.
func (e *Encoder) Index(v float64) int {
	if math.IsNaN(v) || (e.hasMissing && v == e.missing) {
		return -1
	}
	top := simpleTop
	if e.encoding == ExtendedEncoding {
		top = extendedTop
	}
	if !(e.max > e.min) || math.IsInf(e.max-e.min, 0) {
		return 0
	}
	scaled := math.Round((v - e.min) / (e.max - e.min) * float64(top))
	if math.IsNaN(scaled) {
		return 0
	}
	switch {
	case scaled <= 0:
		return 0
	case scaled >= float64(top):
		return top
	default:
		return int(scaled)
	}
}

func (e *Encoder) writeValue(sb *strings.Builder, v float64) {
	idx := e.Index(v)
	if e.encoding == ExtendedEncoding {
		if idx < 0 {
			sb.WriteString(extendedMissing)
			return
		}
		n := len(extendedAlphabet)
		sb.WriteByte(extendedAlphabet[idx/n])
		sb.WriteByte(extendedAlphabet[idx%n])
		return
	}
	if idx < 0 {
		sb.WriteString(simpleMissing)
		return
	}
	sb.WriteByte(simpleAlphabet[idx])
}
