package pack

import (
	"slices"

	"github.com/wippyai/structpack/errors"
	"github.com/wippyai/structpack/pack/internal/abi"
)

// Encoder writes value sequences into the byte form a Layout describes.
// An Encoder has no mutable state and is safe for concurrent use.
type Encoder struct {
	fill byte
}

type EncoderOption func(*Encoder)

// WithFill sets the byte written into padding fields. The default is 0x00.
func WithFill(b byte) EncoderOption {
	return func(e *Encoder) {
		e.fill = b
	}
}

// NewEncoder returns an Encoder configured by opts.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEncoder = NewEncoder()

// Encode encodes values with the default encoder.
func Encode(l *Layout, values []Value) ([]byte, error) {
	return defaultEncoder.Encode(l, values)
}

// Encode returns a new buffer of exactly l.Size() bytes.
func (e *Encoder) Encode(l *Layout, values []Value) ([]byte, error) {
	buf := make([]byte, l.Size())
	if _, err := e.EncodeInto(buf, l, values); err != nil {
		return nil, err
	}
	return buf, nil
}

// AppendEncode appends the encoding to dst. On error dst is returned
// unchanged.
func (e *Encoder) AppendEncode(dst []byte, l *Layout, values []Value) ([]byte, error) {
	start := len(dst)
	out := slices.Grow(dst, l.Size())[:start+l.Size()]
	if _, err := e.EncodeInto(out[start:], l, values); err != nil {
		return dst, err
	}
	return out, nil
}

// EncodeInto writes the encoding into the first l.Size() bytes of dst and
// returns the number of bytes written. Every value is validated before the
// first byte is written, so dst is untouched on error.
func (e *Encoder) EncodeInto(dst []byte, l *Layout, values []Value) (int, error) {
	if len(values) != l.Slots() {
		return 0, valueCountError(l.Slots(), len(values))
	}
	if len(dst) < l.Size() {
		return 0, errors.OutOfBounds(errors.PhaseEncode, 0, l.Size(), len(dst))
	}

	staged := getBuf64()
	defer putBuf64(staged)

	// Validate: lower every scalar slot, check strings.
	for i, v := range values {
		f := l.SlotField(i)
		if f.Kind == KindString {
			if v.kind != ValueBytes {
				return 0, typeMismatch(i, v.kind.String(), f)
			}
			continue
		}
		raw, err := lowerScalar(i, f, v)
		if err != nil {
			return 0, err
		}
		*staged = append(*staged, raw)
	}

	// Write.
	order := l.endian
	slot, scalar := 0, 0
	for _, f := range l.fields {
		region := dst[f.Offset : f.Offset+f.Size()]
		switch f.Kind {
		case KindPadding:
			abi.Fill(region, e.fill)
		case KindString:
			abi.PutCString(region, values[slot].bytes)
			slot++
		default:
			width := f.Kind.Size()
			for r := range f.Repeat {
				putScalar(region[r*width:], order, width, (*staged)[scalar])
				scalar++
				slot++
			}
		}
	}

	return l.Size(), nil
}
