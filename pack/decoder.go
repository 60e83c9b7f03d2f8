package pack

import (
	"github.com/wippyai/structpack/errors"
	"github.com/wippyai/structpack/pack/internal/abi"
)

// Decoder reads value sequences out of the byte form a Layout describes.
// A Decoder has no mutable state and is safe for concurrent use.
type Decoder struct {
	zeroCopy bool
}

type DecoderOption func(*Decoder)

// WithZeroCopy makes decoded bytes values alias the input buffer instead
// of copying. The caller must keep the input unchanged while the values
// are in use.
func WithZeroCopy() DecoderOption {
	return func(d *Decoder) {
		d.zeroCopy = true
	}
}

// NewDecoder returns a Decoder configured by opts.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDecoder = NewDecoder()

// Decode decodes data with the default decoder.
func Decode(l *Layout, data []byte) ([]Value, error) {
	return defaultDecoder.Decode(l, data)
}

// Decode reads l.Size() bytes from the front of data. Trailing bytes are
// ignored.
func (d *Decoder) Decode(l *Layout, data []byte) ([]Value, error) {
	return d.AppendDecode(make([]Value, 0, l.Slots()), l, data)
}

// AppendDecode appends the decoded values to dst. On error dst is returned
// unchanged.
func (d *Decoder) AppendDecode(dst []Value, l *Layout, data []byte) ([]Value, error) {
	if len(data) < l.Size() {
		return dst, errors.BufferTooShort(l.Size(), len(data))
	}

	order := l.endian
	for _, f := range l.fields {
		region := data[f.Offset : f.Offset+f.Size()]
		switch f.Kind {
		case KindPadding:
		case KindString:
			s := abi.CString(region)
			if d.zeroCopy {
				s = s[:len(s):len(s)]
			} else {
				s = append(make([]byte, 0, len(s)), s...)
			}
			dst = append(dst, Value{kind: ValueBytes, bytes: s})
		default:
			width := f.Kind.Size()
			for r := range f.Repeat {
				src := region[r*width : (r+1)*width]
				dst = append(dst, liftScalar(f, readScalar(src, order, width), src, d.zeroCopy))
			}
		}
	}
	return dst, nil
}
