package pack

import (
	"sync"

	"github.com/wippyai/structpack/errors"
	"github.com/wippyai/structpack/pack/internal/abi"
	"github.com/wippyai/structpack/pack/internal/layout"
	"github.com/wippyai/structpack/pack/internal/scan"
)

// Compile parses format into a Layout.
func Compile(format string) (*Layout, error) {
	res, err := scan.Scan(format)
	if err != nil {
		return nil, err
	}
	if len(res.Tokens) == 0 {
		return nil, errors.EmptyFormat(format)
	}

	info := layout.Calculate(res.Tokens)
	order := layout.OrderFromMarker(res.Order)

	return &Layout{
		format:    format,
		order:     order,
		endian:    order.Endian(),
		fields:    info.Fields,
		slotField: abi.SlotFields(info.Fields),
		size:      info.Size,
	}, nil
}

// MustCompile is like Compile but panics on error. It simplifies
// initialization of package-level layouts.
func MustCompile(format string) *Layout {
	l, err := Compile(format)
	if err != nil {
		panic("pack: Compile(" + format + "): " + err.Error())
	}
	return l
}

// Compiler memoizes layouts by format string. Failed compilations are not
// cached.
type Compiler struct {
	cache sync.Map // format -> *Layout
}

// NewCompiler returns a Compiler with an empty cache.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile returns the cached layout for format, compiling it on first use.
func (c *Compiler) Compile(format string) (*Layout, error) {
	if cached, ok := c.cache.Load(format); ok {
		return cached.(*Layout), nil
	}

	l, err := Compile(format)
	if err != nil {
		return nil, err
	}

	actual, _ := c.cache.LoadOrStore(format, l)
	return actual.(*Layout), nil
}

// Len returns the number of cached layouts.
func (c *Compiler) Len() int {
	n := 0
	c.cache.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
