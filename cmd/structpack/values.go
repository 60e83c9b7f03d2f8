package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/structpack/errors"
	"github.com/wippyai/structpack/pack"
)

// parseValue converts a command line argument into a value for field f.
func parseValue(s string, f pack.Field) (pack.Value, error) {
	switch {
	case f.Kind == pack.KindBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return pack.Value{}, fmt.Errorf("%q is not a bool", s)
		}
		return pack.Bool(b), nil
	case f.Kind == pack.KindChar, f.Kind == pack.KindString:
		return pack.String(s), nil
	case f.Kind.IsFloat():
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return pack.Value{}, fmt.Errorf("%q is not a number", s)
		}
		return pack.Float(v), nil
	case f.Kind.IsSigned():
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return pack.Value{}, fmt.Errorf("%q is not a signed integer", s)
		}
		return pack.Int(v), nil
	case f.Kind.IsInteger():
		if strings.HasPrefix(s, "-") {
			v, err := strconv.ParseInt(s, 0, 64)
			if err != nil {
				return pack.Value{}, fmt.Errorf("%q is not an integer", s)
			}
			return pack.Int(v), nil
		}
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return pack.Value{}, fmt.Errorf("%q is not an unsigned integer", s)
		}
		return pack.Uint(v), nil
	}
	return pack.Value{}, fmt.Errorf("field %s takes no value", f.TypeName())
}

// parseValues converts one argument per value slot of l.
func parseValues(l *pack.Layout, args []string) ([]pack.Value, error) {
	if len(args) != l.Slots() {
		return nil, fmt.Errorf("format %s takes %d values: %w", l.Format(), l.Slots(), errors.ValueCountMismatch(l.Slots(), len(args)))
	}
	values := make([]pack.Value, len(args))
	for i, arg := range args {
		v, err := parseValue(arg, l.SlotField(i))
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}
