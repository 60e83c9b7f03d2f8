package main

import (
	stderrors "errors"
	"math"
	"strings"
	"testing"

	"github.com/wippyai/structpack/errors"
	"github.com/wippyai/structpack/pack"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		format string
		in     string
		want   pack.Value
	}{
		{"?", "true", pack.Bool(true)},
		{"?", "0", pack.Bool(false)},
		{"c", "A", pack.String("A")},
		{"4s", "abc", pack.String("abc")},
		{"f", "1.5", pack.Float(1.5)},
		{"d", "-1e3", pack.Float(-1000)},
		{"b", "-128", pack.Int(-128)},
		{"q", "0x7f", pack.Int(127)},
		{"Q", "18446744073709551615", pack.Uint(math.MaxUint64)},
		{"H", "-5", pack.Int(-5)},
	}

	for _, tt := range tests {
		t.Run(tt.format+"/"+tt.in, func(t *testing.T) {
			got, err := parseValue(tt.in, pack.MustCompile(tt.format).Field(0))
			if err != nil {
				t.Fatalf("parseValue error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseValue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseValueErrors(t *testing.T) {
	tests := []struct {
		format string
		in     string
		want   string
	}{
		{"?", "maybe", "not a bool"},
		{"f", "pi", "not a number"},
		{"i", "1.5", "not a signed integer"},
		{"I", "x", "not an unsigned integer"},
		{"I", "-x", "not an integer"},
		{"x", "", "takes no value"},
	}

	for _, tt := range tests {
		_, err := parseValue(tt.in, pack.MustCompile(tt.format).Field(0))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("parseValue(%q, %s) error = %v, want %q", tt.in, tt.format, err, tt.want)
		}
	}
}

func TestParseValues(t *testing.T) {
	l := pack.MustCompile("<2h?")
	values, err := parseValues(l, []string{"1", "-1", "yes"})
	if err == nil {
		t.Fatalf("parseValues accepted %v", values)
	}
	if !strings.Contains(err.Error(), "value 2") {
		t.Errorf("error = %v, want slot index", err)
	}

	values, err = parseValues(l, []string{"1", "-1", "true"})
	if err != nil {
		t.Fatalf("parseValues error: %v", err)
	}
	if len(values) != 3 {
		t.Errorf("got %d values, want 3", len(values))
	}
}

func TestParseValuesCount(t *testing.T) {
	_, err := parseValues(pack.MustCompile("<2h?"), []string{"1", "2"})
	if !stderrors.Is(err, errors.ErrValueCountMismatch) {
		t.Fatalf("error = %v, want value count mismatch", err)
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error = %v, want *errors.Error in chain", err)
	}
	if e.Expected != 3 || e.Actual != 2 {
		t.Errorf("Expected/Actual = %d/%d, want 3/2", e.Expected, e.Actual)
	}
}
