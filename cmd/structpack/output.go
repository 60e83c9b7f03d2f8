package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/wippyai/structpack/pack"
	"github.com/wippyai/structpack/witschema"
)

type outputFormat string

const (
	outputText     outputFormat = "text"
	outputJSON     outputFormat = "json"
	outputCBOR     outputFormat = "cbor"
	outputCBORDiag outputFormat = "cbor-diag"
	outputRaw      outputFormat = "raw"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case outputText, outputJSON, outputCBOR, outputCBORDiag, outputRaw:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json, cbor, cbor-diag or raw)", s)
}

// cborMode encodes decoded records with Core Deterministic Encoding, so the
// same record always produces identical bytes.
var cborMode cbor.EncMode

func init() {
	var err error
	cborMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("structpack: CBOR encoder initialization failed: " + err.Error())
	}
}

// nativeValues converts decoded values for json and cbor. Bytes values
// become strings so they render as text rather than base64 or byte arrays.
func nativeValues(values []pack.Value) []any {
	out := make([]any, len(values))
	for i, v := range values {
		if v.Kind() == pack.ValueBytes {
			out[i] = string(v.Bytes())
			continue
		}
		out[i] = v.Interface()
	}
	return out
}

// writeEncoded prints an encoded record as hex, or as raw bytes when
// format is raw or cbor (a CBOR byte string wrapping the record).
func writeEncoded(w io.Writer, format outputFormat, data []byte, tty bool) error {
	switch format {
	case outputRaw:
		if tty {
			return fmt.Errorf("refusing to write raw bytes to a terminal; redirect stdout")
		}
		_, err := w.Write(data)
		return err
	case outputJSON:
		return json.NewEncoder(w).Encode(map[string]any{
			"hex":  hex.EncodeToString(data),
			"size": len(data),
		})
	case outputCBOR, outputCBORDiag:
		enc, err := cborMode.Marshal(data)
		if err != nil {
			return err
		}
		return writeCBOR(w, format, enc, tty)
	}
	_, err := fmt.Fprintln(w, hex.EncodeToString(data))
	return err
}

// writeDecoded prints a decoded record.
func writeDecoded(w io.Writer, format outputFormat, l *pack.Layout, values []pack.Value, tty bool) error {
	switch format {
	case outputJSON:
		return json.NewEncoder(w).Encode(nativeValues(values))
	case outputCBOR, outputCBORDiag:
		enc, err := cborMode.Marshal(nativeValues(values))
		if err != nil {
			return err
		}
		return writeCBOR(w, format, enc, tty)
	case outputRaw:
		return fmt.Errorf("raw output applies to encode only")
	}

	for i, v := range values {
		f := l.SlotField(i)
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", i, f.TypeName(), displayValue(v)); err != nil {
			return err
		}
	}
	return nil
}

func writeCBOR(w io.Writer, format outputFormat, enc []byte, tty bool) error {
	if format == outputCBORDiag {
		diag, err := cbor.Diagnose(enc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, diag)
		return err
	}
	if tty {
		_, err := fmt.Fprintln(w, hex.EncodeToString(enc))
		return err
	}
	_, err := w.Write(enc)
	return err
}

// displayValue quotes bytes values so empty and whitespace strings are
// visible.
func displayValue(v pack.Value) string {
	if v.Kind() == pack.ValueBytes {
		return fmt.Sprintf("%q", v.Bytes())
	}
	return v.String()
}

// describe prints the field table of a layout.
func describe(w io.Writer, l *pack.Layout) error {
	var b strings.Builder
	fmt.Fprintf(&b, "format:    %s\n", l.Format())
	fmt.Fprintf(&b, "canonical: %s\n", l.String())
	fmt.Fprintf(&b, "order:     %s\n", l.Order())
	fmt.Fprintf(&b, "size:      %d\n", l.Size())
	fmt.Fprintf(&b, "slots:     %d\n", l.Slots())
	fmt.Fprintf(&b, "wit:       %s\n\n", witschema.Signature(l))
	fmt.Fprintf(&b, "offset\tsize\ttoken\torder\ttype\n")
	for _, f := range l.Fields() {
		order := "-"
		if f.Kind.IsMultiByte() {
			order = l.Order().String()
		}
		fmt.Fprintf(&b, "%d\t%d\t%s\t%s\t%s\n", f.Offset, f.Size(), f.Token(), order, fieldType(f))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func fieldType(f pack.Field) string {
	if f.Kind == pack.KindPadding {
		return f.TypeName()
	}
	t := witschema.TypeString(witschema.SlotType(f))
	if f.Slots() > 1 {
		return fmt.Sprintf("%d x %s (%s)", f.Slots(), f.TypeName(), t)
	}
	return fmt.Sprintf("%s (%s)", f.TypeName(), t)
}
