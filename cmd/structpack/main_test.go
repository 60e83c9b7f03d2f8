package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wippyai/structpack/registry"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, &out, false)
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"encode", "<i", "1"}, "01000000\n"},
		{[]string{"encode", ">i", "1"}, "00000001\n"},
		{[]string{"encode", "<h", "-2"}, "feff\n"},
		{[]string{"encode", "5s", "ab"}, "6162000000\n"},
		{[]string{"encode", "3x"}, "000000\n"},
		{[]string{"--fill", "255", "encode", "<B2x", "0x10"}, "10ffff\n"},
		{[]string{"encode", "<?d", "true", "0.5"}, "01000000000000e03f\n"},
		{[]string{"-o", "json", "encode", "<H", "258"}, "{\"hex\":\"0201\",\"size\":2}\n"},
		{[]string{"-o", "cbor-diag", "encode", "<I", "1"}, "h'01000000'\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := runCLI(t, tt.args...)
			if err != nil {
				t.Fatalf("run error: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeCommandErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"encode", "b", "200"}, "overflow"},
		{[]string{"encode", "1z"}, "invalid_character"},
		{[]string{"encode", "2i", "1"}, "takes 2 values"},
		{[]string{"encode", "i", "one"}, "not a signed integer"},
		{[]string{"encode", "B", "-1"}, "overflow"},
		{[]string{"-o", "xml", "size", "i"}, "unknown output format"},
		{[]string{"frobnicate"}, "unknown command"},
		{[]string{}, "missing command"},
		{[]string{"list"}, "no registry"},
		{[]string{"-o", "raw", "decode", "i", "00000000"}, "raw output"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Setenv(registry.EnvConfig, "")
			_, err := runCLI(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestRawRefusesTerminal(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-o", "raw", "encode", "B", "1"}, &out, true)
	if err == nil || !strings.Contains(err.Error(), "terminal") {
		t.Errorf("error = %v, want terminal refusal", err)
	}

	out.Reset()
	if err := run([]string{"-o", "raw", "encode", "B", "1"}, &out, false); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !bytes.Equal(out.Bytes(), []byte{1}) {
		t.Errorf("raw output = % x, want 01", out.Bytes())
	}
}

func TestDecodeCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"decode", "<hH", "ffff0700"}, "0\tint16\t-1\n1\tuint16\t7\n"},
		{[]string{"decode", "5s", "61 62 00 63 00"}, "0\tstring[5]\t\"ab\"\n"},
		{[]string{"-o", "json", "decode", "<hH", "ffff0700"}, "[-1,7]\n"},
		{[]string{"-o", "json", "decode", "?3s", "01616200"}, "[true,\"ab\"]\n"},
		{[]string{"-o", "cbor-diag", "decode", "<hH", "ffff0700"}, "[-1, 7]\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := runCLI(t, tt.args...)
			if err != nil {
				t.Fatalf("run error: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeCBOR(t *testing.T) {
	got, err := runCLI(t, "-o", "cbor", "decode", ">H", "0102")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	// array(1), uint16 258
	if want := []byte{0x81, 0x19, 0x01, 0x02}; !bytes.Equal([]byte(got), want) {
		t.Errorf("cbor output = % x, want % x", got, want)
	}
}

func TestDecodeCommandErrors(t *testing.T) {
	if _, err := runCLI(t, "decode", "<i", "0102"); err == nil || !strings.Contains(err.Error(), "buffer_too_short") {
		t.Errorf("short input error = %v", err)
	}
	if _, err := runCLI(t, "decode", "<i", "zz"); err == nil || !strings.Contains(err.Error(), "hex") {
		t.Errorf("bad hex error = %v", err)
	}
}

func TestSizeAndDescribe(t *testing.T) {
	got, err := runCLI(t, "size", "<hhl5s2x")
	if err != nil {
		t.Fatalf("size error: %v", err)
	}
	if got != "15\n" {
		t.Errorf("size output = %q, want 15", got)
	}

	got, err = runCLI(t, "describe", "<3H5s2x")
	if err != nil {
		t.Fatalf("describe error: %v", err)
	}
	for _, want := range []string{
		"canonical: <3H5s2x",
		"order:     little",
		"size:      13",
		"wit:       tuple<u16, u16, u16, string>",
		"0\t6\t3H\tlittle\t3 x uint16 (u16)",
		"6\t5\t5s\t-\tstring[5] (string)",
		"11\t2\t2x\t-\tpadding[2]",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("describe output missing %q:\n%s", want, got)
		}
	}
}

const testRegistry = `
defaults:
  byte_order: big
formats:
  header:
    format: "HH"
    description: two counters
`

func TestRegistryCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formats.yaml")
	if err := os.WriteFile(path, []byte(testRegistry), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := runCLI(t, "--config", path, "encode", "header", "1", "2")
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	if got != "00010002\n" {
		t.Errorf("encode output = %q", got)
	}

	got, err = runCLI(t, "--config", path, "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if !strings.HasPrefix(got, "header\t>HH\t4\t") || !strings.Contains(got, "two counters") {
		t.Errorf("list output = %q", got)
	}

	t.Setenv(registry.EnvConfig, path)
	got, err = runCLI(t, "size", "header")
	if err != nil {
		t.Fatalf("size error: %v", err)
	}
	if got != "4\n" {
		t.Errorf("size output = %q, want 4", got)
	}
}

func TestHelp(t *testing.T) {
	got, err := runCLI(t, "--help")
	if err != nil {
		t.Fatalf("help error: %v", err)
	}
	if !strings.Contains(got, "Usage: structpack") || !strings.Contains(got, "--output") {
		t.Errorf("help output = %q", got)
	}
}

func TestInteractiveNeedsTerminal(t *testing.T) {
	if _, err := runCLI(t, "-i"); err == nil || !strings.Contains(err.Error(), "terminal") {
		t.Errorf("error = %v, want terminal requirement", err)
	}
}
