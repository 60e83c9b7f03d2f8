package pack

import (
	"bytes"
	"encoding/binary"
	stderrors "errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/wippyai/structpack/errors"
)

// testMemory is a bounds-checked Memory over a byte slice.
type testMemory struct {
	data []byte
}

func newTestMemory(size int) *testMemory {
	return &testMemory{data: make([]byte, size)}
}

func (m *testMemory) Size() uint32 { return uint32(len(m.data)) }

func (m *testMemory) check(offset, length uint32) error {
	if uint64(offset)+uint64(length) > uint64(len(m.data)) {
		return errors.OutOfBounds(errors.PhaseMemory, int(offset), int(length), len(m.data))
	}
	return nil
}

func (m *testMemory) Read(offset uint32, length uint32) ([]byte, error) {
	if err := m.check(offset, length); err != nil {
		return nil, err
	}
	return m.data[offset : offset+length], nil
}

func (m *testMemory) Write(offset uint32, data []byte) error {
	if err := m.check(offset, uint32(len(data))); err != nil {
		return err
	}
	copy(m.data[offset:], data)
	return nil
}

// unsizedMemory exposes only Read and Write, so the record range is checked
// against the 32-bit address space alone.
type unsizedMemory struct {
	m *testMemory
}

func (u unsizedMemory) Read(offset uint32, length uint32) ([]byte, error) {
	return u.m.Read(offset, length)
}

func (u unsizedMemory) Write(offset uint32, data []byte) error {
	return u.m.Write(offset, data)
}

func TestEncodeDecodeMemory(t *testing.T) {
	mem := newTestMemory(64)
	l := MustCompile("<Ih4s")
	in := []Value{Uint(0xdeadbeef), Int(-5), String("ok")}

	if err := EncodeToMemory(l, in, mem, 16); err != nil {
		t.Fatalf("EncodeToMemory error: %v", err)
	}

	if got := binary.LittleEndian.Uint32(mem.data[16:]); got != 0xdeadbeef {
		t.Errorf("uint32 at 16 = %#x, want 0xdeadbeef", got)
	}

	out, err := DecodeFromMemory(l, mem, 16)
	if err != nil {
		t.Fatalf("DecodeFromMemory error: %v", err)
	}
	if diff := cmp.Diff(in, out, valueCmp); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFromMemoryCopies(t *testing.T) {
	mem := newTestMemory(8)
	copy(mem.data, "abcd")

	out, err := NewDecoder(WithZeroCopy()).DecodeFromMemory(MustCompile("4s"), mem, 0)
	if err != nil {
		t.Fatalf("DecodeFromMemory error: %v", err)
	}
	mem.data[0] = 'z'
	if got := out[0].String(); got != "abcd" {
		t.Errorf("string = %q, want copy of memory", got)
	}
}

func TestMemoryOutOfBounds(t *testing.T) {
	mem := newTestMemory(8)
	l := MustCompile("<q")

	err := EncodeToMemory(l, []Value{Int(1)}, mem, 4)
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Phase != errors.PhaseMemory || e.Kind != errors.KindOutOfBounds {
		t.Fatalf("EncodeToMemory error = %v, want memory out of bounds", err)
	}
	if !bytes.Equal(mem.data, make([]byte, 8)) {
		t.Errorf("memory modified on error: % x", mem.data)
	}

	if _, err := DecodeFromMemory(l, mem, 1); err == nil {
		t.Error("DecodeFromMemory past end should fail")
	}
}

func TestEncodeToMemoryValueError(t *testing.T) {
	mem := newTestMemory(8)
	err := EncodeToMemory(MustCompile("b"), []Value{Int(500)}, mem, 0)
	if !stderrors.Is(err, errors.ErrIntegerOverflow) {
		t.Errorf("error = %v, want overflow", err)
	}
}

func TestUnsizedMemory(t *testing.T) {
	mem := unsizedMemory{m: newTestMemory(16)}
	l := MustCompile("<hxB")
	in := []Value{Int(-2), Uint(9)}

	if err := EncodeToMemory(l, in, mem, 4); err != nil {
		t.Fatalf("EncodeToMemory error: %v", err)
	}
	out, err := DecodeFromMemory(l, mem, 4)
	if err != nil {
		t.Fatalf("DecodeFromMemory error: %v", err)
	}
	if diff := cmp.Diff(in, out, valueCmp); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	err = EncodeToMemory(MustCompile("<i"), []Value{Int(1)}, mem, math.MaxUint32-2)
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Phase != errors.PhaseMemory || e.Kind != errors.KindOutOfBounds {
		t.Fatalf("EncodeToMemory error = %v, want memory out of bounds", err)
	}
	if _, err := DecodeFromMemory(MustCompile("<q"), mem, math.MaxUint32); !stderrors.Is(err, e) {
		t.Errorf("DecodeFromMemory error = %v, want memory out of bounds", err)
	}
}
