package pack

import (
	structpack "github.com/wippyai/structpack"
	"github.com/wippyai/structpack/errors"
)

// Memory is the linear memory view records are moved in and out of.
type Memory = structpack.Memory

// EncodeToMemory encodes values and writes the record at addr.
func EncodeToMemory(l *Layout, values []Value, mem Memory, addr uint32) error {
	return defaultEncoder.EncodeToMemory(l, values, mem, addr)
}

// DecodeFromMemory reads l.Size() bytes at addr and decodes them.
func DecodeFromMemory(l *Layout, mem Memory, addr uint32) ([]Value, error) {
	return defaultDecoder.DecodeFromMemory(l, mem, addr)
}

// EncodeToMemory encodes values and writes the record at addr. Memory is
// untouched when encoding fails.
func (e *Encoder) EncodeToMemory(l *Layout, values []Value, mem Memory, addr uint32) error {
	if err := checkRange(mem, addr, l.Size()); err != nil {
		return err
	}
	data, err := e.Encode(l, values)
	if err != nil {
		return err
	}
	if err := mem.Write(addr, data); err != nil {
		return errors.Wrap(errors.PhaseMemory, errors.KindOutOfBounds, err, "write record")
	}
	return nil
}

// DecodeFromMemory always copies bytes values out of memory, since the
// guest may overwrite the region once control returns to it.
func (d *Decoder) DecodeFromMemory(l *Layout, mem Memory, addr uint32) ([]Value, error) {
	if err := checkRange(mem, addr, l.Size()); err != nil {
		return nil, err
	}
	data, err := mem.Read(addr, uint32(l.Size()))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseMemory, errors.KindOutOfBounds, err, "read record")
	}
	dec := d
	if d.zeroCopy {
		dec = defaultDecoder
	}
	return dec.Decode(l, data)
}

// checkRange rejects a record that would run past the end of memory, or
// past the 32-bit address space when the memory cannot report its size.
func checkRange(mem Memory, addr uint32, size int) error {
	limit := uint64(1) << 32
	if sizer, ok := mem.(structpack.MemorySizer); ok {
		limit = uint64(sizer.Size())
	}
	if uint64(addr)+uint64(size) > limit {
		return errors.OutOfBounds(errors.PhaseMemory, int(addr), size, int(limit))
	}
	return nil
}
