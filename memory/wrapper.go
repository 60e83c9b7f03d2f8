package memory

import (
	"github.com/tetratelabs/wazero/api"
	structpack "github.com/wippyai/structpack"
	"github.com/wippyai/structpack/errors"
	"go.uber.org/zap"
)

var (
	_ structpack.Memory      = (*Wrapper)(nil)
	_ structpack.MemorySizer = (*Wrapper)(nil)
)

// WrapMemory wraps a wazero api.Memory. It returns nil for a nil memory.
func WrapMemory(mem api.Memory) *Wrapper {
	if mem == nil {
		return nil
	}
	return &Wrapper{Mem: mem}
}

// Exported wraps the memory a module exports under name.
func Exported(mod api.Module, name string) (*Wrapper, error) {
	mem := mod.ExportedMemory(name)
	if mem == nil {
		return nil, errors.NotFound(errors.PhaseMemory, "exported memory", name)
	}
	return &Wrapper{Mem: mem}, nil
}

// Wrapper adapts wazero api.Memory to structpack.Memory.
type Wrapper struct {
	Mem api.Memory
}

// Size returns the current memory size in bytes.
func (m *Wrapper) Size() uint32 {
	return m.Mem.Size()
}

func (m *Wrapper) outOfBounds(op string, offset, length uint32) error {
	size := m.Mem.Size()
	Logger().Debug("memory access out of bounds",
		zap.String("op", op),
		zap.Uint32("offset", offset),
		zap.Uint32("length", length),
		zap.Uint32("size", size),
	)
	return errors.OutOfBounds(errors.PhaseMemory, int(offset), int(length), int(size))
}

// Read returns a view of length bytes at offset. The slice aliases guest
// memory and is invalidated if the memory grows.
func (m *Wrapper) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.Mem.Read(offset, length)
	if !ok {
		return nil, m.outOfBounds("read", offset, length)
	}
	return data, nil
}

// Write copies data into memory at offset.
func (m *Wrapper) Write(offset uint32, data []byte) error {
	if !m.Mem.Write(offset, data) {
		return m.outOfBounds("write", offset, uint32(len(data)))
	}
	return nil
}
