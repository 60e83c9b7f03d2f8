// Package memory adapts wazero linear memory to structpack.Memory.
//
// A wrapped memory can be handed straight to pack.EncodeToMemory and
// pack.DecodeFromMemory, so records are written into and read out of a
// WebAssembly guest without an intermediate copy on the host side:
//
//	mem := memory.WrapMemory(mod.ExportedMemory("memory"))
//	err := pack.EncodeToMemory(layout, values, mem, ptr)
//
// Out-of-bounds accesses return *errors.Error with PhaseMemory and
// KindOutOfBounds and are logged at debug level through Logger.
package memory
