package abi

import "github.com/wippyai/structpack/pack/internal/types"

// CountSlots returns the number of values fields consume on encode.
func CountSlots(fields []types.Field) int {
	n := 0
	for _, f := range fields {
		n += f.Slots()
	}
	return n
}

// SlotFields maps each value slot to the index of the field that owns it.
func SlotFields(fields []types.Field) []int {
	out := make([]int, 0, CountSlots(fields))
	for i, f := range fields {
		for range f.Slots() {
			out = append(out, i)
		}
	}
	return out
}
