package abi

import (
	"slices"
	"testing"

	"github.com/wippyai/structpack/pack/internal/types"
)

func TestCountSlots(t *testing.T) {
	fields := []types.Field{
		{Kind: types.KindInt32, Repeat: 3},
		{Kind: types.KindPadding, Repeat: 1, Length: 4},
		{Kind: types.KindString, Repeat: 1, Length: 8},
		{Kind: types.KindBool, Repeat: 1},
	}

	if got := CountSlots(fields); got != 5 {
		t.Errorf("CountSlots = %d, want 5", got)
	}

	want := []int{0, 0, 0, 2, 3}
	if got := SlotFields(fields); !slices.Equal(got, want) {
		t.Errorf("SlotFields = %v, want %v", got, want)
	}
}

func TestCountSlotsEmpty(t *testing.T) {
	if got := CountSlots(nil); got != 0 {
		t.Errorf("CountSlots(nil) = %d, want 0", got)
	}
	if got := SlotFields([]types.Field{{Kind: types.KindPadding, Repeat: 1, Length: 2}}); len(got) != 0 {
		t.Errorf("SlotFields(padding) = %v, want empty", got)
	}
}
