package layout

import (
	"github.com/wippyai/structpack/pack/internal/scan"
	"github.com/wippyai/structpack/pack/internal/types"
)

type Info struct {
	Fields []types.Field
	Size   int
	Slots  int
}

// Calculate resolves tokens into fields with offsets. Tokens must come from
// scan.Scan, so every code is known.
func Calculate(tokens []scan.Token) Info {
	info := Info{Fields: make([]types.Field, 0, len(tokens))}

	for _, tok := range tokens {
		kind, ok := types.FromCode(tok.Code)
		if !ok {
			continue
		}

		f := types.Field{
			Kind:   kind,
			Code:   tok.Code,
			Repeat: 1,
			Offset: info.Size,
		}
		if kind.IsLengthBearing() {
			f.Length = tok.N()
		} else {
			f.Repeat = tok.N()
		}

		info.Fields = append(info.Fields, f)
		info.Size += f.Size()
		info.Slots += f.Slots()
	}

	return info
}
