// Package structpack converts between typed value sequences and compact
// fixed-layout binary records described by short format strings.
//
// A format such as "<hhl5s2x" names a byte order followed by field codes,
// each optionally prefixed with a count. The format is compiled once into an
// immutable layout, which then encodes and decodes any number of records.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	structpack/          Root package with the Memory interface
//	├── pack/            Format compiler, values, encoder and decoder
//	├── memory/          wazero linear memory adapter
//	├── registry/        Named formats loaded from YAML
//	├── witschema/       WIT type view of a layout
//	├── errors/          Structured error types
//	└── cmd/structpack/  Command line tool and interactive explorer
//
// # Quick Start
//
// Compile a format and round trip a record:
//
//	l, err := pack.Compile("<hH5s")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err := l.Encode([]pack.Value{pack.Int(-2), pack.Uint(7), pack.String("ab")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("% x\n", data) // fe ff 07 00 61 62 00 00 00
//
//	values, err := l.Decode(data)
//
// # Format Alphabet
//
//	@ or = native   < little   > big   ! network (big)
//	?  bool     c  char     x  pad byte      s  string
//	b/B int8/uint8   h/H int16/uint16   i/I int32/uint32
//	l/L int32/uint32 q/Q int64/uint64   f  float32   d  float64
//
// No alignment padding is ever inserted between fields.
//
// # Thread Safety
//
// Layout, Encoder, Decoder and Compiler are safe for concurrent use.
// Registry is read-only after loading.
//
// # Linear Memory
//
// pack.EncodeToMemory and pack.DecodeFromMemory move records in and out of
// any Memory implementation. memory.WrapMemory adapts a wazero api.Memory.
package structpack
