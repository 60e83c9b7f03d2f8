// Package witschema describes compiled layouts in WebAssembly Interface
// Type terms.
//
// Each value slot of a layout maps to one WIT primitive, and a whole layout
// maps to a WIT tuple, so a record format can be checked against a
// component's function signature:
//
//	l := pack.MustCompile("<hH5s")
//	witschema.TypeString(witschema.Tuple(l)) // "tuple<s16, u16, string>"
//
// Char fields are single bytes and map to u8, not to WIT's Unicode char.
// Padding contributes no slot.
package witschema
