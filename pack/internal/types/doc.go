// Package types defines the field kinds and compiled field structure shared
// by the scanner, layout calculator and codec.
//
// # Key Types
//
//   - Kind: field type discriminator (bool, char, integers, floats, string, padding)
//   - Field: one compiled unit of a layout with its repeat count, length and offset
//
// This package is internal to pack.
package types
