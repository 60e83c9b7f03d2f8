// Package abi provides internal utilities for pack encoding/decoding.
//
// This package contains the numeric range checks and coercions used at the
// value boundary, the fixed-length string rules, and slot counting helpers
// shared by the encoder and decoder.
//
// # Contents
//
//   - coerce.go: Conversions from native Go values to int64/uint64
//   - count.go: Value slot counting and slot-to-field mapping
//   - helpers.go: Range checks, C-string rules, fill helpers
//
// This package is internal to pack.
package abi
