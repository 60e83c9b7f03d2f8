// Package registry loads named record formats from a YAML file.
//
// The registry is loaded from a single file specified by:
//   - STRUCTPACK_CONFIG environment variable, or
//   - an explicit path passed to LoadFile
//
// A registry file looks like:
//
//	defaults:
//	  byte_order: network
//	formats:
//	  header:
//	    format: "HHI"
//	    description: message header
//	  point:
//	    format: "<2d"
//
// Every format is compiled when the file is loaded, so a registry that loads
// successfully only contains valid layouts. Formats without a byte order
// marker get the default one prepended. Each entry carries a BLAKE3 digest
// of its canonical format, which identifies the wire layout independently
// of how the format was spelled.
package registry
