// Package section implements the binary layouts of a WPILOG data log file:
// the fixed file header, the variable-length framed records, and the control
// records carried on the reserved entry ID.
//
// Parsers in this package follow a common contract: they decode from the start
// of a borrowed byte slice, report the number of bytes consumed, and never
// copy payload bytes. All multi-byte values are little-endian.
package section
