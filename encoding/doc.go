// Package encoding implements the primitive codecs used by the WPILOG record
// framer and control record dispatcher: fixed-width and variable-byte-width
// little-endian unsigned integers, and u32 length-prefixed UTF-8 strings.
//
// All decoders operate on borrowed byte slices and never allocate copies of
// the input data. Callers are expected to bounds-check slices before calling
// the fixed-width helpers; the string decoder performs its own bounds and
// UTF-8 validation and reports errors from the errs package.
package encoding
