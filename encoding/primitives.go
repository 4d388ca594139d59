package encoding

import "github.com/arloliu/wpilog/endian"

var engine = endian.GetLittleEndianEngine()

// Uint32 decodes a fixed 4-byte little-endian unsigned integer.
//
// Precondition: len(data) >= 4. Violating it is a programming error and
// panics; callers must have already bounds-checked via the record framer.
func Uint32(data []byte) uint32 {
	return engine.Uint32(data)
}

// Uint64 decodes a fixed 8-byte little-endian unsigned integer.
//
// Precondition: len(data) >= 8; see Uint32.
func Uint64(data []byte) uint64 {
	return engine.Uint64(data)
}

// VarUint32 decodes an unsigned integer stored little-endian in the first
// width bytes of data, with 1 <= width <= 4. Missing high-order bytes are
// treated as zero. The decoder never reads past width bytes even when more
// are available.
//
// Precondition: len(data) >= width.
func VarUint32(data []byte, width int) uint32 {
	var v uint32
	for i := 0; i < width; i++ {
		v |= uint32(data[i]) << (8 * i)
	}

	return v
}

// VarUint64 decodes an unsigned integer stored little-endian in the first
// width bytes of data, with 1 <= width <= 8. Missing high-order bytes are
// treated as zero.
//
// Precondition: len(data) >= width.
func VarUint64(data []byte, width int) uint64 {
	var v uint64
	for i := 0; i < width; i++ {
		v |= uint64(data[i]) << (8 * i)
	}

	return v
}
