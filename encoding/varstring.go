package encoding

import (
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/arloliu/wpilog/errs"
)

// StringLenSize is the size in bytes of the u32 length prefix preceding every
// string in a WPILOG file.
const StringLenSize = 4

// ReadString decodes a u32 length-prefixed UTF-8 string from the start of data.
//
// The returned string is a zero-copy view into data; it shares memory with the
// input buffer and must not outlive it. UTF-8 validation is mandatory: a
// payload that is not valid UTF-8 fails with errs.ErrInvalidUTF8 regardless of
// length.
//
// Returns:
//   - string: Decoded string view
//   - int: Total bytes consumed (4 + string length)
//   - error: errs.ErrTooShort if fewer than 4+n bytes remain, errs.ErrInvalidUTF8
//     if the string bytes are not valid UTF-8
func ReadString(data []byte) (string, int, error) {
	if len(data) < StringLenSize {
		return "", 0, fmt.Errorf("%w: need %d bytes for string length prefix, have %d",
			errs.ErrTooShort, StringLenSize, len(data))
	}

	strLen := int(Uint32(data))
	if len(data)-StringLenSize < strLen {
		return "", 0, fmt.Errorf("%w: string length %d exceeds remaining %d bytes",
			errs.ErrTooShort, strLen, len(data)-StringLenSize)
	}

	raw := data[StringLenSize : StringLenSize+strLen]
	if !utf8.Valid(raw) {
		return "", 0, errs.ErrInvalidUTF8
	}

	return bytesToString(raw), StringLenSize + strLen, nil
}

// bytesToString reinterprets b as a string without copying.
// The result aliases b and is only valid while the backing buffer is alive.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(&b[0], len(b))
}
