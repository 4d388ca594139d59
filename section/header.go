package section

import (
	"fmt"

	"github.com/arloliu/wpilog/encoding"
	"github.com/arloliu/wpilog/errs"
)

// Header represents the fixed header section at the start of a data log file.
//
// Metadata is an arbitrary, implementation-defined string with no further
// structure. It is a zero-copy view into the input buffer.
type Header struct {
	MajorVersion uint8
	MinorVersion uint8
	Metadata     string
}

// ParseHeader validates the file header and extracts the file-level metadata.
//
// The header layout is the 6-byte magic token, the version pair stored
// minor-then-major, and a u32 length-prefixed metadata string.
//
// Parameters:
//   - data: Full file buffer positioned at offset 0
//
// Returns:
//   - Header: Parsed header with version and borrowed metadata view
//   - int: Total bytes consumed by the header
//   - error: errs.ErrEmptyFile, errs.ErrInvalidMagic, errs.ErrUnsupportedVersion
//     (wrapped with the observed version), or a string decode error
func ParseHeader(data []byte) (Header, int, error) {
	if len(data) == 0 {
		return Header{}, 0, errs.ErrEmptyFile
	}
	if len(data) < HeaderFixedSize {
		return Header{}, 0, fmt.Errorf("%w: need at least %d header bytes, have %d",
			errs.ErrTooShort, HeaderFixedSize, len(data))
	}

	if string(data[:MagicSize]) != MagicToken {
		return Header{}, 0, errs.ErrInvalidMagic
	}

	// On-disk order is minor then major.
	minor := data[MagicSize]
	major := data[MagicSize+1]
	if major != SupportedMajorVersion || minor != SupportedMinorVersion {
		return Header{}, 0, fmt.Errorf("%w: got version %d.%d, expected %d.%d",
			errs.ErrUnsupportedVersion, major, minor, SupportedMajorVersion, SupportedMinorVersion)
	}

	metadata, n, err := encoding.ReadString(data[HeaderFixedSize:])
	if err != nil {
		return Header{}, 0, fmt.Errorf("header metadata: %w", err)
	}

	return Header{
		MajorVersion: major,
		MinorVersion: minor,
		Metadata:     metadata,
	}, HeaderFixedSize + n, nil
}
