package section

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/wpilog/errs"
)

func buildHeader(magic string, minor, major uint8, metadata string) []byte {
	buf := []byte(magic)
	buf = append(buf, minor, major)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(metadata)))

	return append(buf, metadata...)
}

func TestParseHeader(t *testing.T) {
	t.Run("Valid header", func(t *testing.T) {
		data := buildHeader("WPILOG", 0, 1, "Hello, World!")
		header, n, err := ParseHeader(data)

		require.NoError(t, err)
		require.Equal(t, uint8(1), header.MajorVersion)
		require.Equal(t, uint8(0), header.MinorVersion)
		require.Equal(t, "Hello, World!", header.Metadata)
		require.Equal(t, len(data), n)
	})

	t.Run("Minimal header", func(t *testing.T) {
		// Exactly 12 bytes: fixed prefix plus zero-length metadata.
		data := []byte{0x57, 0x50, 0x49, 0x4C, 0x4F, 0x47, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}
		header, n, err := ParseHeader(data)

		require.NoError(t, err)
		require.Equal(t, "", header.Metadata)
		require.Equal(t, MinimumHeaderSize, n)
	})

	t.Run("Empty file", func(t *testing.T) {
		_, _, err := ParseHeader(nil)

		require.ErrorIs(t, err, errs.ErrEmptyFile)
	})

	t.Run("Shorter than fixed prefix", func(t *testing.T) {
		_, _, err := ParseHeader([]byte("WPIL"))

		require.ErrorIs(t, err, errs.ErrTooShort)
	})

	t.Run("Invalid magic", func(t *testing.T) {
		data := buildHeader("NOTLOG", 0, 1, "")
		_, _, err := ParseHeader(data)

		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("Unsupported version", func(t *testing.T) {
		data := buildHeader("WPILOG", 1, 1, "")
		_, _, err := ParseHeader(data)

		require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
		require.ErrorContains(t, err, "1.1")
	})

	t.Run("Truncated metadata", func(t *testing.T) {
		data := buildHeader("WPILOG", 0, 1, "Hello, World!")
		_, _, err := ParseHeader(data[:len(data)-5])

		require.ErrorIs(t, err, errs.ErrTooShort)
	})
}
