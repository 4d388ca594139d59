package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/wpilog/errs"
)

func TestParseRecordHeader(t *testing.T) {
	t.Run("Minimum widths", func(t *testing.T) {
		hdr := ParseRecordHeader(0x00)

		require.Equal(t, 1, hdr.EntryIDWidth)
		require.Equal(t, 1, hdr.PayloadSizeWidth)
		require.Equal(t, 1, hdr.TimestampWidth)
	})

	t.Run("Maximum widths", func(t *testing.T) {
		hdr := ParseRecordHeader(0b0111_1111)

		require.Equal(t, 4, hdr.EntryIDWidth)
		require.Equal(t, 4, hdr.PayloadSizeWidth)
		require.Equal(t, 8, hdr.TimestampWidth)
	})

	t.Run("Reserved bit ignored", func(t *testing.T) {
		require.Equal(t, ParseRecordHeader(0x20), ParseRecordHeader(0xA0))
	})
}

func TestParseRecord(t *testing.T) {
	t.Run("Variable widths", func(t *testing.T) {
		// 1-byte entry ID, 1-byte payload size, 3-byte timestamp, 8-byte payload
		data := []byte{
			0x20, 0x01, 0x08, 0x40, 0x42, 0x0F,
			0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		}
		rec, n, err := ParseRecord(data)

		require.NoError(t, err)
		require.Equal(t, uint32(1), rec.EntryID)
		require.Equal(t, uint64(1_000_000), rec.Timestamp)
		require.Equal(t, []byte{3, 0, 0, 0, 0, 0, 0, 0}, rec.Payload)
		require.Equal(t, len(data), n)
		require.False(t, rec.IsControl())
	})

	t.Run("Zero payload", func(t *testing.T) {
		data := []byte{0x00, 0x02, 0x00, 0x05}
		rec, n, err := ParseRecord(data)

		require.NoError(t, err)
		require.Equal(t, uint32(2), rec.EntryID)
		require.Equal(t, uint64(5), rec.Timestamp)
		require.Empty(t, rec.Payload)
		require.Equal(t, 4, n)
	})

	t.Run("Control entry ID", func(t *testing.T) {
		data := []byte{0x00, 0x00, 0x00, 0x01}
		rec, _, err := ParseRecord(data)

		require.NoError(t, err)
		require.True(t, rec.IsControl())
	})

	t.Run("Empty buffer", func(t *testing.T) {
		_, _, err := ParseRecord(nil)

		require.ErrorIs(t, err, errs.ErrTooShort)
	})

	t.Run("Truncated entry ID", func(t *testing.T) {
		// Descriptor demands a 4-byte entry ID but only 2 bytes remain.
		_, _, err := ParseRecord([]byte{0x03, 0x01, 0x00})

		require.ErrorIs(t, err, errs.ErrTooShort)
	})

	t.Run("Truncated timestamp", func(t *testing.T) {
		// Descriptor demands an 8-byte timestamp at the end of the buffer.
		_, _, err := ParseRecord([]byte{0x70, 0x01, 0x00, 0x01, 0x02})

		require.ErrorIs(t, err, errs.ErrTooShort)
	})

	t.Run("Payload past end of buffer", func(t *testing.T) {
		data := []byte{0x20, 0x01, 0x08, 0x40, 0x42, 0x0F, 0x03, 0x00}
		_, _, err := ParseRecord(data)

		require.ErrorIs(t, err, errs.ErrTooShort)
	})
}
