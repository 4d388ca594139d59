package section

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/wpilog/errs"
)

func appendString(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

func buildControlPayload(tag uint8, targetID uint32, strs ...string) []byte {
	buf := []byte{tag}
	buf = binary.LittleEndian.AppendUint32(buf, targetID)
	for _, s := range strs {
		buf = appendString(buf, s)
	}

	return buf
}

func TestParseControlRecord(t *testing.T) {
	t.Run("Start", func(t *testing.T) {
		payload := buildControlPayload(0, 1, "test", "int64", "{}")
		rec, err := ParseControlRecord(payload)

		require.NoError(t, err)
		require.Equal(t, ControlStart, rec.Type)
		require.Equal(t, uint32(1), rec.TargetID)
		require.Equal(t, "test", rec.Name)
		require.Equal(t, "int64", rec.EntryType)
		require.Equal(t, "{}", rec.Metadata)
	})

	t.Run("Finish", func(t *testing.T) {
		payload := buildControlPayload(1, 7)
		rec, err := ParseControlRecord(payload)

		require.NoError(t, err)
		require.Equal(t, ControlFinish, rec.Type)
		require.Equal(t, uint32(7), rec.TargetID)
	})

	t.Run("SetMetadata", func(t *testing.T) {
		payload := buildControlPayload(2, 3, `{"source":"NT"}`)
		rec, err := ParseControlRecord(payload)

		require.NoError(t, err)
		require.Equal(t, ControlSetMetadata, rec.Type)
		require.Equal(t, uint32(3), rec.TargetID)
		require.Equal(t, `{"source":"NT"}`, rec.Metadata)
	})

	t.Run("Unknown tag", func(t *testing.T) {
		payload := buildControlPayload(9, 1)
		_, err := ParseControlRecord(payload)

		require.ErrorIs(t, err, errs.ErrInvalidControlRecordType)
	})

	t.Run("Payload below minimum size", func(t *testing.T) {
		_, err := ParseControlRecord([]byte{0, 1, 0, 0})

		require.ErrorIs(t, err, errs.ErrTooShort)
	})

	t.Run("Start with truncated strings", func(t *testing.T) {
		payload := buildControlPayload(0, 1, "test")
		_, err := ParseControlRecord(payload)

		require.ErrorIs(t, err, errs.ErrTooShort)
	})
}

func TestControlRecordTypeString(t *testing.T) {
	require.Equal(t, "Start", ControlStart.String())
	require.Equal(t, "Finish", ControlFinish.String())
	require.Equal(t, "SetMetadata", ControlSetMetadata.String())
	require.Equal(t, "Unknown", ControlRecordType(9).String())
}
