package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint32(t *testing.T) {
	require.Equal(t, uint32(0x04030201), Uint32([]byte{0x01, 0x02, 0x03, 0x04}))
	require.Equal(t, uint32(1), Uint32([]byte{0x01, 0x00, 0x00, 0x00}))
}

func TestUint64(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	require.Equal(t, uint64(0x0807060504030201), Uint64(data))
}

func TestVarUint32(t *testing.T) {
	// Trailing 0xFF bytes verify the decoder never reads past width.
	data := []byte{0x01, 0x02, 0x03, 0x04, 0xFF, 0xFF}

	t.Run("Width 1", func(t *testing.T) {
		require.Equal(t, uint32(0x01), VarUint32(data, 1))
	})

	t.Run("Width 2", func(t *testing.T) {
		require.Equal(t, uint32(0x0201), VarUint32(data, 2))
	})

	t.Run("Width 3", func(t *testing.T) {
		require.Equal(t, uint32(0x030201), VarUint32(data, 3))
	})

	t.Run("Width 4", func(t *testing.T) {
		require.Equal(t, uint32(0x04030201), VarUint32(data, 4))
	})

	t.Run("Exact slice length", func(t *testing.T) {
		require.Equal(t, uint32(0x0201), VarUint32([]byte{0x01, 0x02}, 2))
	})
}

func TestVarUint64(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0xFF}

	t.Run("Width 1", func(t *testing.T) {
		require.Equal(t, uint64(0x01), VarUint64(data, 1))
	})

	t.Run("Width 3", func(t *testing.T) {
		require.Equal(t, uint64(0x030201), VarUint64(data, 3))
	})

	t.Run("Width 8", func(t *testing.T) {
		require.Equal(t, uint64(0x0807060504030201), VarUint64(data, 8))
	})

	t.Run("Timestamp example", func(t *testing.T) {
		// 1,000,000 microseconds stored in 3 bytes
		require.Equal(t, uint64(1_000_000), VarUint64([]byte{0x40, 0x42, 0x0F}, 3))
	})
}
