package compress

import (
	"bytes"
	"fmt"

	"github.com/arloliu/wpilog/format"
)

// Compressor compresses a complete log file buffer into an archive frame.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a complete log file buffer from an archive frame.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input must be a complete frame produced by the matching algorithm.
	// Corrupted or mismatched input returns an error.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Frame magic prefixes for the supported archive formats.
var (
	zstdFrameMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4FrameMagic  = []byte{0x04, 0x22, 0x4D, 0x18}
	s2ChunkMagic   = []byte{0xFF, 0x06, 0x00, 0x00}
)

// Detect identifies the compression algorithm wrapping data by sniffing the
// frame magic. Data that matches no known frame is reported as
// CompressionNone; the caller decides whether the raw bytes are meaningful.
func Detect(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, zstdFrameMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(data, lz4FrameMagic):
		return format.CompressionLZ4
	case isS2Stream(data):
		return format.CompressionS2
	default:
		return format.CompressionNone
	}
}

// isS2Stream reports whether data starts with the snappy/S2 stream identifier
// chunk. Both the "sNaPpY" and "S2sTwO" identifiers are accepted.
func isS2Stream(data []byte) bool {
	const identifierLen = 10 // 4-byte chunk header + 6-byte identifier
	if len(data) < identifierLen || !bytes.HasPrefix(data, s2ChunkMagic) {
		return false
	}

	id := string(data[4:identifierLen])

	return id == "sNaPpY" || id == "S2sTwO"
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
