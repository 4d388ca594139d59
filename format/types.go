// Package format defines shared type constants for the wpilog module.
package format

// CompressionType identifies the compression algorithm wrapping an archived
// log file. Log files synced off a robot are frequently stored compressed;
// the compress package detects the algorithm from the frame magic.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed log file.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard frame compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 framed stream compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
