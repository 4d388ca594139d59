package compress

// ZstdCompressor provides Zstandard frame compression for archived log files.
//
// Zstd offers the best compression ratio of the supported algorithms and is
// the recommended choice for long-term log retention. The implementation is
// selected at build time: valyala/gozstd when cgo is available, and the
// pure-Go klauspost/compress/zstd otherwise. Both produce and consume
// standard Zstandard frames, so archives are interchangeable between builds.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
