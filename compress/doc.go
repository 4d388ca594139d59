// Package compress provides the codecs used to read archived data log files.
//
// Log files synced off a robot are routinely stored compressed. Every codec in
// this package uses a self-describing frame format, so Detect can identify the
// algorithm from the first bytes of the file and callers never need a side
// channel to know how an archive was compressed.
//
// Two Zstandard implementations are provided and selected at build time:
// valyala/gozstd (cgo) for maximum throughput, and klauspost/compress/zstd as
// the pure-Go fallback when cgo is disabled.
package compress
