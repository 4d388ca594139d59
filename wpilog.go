// Package wpilog provides a zero-copy decoder for the WPILOG binary data log
// format used to record timestamped telemetry from embedded control systems.
//
// A log file is an append-only sequence of variable-length framed records.
// Most records carry raw values for a previously declared data stream (an
// "entry"); records on the reserved entry ID 0 carry control records that
// declare, rename, or terminate entries. The decoder validates the file
// header, frames every record without copying payload bytes, resolves each
// value record to its entry through the correlation table, and exposes the
// result as a per-entry, time-ordered list of raw value slices.
//
// # Basic Usage
//
//	import "github.com/arloliu/wpilog"
//
//	data, _ := os.ReadFile("robot.wpilog")
//	log, err := wpilog.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	for name, entry := range log.All() {
//	    fmt.Printf("%s (%s): %d values\n", name, entry.Type(), entry.Len())
//	}
//
//	if entry, ok := log.Get("/robot/voltage"); ok {
//	    for _, v := range entry.Values() {
//	        // v.Data is the raw payload; interpret it per entry.Type()
//	        fmt.Printf("ts=%d, %d bytes\n", v.Timestamp, len(v.Data))
//	    }
//	}
//
// # Zero-copy
//
// Every string and payload slice in the result is a view into the input
// buffer — the decoder performs no copies of payload bytes. The buffer must
// outlive the returned DataLog; this holds naturally when the caller keeps a
// memory-mapped file open for the lifetime of the result.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the datalog
// package. For fine-grained control (inspecting the header before decoding,
// framing records manually), use the datalog and section packages directly.
package wpilog

import (
	"github.com/arloliu/wpilog/compress"
	"github.com/arloliu/wpilog/datalog"
	"github.com/arloliu/wpilog/internal/hash"
)

// Parse decodes a complete WPILOG file buffer into a DataLog.
//
// Parsing is all-or-nothing: any malformed record aborts the parse and no log
// object is returned. All errors wrap sentinels from the errs package and can
// be classified with errors.Is.
//
// The returned DataLog borrows from data; data must outlive it.
//
// Example:
//
//	log, err := wpilog.Parse(buf)
//	if errors.Is(err, errs.ErrUnsupportedVersion) {
//	    // file was written by a newer tool
//	}
func Parse(data []byte) (*datalog.DataLog, error) {
	decoder, err := datalog.NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}

// ParseCompressed decodes a WPILOG file that may be wrapped in a zstd, LZ4,
// or S2 archive frame. The compression algorithm is detected from the frame
// magic; an unwrapped buffer is parsed directly.
//
// When the input is compressed, the returned DataLog borrows from the newly
// allocated decompressed buffer, not from data, so the caller may release
// data immediately.
func ParseCompressed(data []byte) (*datalog.DataLog, error) {
	compressionType := compress.Detect(data)

	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, err
	}

	return Parse(raw)
}

// EntryID converts an entry name to its 64-bit hash identifier.
//
// The decoder indexes every entry by the xxHash64 of its name. Pre-computing
// IDs for frequently queried entries lets hot paths use DataLog.GetByID
// without hashing the name on every access. The hash is deterministic: the
// same name always produces the same ID, across files and processes.
//
// Example:
//
//	voltageID := wpilog.EntryID("/robot/voltage")
//	if entry, ok := log.GetByID(voltageID); ok {
//	    // ...
//	}
func EntryID(name string) uint64 {
	return hash.ID(name)
}
