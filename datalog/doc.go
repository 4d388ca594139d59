// Package datalog implements the decoding and correlation engine for WPILOG
// data log files.
//
// A data log is an append-only sequence of variable-length framed records.
// Most records carry a raw value for a previously declared data stream (an
// "entry"); records on the reserved entry ID 0 carry control records that
// declare, update, or close entries. Records reference entries only by a
// transient numeric ID, so the decoder maintains a correlation table binding
// IDs to entries as control records arrive.
//
// Decoding is a single left-to-right pass over a fully resident buffer,
// typically a memory-mapped file owned by the caller. The result is a DataLog
// mapping each entry name to its time-ordered list of raw value slices.
//
// # Zero-copy discipline
//
// Every string and payload slice in a DataLog is a view into the input buffer;
// the decoder never copies payload bytes. Go cannot enforce this lifetime
// relationship, so it is a documented requirement: the input buffer must
// outlive the DataLog and everything reached through it.
//
// # Error model
//
// Parsing is all-or-nothing. A malformed record is a fatal parse error, not a
// partial result; a failed parse returns no DataLog at all. All errors wrap
// sentinels from the errs package.
package datalog
