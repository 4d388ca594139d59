package datalog

import "iter"

// Value is a single raw data point: a timestamp in microseconds and the
// undecoded payload bytes. Data is a borrowed view into the input buffer;
// interpreting it according to the entry's declared type is a downstream
// concern.
type Value struct {
	Timestamp uint64
	Data      []byte
}

// Entry is a named, typed data stream within a data log. It is created by a
// Start control record, appended to by every data record addressed to its
// bound numeric ID, and closed by a Finish control record.
//
// After decoding completes, the entry's values are stably sorted by ascending
// timestamp.
type Entry struct {
	name      string
	entryType string
	metadata  string
	values    []Value
	finished  bool
}

// Name returns the entry name.
func (e *Entry) Name() string {
	return e.name
}

// Type returns the entry's declared type string (e.g. "int64", "double").
// The decoder does not interpret it.
func (e *Entry) Type() string {
	return e.entryType
}

// Metadata returns the entry's metadata string, as last set by its Start or
// SetMetadata control record.
func (e *Entry) Metadata() string {
	return e.metadata
}

// Finished reports whether a Finish control record closed the entry.
func (e *Entry) Finished() bool {
	return e.finished
}

// Len returns the number of values recorded for the entry.
func (e *Entry) Len() int {
	return len(e.values)
}

// Values returns the entry's values in ascending timestamp order.
//
// The returned slice shares the decoder's backing storage and the payload
// bytes alias the input buffer. Do not modify the returned slice.
func (e *Entry) Values() []Value {
	return e.values
}

// All returns an iterator over (index, Value) in ascending timestamp order.
//
// Example:
//
//	for i, v := range entry.All() {
//	    fmt.Printf("[%d] ts=%d, %d bytes\n", i, v.Timestamp, len(v.Data))
//	}
func (e *Entry) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, v := range e.values {
			if !yield(i, v) {
				return
			}
		}
	}
}
