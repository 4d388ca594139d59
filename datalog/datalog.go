package datalog

import (
	"iter"
	"slices"

	"github.com/arloliu/wpilog/internal/hash"
)

// DataLog is the fully decoded result of a parse: the file-level metadata
// string plus every entry, queryable by name or by 64-bit hash ID.
//
// Entry IDs are computed with xxHash64 over the entry name (see the EntryID
// helper in the root package). They let callers pre-compute lookup keys for
// hot paths instead of hashing the name on every access.
//
// All strings and payload slices reached through a DataLog are views into the
// buffer passed to the decoder; the buffer must outlive the DataLog.
type DataLog struct {
	metadata string
	byName   map[string]*Entry
	byID     map[uint64]*Entry
}

// Metadata returns the file-level metadata string from the header.
func (l *DataLog) Metadata() string {
	return l.metadata
}

// EntryCount returns the number of entries in the log.
func (l *DataLog) EntryCount() int {
	return len(l.byName)
}

// EntryNames returns all entry names sorted ascending, so iteration order is
// deterministic for identical input bytes.
func (l *DataLog) EntryNames() []string {
	names := make([]string, 0, len(l.byName))
	for name := range l.byName {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Has reports whether the log contains an entry with the given name.
func (l *DataLog) Has(name string) bool {
	_, ok := l.byName[name]
	return ok
}

// Get returns the entry with the given name.
func (l *DataLog) Get(name string) (*Entry, bool) {
	entry, ok := l.byName[name]
	return entry, ok
}

// GetByID returns the entry whose name hashes to the given 64-bit ID.
func (l *DataLog) GetByID(id uint64) (*Entry, bool) {
	entry, ok := l.byID[id]
	return entry, ok
}

// All returns an iterator over (name, entry) in ascending name order.
//
// Example:
//
//	for name, entry := range log.All() {
//	    fmt.Printf("%s: %d values\n", name, entry.Len())
//	}
func (l *DataLog) All() iter.Seq2[string, *Entry] {
	return func(yield func(string, *Entry) bool) {
		for _, name := range l.EntryNames() {
			if !yield(name, l.byName[name]) {
				return
			}
		}
	}
}

// addEntry indexes a newly declared entry by name and by hash ID.
// A repeated name replaces the earlier entry in both indexes; the format
// leaves duplicate names unspecified and the last declaration wins here.
func (l *DataLog) addEntry(entry *Entry) {
	l.byName[entry.name] = entry
	l.byID[hash.ID(entry.name)] = entry
}
