package datalog

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arloliu/wpilog/section"
)

// Decoder performs a single forward pass over a data log buffer and assembles
// a DataLog.
//
// Note: The Decoder is NOT thread-safe and NOT reusable. After calling Decode,
// a new decoder must be created for further decoding.
type Decoder struct {
	data   []byte
	header section.Header
	offset int
}

// NewDecoder validates the file header of data and returns a decoder
// positioned at the first record.
//
// Parameters:
//   - data: Fully resident log file buffer (the decoder never performs I/O)
//
// Returns:
//   - *Decoder: New decoder instance ready for decoding
//   - error: Header validation error (magic, version, or truncation)
func NewDecoder(data []byte) (*Decoder, error) {
	header, n, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		data:   data,
		header: header,
		offset: n,
	}, nil
}

// Header returns the validated file header.
func (d *Decoder) Header() section.Header {
	return d.header
}

// Decode frames every record in the buffer, routes control records through
// the correlation table, appends data records to their bound entries, and
// finally stable-sorts each entry's values by ascending timestamp.
//
// Producers interleave entries roughly but not strictly in timestamp order,
// so the terminal sort is what gives consumers per-entry monotonicity. The
// sort is stable: records with equal timestamps keep their file order.
//
// Returns:
//   - *DataLog: Assembled log; its contents borrow from the input buffer
//   - error: Any framing, control, or correlation error aborts the entire
//     parse with no partial result
func (d *Decoder) Decode() (*DataLog, error) {
	log := &DataLog{
		metadata: d.header.Metadata,
		byName:   make(map[string]*Entry),
		byID:     make(map[uint64]*Entry),
	}
	table := newCorrelationTable()

	offset := d.offset
	for offset < len(d.data) {
		rec, n, err := section.ParseRecord(d.data[offset:])
		if err != nil {
			return nil, fmt.Errorf("record at offset %d: %w", offset, err)
		}
		offset += n

		if rec.IsControl() {
			if err := applyControl(rec.Payload, table, log); err != nil {
				return nil, err
			}

			continue
		}

		entry, err := table.resolve(rec.EntryID)
		if err != nil {
			return nil, err
		}
		entry.values = append(entry.values, Value{Timestamp: rec.Timestamp, Data: rec.Payload})
	}

	for _, entry := range log.byName {
		slices.SortStableFunc(entry.values, func(a, b Value) int {
			return cmp.Compare(a.Timestamp, b.Timestamp)
		})
	}

	return log, nil
}

// applyControl decodes one control payload and mutates the correlation table
// and entry map accordingly.
func applyControl(payload []byte, table *correlationTable, log *DataLog) error {
	ctrl, err := section.ParseControlRecord(payload)
	if err != nil {
		return err
	}

	switch ctrl.Type {
	case section.ControlStart:
		entry := &Entry{
			name:      ctrl.Name,
			entryType: ctrl.EntryType,
			metadata:  ctrl.Metadata,
		}
		if err := table.bind(ctrl.TargetID, entry); err != nil {
			return err
		}
		log.addEntry(entry)
	case section.ControlFinish:
		return table.finish(ctrl.TargetID)
	case section.ControlSetMetadata:
		entry, err := table.resolve(ctrl.TargetID)
		if err != nil {
			return err
		}
		entry.metadata = ctrl.Metadata
	}

	return nil
}
