package section

import (
	"fmt"

	"github.com/arloliu/wpilog/encoding"
	"github.com/arloliu/wpilog/errs"
)

// RecordHeader holds the field widths decoded from a record's 1-byte length
// descriptor. It exists only while framing a single record.
type RecordHeader struct {
	EntryIDWidth     int // 1..4
	PayloadSizeWidth int // 1..4
	TimestampWidth   int // 1..8
}

// ParseRecordHeader decodes the length descriptor byte. Each bit field stores
// width-1, so the decoded widths are always at least 1.
func ParseRecordHeader(descriptor byte) RecordHeader {
	return RecordHeader{
		EntryIDWidth:     int(descriptor&EntryIDWidthMask) + 1,
		PayloadSizeWidth: int(descriptor&PayloadSizeWidthMask)>>PayloadSizeWidthShift + 1,
		TimestampWidth:   int(descriptor&TimestampWidthMask)>>TimestampWidthShift + 1,
	}
}

// Record is one framed record: a transient numeric entry ID, a timestamp in
// microseconds, and a borrowed payload slice. Timestamps are monotonic within
// a well-formed file but not guaranteed sorted across concurrent producers.
type Record struct {
	EntryID   uint32
	Timestamp uint64
	Payload   []byte
}

// IsControl reports whether the record is addressed to the reserved control
// entry ID.
func (r Record) IsControl() bool {
	return r.EntryID == ControlEntryID
}

// ParseRecord frames one record from the start of data: the 1-byte length
// descriptor, the three variable-width fields in fixed order (entry ID,
// payload size, timestamp), then exactly payload-size payload bytes.
//
// The remaining length is checked before each variable-width read and before
// the payload slice, since a width can legitimately request more bytes than
// exist at the end of a truncated file. A zero payload size is legal.
//
// Parameters:
//   - data: Buffer positioned at the start of a record
//
// Returns:
//   - Record: Framed record with borrowed payload view
//   - int: Total bytes consumed
//   - error: errs.ErrTooShort if the buffer ends before any required field
func ParseRecord(data []byte) (Record, int, error) {
	if len(data) == 0 {
		return Record{}, 0, fmt.Errorf("%w: missing record length descriptor", errs.ErrTooShort)
	}

	hdr := ParseRecordHeader(data[0])
	offset := 1

	if len(data)-offset < hdr.EntryIDWidth {
		return Record{}, 0, fmt.Errorf("%w: need %d bytes for entry ID, have %d",
			errs.ErrTooShort, hdr.EntryIDWidth, len(data)-offset)
	}
	entryID := encoding.VarUint32(data[offset:], hdr.EntryIDWidth)
	offset += hdr.EntryIDWidth

	if len(data)-offset < hdr.PayloadSizeWidth {
		return Record{}, 0, fmt.Errorf("%w: need %d bytes for payload size, have %d",
			errs.ErrTooShort, hdr.PayloadSizeWidth, len(data)-offset)
	}
	payloadSize := int(encoding.VarUint32(data[offset:], hdr.PayloadSizeWidth))
	offset += hdr.PayloadSizeWidth

	if len(data)-offset < hdr.TimestampWidth {
		return Record{}, 0, fmt.Errorf("%w: need %d bytes for timestamp, have %d",
			errs.ErrTooShort, hdr.TimestampWidth, len(data)-offset)
	}
	timestamp := encoding.VarUint64(data[offset:], hdr.TimestampWidth)
	offset += hdr.TimestampWidth

	if len(data)-offset < payloadSize {
		return Record{}, 0, fmt.Errorf("%w: payload size %d exceeds remaining %d bytes",
			errs.ErrTooShort, payloadSize, len(data)-offset)
	}
	payload := data[offset : offset+payloadSize]

	return Record{
		EntryID:   entryID,
		Timestamp: timestamp,
		Payload:   payload,
	}, offset + payloadSize, nil
}
