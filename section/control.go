package section

import (
	"fmt"

	"github.com/arloliu/wpilog/encoding"
	"github.com/arloliu/wpilog/errs"
)

// ControlRecordType identifies the kind of control record carried on the
// reserved control entry ID.
type ControlRecordType uint8

const (
	ControlStart       ControlRecordType = 0 // ControlStart declares an entry and binds its numeric ID.
	ControlFinish      ControlRecordType = 1 // ControlFinish closes an entry's numeric ID binding.
	ControlSetMetadata ControlRecordType = 2 // ControlSetMetadata replaces a bound entry's metadata.
)

func (t ControlRecordType) String() string {
	switch t {
	case ControlStart:
		return "Start"
	case ControlFinish:
		return "Finish"
	case ControlSetMetadata:
		return "SetMetadata"
	default:
		return "Unknown"
	}
}

// ControlRecord is the decoded payload of a record on the control entry ID.
//
// Which string fields are populated depends on Type: Start carries Name,
// EntryType, and Metadata; SetMetadata carries Metadata only; Finish carries
// neither. All strings are zero-copy views into the record payload.
type ControlRecord struct {
	Type      ControlRecordType
	TargetID  uint32
	Name      string
	EntryType string
	Metadata  string
}

// ParseControlRecord decodes a control record from a record payload.
//
// Every control payload carries at least a 1-byte type tag and a 4-byte
// target entry ID; a shorter payload is a fatal error. The type-specific body
// follows: Start has three length-prefixed strings (name, type, metadata),
// SetMetadata has one (metadata), Finish has none.
//
// Returns:
//   - ControlRecord: Decoded control record with borrowed string views
//   - error: errs.ErrTooShort for a truncated payload or body,
//     errs.ErrInvalidControlRecordType for an unrecognized type tag
func ParseControlRecord(payload []byte) (ControlRecord, error) {
	if len(payload) < ControlRecordMinSize {
		return ControlRecord{}, fmt.Errorf("%w: control payload needs at least %d bytes, have %d",
			errs.ErrTooShort, ControlRecordMinSize, len(payload))
	}

	rec := ControlRecord{
		Type:     ControlRecordType(payload[0]),
		TargetID: encoding.Uint32(payload[1:ControlRecordMinSize]),
	}
	body := payload[ControlRecordMinSize:]

	switch rec.Type {
	case ControlStart:
		name, n, err := encoding.ReadString(body)
		if err != nil {
			return ControlRecord{}, fmt.Errorf("start record name: %w", err)
		}
		body = body[n:]

		entryType, n, err := encoding.ReadString(body)
		if err != nil {
			return ControlRecord{}, fmt.Errorf("start record type: %w", err)
		}
		body = body[n:]

		metadata, _, err := encoding.ReadString(body)
		if err != nil {
			return ControlRecord{}, fmt.Errorf("start record metadata: %w", err)
		}

		rec.Name = name
		rec.EntryType = entryType
		rec.Metadata = metadata
	case ControlFinish:
		// No body beyond the target entry ID.
	case ControlSetMetadata:
		metadata, _, err := encoding.ReadString(body)
		if err != nil {
			return ControlRecord{}, fmt.Errorf("set metadata record: %w", err)
		}
		rec.Metadata = metadata
	default:
		return ControlRecord{}, fmt.Errorf("%w: tag %d", errs.ErrInvalidControlRecordType, payload[0])
	}

	return rec, nil
}
