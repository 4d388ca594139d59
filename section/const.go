package section

const (
	// MagicToken is the fixed 6-byte token every data log file starts with.
	MagicToken = "WPILOG"
	// MagicSize is the length of the magic token in bytes.
	MagicSize = 6

	// SupportedMajorVersion and SupportedMinorVersion form the single format
	// version this decoder accepts. The version pair is stored on disk in
	// minor-then-major order.
	SupportedMajorVersion = 1
	SupportedMinorVersion = 0

	// HeaderFixedSize is the size of the fixed header prefix: magic plus the
	// two version bytes. The metadata string with its u32 length prefix follows.
	HeaderFixedSize = MagicSize + 2
	// MinimumHeaderSize is the smallest possible header: fixed prefix plus a
	// zero-length metadata string.
	MinimumHeaderSize = HeaderFixedSize + 4
)

// Record length descriptor bit layout. Each field stores width-1, so a stored
// value of 0 means a 1-byte field.
const (
	EntryIDWidthMask      = 0b0000_0011 // bits [0:2): entry ID width - 1
	PayloadSizeWidthMask  = 0b0000_1100 // bits [2:4): payload size width - 1
	PayloadSizeWidthShift = 2
	TimestampWidthMask    = 0b0111_0000 // bits [4:7): timestamp width - 1
	TimestampWidthShift   = 4
	// Bit 7 is reserved and ignored.
)

const (
	// ControlEntryID is the reserved entry ID whose records carry control
	// payloads instead of entry values.
	ControlEntryID = 0
	// ControlRecordMinSize is the minimum control payload: a 1-byte type tag
	// plus a 4-byte target entry ID.
	ControlRecordMinSize = 5
)
