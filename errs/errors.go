// Package errs defines the sentinel errors shared across the wpilog packages.
//
// Every error that can surface from parsing a data log wraps one of these
// sentinels, so callers can classify failures with errors.Is while still
// receiving positional context from the wrapping message.
package errs

import "errors"

var (
	// ErrInvalidMagic indicates the buffer does not start with the "WPILOG" magic token.
	ErrInvalidMagic = errors.New("data does not start with the WPILOG magic")

	// ErrEmptyFile indicates the buffer is empty.
	ErrEmptyFile = errors.New("file is empty")

	// ErrTooShort indicates the buffer ends before a structurally required field.
	ErrTooShort = errors.New("data too short")

	// ErrUnsupportedVersion indicates the header version is not the supported one.
	// It is always wrapped with the observed major.minor version pair.
	ErrUnsupportedVersion = errors.New("unsupported version")

	// ErrInvalidUTF8 indicates a length-prefixed string holds invalid UTF-8 bytes.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 string")

	// ErrInvalidControlRecordType indicates an unrecognized control record type tag.
	ErrInvalidControlRecordType = errors.New("invalid control record type")

	// ErrUnsupportedRebinding indicates a Start control record targets an entry ID
	// that already has a binding in this parse. Entry ID reuse after Finish is
	// permitted by the format but deliberately unsupported by this decoder.
	ErrUnsupportedRebinding = errors.New("entry ID rebinding is not supported")

	// ErrUnboundEntryReference indicates a record references an entry ID with no
	// live binding.
	ErrUnboundEntryReference = errors.New("record references unbound entry ID")
)
