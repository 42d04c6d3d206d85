package wire

import "errors"

// Sentinel errors for wire-level parsing and emission. Callers match with
// errors.Is; codecs wrap these with positional context.
var (
	// ErrTruncated indicates the buffer ended in the middle of a field,
	// or an emit would run past the caller-sized buffer.
	ErrTruncated = errors.New("wire: truncated")

	// ErrBadPointer indicates a compression pointer that jumps forward or
	// points at itself, or a reserved (0x40/0x80) label type. A pointer cut
	// off by the end of the message is ErrTruncated.
	ErrBadPointer = errors.New("wire: bad compression pointer")

	// ErrMalformedName indicates a label longer than 63 octets, a name
	// longer than 255 wire octets, or a non-ASCII octet where disallowed.
	ErrMalformedName = errors.New("wire: malformed domain name")

	// ErrTrailingRdata indicates a codec finished with rdata bytes left over.
	ErrTrailingRdata = errors.New("wire: trailing bytes in rdata")

	// ErrShortRdata indicates a codec tried to read past its rdlength slice.
	ErrShortRdata = errors.New("wire: rdata too short")
)
