package bitfield

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a bit range is inverted, starts before
	// the buffer or runs past its end.
	ErrOutOfBounds = errors.New("bit range out of bounds")

	// ErrFieldTooWide is returned when a bit range holds more bits than the
	// requested integer type.
	ErrFieldTooWide = errors.New("field too wide for integer type")

	// ErrValueTooLarge is returned when a value written to a field does not
	// fit in the field's bits.
	ErrValueTooLarge = errors.New("value does not fit in field")

	// ErrHashExhausted is returned by HashBits once all bits of the digest
	// have been consumed.
	ErrHashExhausted = errors.New("hash bits exhausted")

	// ErrInvalidLayout is returned whenever a Layout does not describe a
	// usable set of fields: overlapping or out of bounds fields, duplicate
	// names, or a record of the wrong size.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrUnknownField is returned when a Layout has no field of the requested
	// name.
	ErrUnknownField = errors.New("unknown field")
)

// RangeError describes a rejected read or write. Read and Write panic with a
// *RangeError; the checked variants return one.
type RangeError struct {
	Op    string // "read" or "write"
	Range Range
	Size  int // buffer size in bits
	Width int // integer width in bits
	Err   error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bitfield: %s %v of %d-bit buffer as uint%d: %v", e.Op, e.Range, e.Size, e.Width, e.Err)
}

func (e *RangeError) Unwrap() error { return e.Err }
