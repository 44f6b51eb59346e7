package bitfield

import "fmt"

// Range selects the bits [Start, End) of a buffer. The zero Range is empty.
//
// A Range with End < Start is inverted; it is never accepted by a read or a
// write, but can be built by the constructors so that the error surfaces at
// the point of use.
type Range struct {
	Start int
	End   int
}

// HalfOpen returns the range [lo, hi).
func HalfOpen(lo, hi int) Range {
	return Range{Start: lo, End: hi}
}

// Closed returns the range [lo, hi]. If hi < lo the range is inverted.
func Closed(lo, hi int) Range {
	if hi < lo {
		return Range{Start: lo, End: hi}
	}
	return Range{Start: lo, End: hi + 1}
}

// Span returns the range of n bits starting at start.
func Span(start, n int) Range {
	return Range{Start: start, End: start + n}
}

// All returns the range covering every bit of buf.
func All(buf []byte) Range {
	return Range{End: len(buf) * 8}
}

// Len returns the number of bits in r, or 0 for an inverted range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Aligned reports whether both ends of r fall on byte boundaries.
func (r Range) Aligned() bool {
	return r.Start%8 == 0 && r.End%8 == 0
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// check validates r against a buffer of size bits and a field type of width
// bits. The order matters: bounds are reported before width.
func (r Range) check(size, width int) error {
	if r.Start < 0 || r.End < r.Start || r.End > size {
		return ErrOutOfBounds
	}
	if r.End-r.Start > width {
		return ErrFieldTooWide
	}
	return nil
}
