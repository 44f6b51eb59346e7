package bitfield

import "math/bits"

// Get reports whether bit i of p is set. It panics if i is not within p.
func Get(p []byte, i int) bool {
	return Read[uint8](p, Span(i, 1)) != 0
}

// Set sets bit i of p.
func Set(p []byte, i int) {
	Write[uint8](p, Span(i, 1), 1)
}

// Clear clears bit i of p.
func Clear(p []byte, i int) {
	Write[uint8](p, Span(i, 1), 0)
}

// Flip inverts bit i of p.
func Flip(p []byte, i int) {
	r := Span(i, 1)
	Write(p, r, Read[uint8](p, r)^1)
}

// OnesCount returns the number of set bits of p within r. Unlike Read, r may
// be of any length. It panics with a *RangeError if r is not within p.
func OnesCount(p []byte, r Range) int {
	size := len(p) * 8
	if err := r.check(size, r.Len()); err != nil {
		panic(&RangeError{Op: "read", Range: r, Size: size, Width: r.Len(), Err: err})
	}
	count := 0
	for start, end := r.Start, r.End; start < end; start += 64 {
		n := end - start
		if n > 64 {
			n = 64
		}
		count += bits.OnesCount64(load(p, start, n))
	}
	return count
}
