package bitfield

import "lukechampine.com/uint128"

// CheckedRead is like Read but returns a *RangeError instead of panicking.
func CheckedRead[T Unsigned](buf []byte, r Range) (T, error) {
	width := widthOf[T]()
	if err := r.check(len(buf)*8, width); err != nil {
		return 0, &RangeError{Op: "read", Range: r, Size: len(buf) * 8, Width: width, Err: err}
	}
	return T(load(buf, r.Start, r.Len())), nil
}

// CheckedWrite is like Write but returns a *RangeError instead of panicking.
// The buffer is left untouched when an error is returned.
func CheckedWrite[T Unsigned](buf []byte, r Range, v T) error {
	width := widthOf[T]()
	if err := checkWrite(r, len(buf)*8, width, uint64(v)); err != nil {
		return err
	}
	store(buf, r.Start, r.Len(), uint64(v))
	return nil
}

// CheckedReadFrom is like ReadFrom but returns a *RangeError instead of
// panicking.
func CheckedReadFrom[T Unsigned, S Source](src S, r Range) (T, error) {
	width := widthOf[T]()
	size := src.Len() * 8
	if err := r.check(size, width); err != nil {
		return 0, &RangeError{Op: "read", Range: r, Size: size, Width: width, Err: err}
	}
	return T(loadFrom(src, r.Start, r.Len())), nil
}

// CheckedWriteTo is like WriteTo but returns a *RangeError instead of
// panicking.
func CheckedWriteTo[T Unsigned, S Sink](dst S, r Range, v T) error {
	width := widthOf[T]()
	if err := checkWrite(r, dst.Len()*8, width, uint64(v)); err != nil {
		return err
	}
	storeTo(dst, r.Start, r.Len(), uint64(v))
	return nil
}

func checkWrite(r Range, size, width int, v uint64) error {
	err := r.check(size, width)
	if err == nil && v > mask(r.Len()) {
		err = ErrValueTooLarge
	}
	if err != nil {
		return &RangeError{Op: "write", Range: r, Size: size, Width: width, Err: err}
	}
	return nil
}

// ReadUint128 returns the field selected by r, which may hold up to 128 bits.
// It panics under the same conditions as Read.
func ReadUint128(buf []byte, r Range) uint128.Uint128 {
	v, err := CheckedReadUint128(buf, r)
	if err != nil {
		panic(err)
	}
	return v
}

// WriteUint128 stores the low r.Len() bits of v in the field selected by r.
// It panics under the same conditions as Write.
func WriteUint128(buf []byte, r Range, v uint128.Uint128) {
	if err := CheckedWriteUint128(buf, r, v); err != nil {
		panic(err)
	}
}

// CheckedReadUint128 is like ReadUint128 but returns a *RangeError instead of
// panicking.
func CheckedReadUint128(buf []byte, r Range) (uint128.Uint128, error) {
	size := len(buf) * 8
	if err := r.check(size, 128); err != nil {
		return uint128.Uint128{}, &RangeError{Op: "read", Range: r, Size: size, Width: 128, Err: err}
	}
	hi, lo := split(r)
	return uint128.New(load(buf, lo.Start, lo.Len()), load(buf, hi.Start, hi.Len())), nil
}

// ReadUint128From is like ReadUint128 for any Source.
func ReadUint128From[S Source](src S, r Range) uint128.Uint128 {
	v, err := CheckedReadUint128From(src, r)
	if err != nil {
		panic(err)
	}
	return v
}

// WriteUint128To is like WriteUint128 for any Sink.
func WriteUint128To[S Sink](dst S, r Range, v uint128.Uint128) {
	if err := CheckedWriteUint128To(dst, r, v); err != nil {
		panic(err)
	}
}

// CheckedReadUint128From is like ReadUint128From but returns a *RangeError
// instead of panicking.
func CheckedReadUint128From[S Source](src S, r Range) (uint128.Uint128, error) {
	size := src.Len() * 8
	if err := r.check(size, 128); err != nil {
		return uint128.Uint128{}, &RangeError{Op: "read", Range: r, Size: size, Width: 128, Err: err}
	}
	hi, lo := split(r)
	return uint128.New(loadFrom(src, lo.Start, lo.Len()), loadFrom(src, hi.Start, hi.Len())), nil
}

// CheckedWriteUint128To is like WriteUint128To but returns a *RangeError
// instead of panicking.
func CheckedWriteUint128To[S Sink](dst S, r Range, v uint128.Uint128) error {
	hi, lo, err := checkWrite128(r, dst.Len()*8, v)
	if err != nil {
		return err
	}
	storeTo(dst, hi.Start, hi.Len(), v.Hi)
	storeTo(dst, lo.Start, lo.Len(), v.Lo)
	return nil
}

// CheckedWriteUint128 is like WriteUint128 but returns a *RangeError instead
// of panicking.
func CheckedWriteUint128(buf []byte, r Range, v uint128.Uint128) error {
	hi, lo, err := checkWrite128(r, len(buf)*8, v)
	if err != nil {
		return err
	}
	store(buf, hi.Start, hi.Len(), v.Hi)
	store(buf, lo.Start, lo.Len(), v.Lo)
	return nil
}

func checkWrite128(r Range, size int, v uint128.Uint128) (hi, lo Range, _ error) {
	hi, lo = split(r)
	err := r.check(size, 128)
	if err == nil && (v.Hi > mask(hi.Len()) || v.Lo > mask(lo.Len())) {
		err = ErrValueTooLarge
	}
	if err != nil {
		return hi, lo, &RangeError{Op: "write", Range: r, Size: size, Width: 128, Err: err}
	}
	return hi, lo, nil
}

// split divides r into the bits that land in the high and low 64-bit halves
// of a 128-bit value. hi is empty for fields of 64 bits or less.
func split(r Range) (hi, lo Range) {
	n := r.Len()
	if n <= 64 {
		return Range{Start: r.Start, End: r.Start}, r
	}
	mid := r.End - 64
	return Range{Start: r.Start, End: mid}, Range{Start: mid, End: r.End}
}
