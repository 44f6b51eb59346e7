package bitfield

import (
	"encoding/binary"
	"math/bits"
)

// Unsigned is the set of integer types a field of up to 64 bits can be read
// into or written from.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func widthOf[T Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}

// mask returns a value with the low n bits set, for n in [0, 64].
func mask(n int) uint64 {
	if n == 0 {
		return 0
	}
	return ^uint64(0) >> (64 - uint(n))
}

// Read returns the field selected by r as a T.
//
// Read panics with a *RangeError if r is not within buf or holds more bits
// than T.
func Read[T Unsigned](buf []byte, r Range) T {
	v, err := CheckedRead[T](buf, r)
	if err != nil {
		panic(err)
	}
	return v
}

// Write stores the low r.Len() bits of v in the field selected by r.
//
// Write panics with a *RangeError if r is not within buf, holds more bits than
// T, or if v does not fit in r.Len() bits. Nothing is written in that case.
func Write[T Unsigned](buf []byte, r Range, v T) {
	if err := CheckedWrite(buf, r, v); err != nil {
		panic(err)
	}
}

// ReadFrom is like Read for any Source.
func ReadFrom[T Unsigned, S Source](src S, r Range) T {
	v, err := CheckedReadFrom[T](src, r)
	if err != nil {
		panic(err)
	}
	return v
}

// WriteTo is like Write for any Sink.
func WriteTo[T Unsigned, S Sink](dst S, r Range, v T) {
	if err := CheckedWriteTo(dst, r, v); err != nil {
		panic(err)
	}
}

// load returns the n bits of buf starting at bit start, right-aligned. The
// range must have been checked and n must be at most 64.
//
// Aligned fields of a native width are a single big-endian load. Anything
// else is one 64-bit window, shifted into place, plus one extra byte when the
// field straddles nine bytes.
func load(buf []byte, start, n int) uint64 {
	if n == 0 {
		return 0
	}
	i, o := start>>3, uint(start&7)
	if o == 0 {
		switch n {
		case 8:
			return uint64(buf[i])
		case 16:
			return uint64(binary.BigEndian.Uint16(buf[i:]))
		case 32:
			return uint64(binary.BigEndian.Uint32(buf[i:]))
		case 64:
			return binary.BigEndian.Uint64(buf[i:])
		}
	}

	var w uint64
	if len(buf)-i >= 8 {
		w = binary.BigEndian.Uint64(buf[i:])
	} else {
		for k, b := range buf[i:] {
			w |= uint64(b) << (56 - 8*uint(k))
		}
	}
	v := (w << o) >> (64 - uint(n))
	if extra := int(o) + n - 64; extra > 0 {
		v |= uint64(buf[i+8]) >> (8 - uint(extra))
	}
	return v
}

// loadFrom is load for an arbitrary Source. It only touches the bytes that
// overlap the range, building the result from the last byte to the first.
func loadFrom[S Source](src S, start, n int) uint64 {
	if n == 0 {
		return 0
	}
	first, last := start>>3, (start+n-1)>>3
	shift := uint(7 - (start+n-1)&7)

	v := uint64(src.At(last)) >> shift
	for k := 1; k <= last-first; k++ {
		v |= uint64(src.At(last-k)) << (8*uint(k) - shift)
	}
	return v & mask(n)
}

// store writes the low n bits of v at bit start of buf. v must already fit.
func store(buf []byte, start, n int, v uint64) {
	if n == 0 {
		return
	}
	if start&7 == 0 {
		i := start >> 3
		switch n {
		case 8:
			buf[i] = byte(v)
			return
		case 16:
			binary.BigEndian.PutUint16(buf[i:], uint16(v))
			return
		case 32:
			binary.BigEndian.PutUint32(buf[i:], uint32(v))
			return
		case 64:
			binary.BigEndian.PutUint64(buf[i:], v)
			return
		}
	}
	storeTo(Bytes(buf), start, n, v)
}

// storeTo writes the low n bits of v at bit start of dst, one byte at a
// time from the last byte to the first. Bits outside the range keep their
// value and bytes outside the range are never accessed.
func storeTo[S Sink](dst S, start, n int, v uint64) {
	if n == 0 {
		return
	}
	first, last := start>>3, (start+n-1)>>3
	shift := uint(7 - (start+n-1)&7)

	for j := last; j >= first; j-- {
		m := byte(0xff)
		if j == first {
			m &= 0xff >> uint(start&7)
		}
		var b byte
		if j == last {
			m &= 0xff << shift
			b = byte(v << shift)
			v >>= 8 - shift
		} else {
			b = byte(v)
			v >>= 8
		}
		dst.SetAt(j, dst.At(j)&^m|b&m)
	}
}
