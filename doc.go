/*
Package bitfield reads and writes unsigned integer fields at arbitrary bit
offsets of a byte buffer.

Bit order

Bits are numbered most-significant first, starting at bit 0 of byte 0. This is
the numbering used by IETF packet diagrams:

     0                   1                   2                   3
     0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
    +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
    |Version|  IHL  |Type of Service|          Total Length         |
    +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

So for the buffer {0x45, 0x00, 0x00, 0x54}:

    Read[uint8](buf, HalfOpen(0, 4))    // Version      = 4
    Read[uint8](buf, HalfOpen(4, 8))    // IHL          = 5
    Read[uint16](buf, HalfOpen(16, 32)) // Total Length = 84

A field is returned zero-extended in the requested integer type, and a write
replaces exactly the bits of the range, leaving every other bit untouched.

Errors

Read and Write treat an invalid range as a programming error and panic with a
*RangeError. CheckedRead and CheckedWrite report the same conditions as
errors instead. In both cases the error matches ErrOutOfBounds,
ErrFieldTooWide or ErrValueTooLarge under errors.Is.

Fields up to 64 bits are read into any type satisfying Unsigned; 128-bit fields
use ReadUint128 and WriteUint128. Buffers other than plain byte slices can be
accessed through the Source and Sink interfaces.
*/
package bitfield
