package bitfield

import (
	"fmt"
	"io"

	cbg "github.com/whyrusleeping/cbor-gen"
)

// maxRecordLength bounds the number of values UnmarshalCBOR will accept.
const maxRecordLength = 8192

// Record holds the values of a layout's fields, in field order. Every field
// of a layout turned into a Record must be at most 64 bits wide.
type Record []uint64

// MarshalCBOR encodes r as a CBOR array of unsigned integers.
func (r Record) MarshalCBOR(w io.Writer) error {
	if err := cbg.WriteMajorTypeHeader(w, cbg.MajArray, uint64(len(r))); err != nil {
		return err
	}
	for _, v := range r {
		if err := cbg.WriteMajorTypeHeader(w, cbg.MajUnsignedInt, v); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalCBOR decodes a CBOR array of unsigned integers into r.
func (r *Record) UnmarshalCBOR(br io.Reader) error {
	maj, extra, err := cbg.CborReadHeader(br)
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}
	if extra > maxRecordLength {
		return fmt.Errorf("record too large: %d values", extra)
	}
	rec := make(Record, extra)
	for i := range rec {
		maj, v, err := cbg.CborReadHeader(br)
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt {
			return fmt.Errorf("wrong type for record value %d: %d", i, maj)
		}
		rec[i] = v
	}
	*r = rec
	return nil
}

// Record reads every field of buf into a Record.
func (l *Layout) Record(buf []byte) (Record, error) {
	rec := make(Record, len(l.Fields))
	for i, f := range l.Fields {
		v, err := CheckedRead[uint64](buf, f.Range())
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		rec[i] = v
	}
	return rec, nil
}

// Apply writes every value of rec into the corresponding field of buf. All
// values are checked before buf is modified.
func (l *Layout) Apply(buf []byte, rec Record) error {
	if len(rec) != len(l.Fields) {
		return fmt.Errorf("%w: record has %d values, %q has %d fields", ErrInvalidLayout, len(rec), l.Name, len(l.Fields))
	}
	for i, f := range l.Fields {
		if err := checkWrite(f.Range(), len(buf)*8, 64, rec[i]); err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
	}
	for i, f := range l.Fields {
		store(buf, f.Start, f.End-f.Start, rec[i])
	}
	return nil
}
