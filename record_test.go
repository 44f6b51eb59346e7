package bitfield

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRecordCBOR(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	qt.Assert(t, Record{1, 24}.MarshalCBOR(&buf), qt.IsNil)
	qt.Assert(t, buf.Bytes(), qt.DeepEquals, []byte{0x82, 0x01, 0x18, 0x18})

	var rec Record
	qt.Assert(t, rec.UnmarshalCBOR(&buf), qt.IsNil)
	qt.Assert(t, rec, qt.DeepEquals, Record{1, 24})

	err := rec.UnmarshalCBOR(bytes.NewReader([]byte{0x01}))
	qt.Assert(t, err, qt.ErrorMatches, "cbor input should be of type array")
	err = rec.UnmarshalCBOR(bytes.NewReader([]byte{0x81, 0x41, 0x00}))
	qt.Assert(t, err, qt.ErrorMatches, "wrong type for record value 0: 2")
}

func TestLayoutRecord(t *testing.T) {
	t.Parallel()

	l := loadIPv4(t)
	rec, err := l.Record(ipv4Header)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, rec, qt.DeepEquals, Record{4, 5, 0, 84, 0, 2, 0, 64, 1, 0xf7b4, 0xc0a80001, 0xc0a800c7})

	var enc bytes.Buffer
	qt.Assert(t, rec.MarshalCBOR(&enc), qt.IsNil)
	var dec Record
	qt.Assert(t, dec.UnmarshalCBOR(&enc), qt.IsNil)

	buf := make([]byte, 20)
	qt.Assert(t, l.Apply(buf, dec), qt.IsNil)
	qt.Assert(t, buf, qt.DeepEquals, ipv4Header)
}

func TestLayoutApplyErrors(t *testing.T) {
	t.Parallel()

	l := loadIPv4(t)
	buf := append([]byte(nil), ipv4Header...)

	err := l.Apply(buf, Record{4, 5})
	qt.Assert(t, err, qt.ErrorIs, ErrInvalidLayout)

	rec := Record{6, 5, 0, 84, 0, 8, 0, 64, 1, 0xf7b4, 0xc0a80001, 0xc0a800c7}
	err = l.Apply(buf, rec)
	qt.Assert(t, err, qt.ErrorIs, ErrValueTooLarge)
	qt.Assert(t, err, qt.ErrorMatches, `field "flags": .*`)
	qt.Assert(t, buf, qt.DeepEquals, ipv4Header)

	wide := &Layout{Name: "wide", Size: 16, Fields: []Field{{"addr", 0, 128}}}
	_, err = wide.Record(make([]byte, 16))
	qt.Assert(t, err, qt.ErrorIs, ErrFieldTooWide)
}
