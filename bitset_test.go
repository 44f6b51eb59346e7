package bitfield

import (
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRangedRead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bs       []byte
		from, to int
		want     uint64
	}{
		{[]byte{0b00001111}, 0, 8, 0x0f},
		{[]byte{0b00001111}, 0, 4, 0x00},
		{[]byte{0b00001111}, 4, 8, 0x0f},
		{[]byte{0b00001111}, 4, 6, 0b0011},
		{[]byte{0b11111111}, 4, 8, 0x0f},
		{[]byte{0b00001111}, 3, 5, 0b0001},

		{[]byte{0b11111111, 0b00000000}, 8, 16, 0x00},
		{[]byte{0b11111111, 0b00000000}, 0, 16, 0xff00},
		{[]byte{0b11111111, 0b00000000}, 4, 12, 0xf0},
		{[]byte{0b11111111, 0b00000000}, 6, 10, 0b1100},
	}
	for _, test := range tests {
		test := test
		t.Run(fmt.Sprintf("%x-%d-%d", test.bs, test.from, test.to), func(t *testing.T) {
			t.Parallel()
			got := Read[uint64](test.bs, HalfOpen(test.from, test.to))
			qt.Assert(t, got, qt.Equals, test.want)
		})
	}
}

func TestBitset(t *testing.T) {
	t.Parallel()

	bs := []byte{0b00001111, 0b01010101}

	qt.Assert(t, Get(bs, 0), qt.IsFalse)
	qt.Assert(t, Get(bs, 3), qt.IsFalse)
	qt.Assert(t, Get(bs, 4), qt.IsTrue)
	qt.Assert(t, Get(bs, 7), qt.IsTrue)

	qt.Assert(t, Get(bs, 8), qt.IsFalse)
	qt.Assert(t, Get(bs, 10), qt.IsFalse)
	qt.Assert(t, Get(bs, 13), qt.IsTrue)
	qt.Assert(t, Get(bs, 15), qt.IsTrue)

	Clear(bs, 15)
	qt.Assert(t, Get(bs, 15), qt.IsFalse)
	Set(bs, 15)
	qt.Assert(t, Get(bs, 15), qt.IsTrue)
	Flip(bs, 0)
	qt.Assert(t, bs[0], qt.Equals, byte(0b10001111))
	Flip(bs, 0)
	qt.Assert(t, bs[0], qt.Equals, byte(0b00001111))

	qt.Assert(t, OnesCount(bs, HalfOpen(0, 4)), qt.Equals, 0)
	qt.Assert(t, OnesCount(bs, HalfOpen(0, 8)), qt.Equals, 4)
	qt.Assert(t, OnesCount(bs, HalfOpen(0, 9)), qt.Equals, 4)
	qt.Assert(t, OnesCount(bs, HalfOpen(0, 10)), qt.Equals, 5)
	qt.Assert(t, OnesCount(bs, HalfOpen(6, 14)), qt.Equals, 5)

	err := recoverErr(func() { Get(bs, 16) })
	qt.Assert(t, err, qt.ErrorIs, ErrOutOfBounds)
	err = recoverErr(func() { Set(bs, -1) })
	qt.Assert(t, err, qt.ErrorIs, ErrOutOfBounds)
	err = recoverErr(func() { OnesCount(bs, HalfOpen(8, 17)) })
	qt.Assert(t, err, qt.ErrorIs, ErrOutOfBounds)
}

func TestOnesCountLong(t *testing.T) {
	t.Parallel()

	bs := make([]byte, 40)
	for i := range bs {
		bs[i] = 0xff
	}
	qt.Assert(t, OnesCount(bs, All(bs)), qt.Equals, 320)
	qt.Assert(t, OnesCount(bs, HalfOpen(3, 300)), qt.Equals, 297)
}
