package bitfield

// Source is a byte-addressable buffer the codec can read from.
type Source interface {
	// Len returns the number of bytes in the buffer.
	Len() int
	// At returns the byte at index i.
	At(i int) byte
}

// Sink is a Source whose bytes can be overwritten in place.
type Sink interface {
	Source
	// SetAt replaces the byte at index i.
	SetAt(i int, b byte)
}

// Bytes adapts a byte slice to Source and Sink.
type Bytes []byte

func (b Bytes) Len() int            { return len(b) }
func (b Bytes) At(i int) byte       { return b[i] }
func (b Bytes) SetAt(i int, v byte) { b[i] = v }

var (
	_ Source = Bytes(nil)
	_ Sink   = Bytes(nil)
)
