package bitfield

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/ipfs/go-cid"
	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/codec"
	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/codec/dagjson"
	"github.com/ipld/go-ipld-prime/fluent/qp"
	basicnode "github.com/ipld/go-ipld-prime/node/basic"
	"github.com/ipld/go-ipld-prime/node/bindnode"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	"lukechampine.com/uint128"
)

// Layout names the fields of a fixed-size binary structure, the way a header
// diagram does. Size is in bytes; field ranges are in bits.
type Layout struct {
	Name   string
	Size   int
	Fields []Field
}

// Field is a named half-open bit range [Start, End) within a Layout.
type Field struct {
	Name  string
	Start int
	End   int
}

// Range returns the bits selected by f.
func (f Field) Range() Range {
	return HalfOpen(f.Start, f.End)
}

// Validate checks that every field is non-empty, at most 128 bits wide,
// within the layout's size, uniquely named, and that no two fields overlap.
func (l *Layout) Validate() error {
	if l.Size <= 0 {
		return fmt.Errorf("%w: %q has size %d", ErrInvalidLayout, l.Name, l.Size)
	}
	seen := make(map[string]bool, len(l.Fields))
	for _, f := range l.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: %q has an unnamed field", ErrInvalidLayout, l.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %q has duplicate field %q", ErrInvalidLayout, l.Name, f.Name)
		}
		seen[f.Name] = true
		if f.End <= f.Start {
			return fmt.Errorf("%w: field %q is empty or inverted: %v", ErrInvalidLayout, f.Name, f.Range())
		}
		if err := f.Range().check(l.Size*8, 128); err != nil {
			return fmt.Errorf("%w: field %q %v: %v", ErrInvalidLayout, f.Name, f.Range(), err)
		}
	}

	sorted := make([]Field, len(l.Fields))
	copy(sorted, l.Fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	for i := 1; i < len(sorted); i++ {
		if prev := sorted[i-1]; sorted[i].Start < prev.End {
			return fmt.Errorf("%w: fields %q and %q overlap", ErrInvalidLayout, prev.Name, sorted[i].Name)
		}
	}
	return nil
}

// Field returns the field with the given name.
func (l *Layout) Field(name string) (Field, error) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, nil
		}
	}
	return Field{}, fmt.Errorf("%w: %q has no field %q", ErrUnknownField, l.Name, name)
}

// Get reads the named field from buf.
func (l *Layout) Get(buf []byte, name string) (uint128.Uint128, error) {
	f, err := l.Field(name)
	if err != nil {
		return uint128.Uint128{}, err
	}
	return CheckedReadUint128(buf, f.Range())
}

// Set writes v into the named field of buf.
func (l *Layout) Set(buf []byte, name string, v uint128.Uint128) error {
	f, err := l.Field(name)
	if err != nil {
		return err
	}
	return CheckedWriteUint128(buf, f.Range(), v)
}

// Decode reads every field of buf and returns them as a map node keyed by
// field name. Fields of up to 63 bits are Int nodes; wider fields are Bytes
// nodes holding the big-endian value in as few bytes as the field needs.
func (l *Layout) Decode(buf []byte) (ipld.Node, error) {
	values := make([]uint128.Uint128, len(l.Fields))
	for i, f := range l.Fields {
		v, err := CheckedReadUint128(buf, f.Range())
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		values[i] = v
	}
	return qp.BuildMap(basicnode.Prototype.Map, int64(len(l.Fields)), func(ma ipld.MapAssembler) {
		for i, f := range l.Fields {
			v := values[i]
			if n := f.End - f.Start; n < 64 {
				qp.MapEntry(ma, f.Name, qp.Int(int64(v.Lo)))
			} else {
				var b [16]byte
				binary.BigEndian.PutUint64(b[:8], v.Hi)
				binary.BigEndian.PutUint64(b[8:], v.Lo)
				qp.MapEntry(ma, f.Name, qp.Bytes(b[16-(n+7)/8:]))
			}
		}
	})
}

// Cid returns the content identifier of the layout's dag-cbor encoding.
// Two layouts with the same name, size and fields share a Cid.
func (l *Layout) Cid() (cid.Cid, error) {
	var buf bytes.Buffer
	if err := EncodeLayout(&buf, l, multicodec.DagCbor); err != nil {
		return cid.Undef, err
	}
	prefix := cid.Prefix{
		Version:  1,
		Codec:    uint64(multicodec.DagCbor),
		MhType:   multihash.SHA2_256,
		MhLength: -1,
	}
	return prefix.Sum(buf.Bytes())
}

// DecodeLayout reads a layout in the given codec, dag-json or dag-cbor, and
// validates it.
func DecodeLayout(r io.Reader, c multicodec.Code) (*Layout, error) {
	_, decode, err := codecFor(c)
	if err != nil {
		return nil, err
	}
	nb := LayoutPrototype.Representation().NewBuilder()
	if err := decode(nb, r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	l, ok := bindnode.Unwrap(nb.Build()).(*Layout)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected node", ErrInvalidLayout)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// EncodeLayout writes l in the given codec, dag-json or dag-cbor.
func EncodeLayout(w io.Writer, l *Layout, c multicodec.Code) error {
	encode, _, err := codecFor(c)
	if err != nil {
		return err
	}
	node := bindnode.Wrap(l, layoutType)
	return encode(node.Representation(), w)
}

func codecFor(c multicodec.Code) (codec.Encoder, codec.Decoder, error) {
	switch c {
	case multicodec.DagJson:
		return dagjson.Encode, dagjson.Decode, nil
	case multicodec.DagCbor:
		return dagcbor.Encode, dagcbor.Decode, nil
	default:
		return nil, nil, fmt.Errorf("unsupported layout codec: %s", c)
	}
}
