package bitfield

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	"github.com/twmb/murmur3"
)

// HashBits hands out consecutive fixed-width indexes from a digest, most
// significant bits first. It is the usual way of turning a key hash into a
// path of child indexes in a hash array mapped trie.
type HashBits struct {
	digest   []byte
	consumed int
}

// NewHashBits returns a HashBits reading from digest. The digest is not
// copied.
func NewHashBits(digest []byte) *HashBits {
	return &HashBits{digest: digest}
}

// HashBitsFromCid returns a HashBits reading the digest of c's multihash.
func HashBitsFromCid(c cid.Cid) (*HashBits, error) {
	dmh, err := multihash.Decode(c.Hash())
	if err != nil {
		return nil, err
	}
	return NewHashBits(dmh.Digest), nil
}

// HashKey hashes key with the given algorithm and returns the raw digest.
// Supported algorithms are identity, sha2-256 and murmur3-x64-128.
func HashKey(code multicodec.Code, key []byte) ([]byte, error) {
	switch code {
	case multicodec.Identity:
		return key, nil
	case multicodec.Sha2_256:
		mh, err := multihash.Sum(key, uint64(code), -1)
		if err != nil {
			return nil, err
		}
		dmh, err := multihash.Decode(mh)
		if err != nil {
			return nil, err
		}
		return dmh.Digest, nil
	case multicodec.Murmur3X64_128:
		hasher := murmur3.New128()
		hasher.Write(key)
		return hasher.Sum(nil), nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm: %s", code)
	}
}

// Next returns the next width bits of the digest. width must be between 1
// and 64. Once fewer than width bits remain, Next returns ErrHashExhausted and
// consumes nothing.
func (hb *HashBits) Next(width int) (uint64, error) {
	if width < 1 || width > 64 {
		return 0, fmt.Errorf("hash index width %d: %w", width, ErrFieldTooWide)
	}
	r := Span(hb.consumed, width)
	if r.End > len(hb.digest)*8 {
		return 0, ErrHashExhausted
	}
	hb.consumed = r.End
	return load(hb.digest, r.Start, width), nil
}

// Consumed returns the number of bits handed out so far.
func (hb *HashBits) Consumed() int {
	return hb.consumed
}

// Remaining returns the number of bits left in the digest.
func (hb *HashBits) Remaining() int {
	return len(hb.digest)*8 - hb.consumed
}
