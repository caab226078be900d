package cidutil

import (
	"errors"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// CIDv1RawSHA256 returns a CIDv1 string using the "raw" multicodec
// and a sha2-256 multihash.
func CIDv1RawSHA256(data []byte) string {
	c, err := CIDv1RawSHA256CID(data)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1 length,
		// this should be unreachable.
		return ""
	}
	return c.String()
}

// CIDv1RawSHA256CID returns a CIDv1 (raw + sha2-256) derived from data.
func CIDv1RawSHA256CID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// Digest returns the raw digest bytes of the multihash carried by id.
func Digest(id cid.Cid) ([]byte, error) {
	if !id.Defined() {
		return nil, errors.New("cid is undefined")
	}
	dec, err := multihash.Decode(id.Hash())
	if err != nil {
		return nil, fmt.Errorf("decode multihash: %w", err)
	}
	return dec.Digest, nil
}

// ParseDigest parses a CID string and returns its multihash digest.
func ParseDigest(s string) ([]byte, error) {
	id, err := cid.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("parse cid %q: %w", s, err)
	}
	return Digest(id)
}
