package metadata

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ipfs/go-cid"

	"xdao.co/metaddr/cidutil"
)

// HashName returns the first 16 bytes of the SHA-256 digest of name after
// trimming surrounding whitespace and lowercasing it.
func HashName(name string) ([]byte, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return nil, newError(KindInvalidArgument, "MDADDR-NAME-001", "name must not be blank")
	}
	sum := sha256.Sum256([]byte(n))
	return sum[:uuidLen], nil
}

// FromHash builds a single-component address (scope, contract specification
// or scope specification) from the first 16 bytes of a standard base64 hash.
func FromHash(t Type, hash string) (Address, error) {
	raw, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return Address{}, wrapError(KindFormat, "MDADDR-HASH-001", fmt.Sprintf("invalid base64 hash: %v", err), err)
	}
	return fromDigest(t, raw)
}

// FromCID builds a single-component address from the first 16 bytes of the
// multihash digest carried by id.
func FromCID(t Type, id cid.Cid) (Address, error) {
	digest, err := cidutil.Digest(id)
	if err != nil {
		return Address{}, wrapError(KindInvalidArgument, "MDADDR-CID-001", fmt.Sprintf("invalid cid: %v", err), err)
	}
	return fromDigest(t, digest)
}

func fromDigest(t Type, digest []byte) (Address, error) {
	if len(digest) < uuidLen {
		return Address{}, newError(KindInvalidArgument, "MDADDR-HASH-002",
			fmt.Sprintf("invalid specification identifier, expected at least %d bytes, found %d", uuidLen, len(digest)))
	}
	switch t {
	case TypeScope, TypeContractSpecification, TypeScopeSpecification:
	default:
		return Address{}, newError(KindInvalidArgument, "MDADDR-TYPE-002",
			fmt.Sprintf("cannot derive %s address from a hash, expected Scope, ContractSpecification or ScopeSpecification", t))
	}
	var u uuid.UUID
	copy(u[:], digest[:uuidLen])
	return build(t, u, nil), nil
}
