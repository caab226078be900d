package cidutil

import (
	"crypto/sha256"
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCIDv1RawSHA256_Deterministic(t *testing.T) {
	a := CIDv1RawSHA256([]byte("hello"))
	b := CIDv1RawSHA256([]byte("hello"))
	require.NotEmpty(t, a)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, CIDv1RawSHA256([]byte("hello!")))

	c, err := CIDv1RawSHA256CID([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, a, c.String())
	assert.Equal(t, uint64(1), c.Version())
	assert.Equal(t, uint64(cid.Raw), c.Type())
}

func TestDigest_IsSHA256(t *testing.T) {
	data := []byte("metadata document")
	c, err := CIDv1RawSHA256CID(data)
	require.NoError(t, err)

	got, err := Digest(c)
	require.NoError(t, err)
	want := sha256.Sum256(data)
	assert.Equal(t, want[:], got)

	parsed, err := ParseDigest(c.String())
	require.NoError(t, err)
	assert.Equal(t, want[:], parsed)
}

func TestDigest_Rejects(t *testing.T) {
	_, err := Digest(cid.Undef)
	require.Error(t, err)

	_, err = ParseDigest("not-a-cid")
	require.Error(t, err)
}
