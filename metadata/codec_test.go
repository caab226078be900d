package metadata

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"gopkg.in/yaml.v3"

	"xdao.co/metaddr/bech32"
)

func encodeRaw(t *testing.T, hrp string, payload []byte) string {
	t.Helper()
	s, err := bech32.Encode(hrp, payload)
	require.NoError(t, err)
	return s
}

type holder struct {
	Addr  Address   `json:"addr" yaml:"addr"`
	Empty Address   `json:"empty" yaml:"empty"`
	List  []Address `json:"list,omitempty" yaml:"list,omitempty"`
}

func TestJSON_RoundTrip(t *testing.T) {
	in := holder{Addr: ForScope(scopeUUID), List: allKinds(t)}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"addr":"scope1qzge0zaztu65tx5x5llv5xc9ztsqxlkwel"`)
	assert.Contains(t, string(b), `"empty":""`)

	var out holder
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestJSON_MapKeys(t *testing.T) {
	in := map[Address]string{ForScope(scopeUUID): "scope"}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"scope1qzge0zaztu65tx5x5llv5xc9ztsqxlkwel":"scope"}`, string(b))

	var out map[Address]string
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestJSON_Rejects(t *testing.T) {
	var a Address
	err := json.Unmarshal([]byte(`42`), &a)
	require.Error(t, err)
	assert.Equal(t, "MDADDR-FMT-003", RuleID(err))

	err = json.Unmarshal([]byte(`"scope1qzge0zaztu65tx5x5llv5xc9ztsqxlkweq"`), &a)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindFormat))

	prefixSwap := encodeRaw(t, PrefixRecord, ForScope(scopeUUID).Bytes())
	err = json.Unmarshal([]byte(`"`+prefixSwap+`"`), &a)
	require.Error(t, err)
	assert.Equal(t, "MDADDR-HRP-001", RuleID(err))
}

func TestYAML_RoundTrip(t *testing.T) {
	in := holder{Addr: ForSession(scopeUUID, sessionUUID), List: allKinds(t)}
	b, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(b), "addr: session1qxge0zaztu65tx5x5llv5xc9zts9sqlch3sxwn44j50jzgt8rshvqyfrjcr")

	var out holder
	require.NoError(t, yaml.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestYAML_Rejects(t *testing.T) {
	var out holder
	err := yaml.Unmarshal([]byte("addr: [1, 2]\n"), &out)
	require.Error(t, err)

	err = yaml.Unmarshal([]byte("addr: scope1qzge0zaztu65tx5x5llv5xc9ztsqxlkweq\n"), &out)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindFormat))
}

func TestText_RoundTrip(t *testing.T) {
	a := ForContractSpecification(contractSpecUUID)
	txt, err := a.MarshalText()
	require.NoError(t, err)

	var b Address
	require.NoError(t, b.UnmarshalText(txt))
	assert.Equal(t, a, b)

	require.NoError(t, b.UnmarshalText(nil))
	assert.True(t, b.Empty())
}

func TestProtoCustomType(t *testing.T) {
	a := ForSession(scopeUUID, sessionUUID)
	bz, err := a.Marshal()
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), bz)
	assert.Equal(t, 33, a.Size())

	buf := make([]byte, a.Size())
	n, err := a.MarshalTo(buf)
	require.NoError(t, err)
	assert.Equal(t, 33, n)
	assert.Equal(t, bz, buf)

	_, err = a.MarshalTo(make([]byte, 10))
	assert.Equal(t, "MDADDR-LEN-003", RuleID(err))

	var b Address
	require.NoError(t, b.Unmarshal(bz))
	assert.Equal(t, a, b)

	require.NoError(t, b.Unmarshal(nil))
	assert.True(t, b.Empty())

	err = b.Unmarshal([]byte{0x09, 0x01})
	assert.Equal(t, "MDADDR-KEY-001", RuleID(err))
}

func TestProtoWrapper(t *testing.T) {
	a, err := ForRecord(scopeUUID, "recordname")
	require.NoError(t, err)

	v := a.ToProto()
	require.NotNil(t, v)
	assert.Equal(t, a.Bytes(), v.GetValue())

	got, err := FromProto(v)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	assert.Nil(t, Address{}.ToProto())
	got, err = FromProto(nil)
	require.NoError(t, err)
	assert.True(t, got.Empty())

	_, err = FromProto(wrapperspb.Bytes([]byte{0x00, 0x01}))
	assert.Equal(t, "MDADDR-LEN-002", RuleID(err))
}

func TestFromHex(t *testing.T) {
	want := ForScope(scopeUUID)
	for _, in := range []string{
		"0091978ba25f35459a86a7feca1b0512e0",
		"0x0091978ba25f35459a86a7feca1b0512e0",
		"0091978BA25F35459A86A7FECA1B0512E0",
	} {
		got, err := FromHex(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := FromHex("zz")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindFormat))
	assert.Equal(t, "MDADDR-FMT-002", RuleID(err))

	_, err = FromHex("")
	assert.Equal(t, "MDADDR-LEN-001", RuleID(err))
}

func TestFormat(t *testing.T) {
	a := ForScope(scopeUUID)
	s := a.String()

	assert.Equal(t, s, fmt.Sprintf("%s", a))
	assert.Equal(t, s, fmt.Sprintf("%v", a))
	assert.Equal(t, s, fmt.Sprint(a))
	assert.Equal(t, `"`+s+`"`, fmt.Sprintf("%q", a))
	assert.Equal(t, "0091978ba25f35459a86a7feca1b0512e0", fmt.Sprintf("%x", a))
	assert.Equal(t, "0091978BA25F35459A86A7FECA1B0512E0", fmt.Sprintf("%X", a))
	assert.Equal(t, fmt.Sprintf("%d", a.Bytes()), fmt.Sprintf("%d", a))
	assert.Equal(t, fmt.Sprintf("%45s", s), fmt.Sprintf("%45s", a))
	assert.Equal(t, "%!t(metadata.Address="+s+")", fmt.Sprintf("%t", a))

	ptr := fmt.Sprintf("%p", a)
	assert.Regexp(t, `^0x[0-9a-f]+$`, ptr)
	assert.NotEqual(t, "0x0", ptr)
	b := a
	assert.Equal(t, ptr, fmt.Sprintf("%p", b))
	assert.NotContains(t, ptr, "%!p")

	gs := fmt.Sprintf("%#v", a)
	assert.Contains(t, gs, "metadata.Address{0x0, 0x91, 0x97")
	assert.Equal(t, "metadata.Address{}", fmt.Sprintf("%#v", Address{}))
	assert.Equal(t, "", fmt.Sprintf("%s", Address{}))
}
