package metadata

// Key bytes occupy offset 0 of every address. The values are fixed by the
// external address scheme and do not follow declaration order.
const (
	KeyScope                 byte = 0x00
	KeySession               byte = 0x01
	KeyRecord                byte = 0x02
	KeyContractSpecification byte = 0x03
	KeyScopeSpecification    byte = 0x04
	KeyRecordSpecification   byte = 0x05
)

// Human-readable bech32 prefixes.
const (
	PrefixScope                 = "scope"
	PrefixSession               = "session"
	PrefixRecord                = "record"
	PrefixContractSpecification = "contractspec"
	PrefixScopeSpecification    = "scopespec"
	PrefixRecordSpecification   = "recspec"
)

const (
	uuidLen = 16
	// SingleSize is the length of a key byte followed by one 16-byte component.
	SingleSize = 1 + uuidLen
	// DoubleSize is the length of a key byte followed by two 16-byte components.
	DoubleSize = 1 + 2*uuidLen
)

// Type identifies one of the six address kinds. The zero value is TypeUnknown.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeScope
	TypeSession
	TypeRecord
	TypeContractSpecification
	TypeScopeSpecification
	TypeRecordSpecification
)

type typeInfo struct {
	key    byte
	prefix string
	size   int
	name   string
}

var typeTable = [...]typeInfo{
	TypeUnknown:               {key: 0xff, name: "Unknown"},
	TypeScope:                 {key: KeyScope, prefix: PrefixScope, size: SingleSize, name: "Scope"},
	TypeSession:               {key: KeySession, prefix: PrefixSession, size: DoubleSize, name: "Session"},
	TypeRecord:                {key: KeyRecord, prefix: PrefixRecord, size: DoubleSize, name: "Record"},
	TypeContractSpecification: {key: KeyContractSpecification, prefix: PrefixContractSpecification, size: SingleSize, name: "ContractSpecification"},
	TypeScopeSpecification:    {key: KeyScopeSpecification, prefix: PrefixScopeSpecification, size: SingleSize, name: "ScopeSpecification"},
	TypeRecordSpecification:   {key: KeyRecordSpecification, prefix: PrefixRecordSpecification, size: DoubleSize, name: "RecordSpecification"},
}

// typesByKey is indexed by key byte; unassigned keys map to TypeUnknown.
var typesByKey = func() [256]Type {
	var out [256]Type
	for t := TypeScope; t <= TypeRecordSpecification; t++ {
		out[typeTable[t].key] = t
	}
	return out
}()

// Types lists every known address type in declaration order.
func Types() []Type {
	return []Type{
		TypeScope,
		TypeSession,
		TypeRecord,
		TypeContractSpecification,
		TypeScopeSpecification,
		TypeRecordSpecification,
	}
}

// TypeForKey returns the type whose key byte is k.
func TypeForKey(k byte) (Type, bool) {
	t := typesByKey[k]
	return t, t != TypeUnknown
}

// TypeForPrefix returns the type whose bech32 prefix is p.
func TypeForPrefix(p string) (Type, bool) {
	for _, t := range Types() {
		if typeTable[t].prefix == p {
			return t, true
		}
	}
	return TypeUnknown, false
}

func (t Type) info() typeInfo {
	if int(t) >= len(typeTable) {
		return typeTable[TypeUnknown]
	}
	return typeTable[t]
}

// Valid reports whether t is one of the six known types.
func (t Type) Valid() bool { return t != TypeUnknown && int(t) < len(typeTable) }

// Key returns the key byte, or 0xff for an unknown type.
func (t Type) Key() byte { return t.info().key }

// Prefix returns the bech32 human-readable part, or "" for an unknown type.
func (t Type) Prefix() string { return t.info().prefix }

// Size returns the total encoded length in bytes, or 0 for an unknown type.
func (t Type) Size() int { return t.info().size }

func (t Type) String() string { return t.info().name }

// hasName reports whether the secondary component is a name hash.
func (t Type) hasName() bool {
	return t == TypeRecord || t == TypeRecordSpecification
}
