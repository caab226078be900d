// Package metadata builds, validates and encodes typed metadata addresses.
//
// An address is a key byte naming its kind, a 16-byte primary UUID and, for
// sessions, records and record specifications, a second 16-byte component.
// Its text form is bech32 with the kind's prefix as the human-readable part.
// All operations are pure; Address values are immutable and safe to share.
package metadata

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"xdao.co/metaddr/bech32"
)

// Address is an immutable, validated metadata address.
//
// Addresses are comparable with == and usable as map keys; equality is
// byte-for-byte. The zero value is the empty address.
type Address struct {
	raw string
}

func build(t Type, primary uuid.UUID, secondary []byte) Address {
	b := make([]byte, 0, t.Size())
	b = append(b, t.Key())
	b = append(b, primary[:]...)
	b = append(b, secondary...)
	return Address{raw: string(b)}
}

// ForScope returns the address of a scope.
func ForScope(scope uuid.UUID) Address {
	return build(TypeScope, scope, nil)
}

// ForSession returns the address of a session within a scope.
func ForSession(scope, session uuid.UUID) Address {
	return build(TypeSession, scope, session[:])
}

// ForRecord returns the address of the named record within a scope.
func ForRecord(scope uuid.UUID, name string) (Address, error) {
	h, err := HashName(name)
	if err != nil {
		return Address{}, err
	}
	return build(TypeRecord, scope, h), nil
}

// ForScopeSpecification returns the address of a scope specification.
func ForScopeSpecification(spec uuid.UUID) Address {
	return build(TypeScopeSpecification, spec, nil)
}

// ForContractSpecification returns the address of a contract specification.
func ForContractSpecification(spec uuid.UUID) Address {
	return build(TypeContractSpecification, spec, nil)
}

// ForRecordSpecification returns the address of the named record
// specification within a contract specification.
func ForRecordSpecification(contractSpec uuid.UUID, name string) (Address, error) {
	h, err := HashName(name)
	if err != nil {
		return Address{}, err
	}
	return build(TypeRecordSpecification, contractSpec, h), nil
}

// Params names the components of an address for New.
type Params struct {
	Type    Type
	Primary uuid.UUID
	// Secondary is the session UUID; only sessions use it.
	Secondary uuid.UUID
	// Name is hashed for records and record specifications.
	Name string
}

// New dispatches to the constructor for p.Type.
func New(p Params) (Address, error) {
	switch p.Type {
	case TypeScope:
		return ForScope(p.Primary), nil
	case TypeSession:
		return ForSession(p.Primary, p.Secondary), nil
	case TypeRecord:
		return ForRecord(p.Primary, p.Name)
	case TypeContractSpecification:
		return ForContractSpecification(p.Primary), nil
	case TypeScopeSpecification:
		return ForScopeSpecification(p.Primary), nil
	case TypeRecordSpecification:
		return ForRecordSpecification(p.Primary, p.Name)
	default:
		return Address{}, newError(KindInvalidArgument, "MDADDR-TYPE-003", fmt.Sprintf("unknown address type %d", uint8(p.Type)))
	}
}

// UUIDFromBytes reads a raw 16-byte big-endian UUID.
func UUIDFromBytes(b []byte) (uuid.UUID, error) {
	u, err := uuid.FromBytes(b)
	if err != nil {
		return uuid.Nil, wrapError(KindInvalidArgument, "MDADDR-UUID-001",
			fmt.Sprintf("invalid uuid bytes: expected %d, actual %d", uuidLen, len(b)), err)
	}
	return u, nil
}

// ParseUUID parses the textual forms accepted by github.com/google/uuid.
func ParseUUID(s string) (uuid.UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, wrapError(KindInvalidArgument, "MDADDR-UUID-002", fmt.Sprintf("invalid uuid %q: %v", s, err), err)
	}
	return u, nil
}

// FromBytes validates bz and returns the address it encodes. bz is copied.
func FromBytes(bz []byte) (Address, error) {
	if _, err := VerifyFormat(bz); err != nil {
		return Address{}, err
	}
	return Address{raw: string(bz)}, nil
}

// FromBech32 decodes s and validates the payload layout and its prefix.
//
// Text that is not valid bech32 fails with KindFormat; a payload with an
// unknown key or the wrong length, or a prefix that does not match the key,
// fails with KindInvalidArgument.
func FromBech32(s string) (Address, error) {
	hrp, bz, err := bech32.Decode(s)
	if err != nil {
		return Address{}, wrapError(KindFormat, "MDADDR-FMT-001", fmt.Sprintf("invalid bech32 address: %v", err), err)
	}
	t, err := VerifyFormat(bz)
	if err != nil {
		return Address{}, err
	}
	if hrp != t.Prefix() {
		return Address{}, newError(KindInvalidArgument, "MDADDR-HRP-001",
			fmt.Sprintf("incorrect hrp: expected %s, actual %s", t.Prefix(), hrp))
	}
	return Address{raw: string(bz)}, nil
}

// Key returns the key byte, or 0xff for the empty address.
func (a Address) Key() byte {
	if a.raw == "" {
		return TypeUnknown.Key()
	}
	return a.raw[0]
}

// Type returns the kind of a, or TypeUnknown for the empty address.
func (a Address) Type() Type {
	if a.raw == "" {
		return TypeUnknown
	}
	t, _ := TypeForKey(a.raw[0])
	return t
}

// Prefix returns the bech32 human-readable part for a's kind.
func (a Address) Prefix() string { return a.Type().Prefix() }

// Is reports whether a is of type t.
func (a Address) Is(t Type) bool { return !a.Empty() && a.Type() == t }

// Empty reports whether a is the zero address.
func (a Address) Empty() bool { return a.raw == "" }

// Equal reports whether a and o hold the same bytes.
func (a Address) Equal(o Address) bool { return a.raw == o.raw }

// Compare orders addresses by their raw bytes.
func (a Address) Compare(o Address) int { return strings.Compare(a.raw, o.raw) }

// Bytes returns a copy of the raw address bytes.
func (a Address) Bytes() []byte { return []byte(a.raw) }

// PrimaryUUID returns bytes 1..17 as a UUID, or uuid.Nil for the empty address.
func (a Address) PrimaryUUID() uuid.UUID {
	var u uuid.UUID
	if len(a.raw) < SingleSize {
		return u
	}
	copy(u[:], a.raw[1:SingleSize])
	return u
}

// SecondaryBytes returns a copy of everything after the primary UUID.
// It is empty for single-component kinds.
func (a Address) SecondaryBytes() []byte {
	if len(a.raw) <= SingleSize {
		return []byte{}
	}
	return []byte(a.raw[SingleSize:])
}

// String returns the bech32 form of a, or "" for the empty address.
func (a Address) String() string {
	if a.raw == "" {
		return ""
	}
	s, err := bech32.Encode(a.Prefix(), []byte(a.raw))
	if err != nil {
		return ""
	}
	return s
}

func (a Address) requireType(op string, allowed ...Type) error {
	t := a.Type()
	for _, want := range allowed {
		if t == want {
			return nil
		}
	}
	return newError(KindInvalidArgument, "MDADDR-TYPE-001", fmt.Sprintf("%s: not applicable to %s address", op, t))
}

// SecondaryUUID returns the session UUID of a session address.
func (a Address) SecondaryUUID() (uuid.UUID, error) {
	if err := a.requireType("secondary uuid", TypeSession); err != nil {
		return uuid.Nil, err
	}
	var u uuid.UUID
	copy(u[:], a.raw[SingleSize:])
	return u, nil
}

// NameHash returns the 16-byte name hash of a record or record
// specification address.
func (a Address) NameHash() ([]byte, error) {
	if err := a.requireType("name hash", TypeRecord, TypeRecordSpecification); err != nil {
		return nil, err
	}
	return a.SecondaryBytes(), nil
}

// ScopeUUID returns the scope UUID of a scope, session or record address.
func (a Address) ScopeUUID() (uuid.UUID, error) {
	if err := a.requireType("scope uuid", TypeScope, TypeSession, TypeRecord); err != nil {
		return uuid.Nil, err
	}
	return a.PrimaryUUID(), nil
}

// ContractSpecUUID returns the contract specification UUID of a contract
// specification or record specification address.
func (a Address) ContractSpecUUID() (uuid.UUID, error) {
	if err := a.requireType("contract specification uuid", TypeContractSpecification, TypeRecordSpecification); err != nil {
		return uuid.Nil, err
	}
	return a.PrimaryUUID(), nil
}

// ScopeSpecUUID returns the UUID of a scope specification address.
func (a Address) ScopeSpecUUID() (uuid.UUID, error) {
	if err := a.requireType("scope specification uuid", TypeScopeSpecification); err != nil {
		return uuid.Nil, err
	}
	return a.PrimaryUUID(), nil
}
