package metadata

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unsafe"

	"google.golang.org/protobuf/types/known/wrapperspb"
	"gopkg.in/yaml.v3"
)

// FromHex decodes hex text (an optional 0x prefix is allowed) and validates
// the bytes as FromBytes does.
func FromHex(s string) (Address, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	bz, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, wrapError(KindFormat, "MDADDR-FMT-002", fmt.Sprintf("invalid hex address: %v", err), err)
	}
	return FromBytes(bz)
}

// Hex returns the lowercase hex form of the raw bytes.
func (a Address) Hex() string { return hex.EncodeToString([]byte(a.raw)) }

// MarshalJSON encodes a as its bech32 string.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a bech32 string; "" yields the empty address.
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return wrapError(KindFormat, "MDADDR-FMT-003", fmt.Sprintf("address must be a JSON string: %v", err), err)
	}
	return a.setBech32(s)
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	return a.setBech32(string(text))
}

// MarshalYAML encodes a as its bech32 string.
func (a Address) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// UnmarshalYAML accepts a bech32 scalar; an empty scalar yields the empty address.
func (a *Address) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return wrapError(KindFormat, "MDADDR-FMT-003", fmt.Sprintf("address must be a YAML string: %v", err), err)
	}
	return a.setBech32(s)
}

func (a *Address) setBech32(s string) error {
	if strings.TrimSpace(s) == "" {
		*a = Address{}
		return nil
	}
	parsed, err := FromBech32(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Marshal returns the raw bytes. Together with MarshalTo, Unmarshal and Size
// it lets Address serve as a custom bytes type in protobuf messages.
func (a Address) Marshal() ([]byte, error) {
	return a.Bytes(), nil
}

// MarshalTo copies the raw bytes into data and returns the count written.
func (a *Address) MarshalTo(data []byte) (int, error) {
	if len(data) < len(a.raw) {
		return 0, newError(KindInvalidArgument, "MDADDR-LEN-003",
			fmt.Sprintf("buffer too small: need %d, have %d", len(a.raw), len(data)))
	}
	return copy(data, a.raw), nil
}

// Unmarshal validates data and replaces a. Empty data yields the empty address.
func (a *Address) Unmarshal(data []byte) error {
	if len(data) == 0 {
		*a = Address{}
		return nil
	}
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Size returns the number of raw bytes.
func (a Address) Size() int { return len(a.raw) }

// ToProto wraps the raw bytes for a protobuf bytes field, or returns nil for
// the empty address.
func (a Address) ToProto() *wrapperspb.BytesValue {
	if a.Empty() {
		return nil
	}
	return wrapperspb.Bytes(a.Bytes())
}

// FromProto validates the wrapped bytes. A nil or empty value yields the
// empty address.
func FromProto(v *wrapperspb.BytesValue) (Address, error) {
	if len(v.GetValue()) == 0 {
		return Address{}, nil
	}
	return FromBytes(v.GetValue())
}

// Format implements fmt.Formatter.
//
// %s, %v and %q print the bech32 form; %x, %X and %d print the raw bytes;
// %p prints the address of the raw bytes; %#v prints Go syntax.
func (a Address) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('#') {
			fmt.Fprint(s, a.goString())
			return
		}
		fmt.Fprintf(s, fmt.FormatString(s, verb), a.String())
	case 's', 'q':
		fmt.Fprintf(s, fmt.FormatString(s, verb), a.String())
	case 'x', 'X', 'd':
		fmt.Fprintf(s, fmt.FormatString(s, verb), []byte(a.raw))
	case 'p':
		fmt.Fprintf(s, fmt.FormatString(s, verb), unsafe.StringData(a.raw))
	default:
		fmt.Fprintf(s, "%%!%c(metadata.Address=%s)", verb, a.String())
	}
}

func (a Address) goString() string {
	var sb strings.Builder
	sb.WriteString("metadata.Address{")
	for i := 0; i < len(a.raw); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "0x%x", a.raw[i])
	}
	sb.WriteString("}")
	return sb.String()
}
