// Package bech32 implements the BIP-173 Bech32 text encoding for arbitrary
// byte payloads keyed by a human-readable part (HRP).
//
// Checksums and 5-bit regrouping come from btcutil. This package adds byte
// payloads, HRP normalization and a stable rule ID for every failure.
package bech32

import (
	"fmt"
	"strings"

	btcbech32 "github.com/btcsuite/btcutil/bech32"
)

const (
	// Separator divides the human-readable part from the data part.
	// Decode splits on the last occurrence, so HRPs may themselves contain '1'.
	Separator = '1'

	// ChecksumLength is the number of 5-bit symbols in the checksum.
	ChecksumLength = 6

	// MinLength and MaxLength bound the total length of a string Decode accepts.
	MinLength = 8
	MaxLength = 90

	// MaxHRPLength is the longest human-readable part Encode accepts.
	MaxHRPLength = 83

	minCodepoint = 33
	maxCodepoint = 126

	charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
)

// Encode returns hrp + "1" + the base32 symbols of payload + checksum.
//
// hrp is lowercased before use. It must be 1..83 characters in the printable
// ASCII range [33,126]. Encode does not cap the result; Decode only accepts
// strings up to MaxLength characters.
func Encode(hrp string, payload []byte) (string, error) {
	hrp = strings.ToLower(hrp)
	if err := checkHRP(hrp); err != nil {
		return "", err
	}
	data, err := ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	s, err := btcbech32.Encode(hrp, data)
	if err != nil {
		return "", newError("BECH32-ENC-001", fmt.Sprintf("encode: %v", err))
	}
	return s, nil
}

// Decode splits s at its last separator, verifies the checksum and returns
// the lowercased HRP together with the payload regrouped back into bytes.
//
// Upper-case input is accepted as long as it is not mixed with lower case.
func Decode(s string) (string, []byte, error) {
	if len(s) < MinLength || len(s) > MaxLength {
		return "", nil, newError("BECH32-LEN-001", fmt.Sprintf("invalid bech32 string length %d", len(s)))
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < minCodepoint || c > maxCodepoint {
			return "", nil, newError("BECH32-CHR-001", fmt.Sprintf("invalid character in bech32 string at position %d", i))
		}
	}

	lower := strings.ToLower(s)
	if s != lower && s != strings.ToUpper(s) {
		return "", nil, newError("BECH32-CASE-001", "bech32 string must not be mixed case")
	}

	pos := strings.LastIndexByte(lower, Separator)
	if pos < 1 {
		return "", nil, newError("BECH32-SEP-001", "missing separator or empty human-readable part")
	}
	if len(lower)-pos-1 < ChecksumLength {
		return "", nil, newError("BECH32-DATA-001", "data part shorter than checksum")
	}
	for i := pos + 1; i < len(lower); i++ {
		if strings.IndexByte(charset, lower[i]) < 0 {
			return "", nil, newError("BECH32-CHR-002", fmt.Sprintf("invalid data character %q", lower[i]))
		}
	}

	// Every other structural fault was rejected above.
	hrp, data, err := btcbech32.Decode(lower)
	if err != nil {
		return "", nil, newError("BECH32-SUM-001", "invalid checksum")
	}
	payload, err := ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, payload, nil
}

func checkHRP(hrp string) error {
	if hrp == "" {
		return newError("BECH32-HRP-001", "human-readable part is empty")
	}
	if len(hrp) > MaxHRPLength {
		return newError("BECH32-HRP-002", fmt.Sprintf("human-readable part longer than %d", MaxHRPLength))
	}
	for i := 0; i < len(hrp); i++ {
		if c := hrp[i]; c < minCodepoint || c > maxCodepoint {
			return newError("BECH32-HRP-003", fmt.Sprintf("invalid human-readable part character at position %d", i))
		}
	}
	return nil
}
