package bech32

import (
	"fmt"

	btcbech32 "github.com/btcsuite/btcutil/bech32"
)

// ConvertBits regroups data, read as a continuous stream of fromBits-wide
// symbols, into toBits-wide symbols.
//
// With pad, leftover bits are flushed left-justified into a final symbol.
// Without pad, an incomplete trailing group must be at most 4 bits and all zero.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, newError("BECH32-BITS-003", fmt.Sprintf("unsupported bit group sizes %d -> %d", fromBits, toBits))
	}
	for _, b := range data {
		if uint32(b)>>fromBits != 0 {
			return nil, newError("BECH32-BITS-001", fmt.Sprintf("input value %#x exceeds %d bits", b, fromBits))
		}
	}
	out, err := btcbech32.ConvertBits(data, fromBits, toBits, pad)
	if err != nil {
		return nil, newError("BECH32-BITS-002", "invalid padding in bit regrouping")
	}
	return out, nil
}
