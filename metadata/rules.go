package metadata

import "fmt"

// Rule is an explicit, named layout rule over raw address bytes.
//
// ID must be stable across versions.
// Apply must be deterministic and side-effect free.
type Rule struct {
	ID    string
	Apply func([]byte) error
}

func (r Rule) apply(bz []byte) error {
	if r.Apply == nil {
		return newError(KindInvalidArgument, "MDADDR-INTERNAL-001", "nil rule Apply")
	}
	return r.Apply(bz)
}

// ValidateRules runs rules in order, returning the first failure.
//
// Rule order is the evaluation order; keep it stable.
func ValidateRules(bz []byte, rules []Rule) error {
	for _, r := range rules {
		if err := r.apply(bz); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRulesAll runs all rules in order, returning every violation in
// rule order.
func ValidateRulesAll(bz []byte, rules []Rule) []error {
	var out []error
	for _, r := range rules {
		if err := r.apply(bz); err != nil {
			out = append(out, err)
		}
	}
	return out
}

// LayoutRules returns the byte-layout rules every address must satisfy:
// a non-empty payload, a known key byte, and the exact length for that key.
func LayoutRules() []Rule {
	return []Rule{
		{ID: "MDADDR-LEN-001", Apply: ruleNotEmpty},
		{ID: "MDADDR-KEY-001", Apply: ruleKnownKey},
		{ID: "MDADDR-LEN-002", Apply: ruleLengthForKey},
	}
}

func ruleNotEmpty(bz []byte) error {
	if len(bz) == 0 {
		return newError(KindInvalidArgument, "MDADDR-LEN-001", "address is empty")
	}
	return nil
}

func ruleKnownKey(bz []byte) error {
	if len(bz) == 0 {
		return nil
	}
	if _, ok := TypeForKey(bz[0]); !ok {
		return newError(KindInvalidArgument, "MDADDR-KEY-001", fmt.Sprintf("invalid metadata address type: 0x%02x", bz[0]))
	}
	return nil
}

func ruleLengthForKey(bz []byte) error {
	if len(bz) == 0 {
		return nil
	}
	t, ok := TypeForKey(bz[0])
	if !ok {
		return nil
	}
	if len(bz) != t.Size() {
		return newError(KindInvalidArgument, "MDADDR-LEN-002",
			fmt.Sprintf("incorrect data length for %s address: expected %d, actual %d", t, t.Size(), len(bz)))
	}
	return nil
}

// VerifyFormat checks bz against LayoutRules and returns its type.
func VerifyFormat(bz []byte) (Type, error) {
	if err := ValidateRules(bz, LayoutRules()); err != nil {
		return TypeUnknown, err
	}
	t, _ := TypeForKey(bz[0])
	return t, nil
}
