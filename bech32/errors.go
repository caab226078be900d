package bech32

import "errors"

// Kind is a stable category for programmatic error handling.
//
// Every failure in this package is a FormatError: malformed text, an
// unusable human-readable part, or an invalid bit regrouping.
type Kind string

const (
	KindFormat Kind = "FormatError"
)

// Error is the package's structured error type.
//
// RuleID is a stable identifier (e.g., BECH32-LEN-001, BECH32-SUM-001)
// that names the violated rule. Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func newError(ruleID, msg string) error {
	return &Error{Kind: KindFormat, RuleID: ruleID, Message: msg}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
