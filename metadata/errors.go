package metadata

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind/RuleID rather than matching error strings.
type Kind string

const (
	// KindFormat marks malformed text: bad bech32, bad hex, bad base64.
	KindFormat Kind = "FormatError"
	// KindInvalidArgument marks well-formed input that does not describe a
	// valid address: unknown key, wrong length, prefix mismatch, blank name.
	KindInvalidArgument Kind = "InvalidArgument"
)

// ErrorDomain is reported in the ErrorInfo detail of gRPC statuses.
const ErrorDomain = "metadata.address"

// Error is the package's structured error type.
//
// RuleID is a stable identifier (e.g., MDADDR-KEY-001, MDADDR-LEN-002)
// that names the violated rule.
//
// Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// GRPCStatus lets status.FromError and status.Code recover an
// InvalidArgument status carrying the rule ID and kind as ErrorInfo.
func (e *Error) GRPCStatus() *status.Status {
	st := status.New(codes.InvalidArgument, e.Error())
	if e == nil {
		return st
	}
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   e.RuleID,
		Domain:   ErrorDomain,
		Metadata: map[string]string{"kind": string(e.Kind)},
	})
	if err != nil {
		return st
	}
	return detailed
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
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
