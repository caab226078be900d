package model

import (
	"errors"
	"fmt"

	"xdao.co/metaddr/metadata"
)

type ErrorCode string

const (
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"
	ErrFormat          ErrorCode = "FORMAT_ERROR"
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrInvalidCID      ErrorCode = "INVALID_CID"
	ErrInternal        ErrorCode = "INTERNAL"
)

// CodedError is a stable error with a machine-readable code and a human message.
type CodedError struct {
	Code    ErrorCode `json:"code"`
	RuleID  string    `json:"ruleID,omitempty"`
	Message string    `json:"message"`
}

func (e *CodedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

// ErrorFrom projects err onto a CodedError, keeping the taxonomy label of
// structured address errors. A CodedError passes through unchanged.
func ErrorFrom(err error) *CodedError {
	if err == nil {
		return nil
	}
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce
	}
	var me *metadata.Error
	if errors.As(err, &me) {
		code := ErrInvalidArgument
		switch {
		case me.RuleID == "MDADDR-CID-001":
			code = ErrInvalidCID
		case me.Kind == metadata.KindFormat:
			code = ErrFormat
		}
		return &CodedError{Code: code, RuleID: me.RuleID, Message: me.Message}
	}
	return &CodedError{Code: ErrInternal, Message: err.Error()}
}
