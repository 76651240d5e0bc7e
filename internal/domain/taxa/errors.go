package taxa

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies catalog failures. Codes double as the HTTP error code.
type ErrorCode string

const (
	CodeNotFound         ErrorCode = "not_found"
	CodeValidation       ErrorCode = "validation_error"
	CodeDataIntegrity    ErrorCode = "data_integrity_error"
	CodeStoreUnavailable ErrorCode = "store_unavailable"
)

// Sentinels for errors.Is. Any *Error carrying the same code matches.
var (
	ErrNotFound         error = &Error{Code: CodeNotFound}
	ErrValidation       error = &Error{Code: CodeValidation}
	ErrDataIntegrity    error = &Error{Code: CodeDataIntegrity}
	ErrStoreUnavailable error = &Error{Code: CodeStoreUnavailable}
)

// Error is the canonical catalog error wrapper.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code && t.Op == "" && t.Message == "" && t.Cause == nil
}

// NewError builds a catalog error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

func NotFoundError(op, msg string) error { return NewError(CodeNotFound, op, msg, nil) }

func ValidationError(op, msg string) error { return NewError(CodeValidation, op, msg, nil) }

func IntegrityError(op, msg string) error { return NewError(CodeDataIntegrity, op, msg, nil) }

// UnavailableError reports a backing-store failure. The cause is kept for logs.
func UnavailableError(op string, cause error) error {
	msg := "store unavailable"
	if cause != nil {
		msg = cause.Error()
	}
	return NewError(CodeStoreUnavailable, op, msg, cause)
}

// CodeOf extracts the error code when available.
func CodeOf(err error) ErrorCode {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Code
}

// MessageOf returns the human readable part of a catalog error, falling back
// to err.Error() for foreign errors.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	return err.Error()
}
