package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/yungbote/dinocatalog-backend/internal/domain"
)

const CodeInternal = "internal_error"

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// FromError maps catalog error kinds onto HTTP statuses. An *Error already in
// the chain wins; unknown errors become 500 internal_error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	switch {
	case errors.Is(err, domain.ErrValidation):
		return New(http.StatusUnprocessableEntity, string(domain.CodeValidation), err)
	case errors.Is(err, domain.ErrNotFound):
		return New(http.StatusNotFound, string(domain.CodeNotFound), err)
	case errors.Is(err, domain.ErrStoreUnavailable):
		return New(http.StatusServiceUnavailable, string(domain.CodeStoreUnavailable), err)
	case errors.Is(err, domain.ErrDataIntegrity):
		return New(http.StatusInternalServerError, string(domain.CodeDataIntegrity), err)
	default:
		return New(http.StatusInternalServerError, CodeInternal, err)
	}
}
