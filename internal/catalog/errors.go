package catalog

import (
	"fmt"
	"net/http"

	"github.com/mrlokans/catalog/internal/validation"
)

// ErrorKind classifies a catalog failure.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindConflict   ErrorKind = "conflict"
	KindNotFound   ErrorKind = "not_found"
	KindInternal   ErrorKind = "internal"
)

// Error is the only error type the Service returns.
type Error struct {
	Kind    ErrorKind
	Message string
	Fields  []validation.FieldError
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// StatusCode maps the kind to an HTTP status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func validationError(err error) *Error {
	if f, ok := err.(*validation.Failure); ok {
		return &Error{Kind: KindValidation, Message: "validation failed", Fields: f.Errors}
	}
	return internalError(err)
}

func conflictError(title, author string) *Error {
	return &Error{
		Kind:    KindConflict,
		Message: fmt.Sprintf("Book with the title %s and author %s already exists.", title, author),
	}
}

func notFoundError(id uint) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("Book with id %d not found.", id),
	}
}

func internalError(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", cause: err}
}
