package errs

import (
	"errors"
	"fmt"
)

var (
	Unauthenticated  = NewUnauthenticatedError("unauthenticated")
	PermissionDenied = NewPermissionDeniedError("permission denied")
)

type Error struct {
	Kind    Kind
	Message string
	Field   *string
}

type Kind string

const (
	KindInvalidArgument    Kind = "invalid_argument"
	KindNotFound           Kind = "not_found"
	KindAlreadyExists      Kind = "already_exists"
	KindPermissionDenied   Kind = "permission_denied"
	KindUnauthenticated    Kind = "unauthenticated"
	KindFailedPrecondition Kind = "failed_precondition"
)

// NewInvalidArgumentError builds a bad request error.
// An empty field means the error is not tied to a single input field.
func NewInvalidArgumentError(field, message string) *Error {
	e := &Error{
		Kind:    KindInvalidArgument,
		Message: message,
	}
	if field != "" {
		e.Field = &field
	}
	return e
}

func NewNotFoundError(message string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: message,
	}
}

func NewAlreadyExistsError(field, message string) *Error {
	e := &Error{
		Kind:    KindAlreadyExists,
		Message: message,
	}
	if field != "" {
		e.Field = &field
	}
	return e
}

func NewPermissionDeniedError(message string) *Error {
	return &Error{
		Kind:    KindPermissionDenied,
		Message: message,
	}
}

func NewUnauthenticatedError(message string) *Error {
	return &Error{
		Kind:    KindUnauthenticated,
		Message: message,
	}
}

// NewFailedPreconditionError reports a state machine guard failure,
// like accepting a match request that was never offered.
func NewFailedPreconditionError(message string) *Error {
	return &Error{
		Kind:    KindFailedPrecondition,
		Message: message,
	}
}

func (e *Error) Error() string {
	if e.Field != nil {
		return fmt.Sprintf("%s (field: %s): %s", e.Kind, *e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is reports whether any error in err's chain is an [*Error] of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func IsNotFound(err error) bool {
	return Is(err, KindNotFound)
}

func IsPermissionDenied(err error) bool {
	return Is(err, KindPermissionDenied)
}

func IsFailedPrecondition(err error) bool {
	return Is(err, KindFailedPrecondition)
}
