package usecase

import (
	"errors"
	"fmt"

	"finflix/domain/repository"
	"finflix/infrastructure/logger"
)

type ErrorKind string

const (
	KindValidation   ErrorKind = "ValidationFailed"
	KindNotFound     ErrorKind = "NotFound"
	KindConflict     ErrorKind = "Conflict"
	KindInvalidState ErrorKind = "InvalidState"
	KindUnauthorized ErrorKind = "Unauthorized"
	KindInternal     ErrorKind = "InternalFailure"
)

// Error is returned by every use case. Message is safe to show to clients;
// Err keeps the underlying cause for logs only.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) error     { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) error     { return &Error{Kind: KindConflict, Message: msg} }
func InvalidState(msg string) error { return &Error{Kind: KindInvalidState, Message: msg} }
func Validation(msg string) error   { return &Error{Kind: KindValidation, Message: msg} }
func Unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Message: msg} }

func Internal(err error) error {
	return &Error{Kind: KindInternal, Message: "Server error", Err: err}
}

// KindOf reports the kind of err. Errors that did not come from a use case
// count as internal failures.
func KindOf(err error) ErrorKind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return KindInternal
}

// MessageOf returns the client-facing message of err.
func MessageOf(err error) string {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Message
	}
	return "Server error"
}

// lookupErr turns a repository lookup failure into NotFound or Internal.
func lookupErr(err error, notFoundMsg string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return NotFound(notFoundMsg)
	}
	logger.GetLogger().WithField("error", err).Error("Error while fetching data")
	return Internal(err)
}

// writeErr turns a repository write failure into a use case error.
func writeErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrVersionConflict):
		return &Error{Kind: KindConflict, Message: "Resource was modified concurrently, retry the request", Err: err}
	case errors.Is(err, repository.ErrDuplicate):
		return &Error{Kind: KindConflict, Message: "Resource already exists", Err: err}
	case errors.Is(err, repository.ErrNotFound):
		return &Error{Kind: KindNotFound, Message: "Resource not found", Err: err}
	}
	return Internal(err)
}
