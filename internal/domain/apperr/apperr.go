package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies every failure the API can surface.
//
// Validation kinds (InvalidSymbol..MissingDateColumn) map to 400,
// ProviderUnavailable to 502, ResolutionFailed to 404.
type Kind int

const (
	InvalidSymbol Kind = iota
	InvalidDate
	InvalidRange
	NoDataFound
	EmptyPayload
	MissingRequiredFields
	MissingDateColumn
	ProviderUnavailable
	ResolutionFailed
)

// Error is the single error type crossing package boundaries.
// Handlers read Kind to choose a status code; the message echoes
// the offending input so clients can self-diagnose.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an Error without a wrapped cause.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error that carries the underlying cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// Status maps the error kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case ProviderUnavailable:
		return http.StatusBadGateway
	case ResolutionFailed:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// StatusOf resolves the HTTP status for an arbitrary error.
// Unclassified errors are treated as internal.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status()
	}
	return http.StatusInternalServerError
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
