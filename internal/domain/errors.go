package domain

import "errors"

// ErrorKind classifies domain errors so the transport layer can map them to
// HTTP statuses without inspecting messages.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindUpstream
)

// Error is a classified domain error.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NewValidationError creates an error for rejected input.
func NewValidationError(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NewNotFoundError creates an error for a missing resource or an empty
// lookup result.
func NewNotFoundError(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// NewUpstreamError wraps a failure of an external provider.
func NewUpstreamError(msg string, err error) error {
	return &Error{Kind: KindUpstream, Message: msg, Err: err}
}

// KindOf extracts the error kind, defaulting to internal for unclassified
// errors.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
