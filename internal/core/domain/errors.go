package domain

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrNotFound             = errors.New("not found")
	ErrFetchFailed          = errors.New("fetch failed")
	ErrAuxiliaryFetchFailed = errors.New("auxiliary fetch failed")
	ErrUnauthenticated      = errors.New("not authenticated")
)

// Error is a store failure with a message fit for display.
// It matches both its Kind and its Cause under errors.Is.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func NewError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Cause}
}

// Message returns the display message for err, or "" for nil.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}

	return err.Error()
}
