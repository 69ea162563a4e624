// Package apperr defines the error taxonomy shared by all services. Every
// failure a service reports carries a kind and a human-readable message; the
// HTTP boundary maps kinds to status codes and nothing below it knows about
// transport.
package apperr

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	KindBadRequest
	KindForbidden
	KindConflict
	KindNotFound
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func BadRequest(message string) error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func Forbidden(message string) error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Conflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// KindOf extracts the kind from err, or KindUnknown for errors that did not
// originate in this taxonomy (storage failures and the like).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsBadRequest(err error) bool { return KindOf(err) == KindBadRequest }
func IsForbidden(err error) bool  { return KindOf(err) == KindForbidden }
func IsConflict(err error) bool   { return KindOf(err) == KindConflict }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
