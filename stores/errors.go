// Package stores holds the failure taxonomy shared by every store. Store
// operations return plain errors; callers branch on the kind predicates
// below rather than matching message text. Persistence failures never show
// up here — the storage layer absorbs them.
package stores

import (
	"errors"
	"fmt"
)

// Kind classifies a store failure.
type Kind string

const (
	KindValidation Kind = "validation" // missing or malformed input
	KindConflict   Kind = "conflict"   // duplicate username/email
	KindNotFound   Kind = "not_found"  // unknown account or email
	KindAuth       Kind = "auth"       // wrong password
)

// Error is the one error type stores produce.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// Validationf builds a validation error.
func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a conflict error.
func Conflictf(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found error.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Authf builds an authentication error.
func Authf(format string, args ...any) error {
	return &Error{Kind: KindAuth, Message: fmt.Sprintf(format, args...)}
}

func is(err error, kind Kind) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == kind
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool { return is(err, KindValidation) }

// IsConflict reports whether err is a duplicate-account failure.
func IsConflict(err error) bool { return is(err, KindConflict) }

// IsNotFound reports whether err is an unknown-account failure.
func IsNotFound(err error) bool { return is(err, KindNotFound) }

// IsAuth reports whether err is a wrong-password failure.
func IsAuth(err error) bool { return is(err, KindAuth) }
