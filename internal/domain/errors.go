package domain

import "github.com/cockroachdb/errors"

// ErrNotFound is returned when a person that should be in the store is not.
// Commands map it to a RecordNotFound command error.
var ErrNotFound = errors.New("not found")

// ErrValidation marks errors produced when a raw value fails a value type's
// format contract. The error message is the constraint description shown to
// the user.
var ErrValidation = errors.New("validation error")

// ErrDuplicate is returned when an add or replace would leave two persons in
// the store that satisfy the configured identity predicate.
var ErrDuplicate = errors.New("duplicate person")

// validationError returns an error whose message is msg and which matches
// ErrValidation under errors.Is.
func validationError(msg string) error {
	return errors.Mark(errors.New(msg), ErrValidation)
}
