package parser

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Messages for input that cannot be matched to any command.
const (
	MessageInvalidCommandFormat = "Invalid command format!"
	MessageUnknownCommand       = "Unknown command"
	MessageInputTooLong         = "Input is longer than %d characters"
)

// Error reports malformed input. Nothing has been executed when it is
// returned, so the user can simply fix the input and retry.
type Error struct {
	// Message describes what is wrong.
	Message string
	// Usage is the offending command's usage string. Empty for errors raised
	// before a command was identified and for field-level errors.
	Usage string
	// Err is the lower-level parse error this one wraps, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Usage == "" {
		return e.Message
	}
	return e.Message + "\n" + e.Usage
}

func (e *Error) Unwrap() error { return e.Err }

// IsParseError reports whether err is, or wraps, a parser *Error.
func IsParseError(err error) bool {
	var perr *Error
	return errors.As(err, &perr)
}

// invalidFormat wraps cause into a command-scoped error carrying usage.
func invalidFormat(usage string, cause error) *Error {
	return &Error{Message: MessageInvalidCommandFormat, Usage: usage, Err: cause}
}

// fieldError turns a domain validation failure into a parse error whose
// message is the constraint description.
func fieldError(err error) *Error {
	return &Error{Message: err.Error(), Err: err}
}

// InputTooLong is returned when a command line exceeds the configured limit.
func InputTooLong(limit int) *Error {
	return &Error{Message: fmt.Sprintf(MessageInputTooLong, limit)}
}
