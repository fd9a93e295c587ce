package command

import (
	"github.com/cockroachdb/errors"

	"github.com/pkordes/recruittrack/internal/domain"
)

// Kind classifies why a well-formed command could not run.
type Kind int

const (
	InvalidIndex Kind = iota + 1
	NoTagsProvided
	TagNotFound
	DuplicateRecord
	RecordNotFound
)

func (k Kind) String() string {
	switch k {
	case InvalidIndex:
		return "invalid_index"
	case NoTagsProvided:
		return "no_tags_provided"
	case TagNotFound:
		return "tag_not_found"
	case DuplicateRecord:
		return "duplicate_record"
	case RecordNotFound:
		return "record_not_found"
	default:
		return "unknown"
	}
}

// Messages shared by several commands.
const (
	MessageInvalidPersonIndex = "The person index provided is invalid"
	MessageDuplicatePerson    = "This person already exists in the contact list"
	MessagePersonNotFound     = "The person to update is no longer in the contact list"
)

// Error reports a runtime precondition violation. The store is guaranteed
// not to have been changed by the failing command.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is a command *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var cerr *Error
	return errors.As(err, &cerr) && cerr.Kind == kind
}

// fromStoreError converts a store failure into a command error. Errors that
// are neither duplicates nor missing records are store bugs and are returned
// unchanged so they surface loudly.
func fromStoreError(err error, duplicateMessage string) error {
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return &Error{Kind: DuplicateRecord, Message: duplicateMessage, Err: err}
	case errors.Is(err, domain.ErrNotFound):
		return &Error{Kind: RecordNotFound, Message: MessagePersonNotFound, Err: err}
	default:
		return err
	}
}
