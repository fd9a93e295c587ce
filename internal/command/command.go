// Package command implements the executable commands of RecruitTrack.
// A Command is a plain value built by the parser; Execute validates its
// preconditions against the model, mutates it at most once, and reports the
// outcome as a Result. Precondition failures are *Error values, never parse
// errors: by the time a command exists its input was well-formed.
package command

import (
	"github.com/pkordes/recruittrack/internal/domain"
	"github.com/pkordes/recruittrack/internal/store"
)

// Model is the part of the record store that commands operate on.
// *store.Store satisfies it.
type Model interface {
	Contains(p domain.Person) bool
	Add(p domain.Person) error
	SetPerson(target, edited domain.Person) error
	Remove(p domain.Person) error
	Clear()
	View() []domain.Person
	SetFilter(pred domain.Predicate)
	SwitchSorting()
	SortOrder() store.SortOrder
}

var _ Model = (*store.Store)(nil)

// Command is one parsed user instruction.
type Command interface {
	Execute(m Model) (Result, error)
}

// Result is the outcome of a successful command.
type Result struct {
	// Message is shown to the user. It may span several lines.
	Message string
	// Exit asks the host to persist state and stop reading commands.
	Exit bool
	// ShowHelp asks the host to display the command reference.
	ShowHelp bool
}

// personAt resolves idx against the displayed list.
func personAt(m Model, idx domain.Index) (domain.Person, error) {
	view := m.View()
	if idx.ZeroBased() >= len(view) {
		return domain.Person{}, newError(InvalidIndex, MessageInvalidPersonIndex)
	}
	return view[idx.ZeroBased()], nil
}
