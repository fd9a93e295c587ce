package command

import (
	"fmt"
	"strings"
)

const (
	WordExit  = "exit"
	UsageExit = WordExit + ": Saves all changes and exits."

	MessageExitAcknowledgement = "Exiting RecruitTrack as requested ..."
)

// Exit ends the session. Persisting pending changes is the host's job.
type Exit struct{}

func (Exit) Execute(Model) (Result, error) {
	return Result{Message: MessageExitAcknowledgement, Exit: true}, nil
}

func (Exit) String() string { return "command.Exit{}" }

const (
	WordClear  = "clear"
	UsageClear = WordClear + ": Deletes every person in the contact list."

	MessageClearSuccess = "Contact list has been cleared!"
)

// Clear empties the store.
type Clear struct{}

func (Clear) Execute(m Model) (Result, error) {
	m.Clear()
	return Result{Message: MessageClearSuccess}, nil
}

func (Clear) String() string { return "command.Clear{}" }

const (
	WordSort  = "sort"
	UsageSort = WordSort + ": Sorts the displayed list by name, switching between ascending and descending order " +
		"each time it is used."

	MessageSortSuccess = "Contacts are now sorted by name in %s order."
)

// Sort flips the orientation of the displayed list. Records are not changed.
type Sort struct{}

func (Sort) Execute(m Model) (Result, error) {
	m.SwitchSorting()
	return Result{Message: fmt.Sprintf(MessageSortSuccess, m.SortOrder())}, nil
}

func (Sort) String() string { return "command.Sort{}" }

const (
	WordList  = "list"
	UsageList = WordList + ": Lists all persons in the contact list."

	MessageListSuccess = "Listed all persons"
)

// List removes any filter from the displayed list.
type List struct{}

func (List) Execute(m Model) (Result, error) {
	m.SetFilter(nil)
	return Result{Message: MessageListSuccess}, nil
}

func (List) String() string { return "command.List{}" }

const (
	WordHelp  = "help"
	UsageHelp = WordHelp + ": Shows the usage of every command."
)

// Help returns the command reference.
type Help struct{}

func (Help) Execute(Model) (Result, error) {
	return Result{Message: Reference(), ShowHelp: true}, nil
}

func (Help) String() string { return "command.Help{}" }

// Reference returns the usage of every command, one block per command.
func Reference() string {
	usages := []string{
		UsageAdd, UsageEdit, UsageDelete, UsageFind, UsageList,
		UsageAddTags, UsageRemoveTags, UsageRemoveTag,
		UsageSort, UsageClear, UsageHelp, UsageExit,
	}
	return strings.Join(usages, "\n\n")
}
