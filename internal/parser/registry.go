// Package parser turns raw command lines into command values.
//
// Parsing happens in three steps: the Registry splits off the command word
// and picks that command's parse function; Tokenize splits the remaining
// arguments on field prefixes; field parsers validate each raw value into a
// domain type. Every failure is a *Error. Errors from field parsers are
// wrapped so the user always sees the usage of the command they typed.
package parser

import (
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/pkordes/recruittrack/internal/command"
)

// ParseFunc builds a command from the arguments that followed its word. The
// arguments keep their leading whitespace.
type ParseFunc func(args string) (command.Command, error)

// Registry maps command words to their parse functions.
type Registry struct {
	parsers map[string]ParseFunc
}

// NewRegistry returns a registry holding every built-in command.
func NewRegistry() *Registry {
	return &Registry{parsers: map[string]ParseFunc{
		command.WordAdd:        parseAdd,
		command.WordEdit:       parseEdit,
		command.WordDelete:     parseDelete,
		command.WordFind:       parseFind,
		command.WordList:       noArgs(command.List{}),
		command.WordAddTags:    parseAddTags,
		command.WordRemoveTags: parseRemoveTags,
		command.WordRemoveTag:  parseRemoveTag,
		command.WordSort:       noArgs(command.Sort{}),
		command.WordClear:      noArgs(command.Clear{}),
		command.WordHelp:       noArgs(command.Help{}),
		command.WordExit:       noArgs(command.Exit{}),
	}}
}

// Parse parses one line of user input.
func (r *Registry) Parse(line string) (command.Command, error) {
	word, args := SplitCommandWord(line)
	if word == "" {
		return nil, &Error{Message: MessageInvalidCommandFormat, Usage: command.UsageHelp}
	}
	parse, ok := r.parsers[word]
	if !ok {
		return nil, &Error{Message: MessageUnknownCommand}
	}
	return parse(args)
}

// Words returns the registered command words in sorted order.
func (r *Registry) Words() []string {
	return slices.Sorted(maps.Keys(r.parsers))
}

// SplitCommandWord returns the first whitespace-delimited token of line and
// everything after it, leading whitespace included.
func SplitCommandWord(line string) (word, args string) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], line[i:]
}

// noArgs returns a parse function that ignores its arguments.
func noArgs(c command.Command) ParseFunc {
	return func(string) (command.Command, error) { return c, nil }
}
