package handler

import (
	"github.com/cockroachdb/errors"

	"github.com/pkordes/recruittrack/internal/command"
	"github.com/pkordes/recruittrack/internal/parser"
)

// MessageInternalError prefixes failures that are not the user's doing.
const MessageInternalError = "Something went wrong"

type lineKind int

const (
	lineError lineKind = iota
	lineCause
	lineUsage
)

type outputLine struct {
	kind lineKind
	text string
}

// errorLines decides what the user sees for err. A parse error shows its
// message, then the field-level cause if one exists, then the usage. A
// command error shows its message. Anything else is an infrastructure failure.
func errorLines(err error) []outputLine {
	var perr *parser.Error
	if errors.As(err, &perr) {
		lines := []outputLine{{kind: lineError, text: perr.Message}}
		if perr.Err != nil {
			lines = append(lines, outputLine{kind: lineCause, text: perr.Err.Error()})
		}
		if perr.Usage != "" {
			lines = append(lines, outputLine{kind: lineUsage, text: perr.Usage})
		}
		return lines
	}

	var cerr *command.Error
	if errors.As(err, &cerr) {
		return []outputLine{{kind: lineError, text: cerr.Message}}
	}

	return []outputLine{{kind: lineError, text: MessageInternalError + ": " + err.Error()}}
}

// isUserError reports whether err was caused by the input rather than the
// environment.
func isUserError(err error) bool {
	var cerr *command.Error
	return parser.IsParseError(err) || errors.As(err, &cerr)
}
