// Package middleware provides Executor middleware for RecruitTrack sessions.
// A middleware has the shape func(service.Executor) service.Executor and is
// composed with Chain.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/pkordes/recruittrack/internal/command"
	"github.com/pkordes/recruittrack/internal/parser"
	"github.com/pkordes/recruittrack/internal/service"
)

// Outcome values written by NewSlogLogger.
const (
	OutcomeOK           = "ok"
	OutcomeParseError   = "parse_error"
	OutcomeCommandError = "command_error"
	OutcomeError        = "error"
)

// NewSlogLogger returns a middleware that logs each executed line as a
// structured JSON line via the provided slog.Logger. It captures the command
// word, the outcome, the exit flag and the duration. Argument text is never
// logged since it carries contact details.
func NewSlogLogger(log *slog.Logger) func(service.Executor) service.Executor {
	return func(next service.Executor) service.Executor {
		return service.ExecutorFunc(func(ctx context.Context, line string) (service.Response, error) {
			start := time.Now()

			resp, err := next.Execute(ctx, line)

			word, _ := parser.SplitCommandWord(line)
			attrs := []any{
				"command", word,
				"outcome", Outcome(err),
				"exit", resp.Exit,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if Outcome(err) == OutcomeError {
				log.ErrorContext(ctx, "command", append(attrs, "error", err.Error())...)
			} else {
				log.InfoContext(ctx, "command", attrs...)
			}
			return resp, err
		})
	}
}

// Outcome classifies the error returned by an Executor.
func Outcome(err error) string {
	var cerr *command.Error
	switch {
	case err == nil:
		return OutcomeOK
	case parser.IsParseError(err):
		return OutcomeParseError
	case errors.As(err, &cerr):
		return OutcomeCommandError
	default:
		return OutcomeError
	}
}

// Chain wraps exec with mws. The first middleware is the outermost one.
func Chain(exec service.Executor, mws ...func(service.Executor) service.Executor) service.Executor {
	for i := len(mws) - 1; i >= 0; i-- {
		exec = mws[i](exec)
	}
	return exec
}
