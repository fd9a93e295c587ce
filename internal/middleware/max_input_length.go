package middleware

import (
	"context"
	"unicode/utf8"

	"github.com/pkordes/recruittrack/internal/parser"
	"github.com/pkordes/recruittrack/internal/service"
)

// NewMaxInputLength returns a middleware that rejects command lines longer
// than limit characters with a *parser.Error before they reach the next
// Executor. A limit of zero or less disables the check.
func NewMaxInputLength(limit int) func(service.Executor) service.Executor {
	return func(next service.Executor) service.Executor {
		if limit <= 0 {
			return next
		}
		return service.ExecutorFunc(func(ctx context.Context, line string) (service.Response, error) {
			if utf8.RuneCountInString(line) > limit {
				return service.Response{}, parser.InputTooLong(limit)
			}
			return next.Execute(ctx, line)
		})
	}
}
