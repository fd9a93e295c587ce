package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/recruittrack/internal/command"
	"github.com/pkordes/recruittrack/internal/middleware"
	"github.com/pkordes/recruittrack/internal/parser"
	"github.com/pkordes/recruittrack/internal/service"
)

// stubExecutor returns resp and err for every line.
func stubExecutor(resp service.Response, err error) service.Executor {
	return service.ExecutorFunc(func(context.Context, string) (service.Response, error) {
		return resp, err
	})
}

// logLine runs line through the logger middleware and decodes the single
// JSON log line it writes.
func logLine(t *testing.T, next service.Executor, line string) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	_, _ = middleware.NewSlogLogger(logger)(next).Execute(context.Background(), line)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestSlogLogger_logsCommandFields verifies that the middleware writes the
// command word, outcome, exit flag and duration, and leaves the arguments out.
func TestSlogLogger_logsCommandFields(t *testing.T) {
	next := stubExecutor(service.Response{Result: command.Result{Message: "bye", Exit: true}}, nil)

	entry := logLine(t, next, "  exit now  ")

	assert.Equal(t, "command", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "exit", entry["command"])
	assert.Equal(t, middleware.OutcomeOK, entry["outcome"])
	assert.Equal(t, true, entry["exit"])
	assert.NotNil(t, entry["duration_ms"])
	assert.NotContains(t, entry, "now")
}

func TestSlogLogger_outcomes(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		want      string
	}{
		{name: "parse error", err: &parser.Error{Message: parser.MessageUnknownCommand}, wantLevel: "INFO", want: middleware.OutcomeParseError},
		{name: "command error", err: &command.Error{Kind: command.InvalidIndex, Message: command.MessageInvalidPersonIndex}, wantLevel: "INFO", want: middleware.OutcomeCommandError},
		{name: "infrastructure error", err: errors.Wrap(errors.New("refused"), "service.SessionService.Execute"), wantLevel: "ERROR", want: middleware.OutcomeError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entry := logLine(t, stubExecutor(service.Response{}, tc.err), "delete 1")

			assert.Equal(t, tc.want, entry["outcome"])
			assert.Equal(t, tc.wantLevel, entry["level"])
			assert.Equal(t, "delete", entry["command"])
		})
	}
}

func TestSlogLogger_passesResponseThrough(t *testing.T) {
	want := service.Response{Result: command.Result{Message: "Listed all persons"}}
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	got, err := middleware.NewSlogLogger(logger)(stubExecutor(want, nil)).Execute(context.Background(), "list")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestChain_order(t *testing.T) {
	var calls []string
	mark := func(name string) func(service.Executor) service.Executor {
		return func(next service.Executor) service.Executor {
			return service.ExecutorFunc(func(ctx context.Context, line string) (service.Response, error) {
				calls = append(calls, name)
				return next.Execute(ctx, line)
			})
		}
	}

	exec := middleware.Chain(stubExecutor(service.Response{}, nil), mark("outer"), mark("inner"))
	_, err := exec.Execute(context.Background(), "list")

	require.NoError(t, err)
	assert.Equal(t, "outer,inner", strings.Join(calls, ","))
}
