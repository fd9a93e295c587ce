package handler_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/chzyer/readline"
	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/recruittrack/internal/command"
	"github.com/pkordes/recruittrack/internal/domain"
	"github.com/pkordes/recruittrack/internal/handler"
	"github.com/pkordes/recruittrack/internal/parser"
	"github.com/pkordes/recruittrack/internal/repo"
	"github.com/pkordes/recruittrack/internal/service"
	"github.com/pkordes/recruittrack/internal/store"
	"github.com/pkordes/recruittrack/testutil"
)

func TestMain(m *testing.M) {
	// Plain text keeps assertions independent of ANSI escape codes.
	pterm.DisableStyling()
	os.Exit(m.Run())
}

// scriptedReader returns lines in order, then err (io.EOF when nil).
type scriptedReader struct {
	lines []string
	err   error
	reads int
}

func (r *scriptedReader) Readline() (string, error) {
	if r.reads >= len(r.lines) {
		if r.err != nil {
			return "", r.err
		}
		return "", io.EOF
	}
	r.reads++
	return r.lines[r.reads-1], nil
}

// compile-time check: the production reader satisfies LineReader.
var _ handler.LineReader = (*readline.Instance)(nil)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// newSession returns an Executor over the typical persons and the repo it
// saves to.
func newSession(t *testing.T) (*service.SessionService, repo.PersonRepo) {
	t.Helper()
	r := repo.NewMemoryPersonRepo(testutil.TypicalPersons()...)
	svc := service.NewSessionService(store.New(domain.SameNameAndContact), r, parser.NewRegistry())
	require.NoError(t, svc.Load(context.Background()))
	return svc, r
}

func TestShell_Run_ExecutesUntilExit(t *testing.T) {
	svc, r := newSession(t)
	in := &scriptedReader{lines: []string{"tag 2 t/Java", "", "exit", "clear"}}
	var out bytes.Buffer

	err := handler.NewShell(svc, in, &out, discardLogger()).Run(context.Background(), svc.View())

	require.NoError(t, err)
	assert.Equal(t, 3, in.reads, "lines after exit are not read")
	assert.Contains(t, out.String(), "Alice Pauline", "initial view is rendered")
	assert.Contains(t, out.String(), "Added tags [Java] to Benson Meier")
	assert.Contains(t, out.String(), command.MessageExitAcknowledgement)

	saved, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, saved[1].Tags.Contains(domain.MustTag("Java")))
}

func TestShell_Run_StopsAtEOF(t *testing.T) {
	svc, _ := newSession(t)
	in := &scriptedReader{lines: []string{"list"}}
	var out bytes.Buffer

	err := handler.NewShell(svc, in, &out, discardLogger()).Run(context.Background(), nil)

	require.NoError(t, err)
	assert.Contains(t, out.String(), handler.MessageNoPersons, "empty initial view")
	assert.Contains(t, out.String(), command.MessageListSuccess)
}

func TestShell_Run_StopsOnInterrupt(t *testing.T) {
	svc, _ := newSession(t)
	in := &scriptedReader{err: readline.ErrInterrupt}

	err := handler.NewShell(svc, in, io.Discard, discardLogger()).Run(context.Background(), nil)

	assert.NoError(t, err)
}

func TestShell_Run_ReadError(t *testing.T) {
	svc, _ := newSession(t)
	boom := errors.New("terminal gone")
	in := &scriptedReader{err: boom}

	err := handler.NewShell(svc, in, io.Discard, discardLogger()).Run(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestShell_Run_RendersErrorsAndContinues(t *testing.T) {
	svc, _ := newSession(t)
	in := &scriptedReader{lines: []string{"untag a t/friends", "delete 99", "add n/A p/1 e/a@bc a/x", "list"}}
	var out bytes.Buffer

	err := handler.NewShell(svc, in, &out, discardLogger()).Run(context.Background(), nil)

	require.NoError(t, err)
	got := out.String()
	assert.Contains(t, got, parser.MessageInvalidCommandFormat)
	assert.Contains(t, got, parser.MessageInvalidIndex, "field-level cause")
	assert.Contains(t, got, command.UsageRemoveTags)
	assert.Contains(t, got, command.MessageInvalidPersonIndex)
	assert.Contains(t, got, domain.PhoneConstraints)
	assert.Contains(t, got, command.MessageListSuccess, "loop continues after errors")
}

func TestShell_Run_InfrastructureErrorIsLogged(t *testing.T) {
	exec := service.ExecutorFunc(func(context.Context, string) (service.Response, error) {
		return service.Response{}, errors.New("connection reset")
	})
	in := &scriptedReader{lines: []string{"list"}}
	var out, logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	err := handler.NewShell(exec, in, &out, logger).Run(context.Background(), nil)

	require.NoError(t, err)
	assert.Contains(t, out.String(), handler.MessageInternalError+": connection reset")
	assert.Contains(t, logs.String(), "connection reset")
}

func TestShell_Run_Help(t *testing.T) {
	svc, _ := newSession(t)
	in := &scriptedReader{lines: []string{"help"}}
	var out bytes.Buffer

	require.NoError(t, handler.NewShell(svc, in, &out, discardLogger()).Run(context.Background(), nil))

	assert.Contains(t, out.String(), command.UsageAddTags)
	assert.Contains(t, out.String(), command.UsageExit)
}

func TestShell_Run_CancelledContext(t *testing.T) {
	svc, _ := newSession(t)
	in := &scriptedReader{lines: []string{"clear"}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.NewShell(svc, in, io.Discard, discardLogger()).Run(ctx, nil)

	require.NoError(t, err)
	assert.Zero(t, in.reads)
}

func TestRunOnce(t *testing.T) {
	svc, _ := newSession(t)
	var out bytes.Buffer

	require.NoError(t, handler.RunOnce(context.Background(), svc, "find Meier", &out))
	assert.Contains(t, out.String(), "2 persons listed!")
	assert.Contains(t, out.String(), "Benson Meier")
	assert.Contains(t, out.String(), "Daniel Meier")
	assert.NotContains(t, out.String(), "Alice Pauline")

	out.Reset()
	err := handler.RunOnce(context.Background(), svc, "frobnicate", &out)
	require.Error(t, err)
	assert.Contains(t, out.String(), parser.MessageUnknownCommand)
}
