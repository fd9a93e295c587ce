// Package handler implements the interactive RecruitTrack shell.
// The Shell reads command lines, hands them to a service.Executor and renders
// the outcome with pterm. Line editing comes from readline in production and
// from a scripted LineReader in tests.
package handler

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cockroachdb/errors"

	"github.com/pkordes/recruittrack/internal/domain"
	"github.com/pkordes/recruittrack/internal/service"
)

// LineReader yields one line of user input per call and io.EOF when the input
// is exhausted. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// Shell is the read-execute-render loop.
type Shell struct {
	exec service.Executor
	in   LineReader
	out  *renderer
	log  *slog.Logger
}

// NewShell constructs a Shell that reads from in and renders to out.
func NewShell(exec service.Executor, in LineReader, out io.Writer, log *slog.Logger) *Shell {
	return &Shell{exec: exec, in: in, out: &renderer{w: out}, log: log}
}

// Run shows initial, then executes lines until a command asks to exit, the
// input ends, the user interrupts, or ctx is cancelled. Command failures are
// rendered and the loop continues; only read failures are returned.
func (s *Shell) Run(ctx context.Context, initial []domain.Person) error {
	s.out.view(initial)

	for ctx.Err() == nil {
		line, err := s.in.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			return errors.Wrap(err, "handler.Shell.Run: read")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		resp, err := s.exec.Execute(ctx, line)
		if err != nil {
			if !isUserError(err) {
				s.log.ErrorContext(ctx, "execute failed", "error", err)
			}
			s.out.err(err)
			continue
		}

		s.out.response(resp)
		if resp.Exit {
			return nil
		}
	}
	return nil
}

// RunOnce executes a single line and renders the outcome. It returns the
// execution error so one-shot callers can set their exit status.
func RunOnce(ctx context.Context, exec service.Executor, line string, out io.Writer) error {
	r := &renderer{w: out}
	resp, err := exec.Execute(ctx, line)
	if err != nil {
		r.err(err)
		return err
	}
	r.response(resp)
	return nil
}
