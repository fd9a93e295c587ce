// Package service runs a command session: it parses a line, executes the
// command against the record store and persists the store when it changed.
// No SQL lives here; the session depends on the repo.PersonRepo interface.
package service

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/pkordes/recruittrack/internal/command"
	"github.com/pkordes/recruittrack/internal/domain"
	"github.com/pkordes/recruittrack/internal/parser"
	"github.com/pkordes/recruittrack/internal/repo"
	"github.com/pkordes/recruittrack/internal/store"
)

// Response is what one executed line hands back to the shell: the command's
// result plus a snapshot of the view taken after the command ran.
type Response struct {
	command.Result
	View  []domain.Person
	Order store.SortOrder
}

// Executor runs a single command line.
// Middleware in the middleware package wraps an Executor the way HTTP
// middleware wraps an http.Handler.
type Executor interface {
	Execute(ctx context.Context, line string) (Response, error)
}

// ExecutorFunc adapts a plain function to the Executor interface.
type ExecutorFunc func(ctx context.Context, line string) (Response, error)

// Execute calls f(ctx, line).
func (f ExecutorFunc) Execute(ctx context.Context, line string) (Response, error) {
	return f(ctx, line)
}

// SessionService owns the store for one interactive or one-shot session.
type SessionService struct {
	store   *store.Store
	persons repo.PersonRepo
	parser  *parser.Registry

	// saved is the store version last written to persons.
	saved uint64
}

// NewSessionService constructs a SessionService. Call Load before the first
// Execute to populate the store from the repo.
func NewSessionService(s *store.Store, persons repo.PersonRepo, p *parser.Registry) *SessionService {
	return &SessionService{store: s, persons: persons, parser: p, saved: s.Version()}
}

// Load replaces the store contents with the saved list.
func (s *SessionService) Load(ctx context.Context) error {
	persons, err := s.persons.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "service.SessionService.Load")
	}
	if err := s.store.SetPersons(persons); err != nil {
		return errors.Wrap(err, "service.SessionService.Load: saved list")
	}
	s.saved = s.store.Version()
	return nil
}

// Execute parses line, runs the command and persists the store if the command
// changed it or asked the session to end.
//
// A *parser.Error or *command.Error is returned as is so the caller can show
// its message and usage. Any other error comes from persistence.
func (s *SessionService) Execute(ctx context.Context, line string) (Response, error) {
	cmd, err := s.parser.Parse(line)
	if err != nil {
		return Response{}, err
	}

	res, err := cmd.Execute(s.store)
	if err != nil {
		return Response{}, err
	}

	if err := s.persist(ctx, res.Exit); err != nil {
		return Response{}, errors.Wrap(err, "service.SessionService.Execute")
	}

	return Response{Result: res, View: s.store.View(), Order: s.store.SortOrder()}, nil
}

// View returns the current view of the store.
func (s *SessionService) View() []domain.Person {
	return s.store.View()
}

// Words lists the command words the session understands.
func (s *SessionService) Words() []string {
	return s.parser.Words()
}

func (s *SessionService) persist(ctx context.Context, force bool) error {
	version := s.store.Version()
	if !force && version == s.saved {
		return nil
	}
	if err := s.persons.Save(ctx, s.store.Persons()); err != nil {
		return err
	}
	s.saved = version
	return nil
}
