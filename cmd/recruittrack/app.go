package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pkordes/recruittrack/internal/config"
	"github.com/pkordes/recruittrack/internal/domain"
	"github.com/pkordes/recruittrack/internal/handler"
	"github.com/pkordes/recruittrack/internal/middleware"
	"github.com/pkordes/recruittrack/internal/parser"
	"github.com/pkordes/recruittrack/internal/repo"
	"github.com/pkordes/recruittrack/internal/service"
	"github.com/pkordes/recruittrack/internal/store"
	"github.com/pkordes/recruittrack/migrations"
)

// app holds what every subcommand shares: configuration, the logger and
// the resources to release on the way out.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	closers []func()
}

// setup loads configuration and opens the log destination.
func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println("Configuration error: " + err.Error())
		return err
	}
	a.cfg = cfg

	var w io.Writer = os.Stderr
	if cfg.LogFile != config.LogFileStderr {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			pterm.Error.Println("Cannot open log file: " + err.Error())
			return errors.Wrap(err, "open log file")
		}
		a.closers = append(a.closers, func() { _ = f.Close() })
		w = f
	}

	// JSON handler writes machine-readable output suitable for log aggregators.
	a.log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(a.log)
	return nil
}

// run wraps a RunE so that close runs after it on every path. Cobra skips
// post-run hooks when RunE fails, so the release cannot live there.
func (a *app) run(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer a.close()
		return fn(cmd, args)
	}
}

// close releases resources in reverse order of acquisition.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// fail shows err to the user, logs it, and returns it for the exit status.
func (a *app) fail(err error) error {
	pterm.Error.Println(err.Error())
	if a.log != nil {
		a.log.Error("command failed", "error", err)
	}
	return err
}

// openRepo returns the PersonRepo selected by configuration. With a database
// configured it connects, pings and migrates when AutoMigrate is set.
func (a *app) openRepo(ctx context.Context) (repo.PersonRepo, error) {
	if !a.cfg.Persistent() {
		a.log.Info("DATABASE_URL not set, using in-memory storage")
		return repo.NewMemoryPersonRepo(), nil
	}

	pool, err := a.connect(ctx)
	if err != nil {
		return nil, err
	}

	if a.cfg.AutoMigrate {
		if err := a.migrate(ctx, pool); err != nil {
			return nil, err
		}
	}
	return repo.NewPersonRepo(pool), nil
}

// connect opens and verifies the connection pool.
func (a *app) connect(ctx context.Context) (*pgxpool.Pool, error) {
	// pgxpool.New does not open connections immediately; the first query does.
	pool, err := pgxpool.New(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "create database pool")
	}
	a.closers = append(a.closers, pool.Close)

	if err := pool.Ping(ctx); err != nil {
		return nil, errors.Wrap(err, "connect to database")
	}
	a.log.Info("database connection established")
	return pool, nil
}

// migrate applies every pending migration. goose needs database/sql, so the
// pool is wrapped rather than opening a second connection.
func (a *app) migrate(ctx context.Context, pool *pgxpool.Pool) error {
	// The wrapper borrows connections from pool and owns none of its own.
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return errors.Wrap(err, "create goose provider")
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return errors.Wrap(err, "run migrations")
	}
	for _, r := range results {
		a.log.Info("migration applied", "source", r.Source.Path, "duration_ms", r.Duration.Milliseconds())
	}
	return nil
}

// migrateOnly backs the migrate subcommand.
func (a *app) migrateOnly(ctx context.Context) error {
	if !a.cfg.Persistent() {
		return errors.New("DATABASE_URL must be set to run migrations")
	}
	pool, err := a.connect(ctx)
	if err != nil {
		return err
	}
	return a.migrate(ctx, pool)
}

// session builds the store, loads the saved list and wraps the session in
// the logging and input-length middleware. The logger is outermost so it
// records rejected lines too.
func (a *app) session(ctx context.Context) (service.Executor, *service.SessionService, error) {
	same, err := domain.IdentityByPolicy(a.cfg.IdentityPolicy)
	if err != nil {
		return nil, nil, err
	}

	persons, err := a.openRepo(ctx)
	if err != nil {
		return nil, nil, err
	}

	svc := service.NewSessionService(store.New(same), persons, parser.NewRegistry())
	if err := svc.Load(ctx); err != nil {
		return nil, nil, err
	}

	exec := middleware.Chain(svc,
		middleware.NewSlogLogger(a.log),
		middleware.NewMaxInputLength(a.cfg.MaxInputLength),
	)
	return exec, svc, nil
}

// runShell starts the interactive shell.
func (a *app) runShell(ctx context.Context) error {
	exec, svc, err := a.session(ctx)
	if err != nil {
		return a.fail(err)
	}

	rl, err := handler.NewReadline(a.cfg.HistoryFile, svc.Words())
	if err != nil {
		return a.fail(err)
	}
	defer func() { _ = rl.Close() }()

	if !a.cfg.Persistent() {
		pterm.Warning.Println("DATABASE_URL is not set; changes are kept until exit only.")
	}
	pterm.Info.Println(`Type "help" to see every command.`)

	if err := handler.NewShell(exec, rl, rl.Stdout(), a.log).Run(ctx, svc.View()); err != nil {
		return a.fail(err)
	}
	return nil
}
