// Package repo persists the contact list between sessions.
// The record store works purely in memory; after every command that changes
// it, the session service hands the full list to a PersonRepo. No business
// logic lives here, only SQL and type mapping.
package repo

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/recruittrack/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test. Begin on a
// pgx.Tx opens a savepoint, so Save still runs atomically inside it.
type db interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PersonRepo loads and saves the whole contact list.
// The session service depends on this interface, which allows it to be
// unit-tested with a mock.
type PersonRepo interface {
	// Load returns every stored person in the order they were saved.
	// Rows that no longer pass domain validation fail the load with an error
	// matching domain.ErrValidation.
	Load(ctx context.Context) ([]domain.Person, error)

	// Save replaces the stored list with persons, atomically.
	Save(ctx context.Context, persons []domain.Person) error
}

// pgPersonRepo is the Postgres implementation of PersonRepo.
type pgPersonRepo struct {
	db db
}

// NewPersonRepo constructs a PersonRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPersonRepo(db db) PersonRepo {
	return &pgPersonRepo{db: db}
}

// Load reads persons ordered by their saved position, then attaches tags.
func (r *pgPersonRepo) Load(ctx context.Context) ([]domain.Person, error) {
	const q = `
		SELECT id, name, phone, email, address
		FROM persons
		ORDER BY position`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "repo.PersonRepo.Load")
	}
	defer rows.Close()

	var scanned []personRow
	for rows.Next() {
		row, err := scanPerson(rows)
		if err != nil {
			return nil, errors.Wrap(err, "repo.PersonRepo.Load: scan")
		}
		scanned = append(scanned, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "repo.PersonRepo.Load: rows")
	}

	tags, err := r.loadTags(ctx)
	if err != nil {
		return nil, err
	}

	persons := make([]domain.Person, 0, len(scanned))
	for _, row := range scanned {
		p, err := row.toDomain(tags[row.id])
		if err != nil {
			return nil, errors.Wrapf(err, "repo.PersonRepo.Load: person %s", row.id)
		}
		persons = append(persons, p)
	}
	return persons, nil
}

// loadTags returns tag names grouped by person id.
func (r *pgPersonRepo) loadTags(ctx context.Context) (map[uuid.UUID][]string, error) {
	const q = `
		SELECT person_id, tag
		FROM person_tags
		ORDER BY tag`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "repo.PersonRepo.Load: tags")
	}
	defer rows.Close()

	tags := make(map[uuid.UUID][]string)
	for rows.Next() {
		var (
			id  pgtype.UUID
			tag string
		)
		if err := rows.Scan(&id, &tag); err != nil {
			return nil, errors.Wrap(err, "repo.PersonRepo.Load: tags: scan")
		}
		pid := uuid.UUID(id.Bytes)
		tags[pid] = append(tags[pid], tag)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "repo.PersonRepo.Load: tags: rows")
	}
	return tags, nil
}

// Save deletes every stored row and inserts persons in order, inside one
// transaction. Row ids are regenerated on every save; nothing outside this
// package refers to them.
func (r *pgPersonRepo) Save(ctx context.Context, persons []domain.Person) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "repo.PersonRepo.Save: begin")
	}
	// Rollback after a successful Commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM persons`); err != nil {
		return errors.Wrap(err, "repo.PersonRepo.Save: delete")
	}

	const insertPerson = `
		INSERT INTO persons (id, position, name, phone, email, address)
		VALUES (@id, @position, @name, @phone, @email, @address)`
	const insertTag = `
		INSERT INTO person_tags (person_id, tag)
		VALUES (@person_id, @tag)`

	batch := &pgx.Batch{}
	for i, p := range persons {
		id := uuid.New()
		batch.Queue(insertPerson, pgx.NamedArgs{
			"id":       id,
			"position": i,
			"name":     p.Name.String(),
			"phone":    p.Phone.String(),
			"email":    p.Email.String(),
			"address":  p.Address.String(),
		})
		for _, tag := range p.Tags.Names() {
			batch.Queue(insertTag, pgx.NamedArgs{"person_id": id, "tag": tag})
		}
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return errors.Wrap(err, "repo.PersonRepo.Save: insert")
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "repo.PersonRepo.Save: commit")
	}
	return nil
}

// personRow is a persons row before domain validation.
type personRow struct {
	id      uuid.UUID
	name    string
	phone   string
	email   string
	address string
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanPerson maps a single database row into a personRow.
func scanPerson(s scanner) (personRow, error) {
	var (
		row personRow
		id  pgtype.UUID
	)
	if err := s.Scan(&id, &row.name, &row.phone, &row.email, &row.address); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return personRow{}, domain.ErrNotFound
		}
		return personRow{}, err
	}
	row.id = uuid.UUID(id.Bytes)
	return row, nil
}

// toDomain validates the row through the domain constructors.
func (row personRow) toDomain(tagNames []string) (domain.Person, error) {
	var (
		p   domain.Person
		err error
	)
	if p.Name, err = domain.NewName(row.name); err != nil {
		return domain.Person{}, err
	}
	if p.Phone, err = domain.NewPhone(row.phone); err != nil {
		return domain.Person{}, err
	}
	if p.Email, err = domain.NewEmail(row.email); err != nil {
		return domain.Person{}, err
	}
	if p.Address, err = domain.NewAddress(row.address); err != nil {
		return domain.Person{}, err
	}
	tags := make([]domain.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		t, err := domain.NewTag(name)
		if err != nil {
			return domain.Person{}, err
		}
		tags = append(tags, t)
	}
	p.Tags = domain.NewTagSet(tags...)
	return p, nil
}
