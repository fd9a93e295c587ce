package repo_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/recruittrack/internal/domain"
	"github.com/pkordes/recruittrack/internal/repo"
	"github.com/pkordes/recruittrack/testutil"
)

// newTestRepo opens a transaction against the test database and returns a
// PersonRepo backed by that transaction. The transaction is rolled back when
// the test finishes, so each test starts from an empty persons table.
func newTestRepo(t *testing.T) (repo.PersonRepo, func(sql string, args ...any)) {
	t.Helper()
	pool := testutil.NewPool(t)
	ctx := context.Background()

	tx, err := pool.Begin(ctx)
	require.NoError(t, err, "begin transaction")
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })

	_, err = tx.Exec(ctx, `DELETE FROM persons`)
	require.NoError(t, err, "clear persons")

	exec := func(sql string, args ...any) {
		t.Helper()
		_, err := tx.Exec(ctx, sql, args...)
		require.NoError(t, err, "exec %q", sql)
	}
	return repo.NewPersonRepo(tx), exec
}

func TestPersonRepo_LoadEmpty(t *testing.T) {
	r, _ := newTestRepo(t)

	got, err := r.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPersonRepo_SaveLoad_KeepsOrderAndTags(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	// Reverse insertion order so position, not name, decides load order.
	want := []domain.Person{testutil.George, testutil.Benson, testutil.Alice}
	require.NoError(t, r.Save(ctx, want))

	got, err := r.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPersonRepo_Save_ReplacesPreviousList(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, testutil.TypicalPersons()))
	require.NoError(t, r.Save(ctx, []domain.Person{testutil.Carl}))

	got, err := r.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, []domain.Person{testutil.Carl}, got)
}

func TestPersonRepo_Save_Empty(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, testutil.TypicalPersons()))
	require.NoError(t, r.Save(ctx, nil))

	got, err := r.Load(ctx)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPersonRepo_Load_InvalidRow(t *testing.T) {
	r, exec := newTestRepo(t)

	exec(`INSERT INTO persons (id, position, name, phone, email, address)
		VALUES (gen_random_uuid(), 0, 'Bad Phone', 'not-a-phone', 'a@bc', 'x')`)

	_, err := r.Load(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation), "got %v", err)
}

func TestPersonRepo_Load_InvalidTag(t *testing.T) {
	r, exec := newTestRepo(t)

	exec(`INSERT INTO persons (id, position, name, phone, email, address)
		VALUES ('6f1c5b3e-2a4d-4e8f-9b1a-0c2d3e4f5a6b', 0, 'Amy', '123', 'a@bc', 'x')`)
	exec(`INSERT INTO person_tags (person_id, tag)
		VALUES ('6f1c5b3e-2a4d-4e8f-9b1a-0c2d3e4f5a6b', 'has space')`)

	_, err := r.Load(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation), "got %v", err)
}
