package store_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/recruittrack/internal/domain"
	"github.com/pkordes/recruittrack/internal/store"
	"github.com/pkordes/recruittrack/testutil"
)

func names(persons []domain.Person) []string {
	out := make([]string, len(persons))
	for i, p := range persons {
		out[i] = p.Name.String()
	}
	return out
}

// ---- Add / Contains --------------------------------------------------------

func TestStore_Add_OK(t *testing.T) {
	s := store.New(domain.SameNameAndContact)

	require.NoError(t, s.Add(testutil.Alice))

	assert.True(t, s.Contains(testutil.Alice))
	assert.Equal(t, 1, s.Len())
}

func TestStore_Add_Duplicate(t *testing.T) {
	s := store.New(domain.SameNameAndContact)
	require.NoError(t, s.Add(testutil.Alice))
	before := s.Version()

	// Same name and phone, different address and tags: still the same contact.
	edited := testutil.PersonBuilderFrom(testutil.Alice).WithAddress("elsewhere").WithTags("husband").Build()
	err := s.Add(edited)

	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, before, s.Version(), "failed add must not bump version")
}

func TestStore_Add_NeverHoldsTwoSamePersons(t *testing.T) {
	s := store.New(domain.SameName)
	candidates := append(testutil.TypicalPersons(),
		testutil.PersonBuilderFrom(testutil.Alice).WithPhone("11111111").Build(),
		testutil.PersonBuilderFrom(testutil.Carl).WithName("carl kurz").Build(),
		testutil.PersonBuilderFrom(testutil.George).WithEmail("george@example.com").Build(),
	)
	for _, p := range candidates {
		_ = s.Add(p)
	}

	persons := s.Persons()
	for i := range persons {
		for j := i + 1; j < len(persons); j++ {
			assert.False(t, domain.SameName(persons[i], persons[j]), "%s and %s collide", persons[i].Name, persons[j].Name)
		}
	}
	assert.Len(t, persons, len(testutil.TypicalPersons()))
}

// ---- SetPerson -------------------------------------------------------------

func TestStore_SetPerson_OK(t *testing.T) {
	s := testutil.TypicalStore()
	edited := testutil.PersonBuilderFrom(testutil.Benson).WithAddedTags("Java").Build()

	require.NoError(t, s.SetPerson(testutil.Benson, edited))

	assert.Equal(t, edited, s.Persons()[1], "replacement keeps insertion position")
}

func TestStore_SetPerson_TargetMissing(t *testing.T) {
	s := store.New(domain.SameNameAndContact)

	err := s.SetPerson(testutil.Alice, testutil.Alice)

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestStore_SetPerson_CollidesWithOther(t *testing.T) {
	s := testutil.TypicalStore()
	edited := testutil.PersonBuilderFrom(testutil.Benson).
		WithName(testutil.Alice.Name.String()).WithPhone(testutil.Alice.Phone.String()).Build()

	err := s.SetPerson(testutil.Benson, edited)

	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Equal(t, testutil.TypicalPersons(), s.Persons())
}

// ---- Remove ----------------------------------------------------------------

func TestStore_Remove(t *testing.T) {
	s := testutil.TypicalStore()

	require.NoError(t, s.Remove(testutil.Carl))
	assert.False(t, s.Contains(testutil.Carl))

	err := s.Remove(testutil.Carl)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ---- SetPersons / Clear ----------------------------------------------------

func TestStore_SetPersons_RejectsDuplicates(t *testing.T) {
	s := testutil.TypicalStore()

	err := s.SetPersons([]domain.Person{testutil.Alice, testutil.Alice})

	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Equal(t, testutil.TypicalPersons(), s.Persons(), "store unchanged on failure")
}

func TestStore_Clear(t *testing.T) {
	s := testutil.TypicalStore()
	before := s.Version()

	s.Clear()

	assert.Zero(t, s.Len())
	assert.Empty(t, s.View())
	assert.Greater(t, s.Version(), before)
}

// ---- View ------------------------------------------------------------------

func TestStore_View_InsertionOrderByDefault(t *testing.T) {
	s := store.New(domain.SameNameAndContact)
	for _, p := range []domain.Person{testutil.George, testutil.Alice, testutil.Carl} {
		require.NoError(t, s.Add(p))
	}

	assert.Equal(t, store.Unsorted, s.SortOrder())
	assert.Equal(t, []string{"George Best", "Alice Pauline", "Carl Kurz"}, names(s.View()))
}

func TestStore_SwitchSorting(t *testing.T) {
	s := store.New(domain.SameNameAndContact)
	for _, p := range []domain.Person{testutil.George, testutil.Alice, testutil.Carl} {
		require.NoError(t, s.Add(p))
	}
	version := s.Version()

	s.SwitchSorting()
	assert.Equal(t, store.Ascending, s.SortOrder())
	ascending := names(s.View())
	assert.Equal(t, []string{"Alice Pauline", "Carl Kurz", "George Best"}, ascending)

	s.SwitchSorting()
	assert.Equal(t, store.Descending, s.SortOrder())
	assert.Equal(t, []string{"George Best", "Carl Kurz", "Alice Pauline"}, names(s.View()))

	s.SwitchSorting()
	assert.Equal(t, ascending, names(s.View()), "a third switch is ascending again")

	assert.Equal(t, []string{"George Best", "Alice Pauline", "Carl Kurz"}, names(s.Persons()), "insertion order untouched")
	assert.Equal(t, version, s.Version(), "sorting is not a mutation")
}

func TestStore_SwitchSorting_FreshStoreNeverReturnsToInsertionOrder(t *testing.T) {
	s := store.New(domain.SameNameAndContact)
	for _, p := range []domain.Person{testutil.George, testutil.Alice, testutil.Carl} {
		require.NoError(t, s.Add(p))
	}
	insertion := names(s.View())

	s.SwitchSorting()
	s.SwitchSorting()

	assert.Equal(t, store.Descending, s.SortOrder())
	assert.Equal(t, []string{"George Best", "Carl Kurz", "Alice Pauline"}, names(s.View()))
	assert.NotEqual(t, insertion, names(s.View()), "unsorted is only the initial state")
	assert.Equal(t, insertion, names(s.Persons()))
}

func TestStore_View_SortIgnoresCase(t *testing.T) {
	s := store.New(domain.SameNameAndContact)
	require.NoError(t, s.Add(testutil.NewPersonBuilder().WithName("bob").Build()))
	require.NoError(t, s.Add(testutil.NewPersonBuilder().WithName("Alex").WithPhone("999").Build()))
	require.NoError(t, s.Add(testutil.NewPersonBuilder().WithName("Carol").WithPhone("888").Build()))

	s.SwitchSorting()

	assert.Equal(t, []string{"Alex", "bob", "Carol"}, names(s.View()))
}

func TestStore_SetFilter(t *testing.T) {
	s := testutil.TypicalStore()

	s.SetFilter(domain.NameContainsKeywords([]string{"meier"}))
	assert.Equal(t, []string{"Benson Meier", "Daniel Meier"}, names(s.View()))
	assert.Equal(t, 7, s.Len(), "filter does not drop records")

	s.SetFilter(nil)
	assert.Len(t, s.View(), 7)
}
