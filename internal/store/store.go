// Package store holds the in-memory record store that commands mutate.
// The store owns exactly one UniquePersonList and layers a filtered, optionally
// name-sorted view over it. The view is what users see and what indexes in
// commands refer to; filtering and sorting never touch insertion order.
//
// A Store is not safe for concurrent use. Commands run one at a time.
package store

import (
	"slices"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pkordes/recruittrack/internal/domain"
)

// SortOrder is the orientation of the displayed list.
type SortOrder int

const (
	// Unsorted shows persons in insertion order.
	Unsorted SortOrder = iota
	// Ascending shows persons by name, A to Z.
	Ascending
	// Descending shows persons by name, Z to A.
	Descending
)

func (o SortOrder) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "insertion"
	}
}

// Store is the aggregate root for person records.
type Store struct {
	persons  *UniquePersonList
	filter   domain.Predicate
	order    SortOrder
	collator *collate.Collator
	version  uint64
}

// New returns an empty store that keeps persons unique under same.
func New(same domain.IdentityFunc) *Store {
	return &Store{
		persons:  NewUniquePersonList(same),
		filter:   domain.ShowAll,
		collator: collate.New(language.English, collate.IgnoreCase),
	}
}

// Contains reports whether the store holds the same person as p.
func (s *Store) Contains(p domain.Person) bool {
	return s.persons.Contains(p)
}

// Add appends p. Returns domain.ErrDuplicate if the store already contains p.
func (s *Store) Add(p domain.Person) error {
	if err := s.persons.Add(p); err != nil {
		return err
	}
	s.version++
	return nil
}

// SetPerson replaces target with edited.
// Returns domain.ErrNotFound if target is absent, domain.ErrDuplicate if
// edited collides with a different record.
func (s *Store) SetPerson(target, edited domain.Person) error {
	if err := s.persons.Set(target, edited); err != nil {
		return err
	}
	s.version++
	return nil
}

// Remove deletes p. Returns domain.ErrNotFound if p is absent.
func (s *Store) Remove(p domain.Person) error {
	if err := s.persons.Remove(p); err != nil {
		return err
	}
	s.version++
	return nil
}

// SetPersons replaces every record with persons, which must be unique.
func (s *Store) SetPersons(persons []domain.Person) error {
	if err := s.persons.Replace(persons); err != nil {
		return errors.Wrap(err, "store.Store.SetPersons")
	}
	s.version++
	return nil
}

// Clear removes every record.
func (s *Store) Clear() {
	// An empty slice is always unique.
	_ = s.persons.Replace(nil)
	s.version++
}

// Len returns the number of records, ignoring the filter.
func (s *Store) Len() int { return s.persons.Len() }

// Persons returns every record in insertion order.
func (s *Store) Persons() []domain.Person { return s.persons.All() }

// View returns the records that pass the current filter, in the current sort
// order. Command indexes resolve against this slice.
func (s *Store) View() []domain.Person {
	var out []domain.Person
	for _, p := range s.persons.persons {
		if s.filter(p) {
			out = append(out, p)
		}
	}
	if s.order == Unsorted {
		return out
	}
	slices.SortStableFunc(out, func(a, b domain.Person) int {
		c := s.collator.CompareString(a.Name.String(), b.Name.String())
		if s.order == Descending {
			return -c
		}
		return c
	})
	return out
}

// SetFilter restricts the view to persons matching pred. A nil pred shows all.
func (s *Store) SetFilter(pred domain.Predicate) {
	if pred == nil {
		pred = domain.ShowAll
	}
	s.filter = pred
}

// SwitchSorting flips the view between ascending and descending name order.
// The first switch on an unsorted store selects ascending.
func (s *Store) SwitchSorting() {
	if s.order == Ascending {
		s.order = Descending
		return
	}
	s.order = Ascending
}

// SortOrder returns the current view orientation.
func (s *Store) SortOrder() SortOrder { return s.order }

// Version increases every time the set of records changes. Filtering and
// sorting do not bump it.
func (s *Store) Version() uint64 { return s.version }
