package store

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/pkordes/recruittrack/internal/domain"
)

// UniquePersonList is an insertion-ordered list of persons in which no two
// elements satisfy the identity predicate. Replacement and removal locate
// their target by full equality (domain.Person.Equal).
type UniquePersonList struct {
	same    domain.IdentityFunc
	persons []domain.Person
}

// NewUniquePersonList returns an empty list that enforces uniqueness with same.
func NewUniquePersonList(same domain.IdentityFunc) *UniquePersonList {
	if same == nil {
		panic("store.NewUniquePersonList: nil identity predicate")
	}
	return &UniquePersonList{same: same}
}

// Contains reports whether some element is the same person as p.
func (l *UniquePersonList) Contains(p domain.Person) bool {
	return slices.ContainsFunc(l.persons, func(q domain.Person) bool { return l.same(q, p) })
}

// Add appends p. Returns domain.ErrDuplicate if the list already contains p.
func (l *UniquePersonList) Add(p domain.Person) error {
	if l.Contains(p) {
		return errors.Wrap(domain.ErrDuplicate, "store.UniquePersonList.Add")
	}
	l.persons = append(l.persons, p)
	return nil
}

// Set replaces target with edited in place.
// Returns domain.ErrNotFound if target is absent and domain.ErrDuplicate if
// edited is the same person as any element other than target.
func (l *UniquePersonList) Set(target, edited domain.Person) error {
	i := l.indexOf(target)
	if i < 0 {
		return errors.Wrap(domain.ErrNotFound, "store.UniquePersonList.Set")
	}
	for j, q := range l.persons {
		if j != i && l.same(q, edited) {
			return errors.Wrap(domain.ErrDuplicate, "store.UniquePersonList.Set")
		}
	}
	l.persons[i] = edited
	return nil
}

// Remove deletes p. Returns domain.ErrNotFound if p is absent.
func (l *UniquePersonList) Remove(p domain.Person) error {
	i := l.indexOf(p)
	if i < 0 {
		return errors.Wrap(domain.ErrNotFound, "store.UniquePersonList.Remove")
	}
	l.persons = slices.Delete(l.persons, i, i+1)
	return nil
}

// Replace swaps the whole content for persons, which must be pairwise unique.
// On error the list is left unchanged.
func (l *UniquePersonList) Replace(persons []domain.Person) error {
	for i := range persons {
		for j := i + 1; j < len(persons); j++ {
			if l.same(persons[i], persons[j]) {
				return errors.Wrapf(domain.ErrDuplicate, "store.UniquePersonList.Replace: %s", persons[j].Name)
			}
		}
	}
	l.persons = slices.Clone(persons)
	return nil
}

// Len returns the number of persons.
func (l *UniquePersonList) Len() int { return len(l.persons) }

// All returns the persons in insertion order. The slice is a copy.
func (l *UniquePersonList) All() []domain.Person { return slices.Clone(l.persons) }

func (l *UniquePersonList) indexOf(p domain.Person) int {
	return slices.IndexFunc(l.persons, func(q domain.Person) bool { return q.Equal(p) })
}
