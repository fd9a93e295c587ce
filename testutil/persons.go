package testutil

import (
	"github.com/pkordes/recruittrack/internal/domain"
	"github.com/pkordes/recruittrack/internal/store"
)

// Default field values used by NewPersonBuilder.
const (
	DefaultName    = "Amy Bee"
	DefaultPhone   = "85355255"
	DefaultEmail   = "amy@gmail.com"
	DefaultAddress = "123, Jurong West Ave 6, #08-111"
)

// PersonBuilder assembles domain.Person values for tests. Every setter panics
// on invalid input so fixtures fail loudly.
type PersonBuilder struct {
	p domain.Person
}

// NewPersonBuilder starts from the default person.
func NewPersonBuilder() *PersonBuilder {
	return &PersonBuilder{p: domain.Person{
		Name:    must(domain.NewName(DefaultName)),
		Phone:   must(domain.NewPhone(DefaultPhone)),
		Email:   must(domain.NewEmail(DefaultEmail)),
		Address: must(domain.NewAddress(DefaultAddress)),
	}}
}

// PersonBuilderFrom starts from a copy of p.
func PersonBuilderFrom(p domain.Person) *PersonBuilder {
	return &PersonBuilder{p: p}
}

func (b *PersonBuilder) WithName(s string) *PersonBuilder {
	b.p.Name = must(domain.NewName(s))
	return b
}

func (b *PersonBuilder) WithPhone(s string) *PersonBuilder {
	b.p.Phone = must(domain.NewPhone(s))
	return b
}

func (b *PersonBuilder) WithEmail(s string) *PersonBuilder {
	b.p.Email = must(domain.NewEmail(s))
	return b
}

func (b *PersonBuilder) WithAddress(s string) *PersonBuilder {
	b.p.Address = must(domain.NewAddress(s))
	return b
}

// WithTags replaces the tag set.
func (b *PersonBuilder) WithTags(names ...string) *PersonBuilder {
	b.p.Tags = Tags(names...)
	return b
}

// WithAddedTags adds to the existing tag set.
func (b *PersonBuilder) WithAddedTags(names ...string) *PersonBuilder {
	b.p.Tags = b.p.Tags.Union(Tags(names...))
	return b
}

func (b *PersonBuilder) Build() domain.Person { return b.p }

// Tags builds a TagSet from names.
func Tags(names ...string) domain.TagSet {
	tags := make([]domain.Tag, len(names))
	for i, n := range names {
		tags[i] = domain.MustTag(n)
	}
	return domain.NewTagSet(tags...)
}

// Typical persons shared by command, parser and store tests. Alice is first
// in insertion order and George last; by name they are already ascending.
var (
	Alice = NewPersonBuilder().WithName("Alice Pauline").WithAddress("123, Jurong West Ave 6, #08-111").
		WithEmail("alice@example.com").WithPhone("94351253").WithTags("friends").Build()
	Benson = NewPersonBuilder().WithName("Benson Meier").WithAddress("311, Clementi Ave 2, #02-25").
		WithEmail("johnd@example.com").WithPhone("98765432").WithTags("owesMoney", "friends").Build()
	Carl = NewPersonBuilder().WithName("Carl Kurz").WithPhone("95352563").
		WithEmail("heinz@example.com").WithAddress("wall street").Build()
	Daniel = NewPersonBuilder().WithName("Daniel Meier").WithPhone("87652533").
		WithEmail("cornelia@example.com").WithAddress("10th street").WithTags("friends").Build()
	Elle = NewPersonBuilder().WithName("Elle Meyer").WithPhone("9482224").
		WithEmail("werner@example.com").WithAddress("michegan ave").Build()
	Fiona = NewPersonBuilder().WithName("Fiona Kunz").WithPhone("9482427").
		WithEmail("lydia@example.com").WithAddress("little tokyo").Build()
	George = NewPersonBuilder().WithName("George Best").WithPhone("9482442").
		WithEmail("anna@example.com").WithAddress("4th street").Build()
)

// TypicalPersons returns the typical persons in insertion order.
func TypicalPersons() []domain.Person {
	return []domain.Person{Alice, Benson, Carl, Daniel, Elle, Fiona, George}
}

// TypicalStore returns a store holding TypicalPersons, using the
// name-and-contact identity policy.
func TypicalStore() *store.Store {
	s := store.New(domain.SameNameAndContact)
	if err := s.SetPersons(TypicalPersons()); err != nil {
		panic("testutil.TypicalStore: " + err.Error())
	}
	return s
}

func must[T any](v T, err error) T {
	if err != nil {
		panic("testutil: " + err.Error())
	}
	return v
}
