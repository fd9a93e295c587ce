// Package domain contains the core value types of RecruitTrack: persons, their
// contact fields and tags, and the user-facing Index. Every constructor here
// validates its input and never coerces; rejected values produce an error that
// matches ErrValidation and carries the constraint description as its message.
package domain

import (
	"regexp"
	"strings"
)

// Constraint messages shown to the user when a field is rejected.
const (
	NameConstraints    = "Names should only contain alphanumeric characters and spaces, it should not be blank and at most 100 characters long"
	PhoneConstraints   = "Phone numbers should only contain numbers, and it should be between 3 and 15 digits long"
	AddressConstraints = "Addresses can take any values, and it should not be blank"
	EmailConstraints   = "Emails should be of the format local-part@domain and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and these special characters, excluding " +
		"the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
		"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
		"separated by periods.\n" +
		"The domain name must:\n" +
		"    - end with a domain label at least 2 characters long\n" +
		"    - have each domain label start and end with alphanumeric characters\n" +
		"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."
)

const maxNameLength = 100

var (
	namePattern  = regexp.MustCompile(`^[\p{L}\p{N}]+( [\p{L}\p{N}]+)*$`)
	phonePattern = regexp.MustCompile(`^\d{3,15}$`)
	emailPattern = regexp.MustCompile(
		`^[\p{L}\p{N}]+([+_.-][\p{L}\p{N}]+)*` +
			`@([\p{L}\p{N}]([\p{L}\p{N}-]*[\p{L}\p{N}])?\.)*` +
			`[\p{L}\p{N}]([\p{L}\p{N}-]*[\p{L}\p{N}])?$`)
)

// Name is a person's display name.
type Name struct{ value string }

// NewName validates s and returns the Name.
func NewName(s string) (Name, error) {
	if len([]rune(s)) > maxNameLength || !namePattern.MatchString(s) {
		return Name{}, validationError(NameConstraints)
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// EqualFold reports whether both names are equal ignoring case.
func (n Name) EqualFold(o Name) bool { return strings.EqualFold(n.value, o.value) }

// Phone is a person's phone number, digits only.
type Phone struct{ value string }

// NewPhone validates s and returns the Phone.
func NewPhone(s string) (Phone, error) {
	if !phonePattern.MatchString(s) {
		return Phone{}, validationError(PhoneConstraints)
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }

// Email is a person's email address.
type Email struct{ value string }

// NewEmail validates s and returns the Email.
func NewEmail(s string) (Email, error) {
	if !emailPattern.MatchString(s) || !validTopLabel(s) {
		return Email{}, validationError(EmailConstraints)
	}
	return Email{value: s}, nil
}

// validTopLabel enforces the two-character minimum on the last domain label.
func validTopLabel(s string) bool {
	i := strings.LastIndexAny(s, ".@")
	return len([]rune(s[i+1:])) >= 2
}

func (e Email) String() string { return e.value }

// Address is a person's postal address. Any non-blank text is accepted.
type Address struct{ value string }

// NewAddress validates s and returns the Address.
func NewAddress(s string) (Address, error) {
	if strings.TrimSpace(s) == "" {
		return Address{}, validationError(AddressConstraints)
	}
	return Address{value: s}, nil
}

func (a Address) String() string { return a.value }

// Person is a contact record. Persons are values: editing one means building
// a new Person and replacing the old one in the store.
type Person struct {
	Name    Name
	Phone   Phone
	Email   Email
	Address Address
	Tags    TagSet
}

// Equal reports whether every field of p and o, tags included, is equal.
// This is stronger than the identity predicate used for uniqueness.
func (p Person) Equal(o Person) bool {
	return p.Name == o.Name &&
		p.Phone == o.Phone &&
		p.Email == o.Email &&
		p.Address == o.Address &&
		p.Tags.Equal(o.Tags)
}

// WithTags returns a copy of p carrying tags instead of its current set.
func (p Person) WithTags(tags TagSet) Person {
	p.Tags = tags
	return p
}

// String renders the person the way result messages show it.
func (p Person) String() string {
	var b strings.Builder
	b.WriteString(p.Name.value)
	b.WriteString("; Phone: ")
	b.WriteString(p.Phone.value)
	b.WriteString("; Email: ")
	b.WriteString(p.Email.value)
	b.WriteString("; Address: ")
	b.WriteString(p.Address.value)
	b.WriteString("; Tags: ")
	for _, t := range p.Tags.tags {
		b.WriteString(t.String())
	}
	return b.String()
}
