package domain

import "github.com/cockroachdb/errors"

// IdentityFunc decides whether two persons describe the same contact.
// The store uses it to keep its records unique; it is deliberately weaker
// than Person.Equal so that an edited record still collides with its original.
type IdentityFunc func(a, b Person) bool

// SameName treats persons with equal names (ignoring case) as the same contact.
func SameName(a, b Person) bool {
	return a.Name.EqualFold(b.Name)
}

// SameNameAndContact treats persons as the same contact when their names are
// equal (ignoring case) and they share a phone number or an email address.
func SameNameAndContact(a, b Person) bool {
	if !a.Name.EqualFold(b.Name) {
		return false
	}
	return a.Phone == b.Phone || a.Email == b.Email
}

// Identity policy names accepted by IdentityByPolicy.
const (
	PolicyName        = "name"
	PolicyNameContact = "name_contact"
)

// IdentityByPolicy returns the identity predicate registered under policy.
func IdentityByPolicy(policy string) (IdentityFunc, error) {
	switch policy {
	case PolicyName:
		return SameName, nil
	case PolicyNameContact:
		return SameNameAndContact, nil
	default:
		return nil, errors.Newf("unknown identity policy %q (want %q or %q)", policy, PolicyName, PolicyNameContact)
	}
}
