package domain

import (
	"strings"
)

// Predicate selects persons for the displayed list.
type Predicate func(Person) bool

// ShowAll matches every person.
func ShowAll(Person) bool { return true }

// NameContainsKeywords matches persons whose name contains any of keywords as
// a whole word, ignoring case.
func NameContainsKeywords(keywords []string) Predicate {
	return func(p Person) bool {
		words := strings.Fields(p.Name.value)
		for _, k := range keywords {
			for _, w := range words {
				if strings.EqualFold(w, k) {
					return true
				}
			}
		}
		return false
	}
}

// PhoneContainsKeywords matches persons whose phone number contains any of
// keywords as a substring.
func PhoneContainsKeywords(keywords []string) Predicate {
	return func(p Person) bool {
		for _, k := range keywords {
			if k != "" && strings.Contains(p.Phone.value, k) {
				return true
			}
		}
		return false
	}
}

// TagContainsKeywords matches persons carrying a tag equal to any of keywords,
// ignoring case.
func TagContainsKeywords(keywords []string) Predicate {
	return func(p Person) bool {
		for _, k := range keywords {
			for _, t := range p.Tags.tags {
				if strings.EqualFold(t.name, k) {
					return true
				}
			}
		}
		return false
	}
}

// All matches persons satisfying every one of preds. With no predicates it
// matches everyone.
func All(preds ...Predicate) Predicate {
	return func(p Person) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}
