package parser

import (
	"strconv"
	"strings"

	"github.com/pkordes/recruittrack/internal/domain"
)

// MessageInvalidIndex is returned by ParseIndex.
const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

// ParseIndex parses a 1-based index. Leading and trailing whitespace is
// ignored; anything other than a positive base-10 integer fails.
func ParseIndex(s string) (domain.Index, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return domain.Index{}, &Error{Message: MessageInvalidIndex}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return domain.Index{}, &Error{Message: MessageInvalidIndex, Err: err}
	}
	return domain.IndexFromOneBased(n), nil
}

// ParseTag parses a tag name, ignoring surrounding whitespace.
func ParseTag(s string) (domain.Tag, error) {
	t, err := domain.NewTag(strings.TrimSpace(s))
	if err != nil {
		return domain.Tag{}, fieldError(err)
	}
	return t, nil
}

// ParseTags parses every value into a tag set. Any invalid tag fails the whole
// set. No values yields the empty set.
func ParseTags(values []string) (domain.TagSet, error) {
	tags := make([]domain.Tag, 0, len(values))
	for _, v := range values {
		t, err := ParseTag(v)
		if err != nil {
			return domain.TagSet{}, err
		}
		tags = append(tags, t)
	}
	return domain.NewTagSet(tags...), nil
}

// ParseName parses a person's name, ignoring surrounding whitespace.
func ParseName(s string) (domain.Name, error) {
	n, err := domain.NewName(strings.TrimSpace(s))
	if err != nil {
		return domain.Name{}, fieldError(err)
	}
	return n, nil
}

// ParsePhone parses a phone number, ignoring surrounding whitespace.
func ParsePhone(s string) (domain.Phone, error) {
	p, err := domain.NewPhone(strings.TrimSpace(s))
	if err != nil {
		return domain.Phone{}, fieldError(err)
	}
	return p, nil
}

// ParseEmail parses an email address, ignoring surrounding whitespace.
func ParseEmail(s string) (domain.Email, error) {
	e, err := domain.NewEmail(strings.TrimSpace(s))
	if err != nil {
		return domain.Email{}, fieldError(err)
	}
	return e, nil
}

// ParseAddress parses an address, ignoring surrounding whitespace.
func ParseAddress(s string) (domain.Address, error) {
	a, err := domain.NewAddress(strings.TrimSpace(s))
	if err != nil {
		return domain.Address{}, fieldError(err)
	}
	return a, nil
}

// ParseKeywords splits every value on whitespace. Empty values contribute
// nothing.
func ParseKeywords(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.Fields(v)...)
	}
	return out
}
