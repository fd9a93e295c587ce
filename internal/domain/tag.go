package domain

import (
	"regexp"
	"slices"
	"strings"
)

// MaxTagLength is the longest tag name accepted by NewTag.
const MaxTagLength = 30

// TagConstraints is the message shown when a tag name is rejected.
const TagConstraints = "Tag names should be alphanumeric, non-empty and at most 30 characters long"

var tagPattern = regexp.MustCompile(`^[\p{L}\p{N}]+$`)

// Tag is a short alphanumeric label attached to a person.
// Two tags are the same tag when their names are equal; comparison is
// case-sensitive.
type Tag struct {
	name string
}

// NewTag validates name and returns the Tag.
// The returned error matches ErrValidation and its message is TagConstraints.
func NewTag(name string) (Tag, error) {
	if !IsValidTagName(name) {
		return Tag{}, validationError(TagConstraints)
	}
	return Tag{name: name}, nil
}

// MustTag is NewTag for literals known to be valid. It panics otherwise.
func MustTag(name string) Tag {
	t, err := NewTag(name)
	if err != nil {
		panic("domain.MustTag: " + name + ": " + err.Error())
	}
	return t
}

// IsValidTagName reports whether name satisfies the tag format contract.
func IsValidTagName(name string) bool {
	return len([]rune(name)) <= MaxTagLength && tagPattern.MatchString(name)
}

// Name returns the tag's label.
func (t Tag) Name() string { return t.name }

func (t Tag) String() string { return "[" + t.name + "]" }

// TagSet is an immutable set of tags kept in canonical (sorted) order, so two
// sets with the same members are deeply equal regardless of how they were
// built. The zero value is the empty set.
type TagSet struct {
	tags []Tag
}

// NewTagSet builds a set from tags, dropping duplicates.
func NewTagSet(tags ...Tag) TagSet {
	if len(tags) == 0 {
		return TagSet{}
	}
	out := slices.Clone(tags)
	slices.SortFunc(out, func(a, b Tag) int { return strings.Compare(a.name, b.name) })
	out = slices.Compact(out)
	return TagSet{tags: out}
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int { return len(s.tags) }

// IsEmpty reports whether the set has no tags.
func (s TagSet) IsEmpty() bool { return len(s.tags) == 0 }

// Contains reports whether t is a member of the set.
func (s TagSet) Contains(t Tag) bool {
	_, found := slices.BinarySearchFunc(s.tags, t, func(a, b Tag) int { return strings.Compare(a.name, b.name) })
	return found
}

// Tags returns the members in canonical order. The slice is a copy.
func (s TagSet) Tags() []Tag { return slices.Clone(s.tags) }

// Names returns the member names in canonical order.
func (s TagSet) Names() []string {
	names := make([]string, len(s.tags))
	for i, t := range s.tags {
		names[i] = t.name
	}
	return names
}

// Union returns the tags in s or o.
func (s TagSet) Union(o TagSet) TagSet {
	return NewTagSet(append(s.Tags(), o.tags...)...)
}

// Difference returns the tags in s that are not in o.
func (s TagSet) Difference(o TagSet) TagSet {
	var out []Tag
	for _, t := range s.tags {
		if !o.Contains(t) {
			out = append(out, t)
		}
	}
	return NewTagSet(out...)
}

// Intersect returns the tags in both s and o.
func (s TagSet) Intersect(o TagSet) TagSet {
	var out []Tag
	for _, t := range s.tags {
		if o.Contains(t) {
			out = append(out, t)
		}
	}
	return NewTagSet(out...)
}

// ContainsAll reports whether every tag of o is in s.
func (s TagSet) ContainsAll(o TagSet) bool {
	for _, t := range o.tags {
		if !s.Contains(t) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets have the same members.
func (s TagSet) Equal(o TagSet) bool {
	return slices.Equal(s.tags, o.tags)
}

// String renders the set as "[a, b, c]".
func (s TagSet) String() string {
	return "[" + strings.Join(s.Names(), ", ") + "]"
}
