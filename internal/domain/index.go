package domain

import "strconv"

// Index is a position in the currently displayed list of persons.
// Users see 1-based numbers; code indexes slices with ZeroBased.
type Index struct {
	zeroBased int
}

// IndexFromOneBased builds an Index from a user-facing ordinal.
// It panics if n < 1; parsers must validate first.
func IndexFromOneBased(n int) Index {
	if n < 1 {
		panic("domain.IndexFromOneBased: " + strconv.Itoa(n) + " is not positive")
	}
	return Index{zeroBased: n - 1}
}

// IndexFromZeroBased builds an Index from a slice offset.
func IndexFromZeroBased(n int) Index {
	if n < 0 {
		panic("domain.IndexFromZeroBased: " + strconv.Itoa(n) + " is negative")
	}
	return Index{zeroBased: n}
}

// OneBased returns the ordinal shown to users.
func (i Index) OneBased() int { return i.zeroBased + 1 }

// ZeroBased returns the slice offset.
func (i Index) ZeroBased() int { return i.zeroBased }

func (i Index) String() string { return strconv.Itoa(i.OneBased()) }
