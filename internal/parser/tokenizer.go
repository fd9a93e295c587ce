package parser

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix marks the start of a field value in command arguments, e.g. "t/".
type Prefix string

// Prefixes understood by the built-in commands.
const (
	PrefixName    Prefix = "n/"
	PrefixPhone   Prefix = "p/"
	PrefixEmail   Prefix = "e/"
	PrefixAddress Prefix = "a/"
	PrefixTag     Prefix = "t/"
)

// ArgMap is the result of tokenizing an argument string: the preamble and,
// for every recognised prefix, the values that followed each occurrence.
// Values are returned exactly as typed; callers trim.
type ArgMap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the text before the first recognised prefix.
func (m ArgMap) Preamble() string { return m.preamble }

// Values returns every value given for p in input order. It is empty, not an
// error, when p never occurred.
func (m ArgMap) Values(p Prefix) []string { return slices.Clone(m.values[p]) }

// Value returns the last value given for p.
func (m ArgMap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// Has reports whether p occurred at least once.
func (m ArgMap) Has(p Prefix) bool { return len(m.values[p]) > 0 }

// VerifyNoDuplicatePrefixes fails if any of prefixes occurred more than once.
func (m ArgMap) VerifyNoDuplicatePrefixes(prefixes ...Prefix) error {
	var dups []string
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			dups = append(dups, string(p))
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return &Error{Message: "Multiple values specified for the following single-valued field(s): " + strings.Join(dups, " ")}
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix is recognised only at
// the start of args or right after whitespace; anywhere else it is literal
// text, so "e/alice@x.com/p/1" keeps its inner "p/".
func Tokenize(args string, prefixes ...Prefix) ArgMap {
	var positions []prefixPosition
	for _, p := range prefixes {
		positions = append(positions, findPrefixPositions(args, p)...)
	}
	slices.SortFunc(positions, func(a, b prefixPosition) int { return a.start - b.start })

	m := ArgMap{values: make(map[Prefix][]string)}
	if len(positions) == 0 {
		m.preamble = args
		return m
	}
	m.preamble = args[:positions[0].start]
	for i, pos := range positions {
		end := len(args)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		m.values[pos.prefix] = append(m.values[pos.prefix], args[pos.start+len(pos.prefix):end])
	}
	return m
}

func findPrefixPositions(args string, p Prefix) []prefixPosition {
	var out []prefixPosition
	for from := 0; from < len(args); {
		i := strings.Index(args[from:], string(p))
		if i < 0 {
			break
		}
		start := from + i
		if start == 0 || precededBySpace(args, start) {
			out = append(out, prefixPosition{prefix: p, start: start})
		}
		from = start + len(p)
	}
	return out
}

func precededBySpace(s string, i int) bool {
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsSpace(r)
}
