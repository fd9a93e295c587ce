package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/recruittrack/internal/parser"
)

func TestTokenize_NoPrefixes(t *testing.T) {
	m := parser.Tokenize("  some random string /t tag with leading and trailing spaces ", parser.PrefixTag)

	assert.Equal(t, "  some random string /t tag with leading and trailing spaces ", m.Preamble(), "no trimming")
	assert.False(t, m.Has(parser.PrefixTag))
	assert.Empty(t, m.Values(parser.PrefixTag))
	_, ok := m.Value(parser.PrefixTag)
	assert.False(t, ok)
}

func TestTokenize_PreambleAndRepeatedPrefix(t *testing.T) {
	m := parser.Tokenize(" 1 t/friends  t/Java", parser.PrefixTag)

	assert.Equal(t, " 1 ", m.Preamble(), "whitespace before the prefix stays in the preamble")
	assert.Equal(t, []string{"friends  ", "Java"}, m.Values(parser.PrefixTag))
	last, ok := m.Value(parser.PrefixTag)
	require.True(t, ok)
	assert.Equal(t, "Java", last)
}

func TestTokenize_PrefixAtStart(t *testing.T) {
	m := parser.Tokenize("t/friends", parser.PrefixTag)

	assert.Equal(t, "", m.Preamble())
	assert.Equal(t, []string{"friends"}, m.Values(parser.PrefixTag))
}

func TestTokenize_PrefixInsideWordIsLiteral(t *testing.T) {
	m := parser.Tokenize(" n/Ann e/ann@x.com p/ignored-not a/abc/t/def", parser.PrefixName, parser.PrefixEmail, parser.PrefixAddress, parser.PrefixTag)

	assert.Equal(t, []string{"Ann "}, m.Values(parser.PrefixName))
	assert.Equal(t, []string{"ann@x.com p/ignored-not "}, m.Values(parser.PrefixEmail), "p/ not registered here")
	assert.Equal(t, []string{"abc/t/def"}, m.Values(parser.PrefixAddress), "t/ not preceded by whitespace")
	assert.False(t, m.Has(parser.PrefixTag))
}

func TestTokenize_EmptyValue(t *testing.T) {
	m := parser.Tokenize(" 1 t/", parser.PrefixTag)

	assert.Equal(t, []string{""}, m.Values(parser.PrefixTag))
}

func TestArgMap_VerifyNoDuplicatePrefixes(t *testing.T) {
	m := parser.Tokenize(" n/a n/b p/1 p/2 e/x", parser.PrefixName, parser.PrefixPhone, parser.PrefixEmail)

	err := m.VerifyNoDuplicatePrefixes(parser.PrefixName, parser.PrefixPhone, parser.PrefixEmail)

	require.Error(t, err)
	assert.Equal(t, "Multiple values specified for the following single-valued field(s): n/ p/", err.Error())
	assert.True(t, parser.IsParseError(err))
	assert.NoError(t, m.VerifyNoDuplicatePrefixes(parser.PrefixEmail))
}
