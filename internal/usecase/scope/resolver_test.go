package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintscope/lintscope/internal/mapping"
	"github.com/lintscope/lintscope/internal/usecase/scope"
)

func mustParse(t *testing.T, value string) []mapping.Entry {
	t.Helper()
	entries, err := mapping.Parse(value)
	require.NoError(t, err)
	return entries
}

func TestIgnoredCodes_DeclarationOrder(t *testing.T) {
	resolver := scope.NewResolver(mustParse(t, "a.py: E501 *.py: W503"))

	assert.Equal(t, []string{"E501", "W503"}, resolver.IgnoredCodes("a.py"))
	assert.Equal(t, []string{"W503"}, resolver.IgnoredCodes("b.py"))
	assert.Empty(t, resolver.IgnoredCodes("README.md"))
}

func TestIgnoredCodes_DuplicatesPreserved(t *testing.T) {
	resolver := scope.NewResolver(mustParse(t, "a.py: E501 *.py: E501"))

	assert.Equal(t, []string{"E501", "E501"}, resolver.IgnoredCodes("a.py"))
}

func TestIgnoredCodes_MatchesBasename(t *testing.T) {
	resolver := scope.NewResolver(mustParse(t, "conf.py: ALL"))

	assert.Equal(t, []string{"ALL"}, resolver.IgnoredCodes("docs/source/conf.py"))
}

func TestIgnores_PrefixMatch(t *testing.T) {
	resolver := scope.NewResolver(mustParse(t, "a.py: E5"))

	assert.True(t, resolver.Ignores("a.py", "E501"))
	assert.True(t, resolver.Ignores("a.py", "E5"))
	assert.False(t, resolver.Ignores("a.py", "E711"))
	assert.False(t, resolver.Ignores("b.py", "E501"))
}

func TestIgnores_NoEntries(t *testing.T) {
	resolver := scope.NewResolver(nil)

	assert.False(t, resolver.Ignores("a.py", "E501"))
}
