/*
Property-based checks, grounded in how this module's teacher's own stack
uses pgregory.net/rapid (the library is exercised the same way in the
go-ethereum test suite: rapid.Check driving a *rapid.T-based generator).
These complement the example-based tests in minify_test.go by fuzzing the
shape of the input rather than hand-picking it.
*/

package minify_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	minify "gitlab.com/infor-cloud/martian-cloud/tharsis/graphql-minify"
	"gitlab.com/infor-cloud/martian-cloud/tharsis/graphql-minify/internal/lexer"
)

var tokenTexts = []string{
	"query", "mutation", "fragment", "on", "someField", "a", "b", "c",
	"$foo", "$bar", "@include", "@skip", "true", "false", "null",
	"1", "-2", "3.14", `"str"`,
	"{", "}", "(", ")", "[", "]", ":", "=", "!", "&", "|", "...",
}

var separators = []string{" ", "\t", "\n", ",", " ,", ", ", "  ", "\n\n"}

// genDocument builds a document out of well-formed tokens, each isolated
// by trivia from its neighbours, so the result is guaranteed to lex
// cleanly: the property being tested is what Minify does to valid input,
// not how it reports invalid input (that is covered separately in
// minify_test.go).
func genDocument(t *rapid.T) string {
	n := rapid.IntRange(0, 40).Draw(t, "n").(int)
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sepIdx := rapid.IntRange(0, len(separators)-1).Draw(t, "sepIdx").(int)
			b.WriteString(separators[sepIdx])
		}
		tokIdx := rapid.IntRange(0, len(tokenTexts)-1).Draw(t, "tokIdx").(int)
		b.WriteString(tokenTexts[tokIdx])
	}
	return b.String()
}

func TestMinifyIsIdempotentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := genDocument(t)

		once, err := minify.MinifyString(input)
		require.NoError(t, err)

		twice, err := minify.MinifyString(once)
		require.NoError(t, err)
		require.Equal(t, once, twice)
	})
}

func TestMinifyPreservesTokensProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := genDocument(t)

		out, err := minify.MinifyString(input)
		require.NoError(t, err)

		equal, err := lexer.TokensEqual(input, out)
		require.NoError(t, err)
		require.True(t, equal)
	})
}

func TestMinifyNeverGrowsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := genDocument(t)

		out, err := minify.MinifyString(input)
		require.NoError(t, err)
		require.LessOrEqual(t, len(out), len(input))
	})
}

func TestMinifyOfIgnoredOnlyInputIsEmptyProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 10).Draw(t, "n").(int)
		var b strings.Builder
		for i := 0; i < n; i++ {
			sepIdx := rapid.IntRange(0, len(separators)-1).Draw(t, "sepIdx").(int)
			b.WriteString(separators[sepIdx])
		}

		out, err := minify.MinifyString(b.String())
		require.NoError(t, err)
		require.Empty(t, out)
	})
}
