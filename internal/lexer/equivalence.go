/*
Tokenize and TokensEqual exist only so tests can check that minifying a
document preserves its lexical meaning, without building a full GraphQL
AST. They are not used by the Minify hot path: Tokenize builds a token
slice and a throwaway arena on every call, which is fine for a test helper
and wrong for the real pipeline.
*/

package lexer

import (
	"bytes"

	"gitlab.com/infor-cloud/martian-cloud/tharsis/graphql-minify/internal/arena"
)

// ComparableToken is a token reduced to the two properties that carry
// meaning: its kind and its text. Block-string tokens are represented by
// their dedented (but not reprinted) value, since reprinting only chooses
// between equally legal spellings of the same value.
type ComparableToken struct {
	Kind Kind
	Text string
}

// Tokenize lexes input in full and returns its non-trivia tokens reduced
// to ComparableTokens. It returns an error if the input does not lex
// cleanly.
func Tokenize(input string) ([]ComparableToken, error) {
	s := NewScanner(input)
	ar := arena.New()

	var out []ComparableToken
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == EOF {
			return out, nil
		}
		if tok.Kind == BlockStringDelimiter {
			ar.Reset()
			text, consumed := dedentOnly(input, s.Pos(), ar)
			s.Advance(consumed)
			out = append(out, ComparableToken{Kind: BlockStringDelimiter, Text: text})
			continue
		}
		out = append(out, ComparableToken{Kind: tok.Kind, Text: input[tok.Start:tok.End]})
	}
}

// dedentOnly runs block_string.rs §4.2 Phase 1 and Phase 2 but skips the
// shortest-legal-reprint step in Phase 3, since reprinting never changes
// the string's dedented value.
func dedentOnly(input string, pos int, ar *arena.Arena) (string, int) {
	lines, consumed := splitBlockStringLines(input[pos:], ar)
	first, last, ok := lines.dedent()
	if !ok {
		return "", consumed
	}
	var buf bytes.Buffer
	for i := first; i <= last; i++ {
		if i > first {
			buf.WriteByte('\n')
		}
		buf.Write(lines.line(i))
	}
	return buf.String(), consumed
}

// TokensEqual reports whether a and b lex to the same ComparableToken
// sequence.
func TokensEqual(a, b string) (bool, error) {
	ta, err := Tokenize(a)
	if err != nil {
		return false, err
	}
	tb, err := Tokenize(b)
	if err != nil {
		return false, err
	}
	if len(ta) != len(tb) {
		return false, nil
	}
	for i := range ta {
		if ta[i] != tb[i] {
			return false, nil
		}
	}
	return true, nil
}
