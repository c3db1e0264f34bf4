/*
Package minify strips ignored characters from a GraphQL document:
insignificant whitespace, commas, and comments, while keeping every
significant token and inserting the minimum separator needed to keep
adjacent tokens from fusing into a different lexeme. It does not validate,
parse, or reorder the document: a document that does not parse can still
be minified, as long as it lexes.

The package is organised the way this module's teacher organises a
request-processing pipeline: a small root-level API (this file) built on
top of an internal/lexer package that does the byte-level work, mirroring
the teacher's split between complexity.go's public GetQueryComplexity and
internal/common's Lexer.
*/
package minify

import (
	"strings"

	"gitlab.com/infor-cloud/martian-cloud/tharsis/graphql-minify/internal/arena"
	"gitlab.com/infor-cloud/martian-cloud/tharsis/graphql-minify/internal/lexer"
)

// Arena holds the two buffers Minify needs: one for the output string
// being built, one for block-string line processing. The block-string
// buffer keeps its capacity across calls, so reusing an Arena across many
// Minify calls (e.g. one per worker goroutine in a server's request
// pipeline) avoids reallocating it; the output buffer is handed over to
// the returned string and starts empty on every call. A single Arena must
// not be shared across concurrent calls.
type Arena struct {
	out    strings.Builder
	blocks *arena.Arena
}

// NewArena returns a ready-to-use Arena.
func NewArena() *Arena {
	return &Arena{blocks: arena.New()}
}

func (a *Arena) reset() {
	a.out.Reset()
	a.blocks.Reset()
}

// MinifyString minifies input using a throwaway Arena. Prefer Minify with
// a reused Arena on any hot path that minifies more than one document.
func MinifyString(input string) (string, error) {
	return Minify(input, NewArena())
}

// Minify strips ignored characters from input, writing through ar, and
// returns the resulting document. It returns an UnknownTokenError or
// UnterminatedStringError if input does not lex cleanly; a document that
// lexes but does not parse (e.g. unbalanced braces) is still minified
// token-by-token.
func Minify(input string, ar *Arena) (string, error) {
	ar.reset()

	s := lexer.NewScanner(input)
	var j joiner

	for {
		tok, err := s.Next()
		if err != nil {
			return "", convertErr(input, err)
		}
		if tok.Kind == lexer.EOF {
			break
		}

		if tok.Kind == lexer.BlockStringDelimiter {
			text, consumed := lexer.ProcessBlockString(input, s.Pos(), ar.blocks)
			s.Advance(consumed)
			if j.needsSpace(lexer.BlockStringDelimiter) {
				ar.out.WriteByte(' ')
			}
			ar.out.WriteString(text)
			j.advance(lexer.BlockStringDelimiter)
			continue
		}

		if j.needsSpace(tok.Kind) {
			ar.out.WriteByte(' ')
		}
		ar.out.WriteString(input[tok.Start:tok.End])
		j.advance(tok.Kind)
	}

	return ar.out.String(), nil
}

// joiner tracks the previous emitted token's kind so Minify can decide
// whether the next token needs a separator to keep it from fusing with
// the previous one.
type joiner struct {
	prev    lexer.Kind
	hasPrev bool
}

func (j *joiner) needsSpace(cur lexer.Kind) bool {
	switch {
	case !j.hasPrev:
		return false
	case lexer.IsNonPunctuator(j.prev):
		return lexer.IsNonPunctuator(cur)
	case lexer.NeedsSpaceAfter(j.prev):
		return lexer.NeedsSpaceBefore(cur)
	default:
		return false
	}
}

func (j *joiner) advance(cur lexer.Kind) {
	j.prev = cur
	j.hasPrev = true
}
