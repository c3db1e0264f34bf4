package minify

import (
	"fmt"

	graphqlerrors "github.com/graph-gophers/graphql-go/errors"

	"gitlab.com/infor-cloud/martian-cloud/tharsis/graphql-minify/internal/lexer"
)

// Span is a half-open byte range [Start, End) into the source string
// passed to Minify.
type Span struct {
	Start int
	End   int
}

// UnknownTokenError is returned when Minify encounters a byte sequence
// that matches no token in the GraphQL lexical grammar.
type UnknownTokenError struct {
	Span     Span
	Location graphqlerrors.Location
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("graphql-minify: unknown token at %d:%d", e.Location.Line, e.Location.Column)
}

// UnterminatedStringError is returned when a "…" string literal is not
// closed before a raw line terminator or the end of input.
type UnterminatedStringError struct {
	Span     Span
	Location graphqlerrors.Location
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("graphql-minify: unterminated string at %d:%d", e.Location.Line, e.Location.Column)
}

// convertErr wraps an internal/lexer error with the source position the
// caller actually cares about, computed lazily since it is only ever
// needed on the error path.
func convertErr(input string, err error) error {
	switch e := err.(type) {
	case *lexer.UnknownTokenError:
		return &UnknownTokenError{
			Span:     Span{e.Span.Start, e.Span.End},
			Location: locate(input, e.Span.Start),
		}
	case *lexer.UnterminatedStringError:
		return &UnterminatedStringError{
			Span:     Span{e.Span.Start, e.Span.End},
			Location: locate(input, e.Span.Start),
		}
	default:
		return err
	}
}

// locate converts a byte offset into input to a 1-based line/column pair,
// matching the convention of graph-gophers/graphql-go's own Lexer.Location.
func locate(input string, pos int) graphqlerrors.Location {
	line := 1
	col := 1
	if pos > len(input) {
		pos = len(input)
	}
	for i := 0; i < pos; i++ {
		if input[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return graphqlerrors.Location{Line: line, Column: col}
}
