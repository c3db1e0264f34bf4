/*
The token classification below is adapted from the join-policy predicates
in https://github.com/hikiko4ern/swc-plugin-minify-graphql's Rust lexer
(packages/graphql-minify/src/lexer.rs), reworked as a Go Kind enum in the
style of internal/common/types.go's Ident/Type handling in this module's
teacher repo.
*/

package lexer

// Kind classifies a lexical token recognised by the GraphQL scanner.
type Kind uint8

const (
	// EOF marks the end of input; Scanner.Next returns it instead of an error.
	EOF Kind = iota
	BraceOpen
	BraceClose
	ParenOpen
	ParenClose
	BracketOpen
	BracketClose
	Colon
	Equals
	Exclamation
	Question
	Ampersand
	Pipe
	Ellipsis
	Variable
	Directive
	BlockStringDelimiter
	String
	Int
	Float
	Bool
	Identifier
)

// Token is a classified lexeme with its byte span [Start, End) into the
// scanner's input string.
type Token struct {
	Kind  Kind
	Start int
	End   int
}

// IsNonPunctuator reports whether two adjacent tokens of this class would
// fuse into a single lexeme if printed with no separator between them.
// Variable and Directive lexemes start with their own sigil ($, @) so,
// despite carrying an identifier, they cannot fuse with the token before
// them and are classified alongside the punctuators here; a following
// Identifier is kept apart by NeedsSpaceAfter/NeedsSpaceBefore instead.
func IsNonPunctuator(k Kind) bool {
	switch k {
	case BraceOpen, BraceClose, ParenOpen, ParenClose, BracketOpen, BracketClose,
		Colon, Equals, Exclamation, Question, Ellipsis, Ampersand, Pipe,
		Variable, Directive:
		return false
	default:
		return true
	}
}

// NeedsSpaceAfter reports whether a token of this kind requires a separator
// before a following token for which NeedsSpaceBefore holds.
func NeedsSpaceAfter(k Kind) bool {
	switch k {
	case Variable, String, Identifier, Directive:
		return true
	default:
		return false
	}
}

// NeedsSpaceBefore reports whether a token of this kind requires a
// separator when it follows a token for which NeedsSpaceAfter holds.
func NeedsSpaceBefore(k Kind) bool {
	switch k {
	case Identifier, BlockStringDelimiter:
		return true
	default:
		return false
	}
}
