package minify

import (
	"fmt"
	"strings"
)

// punctuators is the set of leading/trailing bytes that a minified
// fragment can touch a template placeholder with no separating space,
// ported from this module's Rust original's PUNCTUATORS constant
// (src/visitor.rs). It intentionally differs from the lexer's own
// punctuator classification: a template splice only ever has to worry
// about a placeholder value colliding with what comes right before or
// after it, not about two GraphQL tokens fusing into a third one.
const punctuators = "!$&():@[]{,}."

// JoinFragments reassembles a minified template literal whose interpolated
// placeholders (e.g. `${name}`) were lexically opaque to Minify. fragments
// are the literal GraphQL text between placeholders, each already run
// through Minify or MinifyString; placeholders are the raw source text of
// each interpolation, left untouched. Fragments and placeholders must
// strictly alternate, so len(fragments) must equal len(placeholders)+1.
//
// A space is inserted around a placeholder whenever omitting it could glue
// the placeholder's value to an adjacent identifier-like fragment; no
// space is inserted next to a fragment edge that already ends or begins
// with a punctuator, since it cannot fuse with the placeholder. An empty
// first or last fragment adds no space on its side, and an empty fragment
// between two placeholders leaves exactly one space between them.
func JoinFragments(fragments []string, placeholders []string) (string, error) {
	if len(fragments) != len(placeholders)+1 {
		return "", fmt.Errorf("minify: JoinFragments needs len(fragments) == len(placeholders)+1, got %d fragments and %d placeholders", len(fragments), len(placeholders))
	}

	n := len(fragments)
	var out strings.Builder

	hasPrevPlaceholder := false
	for i, frag := range fragments {
		isEmpty := frag == ""
		isLastFragment := i == n-1
		spaceInserted := false

		if hasPrevPlaceholder && !(isEmpty && isLastFragment) && !startsWithPunctuator(frag) {
			out.WriteByte(' ')
			spaceInserted = true
		}

		out.WriteString(frag)

		nextIsPlaceholder := i < n-1
		if nextIsPlaceholder {
			if !(isEmpty && (spaceInserted || i == 0)) && !endsWithPunctuator(frag) {
				out.WriteByte(' ')
			}
			out.WriteString(placeholders[i])
		}

		hasPrevPlaceholder = nextIsPlaceholder
	}

	return out.String(), nil
}

func startsWithPunctuator(s string) bool {
	return s != "" && strings.IndexByte(punctuators, s[0]) >= 0
}

func endsWithPunctuator(s string) bool {
	return s != "" && strings.IndexByte(punctuators, s[len(s)-1]) >= 0
}
