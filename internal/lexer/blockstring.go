/*
This file replaces the teacher's internal/common/blockstring.go (itself
adapted from graph-gophers/graphql-go, which in turn ported graphql-js's
BlockStringValue() algorithm). The teacher only needs the dedented value of
a description comment, so it joins lines with strings.Join and stops. A
minifier also has to reprint the result in the shortest legal triple-quoted
form (leading/trailing newline disambiguation), which is the part carried
over from this module's Rust original
(original_source/packages/graphql-minify/src/block_string.rs) rather than
from the teacher.
*/

package lexer

import (
	"bytes"

	"gitlab.com/infor-cloud/martian-cloud/tharsis/graphql-minify/internal/arena"
)

// blockStringLines is an ordered sequence of line buffers read from one
// block string's body, backed by a caller-owned arena so that dedenting
// (which only ever shrinks a line from the front) never copies bytes.
type blockStringLines struct {
	ar       *arena.Arena
	indices  []int
	totalLen int
}

func (b *blockStringLines) len() int { return len(b.indices) }

func (b *blockStringLines) line(i int) []byte { return b.ar.Line(b.indices[i]) }

// commit turns the bytes written to the arena since start into a new line.
func (b *blockStringLines) commit(start int) {
	idx := b.ar.Commit(start)
	b.indices = append(b.indices, idx)
	b.totalLen += len(b.ar.Line(idx))
}

func (b *blockStringLines) trimLeading(i, n int) {
	before := len(b.line(i))
	b.ar.TrimLeading(b.indices[i], n)
	after := len(b.line(i))
	b.totalLen -= before - after
}

// ProcessBlockString reads the block-string body that begins at byte
// offset pos in input (immediately after an opening """), dedents it per
// the GraphQL BlockStringValue() algorithm, and reprints it in the
// shortest legal triple-quoted form. It returns the reprinted lexeme and
// the number of input bytes consumed, including the closing """.
func ProcessBlockString(input string, pos int, ar *arena.Arena) (string, int) {
	lines, consumed := splitBlockStringLines(input[pos:], ar)
	first, last, ok := lines.dedent()
	return string(reprintBlockString(lines, first, last, ok)), consumed
}

// splitBlockStringLines implements §4.2 Phase 1: it reads the body
// token-by-token, recognising the closing delimiter, the escaped triple
// quote \""", a lone backslash, a lone quote, and line terminators, and
// copies everything else verbatim.
func splitBlockStringLines(body string, ar *arena.Arena) (*blockStringLines, int) {
	lines := &blockStringLines{ar: ar}
	lineStart := ar.Mark()

	i := 0
	for i < len(body) {
		switch {
		case hasPrefixAt(body, i, `"""`):
			if ar.Mark() > lineStart {
				lines.commit(lineStart)
			}
			i += 3
			return lines, i
		case hasPrefixAt(body, i, `\"""`):
			ar.Write([]byte(body[i : i+4]))
			i += 4
		case body[i] == '\\':
			ar.WriteByte('\\')
			i++
		case body[i] == '"':
			ar.WriteByte('"')
			i++
		case hasPrefixAt(body, i, "\r\n"):
			lines.commit(lineStart)
			i += 2
			lineStart = ar.Mark()
		case body[i] == '\n' || body[i] == '\r':
			lines.commit(lineStart)
			i++
			lineStart = ar.Mark()
		default:
			j := i
			for j < len(body) && isPlainBlockStringByte(body[j]) {
				j++
			}
			ar.Write([]byte(body[i:j]))
			i = j
		}
	}

	// No closing delimiter before end of input: tolerate it the same way
	// the scanner tolerates an unbalanced brace (§4.1's philosophy of
	// lexing token-by-token without structural validation).
	if ar.Mark() > lineStart {
		lines.commit(lineStart)
	}
	return lines, i
}

func isPlainBlockStringByte(b byte) bool {
	return b != '"' && b != '\\' && b != '\n' && b != '\r'
}

func hasPrefixAt(s string, i int, prefix string) bool {
	return i+len(prefix) <= len(s) && s[i:i+len(prefix)] == prefix
}

// dedent implements §4.2 Phase 2. It returns the first and last non-empty
// line indices after trimming the common indentation from every line but
// the first; ok is false when the block string has no non-empty line.
func (b *blockStringLines) dedent() (first, last int, ok bool) {
	n := b.len()
	commonIndent := -1
	first, last = -1, -1

	for i := 0; i < n; i++ {
		line := b.line(i)
		indent := leadingWhitespace(line)
		if indent == len(line) {
			continue // blank line: ignored for indentation and first/last
		}
		if first == -1 {
			first = i
		}
		last = i
		if i != 0 && (commonIndent == -1 || indent < commonIndent) {
			commonIndent = indent
		}
	}

	if first == -1 {
		return 0, 0, false
	}
	if commonIndent == -1 {
		commonIndent = 0
	}
	if commonIndent > 0 {
		for i := 1; i < n; i++ {
			b.trimLeading(i, commonIndent)
		}
	}
	return first, last, true
}

func leadingWhitespace(line []byte) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}

// reprintBlockString implements §4.2 Phase 3.
func reprintBlockString(lines *blockStringLines, first, last int, ok bool) []byte {
	if !ok {
		return []byte(`""""""`)
	}

	n := last - first + 1
	line := func(k int) []byte { return lines.line(first + k) }

	withLeadingNewline := n > 1 && restIsIndentedOrEmpty(line, n)
	lastLine := line(n - 1)
	withTrailingNewline := endsWithAny(lastLine, '"', '\\') && !bytes.HasSuffix(lastLine, []byte(`\"""`))

	var out bytes.Buffer
	out.Grow(6 + lines.totalLen + n + 2)
	out.WriteString(`"""`)
	if withLeadingNewline {
		out.WriteByte('\n')
	}
	out.Write(line(0))
	for k := 1; k < n; k++ {
		out.WriteByte('\n')
		out.Write(line(k))
	}
	if withTrailingNewline {
		out.WriteByte('\n')
	}
	out.WriteString(`"""`)
	return out.Bytes()
}

func restIsIndentedOrEmpty(line func(int) []byte, n int) bool {
	for k := 1; k < n; k++ {
		l := line(k)
		if len(l) == 0 {
			continue
		}
		if l[0] != ' ' && l[0] != '\t' {
			return false
		}
	}
	return true
}

func endsWithAny(b []byte, choices ...byte) bool {
	if len(b) == 0 {
		return false
	}
	last := b[len(b)-1]
	for _, c := range choices {
		if last == c {
			return true
		}
	}
	return false
}
