// Package arena provides a bump-style byte allocator used to build
// block-string line buffers without one heap allocation per line.
//
// Adapted in spirit from the dedent/reprint buffers in
// https://github.com/graph-gophers/graphql-go/blob/master/internal/common/blockstring.go,
// which builds each line as its own string. Here all lines share one
// growable backing buffer and are addressed by (offset, length) spans, so
// a Reset reclaims every line in O(1) without touching the garbage
// collector's bookkeeping for each one individually.
package arena

type span struct {
	off int
	len int
}

// Arena is a reusable bump allocator. It is not safe for concurrent use;
// callers that run Minify on multiple goroutines must give each goroutine
// its own Arena.
type Arena struct {
	buf   []byte
	spans []span
}

// New returns an empty, ready-to-use Arena.
func New() *Arena {
	return &Arena{}
}

// Reset reclaims every byte and span written since the last Reset. It runs
// in O(1): the backing arrays are truncated, not freed, so the next round
// of writes reuses their capacity.
func (a *Arena) Reset() {
	a.buf = a.buf[:0]
	a.spans = a.spans[:0]
}

// Mark returns the current write position, to be paired with a later
// Commit call that turns the bytes written since the mark into a line.
func (a *Arena) Mark() int {
	return len(a.buf)
}

// Write appends p to the arena's buffer.
func (a *Arena) Write(p []byte) {
	a.buf = append(a.buf, p...)
}

// WriteByte appends a single byte to the arena's buffer.
func (a *Arena) WriteByte(b byte) {
	a.buf = append(a.buf, b)
}

// Commit turns the bytes written since start (a prior Mark) into a line
// and returns its index for later retrieval via Line.
func (a *Arena) Commit(start int) int {
	a.spans = append(a.spans, span{off: start, len: len(a.buf) - start})
	return len(a.spans) - 1
}

// Line returns the current bytes of the line at index i.
func (a *Arena) Line(i int) []byte {
	s := a.spans[i]
	return a.buf[s.off : s.off+s.len]
}

// TrimLeading removes up to n leading bytes from the line at index i by
// sliding its span forward; no data is copied or moved.
func (a *Arena) TrimLeading(i, n int) {
	s := &a.spans[i]
	if n > s.len {
		n = s.len
	}
	s.off += n
	s.len -= n
}
