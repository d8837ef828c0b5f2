package bookmark

import (
	"fmt"
	"html"
)

// IconAttributeName is the attribute carrying the embedded icon.
const IconAttributeName = "icon"

// IconAttribute renders the attribute text inserted into an anchor tag,
// including its leading space.
func IconAttribute(payload string) string {
	return " " + IconAttributeName + `="` + html.EscapeString(payload) + `"`
}

// Splicer builds an output document by inserting text at positions of the
// original document. Positions stay relative to the original, so insertions
// never invalidate offsets computed before them; the running offset maps an
// original position to its place in the output.
type Splicer struct {
	orig   []byte
	out    []byte
	last   int
	offset int
}

// NewSplicer creates a splicer over doc. doc is not modified.
func NewSplicer(doc []byte) *Splicer {
	return &Splicer{orig: doc, out: make([]byte, 0, len(doc))}
}

// Insert places text at original position pos. Positions must be
// non-decreasing across calls.
func (s *Splicer) Insert(pos int, text string) error {
	if pos < s.last || pos > len(s.orig) {
		return fmt.Errorf("splice position %d out of order (last %d, len %d)", pos, s.last, len(s.orig))
	}
	s.out = append(s.out, s.orig[s.last:pos]...)
	s.out = append(s.out, text...)
	s.last = pos
	s.offset += len(text)
	return nil
}

// Offset returns the total length of all inserted text so far.
func (s *Splicer) Offset() int {
	return s.offset
}

// OutputPosition maps an original position at or after the last insertion
// to its position in the output document.
func (s *Splicer) OutputPosition(pos int) int {
	return pos + s.offset
}

// Bytes returns the complete output document.
func (s *Splicer) Bytes() []byte {
	out := make([]byte, 0, len(s.out)+len(s.orig)-s.last)
	out = append(out, s.out...)
	return append(out, s.orig[s.last:]...)
}
