package entity

// AnchorMatch is one anchor start tag found in a bookmark document.
// Offsets are byte positions in the original document.
type AnchorMatch struct {
	Start  int    // first byte of the start tag ('<')
	End    int    // one past the last byte of the start tag
	Insert int    // where a new attribute is spliced, just before the closing '>' or '/>'
	Href   string // unescaped href attribute value
}
