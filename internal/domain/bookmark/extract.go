// Package bookmark scans exported bookmark documents for anchors and splices
// icon attributes into them.
package bookmark

import (
	"bytes"
	"iter"

	"golang.org/x/net/html"

	"github.com/bnema/favbuddy/internal/domain/entity"
)

// Anchors returns the anchor start tags of doc in document order.
// Only <a> tags carrying an href attribute (any case, quoted with single or
// double quotes) are produced. Anything else is skipped silently, so a
// document without the usual export shape yields no matches.
//
// The sequence is lazy and can be ranged over any number of times.
func Anchors(doc []byte) iter.Seq[entity.AnchorMatch] {
	return func(yield func(entity.AnchorMatch) bool) {
		z := html.NewTokenizer(bytes.NewReader(doc))
		pos := 0
		for {
			tt := z.Next()
			if tt == html.ErrorToken {
				return
			}

			// Raw must be read before TagName, which lowercases the buffer in place.
			raw := z.Raw()
			start := pos
			pos += len(raw)

			if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
				continue
			}
			name, hasAttr := z.TagName()
			if !hasAttr || len(name) != 1 || name[0] != 'a' {
				continue
			}
			href, ok := hrefAttr(z)
			if !ok {
				continue
			}

			m := entity.AnchorMatch{
				Start:  start,
				End:    pos,
				Insert: insertionPoint(raw, start, tt == html.SelfClosingTagToken),
				Href:   href,
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Count returns the number of anchors in doc.
func Count(doc []byte) int {
	n := 0
	for range Anchors(doc) {
		n++
	}
	return n
}

func hrefAttr(z *html.Tokenizer) (string, bool) {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "href" {
			return string(val), true
		}
		if !more {
			return "", false
		}
	}
}

// insertionPoint returns the document offset right before the tag's closing
// '>' (or '/>' for self-closing tags).
func insertionPoint(raw []byte, start int, selfClosing bool) int {
	end := len(raw)
	if end > 0 && raw[end-1] == '>' {
		end--
	}
	if selfClosing && end > 0 && raw[end-1] == '/' {
		end--
	}
	return start + end
}
