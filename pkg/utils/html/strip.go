// ABOUTME: HTML utilities for stripping markup out of oEmbed payloads
// ABOUTME: oEmbed html fields carry blockquote markup around the text we want

package html

import (
	stdhtml "html"
	"strings"
)

// StripHTML removes tags from a markup fragment and returns the visible
// text with entities decoded and whitespace collapsed.
func StripHTML(fragment string) string {
	var b strings.Builder
	b.Grow(len(fragment))

	inTag := false
	for _, r := range fragment {
		switch {
		case r == '<':
			inTag = true
			b.WriteByte(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}

	text := stdhtml.UnescapeString(b.String())
	return strings.Join(strings.Fields(text), " ")
}
