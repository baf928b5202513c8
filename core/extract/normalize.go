// ABOUTME: Text normalization shared by every extraction strategy
// ABOUTME: Entity decoding, JSON unescaping, title splitting and truncation

package extract

import (
	"html"
	"regexp"
	"strings"
)

const (
	// titleMaxLength is where long titles get truncated at a word boundary.
	titleMaxLength = 100

	// titleCutLength leaves room for the ellipsis.
	titleCutLength = 97
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)

	// titleSplitPattern breaks a raw title at the first line break or at a
	// pictographic character. Platforms cram the real description after the
	// title, separated only by an emoji or newline.
	titleSplitPattern = regexp.MustCompile(`(?s)^(.*?)(?:\r?\n|\s+[\x{1F000}-\x{1FAFF}\x{2600}-\x{27BF}\x{2B00}-\x{2BFF}\x{FE0F}])\s*(.+)$`)
)

// CleanText decodes HTML entities, strips control characters and collapses
// all whitespace runs to single spaces.
func CleanText(s string) string {
	s = html.UnescapeString(s)
	s = strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// UnescapeJSONText repairs strings mined out of inline script payloads with
// regexes, which arrive still carrying JSON escape sequences.
func UnescapeJSONText(s string) string {
	replacer := strings.NewReplacer(
		`\u0026`, "&",
		`\u003c`, "<",
		`\u003e`, ">",
		`\n`, "\n",
		`\"`, `"`,
		`\/`, "/",
		`\\`, `\`,
	)
	return html.UnescapeString(replacer.Replace(s))
}

// SplitTitle separates a raw title from trailing description text. When a
// line break or emoji divides the string, the remainder is returned so the
// caller can prepend it to the description.
func SplitTitle(raw string) (title, remainder string) {
	if m := titleSplitPattern.FindStringSubmatch(raw); m != nil && strings.TrimSpace(m[1]) != "" {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return strings.TrimSpace(raw), ""
}

// TruncateTitle shortens a title near titleMaxLength, cutting at the last
// word boundary and appending an ellipsis.
func TruncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= titleMaxLength {
		return title
	}

	cut := string(runes[:titleCutLength])
	if idx := strings.LastIndex(cut, " "); idx > titleCutLength/2 {
		cut = cut[:idx]
	}
	return cut + "..."
}
