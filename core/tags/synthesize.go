// ABOUTME: Fallback tag synthesis when a page exposes no explicit tags
// ABOUTME: Mines titles for proper nouns and body text for natural-language topics

package tags

import (
	"regexp"
	"strings"
	"unicode"
)

// stopwords are common function words that never make useful tags.
var stopwords = map[string]bool{
	"the": true, "and": true, "that": true, "have": true, "for": true,
	"not": true, "this": true, "with": true, "you": true, "from": true,
	"they": true, "will": true, "would": true, "there": true, "their": true,
	"what": true, "about": true, "which": true, "when": true, "make": true,
	"like": true, "time": true, "just": true, "know": true, "take": true,
	"into": true, "your": true, "some": true, "could": true, "them": true,
	"than": true, "then": true, "look": true, "only": true, "come": true,
	"over": true, "think": true, "also": true, "back": true, "after": true,
	"work": true, "first": true, "well": true, "even": true, "want": true,
	"because": true, "these": true, "give": true, "most": true, "video": true,
}

var (
	hashtagPattern   = regexp.MustCompile(`#([A-Za-z0-9_\x{00C0}-\x{00FF}]{2,30})`)
	mixedCasePattern = regexp.MustCompile(`[a-z][A-Z]`)
	wordTrimCutset   = `.,!?;:"'()[]{}|#@`
)

// Hashtags extracts hashtag bodies from text, accented letters included.
func Hashtags(text string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// Synthesize derives tags for a record that exposed none. Title words that
// look like proper nouns or subjects come first; body text is mined for
// natural-language topics when the title yields nothing. fallback is used as
// the final tag when both sources come up empty.
func Synthesize(title, bodyText, fallback string) []string {
	var candidates []string

	for _, word := range strings.Fields(title) {
		word = strings.Trim(word, wordTrimCutset)
		if isProperNounOrSubject(word) {
			candidates = append(candidates, word)
		}
	}

	if tagged := Filter(candidates); len(tagged) > 0 {
		return tagged
	}

	if bodyText != "" {
		if tagged := Filter(naturalPhrases(bodyText)); len(tagged) > 0 {
			return tagged
		}
	}

	if fallback != "" {
		return []string{fallback}
	}
	return nil
}

// isProperNounOrSubject reports whether a title word is worth keeping as a
// topic: not a stopword, and either capitalized, camel-cased or long enough
// to be a content word.
func isProperNounOrSubject(word string) bool {
	if len([]rune(word)) < minTagLength {
		return false
	}
	if stopwords[strings.ToLower(word)] {
		return false
	}

	runes := []rune(word)
	if unicode.IsUpper(runes[0]) {
		return true
	}
	if mixedCasePattern.MatchString(word) {
		return true
	}
	return len(runes) > 5
}

// IsNaturalLanguageText reports whether a string reads like prose rather
// than markup or minified script.
func IsNaturalLanguageText(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, " ") {
		return false
	}

	length := len([]rune(s))
	var letters, special int
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r) || unicode.IsSpace(r):
		default:
			special++
		}
	}

	return letters*3 >= length && special*5 <= length
}

// naturalPhrases splits body text into short phrases that read like prose.
func naturalPhrases(body string) []string {
	var out []string
	for _, line := range strings.FieldsFunc(body, func(r rune) bool {
		return r == '\n' || r == '.' || r == '|'
	}) {
		line = strings.TrimSpace(line)
		if len(line) > maxTagLength || !IsNaturalLanguageText(line) {
			continue
		}
		out = append(out, line)
		if len(out) >= MaxTags {
			break
		}
	}
	return out
}
