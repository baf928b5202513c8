// ABOUTME: Tag validation rules that separate real topic tags from page debris
// ABOUTME: Scraped pages leak CSS classes, hex IDs and UI counters into tag sources

package tags

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	minTagLength = 2
	maxTagLength = 40

	// MaxTags caps how many tags a record carries.
	MaxTags = 10
)

var (
	pureNumberPattern = regexp.MustCompile(`^\d+$`)
	hexTokenPattern   = regexp.MustCompile(`(?i)^[0-9a-f]{4,}$`)
	hexPrefixPattern  = regexp.MustCompile(`(?i)^x[0-9a-f]{2,4}$`)
	cssClassPattern   = regexp.MustCompile(`(?i)^[a-z][a-z0-9_]*[0-9]{1,2}$`)
	uiMetricPattern   = regexp.MustCompile(`(?i)^\d+\.?\d*[KM]?\s+(reactions|shares|views|comments|likes|followers)$`)
)

// denylist holds markup vocabulary and tech abbreviations that show up when
// tag mining catches a script or stylesheet fragment.
var denylist = map[string]bool{
	"div": true, "span": true, "img": true, "src": true, "href": true,
	"btn": true, "nav": true, "css": true, "html": true, "php": true,
	"js": true, "json": true, "xml": true, "ajax": true, "dom": true,
	"url": true, "uri": true, "http": true, "https": true, "www": true,
	"com": true, "net": true, "org": true, "api": true, "cdn": true,
	"px": true, "em": true, "rgb": true, "rgba": true, "var": true,
	"gif": true, "jpg": true, "jpeg": true, "png": true, "svg": true,
	"webp": true, "mp4": true, "ui": true, "ux": true, "app": true,
	"async": true, "defer": true, "null": true, "true": true, "false": true,
}

// Valid reports whether a candidate string is a usable topic tag.
func Valid(tag string) bool {
	tag = strings.TrimSpace(tag)
	length := len([]rune(tag))
	if length < minTagLength || length > maxTagLength {
		return false
	}

	if denylist[strings.ToLower(tag)] {
		return false
	}

	if pureNumberPattern.MatchString(tag) ||
		hexTokenPattern.MatchString(tag) ||
		hexPrefixPattern.MatchString(tag) ||
		cssClassPattern.MatchString(tag) ||
		uiMetricPattern.MatchString(tag) {
		return false
	}

	var letters, special int
	for _, r := range tag {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r) || unicode.IsSpace(r):
		default:
			special++
		}
	}

	if letters == 0 {
		return false
	}
	// More symbols than substance means a code fragment, not a topic.
	if special*2 >= length {
		return false
	}

	return true
}

// Filter validates and dedupes candidate tags, capping the result at MaxTags.
// Dedup is case-insensitive; the first spelling seen is kept.
func Filter(candidates []string) []string {
	var out []string
	seen := make(map[string]bool, len(candidates))

	for _, tag := range candidates {
		tag = strings.TrimSpace(tag)
		if !Valid(tag) {
			continue
		}
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
		if len(out) >= MaxTags {
			break
		}
	}

	return out
}
