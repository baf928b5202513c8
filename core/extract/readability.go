// ABOUTME: Readability-based description fallback for pages whose meta tags are withheld
// ABOUTME: Extracts a short excerpt from the article body text

package extract

import (
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"vidextract-api/core/tags"
)

const excerptMaxLength = 300

// ReadabilityDescription runs article extraction over the page body and
// returns a short excerpt, or empty when nothing readable is found.
func ReadabilityDescription(body, pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}

	article, err := readability.FromReader(strings.NewReader(body), parsed)
	if err != nil {
		return ""
	}

	text := CleanText(article.Excerpt)
	if text == "" {
		text = CleanText(article.TextContent)
	}
	if !tags.IsNaturalLanguageText(text) {
		return ""
	}
	if len(text) > excerptMaxLength {
		cut := strings.LastIndex(text[:excerptMaxLength], " ")
		if cut < excerptMaxLength/2 {
			cut = excerptMaxLength
		}
		text = text[:cut] + "..."
	}
	return text
}
