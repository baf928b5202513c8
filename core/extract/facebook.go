// ABOUTME: Facebook extraction with title cleanup and the layered tag hunt
// ABOUTME: Facebook pages mix meta tags, JSON-LD and inline script payloads

package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"vidextract-api/core/domain"
	"vidextract-api/core/tags"
)

var (
	fbTitleSuffixes = []string{" | Facebook", " - Facebook", " - Meta", " | Meta"}

	// Decorations Facebook appends to video titles.
	fbByLinePattern = regexp.MustCompile(`\s*\|\s*By\s+[^|]+\s*$`)
	fbCountPattern  = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?[KM]?\s+(?:views|reactions|shares|comments|likes)\b\s*[·,;]?\s*`)

	fbDescJSONPattern  = regexp.MustCompile(`"description":"((?:[^"\\]|\\.)*)"`)
	fbOwnerJSONPattern = regexp.MustCompile(`"ownerName":"((?:[^"\\]|\\.)*)"`)
	fbThumbJSONPattern = regexp.MustCompile(`"thumbnailImage":\{"uri":"([^"]+)"`)
	fbBgImagePattern   = regexp.MustCompile(`background-image:\s*url\('([^']+)'\)`)

	fbVideoTagsPattern = regexp.MustCompile(`"(?:VideoTags|videoTags)":\s*\{"edges":\[(.*?)\]`)
	fbTagListPattern   = regexp.MustCompile(`"(?:tagList|tags)":\[(.*?)\]`)
	fbTagItemPattern   = regexp.MustCompile(`"(?:text|name)":"((?:[^"\\]|\\.)*)"`)
	fbTagExpansion     = regexp.MustCompile(`tag_expansion_data[^\[]*\[(.*?)\]`)
	fbVideoInfoPattern = regexp.MustCompile(`\{"__typename":"VideoInfo"[^}]*?"text":"((?:[^"\\]|\\.)*)"`)
)

// Facebook extracts metadata from one Facebook page body. Fields not found
// stay empty so the caller can merge across candidate surfaces.
func Facebook(body string) *domain.Metadata {
	meta := &domain.Metadata{}
	doc, parseErr := parsePage(body)

	rawTitle := ""
	if parseErr == nil {
		rawTitle = ogContent(doc, "og:title")
		if rawTitle == "" {
			rawTitle = pageTitle(doc)
		}
	}
	rawTitle = cleanFacebookTitle(rawTitle)

	title, remainder := SplitTitle(rawTitle)
	meta.FillTitle(TruncateTitle(CleanText(title)))

	if parseErr == nil {
		desc := ogContent(doc, "og:description")
		if desc == "" {
			if m := fbDescJSONPattern.FindStringSubmatch(body); m != nil {
				desc = UnescapeJSONText(m[1])
			}
		}
		desc = CleanText(desc)
		if remainder != "" {
			desc = strings.TrimSpace(CleanText(remainder) + " " + desc)
		}
		meta.FillDescription(desc)

		author := CleanText(ogContent(doc, "og:site_name"))
		if author == "" || author == "Facebook" || author == "Meta" {
			if m := fbOwnerJSONPattern.FindStringSubmatch(body); m != nil {
				author = CleanText(UnescapeJSONText(m[1]))
			} else {
				author = ""
			}
		}
		meta.FillAuthor(author)

		meta.FillThumbnail(facebookThumbnail(doc, body))
		meta.FillPublishDate(ogContent(doc, "article:published_time"))
		meta.FillTags(facebookTags(doc, body, meta.Title, meta.Description))
	}

	return meta
}

// FacebookFallbackTags synthesizes tags when no candidate surface produced
// any: proper nouns from the title, then the label tag.
func FacebookFallbackTags(title string) []string {
	return tags.Synthesize(title, "", "Facebook Video")
}

// cleanFacebookTitle strips the site suffix and engagement decorations, and
// rejects titles that are nothing but the site name.
func cleanFacebookTitle(raw string) string {
	title := strings.TrimSpace(raw)
	for _, suffix := range fbTitleSuffixes {
		title = strings.TrimSuffix(title, suffix)
	}
	title = fbByLinePattern.ReplaceAllString(title, "")
	title = fbCountPattern.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)

	if title == "Facebook" || title == "Meta" || title == "Watch" {
		return ""
	}
	return title
}

func facebookThumbnail(doc *goquery.Document, body string) string {
	if thumb := ogContent(doc, "og:image"); thumb != "" {
		return thumb
	}
	if m := fbThumbJSONPattern.FindStringSubmatch(body); m != nil {
		return UnescapeJSONText(strings.ReplaceAll(m[1], `\`, ""))
	}
	if m := fbBgImagePattern.FindStringSubmatch(body); m != nil {
		return UnescapeJSONText(m[1])
	}
	return ""
}

// facebookTags runs the tag strategies in order and returns the first batch
// that validates. Hashtags found in the title or description ride along
// with whichever strategy wins.
func facebookTags(doc *goquery.Document, body, title, description string) []string {
	hashtags := tags.Hashtags(title + " " + description)

	strategies := [](func() []string){
		func() []string { return facebookMetaTags(doc) },
		func() []string { return facebookJSONLDTags(doc) },
		func() []string { return facebookScriptTags(body) },
		func() []string { return facebookExpansionTags(body) },
		func() []string { return facebookVideoInfoTags(body) },
		func() []string { return hashtags },
		func() []string { return properNouns(description) },
	}

	for _, strategy := range strategies {
		candidates := strategy()
		if len(candidates) == 0 {
			continue
		}
		if filtered := tags.Filter(append(candidates, hashtags...)); len(filtered) > 0 {
			return filtered
		}
	}

	return tags.Filter(facebookDivTextTags(doc))
}

func facebookMetaTags(doc *goquery.Document) []string {
	var out []string
	for _, property := range []string{"video:tag", "og:video:tag", "article:tag"} {
		doc.Find("meta[property='" + property + "']").Each(func(_ int, s *goquery.Selection) {
			if c, exists := s.Attr("content"); exists && c != "" {
				out = append(out, c)
			}
		})
	}
	if keywords := metaNameContent(doc, "keywords"); keywords != "" {
		for _, part := range strings.Split(keywords, ",") {
			out = append(out, strings.TrimSpace(part))
		}
	}
	return out
}

func facebookJSONLDTags(doc *goquery.Document) []string {
	var out []string
	for _, block := range jsonLDBlocks(doc) {
		switch keywords := block["keywords"].(type) {
		case string:
			for _, part := range strings.Split(keywords, ",") {
				out = append(out, strings.TrimSpace(part))
			}
		case []interface{}:
			for _, item := range keywords {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

func facebookScriptTags(body string) []string {
	var out []string
	for _, pattern := range []*regexp.Regexp{fbVideoTagsPattern, fbTagListPattern} {
		m := pattern.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		for _, item := range fbTagItemPattern.FindAllStringSubmatch(m[1], -1) {
			out = append(out, CleanText(UnescapeJSONText(item[1])))
		}
		if len(out) == 0 {
			// The list may be plain strings rather than objects.
			out = append(out, splitQuotedList(m[1])...)
		}
		if len(out) > 0 {
			break
		}
	}
	return out
}

func facebookExpansionTags(body string) []string {
	m := fbTagExpansion.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	var raw []string
	if err := json.Unmarshal([]byte("["+m[1]+"]"), &raw); err != nil {
		return splitQuotedList(m[1])
	}
	return raw
}

func facebookVideoInfoTags(body string) []string {
	var out []string
	for _, m := range fbVideoInfoPattern.FindAllStringSubmatch(body, -1) {
		out = append(out, CleanText(UnescapeJSONText(m[1])))
	}
	return out
}

// facebookDivTextTags is the last resort: short div texts that read like
// prose instead of interface chrome.
func facebookDivTextTags(doc *goquery.Document) []string {
	if doc == nil {
		return nil
	}
	var out []string
	doc.Find("div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := CleanText(s.Clone().Children().Remove().End().Text())
		if len(text) >= 2 && len(text) <= 40 && tags.IsNaturalLanguageText(text) {
			out = append(out, text)
		}
		return len(out) < tags.MaxTags
	})
	return out
}

// properNouns mines capitalized words out of prose text.
func properNouns(text string) []string {
	return tags.Synthesize(text, "", "")
}
