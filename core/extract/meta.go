// ABOUTME: goquery helpers for reading meta tags and JSON-LD out of a page
// ABOUTME: Every strategy works off one parsed document per buffered body

package extract

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	coreerrors "vidextract-api/core/errors"
)

// parsePage parses a buffered HTML body into a goquery document.
func parsePage(body string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, &coreerrors.ParseError{Source: "html", Message: err.Error()}
	}
	return doc, nil
}

// ogContent returns the content of an Open Graph style property meta tag.
func ogContent(doc *goquery.Document, property string) string {
	content := ""
	doc.Find("meta[property='" + property + "']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if c, exists := s.Attr("content"); exists && c != "" {
			content = c
			return false
		}
		return true
	})
	return content
}

// metaNameContent returns the content of a name-keyed meta tag.
func metaNameContent(doc *goquery.Document, name string) string {
	content := ""
	doc.Find("meta[name='" + name + "']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if c, exists := s.Attr("content"); exists && c != "" {
			content = c
			return false
		}
		return true
	})
	return content
}

// pageTitle returns the text of the document title element.
func pageTitle(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// jsonLDBlocks decodes every JSON-LD script in the document. Malformed
// blocks are skipped.
func jsonLDBlocks(doc *goquery.Document) []map[string]interface{} {
	var blocks []map[string]interface{}
	doc.Find("script[type='application/ld+json']").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		var block map[string]interface{}
		if err := json.Unmarshal([]byte(text), &block); err == nil {
			blocks = append(blocks, block)
			return
		}
		var list []map[string]interface{}
		if err := json.Unmarshal([]byte(text), &list); err == nil {
			blocks = append(blocks, list...)
		}
	})
	return blocks
}
