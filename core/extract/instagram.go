// ABOUTME: Instagram extraction from the JSON endpoint and the HTML fallback
// ABOUTME: Tags stay empty; the description only comes from the HTML meta tags

package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"vidextract-api/core/domain"
	coreerrors "vidextract-api/core/errors"
)

var (
	igAuthorPattern     = regexp.MustCompile(`content="([^"]+) on Instagram`)
	igDisplayURLPattern = regexp.MustCompile(`"display_url":"([^"]+)"`)
	igCDNPattern        = regexp.MustCompile(`https://[^"'\s\\]*cdninstagram[^"'\s\\]*`)
	igJPGPattern        = regexp.MustCompile(`https://[^"'\s\\]+\.jpg[^"'\s\\]*`)
	igScontentPattern   = regexp.MustCompile(`https://scontent[^"'\s\\]+`)
)

// instagramPayload mirrors the slice of the media JSON endpoint we read.
type instagramPayload struct {
	Items []struct {
		TakenAt        int64 `json:"taken_at"`
		ImageVersions2 struct {
			Candidates []struct {
				URL string `json:"url"`
			} `json:"candidates"`
		} `json:"image_versions2"`
		User struct {
			Username string `json:"username"`
			FullName string `json:"full_name"`
		} `json:"user"`
	} `json:"items"`
}

// InstagramJSON extracts metadata from the media JSON endpoint payload.
// Returns a ParseError when the payload is not the expected shape, which
// happens whenever Instagram serves the login page instead.
func InstagramJSON(payload string) (*domain.Metadata, error) {
	var data instagramPayload
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, &coreerrors.ParseError{Source: "instagram json", Message: err.Error()}
	}
	if len(data.Items) == 0 {
		return nil, &coreerrors.ParseError{Source: "instagram json", Message: "no items in payload"}
	}

	item := data.Items[0]
	meta := &domain.Metadata{}

	meta.FillAuthor(item.User.Username)
	if len(item.ImageVersions2.Candidates) > 0 {
		meta.FillThumbnail(item.ImageVersions2.Candidates[0].URL)
	}
	if item.TakenAt > 0 {
		meta.FillPublishDate(time.Unix(item.TakenAt, 0).UTC().Format(time.RFC3339))
	}
	if meta.Author != "" {
		meta.FillTitle(fmt.Sprintf("Instagram Post by %s", meta.Author))
	}

	return meta, nil
}

// InstagramHTML extracts metadata from the post page HTML.
func InstagramHTML(body string) *domain.Metadata {
	meta := &domain.Metadata{}
	doc, parseErr := parsePage(body)

	if parseErr == nil {
		title, _ := SplitTitle(ogContent(doc, "og:title"))
		meta.FillTitle(TruncateTitle(CleanText(title)))

		if m := igAuthorPattern.FindStringSubmatch(body); m != nil {
			meta.FillAuthor(CleanText(m[1]))
		}

		meta.FillDescription(CleanText(ogContent(doc, "og:description")))
		meta.FillDescription(CleanText(metaNameContent(doc, "description")))

		meta.FillThumbnail(ogContent(doc, "og:image"))
		meta.FillThumbnail(ogContent(doc, "og:image:secure_url"))
		meta.FillPublishDate(ogContent(doc, "article:published_time"))
	}

	if meta.Thumbnail == "" {
		meta.FillThumbnail(instagramThumbnailFromScript(body))
	}

	if meta.Title == "" && meta.Author != "" {
		meta.FillTitle(fmt.Sprintf("Instagram Post by %s", meta.Author))
	}

	return meta
}

// instagramThumbnailFromScript digs a CDN image URL out of inline script
// when the meta tags are withheld.
func instagramThumbnailFromScript(body string) string {
	if m := igDisplayURLPattern.FindStringSubmatch(body); m != nil {
		return RepairInstagramURL(m[1])
	}
	for _, pattern := range []*regexp.Regexp{igCDNPattern, igJPGPattern, igScontentPattern} {
		if m := pattern.FindString(body); m != "" {
			return RepairInstagramURL(m)
		}
	}
	return ""
}

// RepairInstagramURL undoes the escaping CDN URLs pick up inside script
// payloads.
func RepairInstagramURL(raw string) string {
	s := strings.ReplaceAll(raw, `\/`, "/")
	s = strings.ReplaceAll(s, `\u0026`, "&")
	s = strings.ReplaceAll(s, "%253A", "%3A")
	s = strings.ReplaceAll(s, "%252F", "%2F")
	return s
}
