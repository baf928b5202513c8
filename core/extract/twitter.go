// ABOUTME: Twitter/X page extraction used when the sidecar services fail
// ABOUTME: Scrapes og and twitter meta tags plus inline media URLs

package extract

import (
	"fmt"
	"regexp"
	"strings"

	"vidextract-api/core/domain"
	"vidextract-api/core/tags"
)

// XLogoURL is the static fallback thumbnail for tweets with no media.
const XLogoURL = "https://upload.wikimedia.org/wikipedia/commons/5/57/X_logo_2023_%28white%29.png"

var (
	twTitleSuffixPattern = regexp.MustCompile(`\s*[/|]\s*(?:Twitter|X)\s*$`)
	twMediaPattern       = regexp.MustCompile(`https://pbs\.twimg\.com/media/[A-Za-z0-9_\-]+`)
)

// TwitterHTML extracts tweet metadata from a twitter.com or x.com page body.
func TwitterHTML(body, tweetID string) *domain.Metadata {
	meta := &domain.Metadata{}
	doc, parseErr := parsePage(body)
	if parseErr != nil {
		return meta
	}

	rawTitle := ogContent(doc, "og:title")
	if rawTitle == "" {
		rawTitle = metaNameContent(doc, "twitter:title")
	}
	if rawTitle == "" {
		rawTitle = twTitleSuffixPattern.ReplaceAllString(pageTitle(doc), "")
	}
	title, remainder := SplitTitle(rawTitle)
	meta.FillTitle(TruncateTitle(CleanText(title)))

	desc := ogContent(doc, "og:description")
	if desc == "" {
		desc = metaNameContent(doc, "twitter:description")
	}
	if desc == "" {
		desc = metaNameContent(doc, "description")
	}
	desc = strings.Trim(CleanText(desc), `“”"`)
	if remainder != "" {
		desc = strings.TrimSpace(CleanText(remainder) + " " + desc)
	}
	meta.FillDescription(desc)

	image := ogContent(doc, "og:image")
	if image == "" {
		image = metaNameContent(doc, "twitter:image")
	}
	if image == "" {
		if m := twMediaPattern.FindString(body); m != "" {
			image = m + "?format=jpg&name=large"
		}
	}
	meta.FillThumbnail(image)

	meta.FillTags(tags.Filter(tags.Hashtags(meta.Title + " " + meta.Description)))

	if meta.Title == "" && tweetID != "" {
		meta.FillTitle(fmt.Sprintf("Twitter/X Post: %s", tweetID))
	}
	return meta
}

// TwitterDefaults fills the terminal fallbacks for a tweet record: the X
// logo thumbnail and a generic title.
func TwitterDefaults(meta *domain.Metadata, tweetID string) {
	if tweetID != "" {
		meta.FillTitle(fmt.Sprintf("Twitter/X Post: %s", tweetID))
	}
	meta.FillThumbnail(XLogoURL)
}

// AvatarCandidates returns profile image probe URLs for a handle, tried in
// order until one responds.
func AvatarCandidates(handle string) []string {
	if handle == "" {
		return nil
	}
	return []string{
		fmt.Sprintf("https://unavatar.io/x/%s", handle),
		fmt.Sprintf("https://unavatar.io/twitter/%s", handle),
		fmt.Sprintf("https://twitter.com/%s/profile_image?size=original", handle),
	}
}
