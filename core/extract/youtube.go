// ABOUTME: YouTube extraction for watch pages, community posts and channels
// ABOUTME: Watch pages carry their metadata in inline player JSON, not meta tags

package extract

import (
	"regexp"
	"strings"

	"vidextract-api/core/domain"
	"vidextract-api/core/tags"
)

const noDescriptionFallback = "No description available for this video."

var (
	ytDescriptionPattern = regexp.MustCompile(`"description":\{"simpleText":"((?:[^"\\]|\\.)*)"`)
	ytShortDescPattern   = regexp.MustCompile(`"shortDescription":"((?:[^"\\]|\\.)*)"`)
	ytOwnerPattern       = regexp.MustCompile(`"ownerChannelName":"((?:[^"\\]|\\.)*)"`)
	ytPublishPattern     = regexp.MustCompile(`"publishDate":"([^"]+)"`)
	ytKeywordsPattern    = regexp.MustCompile(`"keywords":\[(.*?)\]`)

	ytChannelDescPatterns = []*regexp.Regexp{
		regexp.MustCompile(`"channelDescription":"((?:[^"\\]|\\.)*)"`),
		regexp.MustCompile(`"ownerChannelDescription":"((?:[^"\\]|\\.)*)"`),
		regexp.MustCompile(`"description":"((?:[^"\\]|\\.)*)"`),
	}
	ytAvatarPattern = regexp.MustCompile(`"avatar":\{"thumbnails":\[\{"url":"([^"]+)"`)
	ytBannerPattern = regexp.MustCompile(`"banner":\{"thumbnails":\[\{"url":"([^"]+)"`)
	ytPostImgPattern = regexp.MustCompile(`https://yt3?\.[a-z]+\.com/[^"'\s]+/post/[^"'\s]+`)
)

// YouTubeVideo extracts metadata from a watch page body. The thumbnail is
// filled by the quality ladder before this runs, so it is never touched here.
func YouTubeVideo(body string) *domain.Metadata {
	meta := &domain.Metadata{}

	if doc, err := parsePage(body); err == nil {
		rawTitle := strings.TrimSuffix(pageTitle(doc), " - YouTube")
		title, remainder := SplitTitle(rawTitle)
		meta.FillTitle(TruncateTitle(CleanText(title)))
		if remainder != "" {
			meta.FillDescription(CleanText(remainder))
		}
	}

	for _, pattern := range []*regexp.Regexp{ytDescriptionPattern, ytShortDescPattern} {
		if m := pattern.FindStringSubmatch(body); m != nil {
			desc := CleanText(UnescapeJSONText(m[1]))
			if meta.Description != "" && desc != "" {
				meta.Description = meta.Description + " " + desc
			} else {
				meta.FillDescription(desc)
			}
			break
		}
	}

	if m := ytOwnerPattern.FindStringSubmatch(body); m != nil {
		meta.FillAuthor(CleanText(UnescapeJSONText(m[1])))
	}
	if m := ytPublishPattern.FindStringSubmatch(body); m != nil {
		meta.FillPublishDate(m[1])
	}
	if m := ytKeywordsPattern.FindStringSubmatch(body); m != nil {
		meta.FillTags(tags.Filter(splitQuotedList(m[1])))
	}

	meta.FillDescription(noDescriptionFallback)
	return meta
}

// YouTubePost extracts metadata for a community post, which does expose
// usable Open Graph tags.
func YouTubePost(body string) *domain.Metadata {
	meta := &domain.Metadata{}
	doc, err := parsePage(body)
	if err != nil {
		return meta
	}

	title, remainder := SplitTitle(ogContent(doc, "og:title"))
	meta.FillTitle(TruncateTitle(CleanText(title)))

	desc := CleanText(ogContent(doc, "og:description"))
	if remainder != "" {
		desc = strings.TrimSpace(CleanText(remainder) + " " + desc)
	}
	meta.FillDescription(desc)

	meta.FillThumbnail(ogContent(doc, "og:image"))
	if meta.Thumbnail == "" {
		if m := ytPostImgPattern.FindString(body); m != "" {
			meta.FillThumbnail(m)
		}
	}
	meta.FillAuthor(CleanText(ogContent(doc, "og:site_name")))
	meta.FillTags(tags.Filter(tags.Hashtags(meta.Title + " " + meta.Description)))
	return meta
}

// YouTubeChannel extracts channel metadata from an @handle page. Channel
// pages bury the description in several competing JSON keys; a candidate
// replaces the current best only when it is meaningfully longer.
func YouTubeChannel(body string) *domain.Metadata {
	meta := &domain.Metadata{}
	doc, parseErr := parsePage(body)

	best := ""
	if parseErr == nil {
		if title := metaNameContent(doc, "title"); title != "" {
			meta.FillTitle(TruncateTitle(CleanText(title)))
		} else {
			meta.FillTitle(TruncateTitle(CleanText(ogContent(doc, "og:title"))))
		}
		meta.FillAuthor(meta.Title)

		best = considerDescription(best, metaNameContent(doc, "description"))
		best = considerDescription(best, ogContent(doc, "og:description"))
		for _, block := range jsonLDBlocks(doc) {
			if d, ok := block["description"].(string); ok {
				best = considerDescription(best, d)
			}
		}
	}
	for _, pattern := range ytChannelDescPatterns {
		if m := pattern.FindStringSubmatch(body); m != nil {
			best = considerDescription(best, UnescapeJSONText(m[1]))
		}
	}
	meta.Description = best

	if m := ytAvatarPattern.FindStringSubmatch(body); m != nil {
		meta.FillThumbnail(UnescapeJSONText(m[1]))
	} else if m := ytBannerPattern.FindStringSubmatch(body); m != nil {
		meta.FillThumbnail(UnescapeJSONText(m[1]))
	} else if parseErr == nil {
		meta.FillThumbnail(ogContent(doc, "og:image"))
	}

	meta.FillTags(tags.Filter(tags.Hashtags(meta.Description)))
	return meta
}

// considerDescription keeps candidate over current only when it adds at
// least 20% more text. Channel pages repeat truncated copies of the same
// blurb under several keys.
func considerDescription(current, candidate string) string {
	candidate = CleanText(candidate)
	if candidate == "" {
		return current
	}
	if current == "" || float64(len(candidate)) > 1.2*float64(len(current)) {
		return candidate
	}
	return current
}

func splitQuotedList(list string) []string {
	var out []string
	for _, part := range strings.Split(list, `","`) {
		part = strings.Trim(part, `"`)
		part = CleanText(UnescapeJSONText(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
