// ABOUTME: oEmbed lookups for tweets and YouTube videos
// ABOUTME: publish.twitter.com and publish.x.com are tried in order

package alternate

import (
	"context"
	"fmt"
	"net/url"

	"vidextract-api/core/domain"
	"vidextract-api/core/extract"
	"vidextract-api/core/tags"
	htmlutil "vidextract-api/pkg/utils/html"
)

type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	HTML         string `json:"html"`
	ThumbnailURL string `json:"thumbnail_url"`
}

var tweetOEmbedEndpoints = []string{
	"https://publish.twitter.com/oembed?url=%s",
	"https://publish.x.com/oembed?url=%s",
}

// TweetOEmbed fetches tweet metadata from the publish oEmbed endpoints.
// The embed HTML is stripped down to its text to recover title and
// description. Returns nil when no endpoint answers.
func (a *Adapter) TweetOEmbed(ctx context.Context, statusURL string) *domain.Metadata {
	for _, endpoint := range tweetOEmbedEndpoints {
		var payload oembedResponse
		if !a.fetchJSON(ctx, fmt.Sprintf(endpoint, url.QueryEscape(statusURL)), &payload) {
			continue
		}
		if payload.HTML == "" && payload.AuthorName == "" {
			continue
		}

		meta := &domain.Metadata{}
		text := extract.CleanText(htmlutil.StripHTML(payload.HTML))
		meta.FillTitle(extract.TruncateTitle(text))
		meta.FillDescription(text)
		meta.FillAuthor(payload.AuthorName)
		meta.FillTags(tags.Filter(tags.Hashtags(text)))
		return meta
	}
	return nil
}

// VideoOEmbed fetches YouTube video metadata from the public oEmbed
// endpoint. Used as a light-weight fallback when the watch page scrape
// comes back empty.
func (a *Adapter) VideoOEmbed(ctx context.Context, videoURL string) *domain.Metadata {
	endpoint := fmt.Sprintf("https://www.youtube.com/oembed?format=json&url=%s", url.QueryEscape(videoURL))

	var payload oembedResponse
	if !a.fetchJSON(ctx, endpoint, &payload) || payload.Title == "" {
		return nil
	}

	meta := &domain.Metadata{}
	meta.FillTitle(extract.TruncateTitle(extract.CleanText(payload.Title)))
	meta.FillAuthor(extract.CleanText(payload.AuthorName))
	meta.FillThumbnail(payload.ThumbnailURL)
	return meta
}
