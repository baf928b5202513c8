// ABOUTME: fxtwitter lookup, the authoritative source for tweet metadata
// ABOUTME: A successful response short-circuits every scraping fallback

package alternate

import (
	"context"
	"fmt"

	"vidextract-api/core/domain"
	"vidextract-api/core/extract"
	"vidextract-api/core/tags"
)

type fxResponse struct {
	Code  int `json:"code"`
	Tweet struct {
		Text      string `json:"text"`
		CreatedAt string `json:"created_at"`
		Author    struct {
			Name       string `json:"name"`
			ScreenName string `json:"screen_name"`
		} `json:"author"`
		Media struct {
			Photos []struct {
				URL string `json:"url"`
			} `json:"photos"`
			Videos []struct {
				ThumbnailURL string `json:"thumbnail_url"`
			} `json:"videos"`
			All []struct {
				URL          string `json:"url"`
				ThumbnailURL string `json:"thumbnail_url"`
			} `json:"all"`
		} `json:"media"`
	} `json:"tweet"`
}

// FxTweet fetches tweet metadata from fxtwitter. Returns nil when the
// service is unreachable or does not know the tweet.
func (a *Adapter) FxTweet(ctx context.Context, tweetID string) *domain.Metadata {
	var payload fxResponse
	endpoint := fmt.Sprintf("https://api.fxtwitter.com/status/%s", tweetID)
	if !a.fetchJSON(ctx, endpoint, &payload) || payload.Code != 200 {
		return nil
	}

	tweet := payload.Tweet
	meta := &domain.Metadata{}

	text := extract.CleanText(tweet.Text)
	meta.FillTitle(extract.TruncateTitle(text))
	meta.FillDescription(text)

	if tweet.Author.Name != "" {
		meta.FillAuthor(fmt.Sprintf("%s (@%s)", tweet.Author.Name, tweet.Author.ScreenName))
	}
	meta.FillPublishDate(tweet.CreatedAt)

	switch {
	case len(tweet.Media.Photos) > 0:
		meta.FillThumbnail(tweet.Media.Photos[0].URL)
	case len(tweet.Media.Videos) > 0:
		meta.FillThumbnail(tweet.Media.Videos[0].ThumbnailURL)
	case len(tweet.Media.All) > 0:
		if tweet.Media.All[0].ThumbnailURL != "" {
			meta.FillThumbnail(tweet.Media.All[0].ThumbnailURL)
		} else {
			meta.FillThumbnail(tweet.Media.All[0].URL)
		}
	}

	meta.FillTags(tags.Filter(tags.Hashtags(tweet.Text)))
	return meta
}
