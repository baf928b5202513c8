// ABOUTME: Tagged identifier type for resolved platform inputs
// ABOUTME: Downstream code switches on Kind instead of sniffing raw strings

package resolver

import (
	"fmt"

	"vidextract-api/core/domain"
)

// Kind discriminates the identifier variants a platform can produce.
type Kind string

const (
	// KindVideoID is an 11-character YouTube video ID.
	KindVideoID Kind = "video_id"

	// KindPostID is a YouTube community post ID.
	KindPostID Kind = "post_id"

	// KindChannelHandle is a YouTube @handle without the at sign.
	KindChannelHandle Kind = "channel_handle"

	// KindShortcode is an Instagram post or reel shortcode.
	KindShortcode Kind = "shortcode"

	// KindNumericID is a Facebook numeric video, post or photo ID.
	KindNumericID Kind = "numeric_id"

	// KindMibRef is a Facebook share reference from a mibextid link.
	KindMibRef Kind = "mib_ref"

	// KindWatchCode is an fb.watch short code.
	KindWatchCode Kind = "watch_code"

	// KindTweetID is a numeric tweet ID.
	KindTweetID Kind = "tweet_id"

	// KindStatusURL is a full tweet status URL. Value holds the tweet ID
	// and SourceURL keeps the link as entered.
	KindStatusURL Kind = "status_url"

	// KindShortLink is a t.co redirector code.
	KindShortLink Kind = "short_link"

	// KindPicCode is a pic.twitter.com media code.
	KindPicCode Kind = "pic_code"
)

// Identifier is the resolved, typed form of a user-supplied link or raw ID.
type Identifier struct {
	Platform  domain.Platform
	Kind      Kind
	Value     string
	SourceURL string
}

// CacheKey returns the cache key under which metadata for this identifier
// is stored.
func (id Identifier) CacheKey() string {
	return fmt.Sprintf("metadata:%s:%s:%s", id.Platform, id.Kind, id.Value)
}
