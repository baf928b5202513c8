// ABOUTME: YouTube identifier resolution for videos, shorts, posts and channels
// ABOUTME: Accepts full URLs, youtu.be links and bare 11-character video IDs

package resolver

import (
	"regexp"

	"vidextract-api/core/domain"
)

var (
	ytBareIDPattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
	ytWatchPattern   = regexp.MustCompile(`(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)
	ytShortsPattern  = regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`)
	ytLivePattern    = regexp.MustCompile(`youtube\.com/live/([a-zA-Z0-9_-]{11})`)
	ytPostPattern    = regexp.MustCompile(`youtube\.com/post/([A-Za-z0-9_\-]+)`)
	ytChannelPattern = regexp.MustCompile(`youtube\.com/@([A-Za-z0-9_\-.]+)`)
)

func resolveYouTube(raw string) (Identifier, error) {
	// A bare 11-character token is a video ID as-is.
	if ytBareIDPattern.MatchString(raw) {
		return Identifier{
			Platform: domain.PlatformYouTube,
			Kind:     KindVideoID,
			Value:    raw,
		}, nil
	}

	for _, pattern := range []*regexp.Regexp{ytShortsPattern, ytLivePattern, ytWatchPattern} {
		if m := pattern.FindStringSubmatch(raw); m != nil {
			return Identifier{
				Platform:  domain.PlatformYouTube,
				Kind:      KindVideoID,
				Value:     m[1],
				SourceURL: raw,
			}, nil
		}
	}

	if m := ytPostPattern.FindStringSubmatch(raw); m != nil {
		return Identifier{
			Platform:  domain.PlatformYouTube,
			Kind:      KindPostID,
			Value:     m[1],
			SourceURL: raw,
		}, nil
	}

	if m := ytChannelPattern.FindStringSubmatch(raw); m != nil {
		return Identifier{
			Platform:  domain.PlatformYouTube,
			Kind:      KindChannelHandle,
			Value:     m[1],
			SourceURL: raw,
		}, nil
	}

	return Identifier{}, unresolved(domain.PlatformYouTube, raw, youtubeUnresolvedMessage)
}
