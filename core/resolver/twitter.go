// ABOUTME: Twitter/X identifier resolution for status links, t.co and pic codes
// ABOUTME: Status links keep their original URL for the authoritative lookup

package resolver

import (
	"regexp"

	"vidextract-api/core/domain"
)

var (
	twStatusPattern  = regexp.MustCompile(`(?:twitter\.com|x\.com)/[^/]+/status(?:es)?/(\d+)`)
	twPicPattern     = regexp.MustCompile(`pic\.(?:twitter|x)\.com/([A-Za-z0-9]+)`)
	twShortPattern   = regexp.MustCompile(`t\.co/([A-Za-z0-9]+)`)
	twBareIDPattern  = regexp.MustCompile(`^(\d{10,})\D*$`)
)

func resolveTwitter(raw string) (Identifier, error) {
	if m := twStatusPattern.FindStringSubmatch(raw); m != nil {
		return Identifier{
			Platform:  domain.PlatformTwitter,
			Kind:      KindStatusURL,
			Value:     m[1],
			SourceURL: raw,
		}, nil
	}

	if m := twPicPattern.FindStringSubmatch(raw); m != nil {
		return Identifier{
			Platform:  domain.PlatformTwitter,
			Kind:      KindPicCode,
			Value:     m[1],
			SourceURL: raw,
		}, nil
	}

	if m := twShortPattern.FindStringSubmatch(raw); m != nil {
		return Identifier{
			Platform:  domain.PlatformTwitter,
			Kind:      KindShortLink,
			Value:     m[1],
			SourceURL: raw,
		}, nil
	}

	if m := twBareIDPattern.FindStringSubmatch(raw); m != nil {
		return Identifier{
			Platform: domain.PlatformTwitter,
			Kind:     KindTweetID,
			Value:    m[1],
		}, nil
	}

	return Identifier{}, unresolved(domain.PlatformTwitter, raw, twitterUnresolvedMessage)
}
