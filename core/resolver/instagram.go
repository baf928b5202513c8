// ABOUTME: Instagram identifier resolution for post and reel shortcodes
// ABOUTME: Rejects links that clearly belong to a different platform

package resolver

import (
	"regexp"
	"strings"

	"vidextract-api/core/domain"
)

var (
	igShortcodePattern = regexp.MustCompile(`instagram\.com/(?:p|reel|reels|tv)/([A-Za-z0-9_\-]+)`)
	igTokenPattern     = regexp.MustCompile(`([A-Za-z0-9_\-]{11})`)
	urlLikePattern     = regexp.MustCompile(`^(?:https?://)?(?:www\.)?[a-z0-9\-]+\.[a-z]{2,}/`)
)

func resolveInstagram(raw string) (Identifier, error) {
	if m := igShortcodePattern.FindStringSubmatch(raw); m != nil {
		return Identifier{
			Platform:  domain.PlatformInstagram,
			Kind:      KindShortcode,
			Value:     m[1],
			SourceURL: raw,
		}, nil
	}

	// A URL that is not an instagram.com link gets the platform-mismatch
	// message rather than the generic one.
	if urlLikePattern.MatchString(strings.ToLower(raw)) && !strings.Contains(raw, "instagram.com") {
		return Identifier{}, unresolved(domain.PlatformInstagram, raw, instagramWrongSiteMessage)
	}

	if strings.Contains(raw, "instagram.com") {
		if m := igTokenPattern.FindStringSubmatch(raw); m != nil {
			return Identifier{
				Platform:  domain.PlatformInstagram,
				Kind:      KindShortcode,
				Value:     m[1],
				SourceURL: raw,
			}, nil
		}
	}

	return Identifier{}, unresolved(domain.PlatformInstagram, raw, instagramUnresolvedMessage)
}
