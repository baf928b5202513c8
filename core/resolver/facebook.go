// ABOUTME: Facebook identifier resolution across the many URL shapes Facebook uses
// ABOUTME: Handles numeric IDs, fb.watch codes and mibextid share references

package resolver

import (
	"net/url"
	"regexp"
	"strings"

	"vidextract-api/core/domain"
)

var (
	fbBareNumericPattern = regexp.MustCompile(`^\d{5,}$`)
	fbWatchCodePattern   = regexp.MustCompile(`fb\.watch/([A-Za-z0-9_\-]+)`)

	// URL shapes that carry a numeric ID in their path. Ordered from most
	// to least specific; the first match wins.
	fbPathPatterns = []*regexp.Regexp{
		regexp.MustCompile(`facebook\.com/[^/]+/videos/(?:[^/]+/)?(\d+)`),
		regexp.MustCompile(`facebook\.com/reel/(\d+)`),
		regexp.MustCompile(`facebook\.com/[^/]+/posts/(\d+)`),
		regexp.MustCompile(`facebook\.com/groups/[^/]+/permalink/(\d+)`),
		regexp.MustCompile(`facebook\.com/groups/[^/]+/posts/(\d+)`),
		regexp.MustCompile(`facebook\.com/[^/]+/photos/[^/]+/(\d+)`),
		regexp.MustCompile(`facebook\.com/events/(\d+)`),
		regexp.MustCompile(`facebook\.com/watch/live/.*?(\d{5,})`),
		regexp.MustCompile(`fb\.gg/v/(\d+)`),
	}

	// Script endpoints whose ID lives in a query parameter, with the
	// parameter each endpoint uses.
	fbEndpointParams = map[string]string{
		"video.php":     "v",
		"watch":         "v",
		"story.php":     "story_fbid",
		"permalink.php": "story_fbid",
		"photo.php":     "fbid",
		"photo":         "fbid",
		"embed":         "video_id",
	}

	// Generic query parameters that may carry the ID, in priority order.
	fbIDParams = []string{
		"mibextid", "mbextid", "v", "video_id", "id",
		"story_fbid", "story_id", "post_id", "photo_id",
	}

	fbLastResortPattern = regexp.MustCompile(`[/=:](\d{5,})[/?&]?`)
)

func resolveFacebook(raw string) (Identifier, error) {
	// A bare numeric ID is accepted directly.
	if fbBareNumericPattern.MatchString(raw) {
		return Identifier{
			Platform: domain.PlatformFacebook,
			Kind:     KindNumericID,
			Value:    raw,
		}, nil
	}

	normalized := NormalizeFacebookURL(raw)

	// Share links minted by the mobile apps put the real reference in
	// mibextid rather than the path, so they must be inspected before the
	// generic matching gets a chance to misread them.
	if strings.Contains(normalized, "fb.watch") && strings.Contains(raw, "mibextid") {
		if id, ok := resolveFacebookShare(raw, normalized); ok {
			return id, nil
		}
	}

	for _, pattern := range fbPathPatterns {
		if m := pattern.FindStringSubmatch(normalized); m != nil {
			return facebookID(KindNumericID, m[1], normalized), nil
		}
	}

	if id, ok := facebookIDFromEndpoint(normalized); ok {
		return id, nil
	}

	if m := fbWatchCodePattern.FindStringSubmatch(normalized); m != nil {
		return facebookID(KindWatchCode, m[1], normalized), nil
	}

	if id, ok := facebookIDFromQuery(normalized); ok {
		return id, nil
	}

	// Last resort: any plausible numeric ID embedded in the URL.
	if isFacebookLink(normalized) {
		if m := fbLastResortPattern.FindStringSubmatch(normalized); m != nil {
			return facebookID(KindNumericID, m[1], normalized), nil
		}
	}

	return Identifier{}, unresolved(domain.PlatformFacebook, raw, facebookUnresolvedMessage)
}

func facebookID(kind Kind, value, source string) Identifier {
	return Identifier{
		Platform:  domain.PlatformFacebook,
		Kind:      kind,
		Value:     value,
		SourceURL: source,
	}
}

func isFacebookLink(s string) bool {
	return strings.Contains(s, "facebook.com") || strings.Contains(s, "fb.watch") ||
		strings.Contains(s, "fb.gg")
}

// resolveFacebookShare handles fb.watch links carrying a mibextid parameter.
// The raw URL is consulted for the parameter value because normalization may
// reorder the query.
func resolveFacebookShare(raw, normalized string) (Identifier, bool) {
	m := fbWatchCodePattern.FindStringSubmatch(normalized)
	if m == nil {
		return Identifier{}, false
	}
	code := m[1]

	if fbBareNumericPattern.MatchString(code) {
		return facebookID(KindNumericID, code, normalized), true
	}

	if u, err := url.Parse(strings.TrimSpace(raw)); err == nil {
		if mib := u.Query().Get("mibextid"); mib != "" {
			return facebookID(KindMibRef, mib, normalized), true
		}
	}

	return facebookID(KindWatchCode, code, normalized), true
}

// facebookIDFromEndpoint matches script endpoints like watch and story.php
// whose ID travels in a query parameter.
func facebookIDFromEndpoint(normalized string) (Identifier, bool) {
	u, err := url.Parse(normalized)
	if err != nil || !strings.Contains(u.Host, "facebook.com") {
		return Identifier{}, false
	}

	endpoint := strings.Trim(u.Path, "/")
	param, ok := fbEndpointParams[endpoint]
	if !ok {
		// Embedded players live under a prefix path.
		if strings.HasPrefix(endpoint, "video/embed") || strings.HasPrefix(endpoint, "plugins/video") {
			param = "v"
			if v := u.Query().Get("video_id"); v != "" {
				param = "video_id"
			}
		} else {
			return Identifier{}, false
		}
	}

	val := u.Query().Get(param)
	if val == "" || !fbBareNumericPattern.MatchString(val) {
		return Identifier{}, false
	}
	return facebookID(KindNumericID, val, normalized), true
}

func facebookIDFromQuery(normalized string) (Identifier, bool) {
	u, err := url.Parse(normalized)
	if err != nil || u.Host == "" || !isFacebookLink(u.Host) {
		return Identifier{}, false
	}

	q := u.Query()
	for _, param := range fbIDParams {
		val := q.Get(param)
		if val == "" {
			continue
		}
		kind := KindNumericID
		if param == "mibextid" || param == "mbextid" {
			kind = KindMibRef
		} else if !fbBareNumericPattern.MatchString(val) {
			continue
		}
		return facebookID(kind, val, normalized), true
	}

	return Identifier{}, false
}
