// ABOUTME: Per-platform request profiles tuned to what each host will serve
// ABOUTME: Picks user agents, referrers and cookies by platform and host class

package fetch

import (
	"net/url"
	"strings"

	"vidextract-api/core/domain"
	"vidextract-api/core/interfaces"
)

const (
	desktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36"

	// Mobile Facebook pages refuse desktop agents outright.
	mobileUserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"

	acceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"
)

// ProfileFor builds the request options for fetching target on behalf of
// the given platform.
func ProfileFor(platform domain.Platform, target string) interfaces.RequestOptions {
	host := hostOf(target)

	switch platform {
	case domain.PlatformFacebook:
		return facebookProfile(host)
	case domain.PlatformInstagram:
		return instagramProfile()
	default:
		return interfaces.RequestOptions{
			Headers: map[string]string{
				"User-Agent":      desktopUserAgent,
				"Accept":          acceptHTML,
				"Accept-Language": "en-US,en;q=0.9",
			},
		}
	}
}

func facebookProfile(host string) interfaces.RequestOptions {
	ua := desktopUserAgent
	if strings.HasPrefix(host, "m.") || strings.HasPrefix(host, "mbasic.") {
		ua = mobileUserAgent
	}
	return interfaces.RequestOptions{
		Headers: map[string]string{
			"User-Agent":      ua,
			"Accept":          acceptHTML,
			"Accept-Language": "en-US,en;q=0.9",
			"Referer":         "https://www.facebook.com/",
			// Placeholder session cookies keep the login interstitial away.
			"Cookie": "c_user=100000000000000; xs=placeholder; wd=1920x1080; fr=placeholder; datr=placeholder",
		},
	}
}

func instagramProfile() interfaces.RequestOptions {
	return interfaces.RequestOptions{
		Headers: map[string]string{
			"User-Agent":                desktopUserAgent,
			"Accept":                    acceptHTML,
			"Accept-Language":           "en-US,en;q=0.9",
			"Referer":                   "https://www.instagram.com/",
			"Sec-Fetch-Dest":            "document",
			"Sec-Fetch-Mode":            "navigate",
			"Sec-Fetch-Site":            "same-origin",
			"Upgrade-Insecure-Requests": "1",
		},
		// The JSON and HTML attempts must share session cookies or the
		// second request gets a login wall.
		UseCookieJar: true,
	}
}

// alteredReferrerProfile rebuilds a profile after a 403 or 401, swapping the
// referrer, which is usually what the edge server keyed on.
func alteredReferrerProfile(opts interfaces.RequestOptions, platform domain.Platform) interfaces.RequestOptions {
	headers := make(map[string]string, len(opts.Headers))
	for k, v := range opts.Headers {
		headers[k] = v
	}
	if headers["Referer"] == "" {
		headers["Referer"] = platformHome(platform)
	} else {
		headers["Referer"] = "https://www.google.com/"
	}
	opts.Headers = headers
	return opts
}

func platformHome(platform domain.Platform) string {
	switch platform {
	case domain.PlatformFacebook:
		return "https://www.facebook.com/"
	case domain.PlatformInstagram:
		return "https://www.instagram.com/"
	case domain.PlatformTwitter:
		return "https://twitter.com/"
	default:
		return "https://www.youtube.com/"
	}
}

func hostOf(target string) string {
	u, err := url.Parse(target)
	if err != nil {
		return ""
	}
	return u.Host
}
