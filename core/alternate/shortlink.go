// ABOUTME: Redirect-only expansion for t.co and fb.watch short links
// ABOUTME: Reads the Location header and never scrapes the interstitial page

package alternate

import (
	"context"
	"fmt"

	"vidextract-api/core/interfaces"
)

// ExpandShortLink resolves a short link by observing its redirect. Returns
// the target URL, or "" when the link does not redirect.
func (a *Adapter) ExpandShortLink(ctx context.Context, shortURL string) string {
	resp, err := a.deps.HTTPClient.GetWithOptions(ctx, shortURL, interfaces.RequestOptions{
		NoFollowRedirects: true,
	})
	if err != nil {
		a.deps.Logger.Debug("Short link expansion failed", map[string]interface{}{
			"url":   shortURL,
			"error": err.Error(),
		})
		return ""
	}
	defer resp.Body().Close()

	switch resp.StatusCode() {
	case 301, 302, 303, 307, 308:
		return resp.Header("Location")
	}
	return ""
}

// ExpandTweetShortCode expands a t.co code to its target URL.
func (a *Adapter) ExpandTweetShortCode(ctx context.Context, code string) string {
	return a.ExpandShortLink(ctx, fmt.Sprintf("https://t.co/%s", code))
}
