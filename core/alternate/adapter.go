// ABOUTME: External sidecar services consulted before or instead of scraping
// ABOUTME: Every lookup degrades silently to nil; adapters never fail a request

package alternate

import (
	"context"
	"encoding/json"
	"io"

	"vidextract-api/core/interfaces"
)

// Adapter talks to public sidecar services (fxtwitter, oEmbed endpoints,
// short-link redirectors) that expose metadata without scraping.
type Adapter struct {
	deps interfaces.Dependencies
}

// NewAdapter creates a new external service adapter
func NewAdapter(deps interfaces.Dependencies) *Adapter {
	return &Adapter{deps: deps}
}

// fetchJSON retrieves a URL and decodes the JSON response into out.
// Returns false on any transport, status or decode failure.
func (a *Adapter) fetchJSON(ctx context.Context, url string, out interface{}) bool {
	resp, err := a.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		a.deps.Logger.Debug("External service unreachable", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return false
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		a.deps.Logger.Debug("External service returned non-success", map[string]interface{}{
			"url":    url,
			"status": resp.StatusCode(),
		})
		return false
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body(), 1024*1024))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		a.deps.Logger.Debug("External service payload not decodable", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return false
	}
	return true
}
