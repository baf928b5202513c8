// ABOUTME: YouTube thumbnail resolution down the quality ladder
// ABOUTME: HEAD-probes each rung and falls back to the always-present default

package thumbnail

import (
	"context"
	"fmt"

	"vidextract-api/core/interfaces"
)

// qualityLadder lists thumbnail variants best-first. The final rung exists
// for every video, so it is returned without probing.
var qualityLadder = []string{
	"maxresdefault",
	"sddefault",
	"hqdefault",
	"mqdefault",
	"default",
}

// Resolver finds the best available thumbnail for a YouTube video ID.
type Resolver struct {
	deps interfaces.Dependencies
}

// NewResolver creates a new thumbnail resolver
func NewResolver(deps interfaces.Dependencies) *Resolver {
	return &Resolver{deps: deps}
}

// BestURL returns the highest-quality thumbnail URL that exists for the
// video. Never returns an empty string for a non-empty ID.
func (r *Resolver) BestURL(ctx context.Context, videoID string) string {
	if videoID == "" {
		return ""
	}

	for i, quality := range qualityLadder {
		candidate := thumbnailURL(videoID, quality)
		if i == len(qualityLadder)-1 {
			return candidate
		}
		if r.exists(ctx, candidate) {
			return candidate
		}
	}

	// Unreachable, but the contract is a non-empty URL.
	return thumbnailURL(videoID, "default")
}

// exists probes a thumbnail variant with a HEAD request. 200 and 203 both
// count; YouTube serves 203 from some edge caches.
func (r *Resolver) exists(ctx context.Context, url string) bool {
	resp, err := r.deps.HTTPClient.Head(ctx, url)
	if err != nil {
		r.deps.Logger.Debug("Thumbnail probe failed", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return false
	}
	if body := resp.Body(); body != nil {
		body.Close()
	}
	return resp.StatusCode() == 200 || resp.StatusCode() == 203
}

func thumbnailURL(videoID, quality string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/%s.jpg", videoID, quality)
}
