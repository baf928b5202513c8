// ABOUTME: Candidate URL construction for Facebook identifiers
// ABOUTME: The same ID is reachable under several surfaces with different walls

package fetch

import (
	"fmt"

	"vidextract-api/core/resolver"
)

// FacebookCandidates returns the ordered list of page URLs to try for a
// Facebook identifier. Earlier entries render more metadata when they load;
// later entries are mobile and short-link surfaces that dodge login walls.
func FacebookCandidates(id resolver.Identifier) []string {
	var candidates []string
	if id.SourceURL != "" {
		candidates = append(candidates, id.SourceURL)
	}

	switch id.Kind {
	case resolver.KindNumericID:
		candidates = append(candidates,
			fmt.Sprintf("https://www.facebook.com/watch/?v=%s", id.Value),
			fmt.Sprintf("https://www.facebook.com/video.php?v=%s", id.Value),
			fmt.Sprintf("https://www.facebook.com/reel/%s", id.Value),
			fmt.Sprintf("https://www.facebook.com/story.php?story_fbid=%s&id=0", id.Value),
			fmt.Sprintf("https://m.facebook.com/watch/?v=%s&_rdr", id.Value),
			fmt.Sprintf("https://m.facebook.com/reel/%s", id.Value),
			fmt.Sprintf("https://fb.watch/%s/", id.Value),
		)
	case resolver.KindMibRef:
		candidates = append(candidates,
			fmt.Sprintf("https://www.facebook.com/watch/?mibextid=%s", id.Value),
			fmt.Sprintf("https://fb.watch/?mibextid=%s", id.Value),
			fmt.Sprintf("https://www.facebook.com/search/videos/?q=%s", id.Value),
		)
	case resolver.KindWatchCode:
		candidates = append(candidates,
			fmt.Sprintf("https://fb.watch/%s/", id.Value),
		)
	}

	return dedupe(candidates)
}

func dedupe(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	out := urls[:0]
	for _, u := range urls {
		if !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	return out
}
