// ABOUTME: Metadata service orchestrating resolve, fetch, extract and validate per platform
// ABOUTME: Produces partial-tolerant metadata records with caching and bounded batch fan-out

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sync"
	"time"

	"vidextract-api/core/alternate"
	"vidextract-api/core/domain"
	coreerrors "vidextract-api/core/errors"
	"vidextract-api/core/extract"
	"vidextract-api/core/fetch"
	"vidextract-api/core/interfaces"
	"vidextract-api/core/resolver"
	"vidextract-api/core/thumbnail"
)

const (
	defaultMetadataTTL = 24 * time.Hour
	batchConcurrency   = 10
)

// statusHandlePattern pulls the account handle out of a status page URL.
var statusHandlePattern = regexp.MustCompile(`(?:twitter\.com|x\.com)/([^/]+)/status`)

// MetadataService resolves identifiers and assembles metadata records.
type MetadataService struct {
	deps       interfaces.Dependencies
	fetcher    *fetch.Fetcher
	thumbnails *thumbnail.Resolver
	adapter    *alternate.Adapter
	cacheTTL   time.Duration
}

// NewMetadataService creates a metadata service with the given dependencies.
func NewMetadataService(deps interfaces.Dependencies, cacheTTL time.Duration) *MetadataService {
	if cacheTTL <= 0 {
		cacheTTL = defaultMetadataTTL
	}
	return &MetadataService{
		deps:       deps,
		fetcher:    fetch.NewFetcher(deps),
		thumbnails: thumbnail.NewResolver(deps),
		adapter:    alternate.NewAdapter(deps),
		cacheTTL:   cacheTTL,
	}
}

// Extract resolves the input and returns the richest metadata record it can
// assemble. Missing fields are not errors; only a failure to resolve the
// input or to reach the platform at all is reported.
func (s *MetadataService) Extract(ctx context.Context, platform domain.Platform, raw string) (*domain.Metadata, error) {
	id, err := resolver.Resolve(platform, raw)
	if err != nil {
		return nil, err
	}

	if cached := s.fromCache(ctx, id); cached != nil {
		return cached, nil
	}

	var meta *domain.Metadata
	switch id.Platform {
	case domain.PlatformYouTube:
		meta, err = s.extractYouTube(ctx, id)
	case domain.PlatformFacebook:
		meta, err = s.extractFacebook(ctx, id)
	case domain.PlatformInstagram:
		meta, err = s.extractInstagram(ctx, id)
	case domain.PlatformTwitter:
		meta, err = s.extractTwitter(ctx, id)
	default:
		return nil, &coreerrors.InvalidInputError{Field: "platform", Message: "Unsupported platform."}
	}
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, id, meta)
	return meta, nil
}

// ExtractBatch extracts metadata for multiple inputs concurrently.
// Failed inputs map to nil entries.
func (s *MetadataService) ExtractBatch(ctx context.Context, platform domain.Platform, raws []string) map[string]*domain.Metadata {
	results := make(map[string]*domain.Metadata, len(raws))
	var mu sync.Mutex
	var wg sync.WaitGroup

	sem := make(chan struct{}, batchConcurrency)
	for _, raw := range raws {
		wg.Add(1)
		go func(raw string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			meta, err := s.Extract(ctx, platform, raw)
			if err != nil {
				s.deps.Logger.Debug("Batch extraction failed for input", map[string]interface{}{
					"platform": platform.String(),
					"input":    raw,
					"error":    err.Error(),
				})
				meta = nil
			}
			mu.Lock()
			results[raw] = meta
			mu.Unlock()
		}(raw)
	}
	wg.Wait()

	return results
}

func (s *MetadataService) extractYouTube(ctx context.Context, id resolver.Identifier) (*domain.Metadata, error) {
	switch id.Kind {
	case resolver.KindVideoID:
		return s.extractYouTubeVideo(ctx, id.Value)
	case resolver.KindPostID:
		body, err := s.fetcher.FetchPage(ctx, domain.PlatformYouTube, "https://www.youtube.com/post/"+id.Value)
		if err != nil {
			return nil, err
		}
		return extract.YouTubePost(body), nil
	case resolver.KindChannelHandle:
		body, _, err := s.fetcher.FetchFirst(ctx, domain.PlatformYouTube, []string{
			"https://www.youtube.com/@" + id.Value + "/about",
			"https://www.youtube.com/@" + id.Value,
		})
		if err != nil {
			return nil, err
		}
		return extract.YouTubeChannel(body), nil
	}
	return nil, &coreerrors.InvalidInputError{Field: "url", Message: "Unsupported YouTube identifier."}
}

func (s *MetadataService) extractYouTubeVideo(ctx context.Context, videoID string) (*domain.Metadata, error) {
	meta := &domain.Metadata{}
	meta.FillThumbnail(s.thumbnails.BestURL(ctx, videoID))

	watchURL := "https://www.youtube.com/watch?v=" + videoID
	body, err := s.fetcher.FetchPage(ctx, domain.PlatformYouTube, watchURL)
	if err == nil {
		meta.Merge(extract.YouTubeVideo(body))
	} else {
		s.deps.Logger.Debug("Watch page fetch failed, trying oEmbed", map[string]interface{}{
			"videoId": videoID,
			"error":   err.Error(),
		})
	}

	if meta.Title == "" {
		if oe := s.adapter.VideoOEmbed(ctx, watchURL); oe != nil {
			meta.Merge(oe)
		}
	}
	if meta.Title == "" && err != nil {
		return nil, err
	}
	meta.FillDescription("No description available for this video.")
	return meta, nil
}

func (s *MetadataService) extractFacebook(ctx context.Context, id resolver.Identifier) (*domain.Metadata, error) {
	// fb.watch codes redirect to the full video URL, which resolves to a
	// numeric ID with a richer candidate list.
	if id.Kind == resolver.KindWatchCode {
		if target := s.adapter.ExpandShortLink(ctx, "https://fb.watch/"+id.Value+"/"); target != "" {
			if expanded, rerr := resolver.Resolve(domain.PlatformFacebook, target); rerr == nil && expanded.Kind != resolver.KindWatchCode {
				id = expanded
			}
		}
	}

	meta := &domain.Metadata{}
	fetched := false
	var lastBody, lastSource string

	err := s.fetcher.FetchAll(ctx, domain.PlatformFacebook, fetch.FacebookCandidates(id), func(body, source string) bool {
		fetched = true
		lastBody, lastSource = body, source
		meta.Merge(extract.Facebook(body))
		if len(meta.Tags) > 0 || meta.Complete() {
			return false
		}
		return true
	})
	if !fetched {
		if err != nil {
			return nil, err
		}
		return nil, &coreerrors.FetchError{URL: id.SourceURL, Err: fmt.Errorf("no Facebook page variant responded")}
	}

	if meta.Description == "" && lastBody != "" {
		meta.FillDescription(extract.ReadabilityDescription(lastBody, lastSource))
	}
	if len(meta.Tags) == 0 {
		meta.FillTags(extract.FacebookFallbackTags(meta.Title))
	}
	return meta, nil
}

func (s *MetadataService) extractInstagram(ctx context.Context, id resolver.Identifier) (*domain.Metadata, error) {
	meta := &domain.Metadata{}
	postURL := "https://www.instagram.com/p/" + id.Value + "/"

	jsonBody, jsonErr := s.fetcher.FetchPage(ctx, domain.PlatformInstagram, postURL+"?__a=1&__d=dis")
	if jsonErr == nil {
		if rec, perr := extract.InstagramJSON(jsonBody); perr == nil {
			meta.Merge(rec)
		}
	}

	if !meta.Complete() {
		htmlBody, htmlErr := s.fetcher.FetchPage(ctx, domain.PlatformInstagram, postURL)
		if htmlErr == nil {
			meta.Merge(extract.InstagramHTML(htmlBody))
		} else if jsonErr != nil && meta.Title == "" {
			return nil, htmlErr
		}
	}

	if meta.Title == "" && meta.Thumbnail == "" {
		return nil, &coreerrors.ParseError{Source: "instagram", Message: "no metadata found in post page"}
	}
	meta.FillTitle("Instagram Post")
	return meta, nil
}

func (s *MetadataService) extractTwitter(ctx context.Context, id resolver.Identifier) (*domain.Metadata, error) {
	switch id.Kind {
	case resolver.KindShortLink:
		target := s.adapter.ExpandTweetShortCode(ctx, id.Value)
		if target == "" {
			return nil, resolver.UnresolvedTwitter(id.Value)
		}
		expanded, err := resolver.Resolve(domain.PlatformTwitter, target)
		if err != nil {
			return nil, err
		}
		if expanded.Kind == resolver.KindShortLink {
			return nil, resolver.UnresolvedTwitter(id.Value)
		}
		return s.extractTwitter(ctx, expanded)

	case resolver.KindPicCode:
		return &domain.Metadata{
			Title:     "Twitter Image: " + id.Value,
			Thumbnail: extract.XLogoURL,
		}, nil
	}

	if fx := s.adapter.FxTweet(ctx, id.Value); fx != nil && fx.Title != "" {
		fx.FillThumbnail(extract.XLogoURL)
		return fx, nil
	}

	statusURL := id.SourceURL
	if statusURL == "" {
		statusURL = "https://twitter.com/i/status/" + id.Value
	}

	meta := &domain.Metadata{}
	if oe := s.adapter.TweetOEmbed(ctx, statusURL); oe != nil {
		meta.Merge(oe)
	}

	if !meta.Complete() {
		s.scrapeTwitterStatus(ctx, id.Value, meta)
	}

	if meta.Thumbnail == "" {
		if handle := twitterHandle(statusURL); handle != "" {
			meta.FillThumbnail(s.probeAvatar(ctx, handle))
		}
	}

	extract.TwitterDefaults(meta, id.Value)
	return meta, nil
}

// scrapeTwitterStatus merges whatever the status pages give up. Both host
// variants are tried because they serve different meta tag sets.
func (s *MetadataService) scrapeTwitterStatus(ctx context.Context, tweetID string, meta *domain.Metadata) {
	for _, pageURL := range []string{
		"https://twitter.com/i/status/" + tweetID,
		"https://x.com/i/status/" + tweetID,
	} {
		body, err := s.fetcher.FetchPage(ctx, domain.PlatformTwitter, pageURL)
		if err != nil {
			continue
		}
		meta.Merge(extract.TwitterHTML(body, tweetID))
		if meta.Complete() {
			return
		}
	}
}

// probeAvatar returns the first avatar candidate that answers a HEAD probe.
func (s *MetadataService) probeAvatar(ctx context.Context, handle string) string {
	for _, candidate := range extract.AvatarCandidates(handle) {
		resp, err := s.deps.HTTPClient.Head(ctx, candidate)
		if err != nil {
			continue
		}
		code := resp.StatusCode()
		resp.Body().Close()
		if code == 200 || code == 203 {
			return candidate
		}
	}
	return ""
}

func twitterHandle(statusURL string) string {
	m := statusHandlePattern.FindStringSubmatch(statusURL)
	if m == nil {
		return ""
	}
	if m[1] == "i" || m[1] == "intent" {
		return ""
	}
	return m[1]
}

func (s *MetadataService) fromCache(ctx context.Context, id resolver.Identifier) *domain.Metadata {
	if s.deps.Cache == nil {
		return nil
	}
	data, err := s.deps.Cache.Get(ctx, id.CacheKey())
	if err != nil || data == nil {
		return nil
	}
	var meta domain.Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil
	}
	return &meta
}

func (s *MetadataService) toCache(ctx context.Context, id resolver.Identifier, meta *domain.Metadata) {
	if s.deps.Cache == nil || meta == nil {
		return
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, id.CacheKey(), data, s.cacheTTL); err != nil {
		s.deps.Logger.Debug("Failed to cache metadata", map[string]interface{}{
			"key":   id.CacheKey(),
			"error": err.Error(),
		})
	}
}
