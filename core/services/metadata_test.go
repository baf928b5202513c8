package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"vidextract-api/core/domain"
	coreerrors "vidextract-api/core/errors"
)

const watchPageBody = `<html><head><title>Never Gonna Give You Up - YouTube</title></head>
<body><script>var ytInitialPlayerResponse = {"videoDetails":{"shortDescription":"The official video.","keywords":["Rick Astley","music video"]},"ownerChannelName":"Rick Astley","publishDate":"2009-10-25"};</script></body></html>`

func TestExtract_YouTubeVideoEndToEnd(t *testing.T) {
	client := newRoutingClient()
	client.route("https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", &mockResponse{statusCode: 200})
	client.route("https://www.youtube.com/watch?v=dQw4w9WgXcQ", &mockResponse{statusCode: 200, body: watchPageBody})

	svc := newTestService(client, newMemCache())
	meta, err := svc.Extract(context.Background(), domain.PlatformYouTube, "https://youtu.be/dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if meta.Title != "Never Gonna Give You Up" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Thumbnail != "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg" {
		t.Errorf("Thumbnail = %q", meta.Thumbnail)
	}
	if meta.Author != "Rick Astley" {
		t.Errorf("Author = %q", meta.Author)
	}
	if meta.Description != "The official video." {
		t.Errorf("Description = %q", meta.Description)
	}
}

func TestExtract_YouTubeVideoDefaultDescription(t *testing.T) {
	client := newRoutingClient()
	client.route("https://img.youtube.com/vi/abcdefghijk/maxresdefault.jpg", &mockResponse{statusCode: 200})
	client.route("https://www.youtube.com/watch?v=abcdefghijk", &mockResponse{statusCode: 200,
		body: "<html><head><title>Bare Title - YouTube</title></head><body></body></html>"})

	svc := newTestService(client, nil)
	meta, err := svc.Extract(context.Background(), domain.PlatformYouTube, "abcdefghijk")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if meta.Description != "No description available for this video." {
		t.Errorf("Description = %q", meta.Description)
	}
}

func TestExtract_UnresolvedInputMakesNoRequests(t *testing.T) {
	client := newRoutingClient()
	svc := newTestService(client, nil)

	_, err := svc.Extract(context.Background(), domain.PlatformYouTube, "not a url at all")
	if !coreerrors.IsUnresolvedIdentifier(err) {
		t.Fatalf("expected UnresolvedIdentifierError, got %v", err)
	}
	if client.requestCount() != 0 {
		t.Errorf("expected no network calls, got %d", client.requestCount())
	}
}

func TestExtract_CacheHitSkipsNetwork(t *testing.T) {
	cache := newMemCache()
	cached, _ := json.Marshal(&domain.Metadata{Title: "Cached Title", Thumbnail: "https://example.com/t.jpg"})
	cache.data["metadata:youtube:video_id:dQw4w9WgXcQ"] = cached

	client := newRoutingClient()
	svc := newTestService(client, cache)

	meta, err := svc.Extract(context.Background(), domain.PlatformYouTube, "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if meta.Title != "Cached Title" {
		t.Errorf("Title = %q", meta.Title)
	}
	if client.requestCount() != 0 {
		t.Errorf("expected no network calls on cache hit, got %d", client.requestCount())
	}
}

func TestExtract_ResultIsCached(t *testing.T) {
	cache := newMemCache()
	client := newRoutingClient()
	client.route("https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", &mockResponse{statusCode: 200})
	client.route("https://www.youtube.com/watch?v=dQw4w9WgXcQ", &mockResponse{statusCode: 200, body: watchPageBody})

	svc := newTestService(client, cache)
	if _, err := svc.Extract(context.Background(), domain.PlatformYouTube, "dQw4w9WgXcQ"); err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if _, ok := cache.data["metadata:youtube:video_id:dQw4w9WgXcQ"]; !ok {
		t.Error("expected metadata to be cached under the identifier key")
	}
}

func TestExtract_FacebookMergesCandidatesAndSynthesizesTags(t *testing.T) {
	client := newRoutingClient()
	client.route("https://www.facebook.com/watch/?v=123456789", &mockResponse{statusCode: 200,
		body: `<html><head><meta property="og:title" content="Golden Retriever Learns To Surf"/><meta property="og:description" content="A day at the beach."/></head><body></body></html>`})

	svc := newTestService(client, nil)
	meta, err := svc.Extract(context.Background(), domain.PlatformFacebook, "123456789")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if meta.Title != "Golden Retriever Learns To Surf" {
		t.Errorf("Title = %q", meta.Title)
	}
	if len(meta.Tags) == 0 {
		t.Error("expected synthesized tags from the title")
	}
}

func TestExtract_FacebookAllCandidatesFail(t *testing.T) {
	client := newRoutingClient()
	svc := newTestService(client, nil)

	_, err := svc.Extract(context.Background(), domain.PlatformFacebook, "123456789")
	if err == nil {
		t.Fatal("expected error when every candidate fails")
	}
	if _, ok := coreerrors.IsHTTPStatus(err); !ok && !coreerrors.IsFetch(err) {
		t.Errorf("expected fetch or status error, got %v", err)
	}
}

func TestExtract_InstagramJSONThenHTML(t *testing.T) {
	client := newRoutingClient()
	client.route("https://www.instagram.com/p/CxyzAbc1234/?__a=1", &mockResponse{statusCode: 200,
		body: `{"items":[{"taken_at":1700000000,"user":{"username":"natgeo"},"image_versions2":{"candidates":[{"url":"https://scontent.cdninstagram.com/v/photo.jpg"}]}}]}`})
	client.route("https://www.instagram.com/p/CxyzAbc1234/", &mockResponse{statusCode: 200,
		body: `<html><head><meta property="og:title" content="Wildlife photo"/><meta property="og:description" content="From the archive."/></head><body></body></html>`})

	svc := newTestService(client, nil)
	meta, err := svc.Extract(context.Background(), domain.PlatformInstagram, "https://www.instagram.com/p/CxyzAbc1234/")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if meta.Author != "natgeo" {
		t.Errorf("Author = %q", meta.Author)
	}
	if meta.Thumbnail != "https://scontent.cdninstagram.com/v/photo.jpg" {
		t.Errorf("Thumbnail = %q", meta.Thumbnail)
	}
	if meta.Description != "From the archive." {
		t.Errorf("Description = %q, expected HTML fallback to fill it", meta.Description)
	}
}

func TestExtract_InstagramWrongSiteMessage(t *testing.T) {
	client := newRoutingClient()
	svc := newTestService(client, nil)

	_, err := svc.Extract(context.Background(), domain.PlatformInstagram, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if !coreerrors.IsUnresolvedIdentifier(err) {
		t.Fatalf("expected UnresolvedIdentifierError, got %v", err)
	}
	msg := coreerrors.UserMessage(err)
	if !strings.Contains(msg, "different platform") {
		t.Errorf("UserMessage = %q", msg)
	}
}

func TestExtract_TwitterFxShortCircuits(t *testing.T) {
	client := newRoutingClient()
	client.route("https://api.fxtwitter.com/status/1234567890123456789", &mockResponse{statusCode: 200,
		body: `{"code":200,"tweet":{"text":"Launch day! #space","created_at":"2024-03-14","author":{"name":"NASA","screen_name":"nasa"},"media":{"photos":[{"url":"https://pbs.twimg.com/media/abc.jpg"}]}}}`})

	svc := newTestService(client, nil)
	meta, err := svc.Extract(context.Background(), domain.PlatformTwitter, "https://x.com/nasa/status/1234567890123456789")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if meta.Author != "NASA (@nasa)" {
		t.Errorf("Author = %q", meta.Author)
	}
	if meta.Thumbnail != "https://pbs.twimg.com/media/abc.jpg" {
		t.Errorf("Thumbnail = %q", meta.Thumbnail)
	}
	for _, url := range client.getURLs {
		if strings.Contains(url, "twitter.com/i/status") || strings.Contains(url, "x.com/i/status") {
			t.Errorf("status page scraped despite fxtwitter answer: %s", url)
		}
	}
}

func TestExtract_TwitterPicCodeIsStatic(t *testing.T) {
	client := newRoutingClient()
	svc := newTestService(client, nil)

	meta, err := svc.Extract(context.Background(), domain.PlatformTwitter, "https://pic.twitter.com/AbCdEf123")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if meta.Title != "Twitter Image: AbCdEf123" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Thumbnail == "" {
		t.Error("expected static logo thumbnail")
	}
	if client.requestCount() != 0 {
		t.Errorf("expected no network calls for pic codes, got %d", client.requestCount())
	}
}

func TestExtract_TwitterDefaultsWhenEverythingFails(t *testing.T) {
	client := newRoutingClient()
	svc := newTestService(client, nil)

	meta, err := svc.Extract(context.Background(), domain.PlatformTwitter, "1234567890123456789")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if meta.Title != "Twitter/X Post: 1234567890123456789" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Thumbnail == "" {
		t.Error("expected default logo thumbnail")
	}
}

func TestExtractBatch_MixedResults(t *testing.T) {
	client := newRoutingClient()
	client.route("https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", &mockResponse{statusCode: 200})
	client.route("https://www.youtube.com/watch?v=dQw4w9WgXcQ", &mockResponse{statusCode: 200, body: watchPageBody})

	svc := newTestService(client, nil)
	results := svc.ExtractBatch(context.Background(), domain.PlatformYouTube, []string{
		"dQw4w9WgXcQ",
		"not a url at all",
	})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["dQw4w9WgXcQ"] == nil || results["dQw4w9WgXcQ"].Title == "" {
		t.Error("expected metadata for the valid input")
	}
	if results["not a url at all"] != nil {
		t.Error("expected nil entry for the unresolvable input")
	}
}
