package thumbnail

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"vidextract-api/core/interfaces"
)

type mockHTTPClient struct {
	headFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return nil, errors.New("not implemented")
}

func (m *mockHTTPClient) GetWithOptions(ctx context.Context, url string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	return nil, errors.New("not implemented")
}

func (m *mockHTTPClient) Head(ctx context.Context, url string) (interfaces.Response, error) {
	if m.headFunc != nil {
		return m.headFunc(ctx, url)
	}
	return nil, errors.New("no head func")
}

type mockResponse struct {
	statusCode int
}

func (m *mockResponse) StatusCode() int    { return m.statusCode }
func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(""))
}
func (m *mockResponse) Header(key string) string { return "" }

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

func newTestResolver(client *mockHTTPClient) *Resolver {
	return NewResolver(interfaces.Dependencies{
		HTTPClient: client,
		Logger:     nopLogger{},
	})
}

func TestBestURL_MaxResAvailable(t *testing.T) {
	client := &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200}, nil
		},
	}
	resolver := newTestResolver(client)

	got := resolver.BestURL(context.Background(), "dQw4w9WgXcQ")

	if got != "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg" {
		t.Errorf("BestURL = %v", got)
	}
}

func TestBestURL_FallsDownLadder(t *testing.T) {
	client := &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.Contains(url, "hqdefault") {
				return &mockResponse{statusCode: 200}, nil
			}
			return &mockResponse{statusCode: 404}, nil
		},
	}
	resolver := newTestResolver(client)

	got := resolver.BestURL(context.Background(), "dQw4w9WgXcQ")

	if got != "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg" {
		t.Errorf("BestURL = %v", got)
	}
}

func TestBestURL_Accepts203(t *testing.T) {
	client := &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 203}, nil
		},
	}
	resolver := newTestResolver(client)

	got := resolver.BestURL(context.Background(), "dQw4w9WgXcQ")

	if !strings.Contains(got, "maxresdefault") {
		t.Errorf("BestURL = %v, want maxres accepted on 203", got)
	}
}

func TestBestURL_AllProbesFailReturnsDefault(t *testing.T) {
	client := &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, errors.New("network down")
		},
	}
	resolver := newTestResolver(client)

	got := resolver.BestURL(context.Background(), "dQw4w9WgXcQ")

	if got != "https://img.youtube.com/vi/dQw4w9WgXcQ/default.jpg" {
		t.Errorf("BestURL = %v, want terminal default rung", got)
	}
	if got == "" {
		t.Error("BestURL must never be empty for a valid ID")
	}
}

func TestBestURL_TerminalRungNotProbed(t *testing.T) {
	var probed []string
	client := &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			probed = append(probed, url)
			return &mockResponse{statusCode: 404}, nil
		},
	}
	resolver := newTestResolver(client)

	resolver.BestURL(context.Background(), "dQw4w9WgXcQ")

	for _, url := range probed {
		if strings.Contains(url, "/default.jpg") {
			t.Error("terminal rung should be returned without probing")
		}
	}
	if len(probed) != len(qualityLadder)-1 {
		t.Errorf("probed %d rungs, want %d", len(probed), len(qualityLadder)-1)
	}
}

func TestBestURL_EmptyID(t *testing.T) {
	resolver := newTestResolver(&mockHTTPClient{})

	if got := resolver.BestURL(context.Background(), ""); got != "" {
		t.Errorf("BestURL(\"\") = %v, want empty", got)
	}
}
