package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vidextract-api/core/interfaces"
)

func TestDownload_SendsCDNReferrer(t *testing.T) {
	var gotReferrer string
	client := &mockHTTPClient{
		getOptsFunc: func(ctx context.Context, url string, opts interfaces.RequestOptions) (interfaces.Response, error) {
			gotReferrer = opts.Headers["Referer"]
			return &mockResponse{statusCode: 200, body: []byte("imagedata")}, nil
		},
	}
	h := NewDownloadHandler(client, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/download?url=https%3A%2F%2Fscontent.cdninstagram.com%2Fv%2Fphoto.jpg", nil)
	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if gotReferrer != "https://www.instagram.com/" {
		t.Errorf("Referer = %q", gotReferrer)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestDownload_RetriesBlockedWithGenericReferrer(t *testing.T) {
	var referrers []string
	client := &mockHTTPClient{
		getOptsFunc: func(ctx context.Context, url string, opts interfaces.RequestOptions) (interfaces.Response, error) {
			referrers = append(referrers, opts.Headers["Referer"])
			if len(referrers) == 1 {
				return &mockResponse{statusCode: 403}, nil
			}
			return &mockResponse{statusCode: 200, body: []byte("imagedata")}, nil
		},
	}
	h := NewDownloadHandler(client, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/download?url=https%3A%2F%2Fexternal.fbcdn.net%2Fimg.png", nil)
	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(referrers) != 2 {
		t.Fatalf("attempts = %d", len(referrers))
	}
	if referrers[0] != "https://www.facebook.com/" || referrers[1] != "https://www.google.com/" {
		t.Errorf("referrers = %v", referrers)
	}
}

func TestDownload_BlockedTwiceReturns502(t *testing.T) {
	client := &mockHTTPClient{
		getOptsFunc: func(ctx context.Context, url string, opts interfaces.RequestOptions) (interfaces.Response, error) {
			return &mockResponse{statusCode: 403}, nil
		},
	}
	h := NewDownloadHandler(client, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/download?url=https%3A%2F%2Fexternal.fbcdn.net%2Fimg.png", nil)
	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestDownload_RepairsEscapedInstagramURL(t *testing.T) {
	var gotURL string
	client := &mockHTTPClient{
		getOptsFunc: func(ctx context.Context, url string, opts interfaces.RequestOptions) (interfaces.Response, error) {
			gotURL = url
			return &mockResponse{statusCode: 200, body: []byte("imagedata")}, nil
		},
	}
	h := NewDownloadHandler(client, nopLogger{})

	raw := `https:\/\/scontent.cdninstagram.com\/v\/photo.jpg`
	req := httptest.NewRequest(http.MethodGet, "/api/download", nil)
	q := req.URL.Query()
	q.Set("url", raw)
	req.URL.RawQuery = q.Encode()

	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	if strings.Contains(gotURL, `\/`) {
		t.Errorf("URL not repaired: %q", gotURL)
	}
}

func TestDownload_MissingURL(t *testing.T) {
	h := NewDownloadHandler(&mockHTTPClient{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/download", nil)
	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestDownload_AttachmentDisposition(t *testing.T) {
	client := &mockHTTPClient{
		getOptsFunc: func(ctx context.Context, url string, opts interfaces.RequestOptions) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: []byte("imagedata")}, nil
		},
	}
	h := NewDownloadHandler(client, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/download?url=https%3A%2F%2Fi.ytimg.com%2Fvi%2Fabc%2Fmaxresdefault.jpg&filename=thumb.jpg", nil)
	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="thumb.jpg"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
}
