package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vidextract-api/api/dto/responses"
	"vidextract-api/core/domain"
	"vidextract-api/core/interfaces"
	"vidextract-api/core/thumbnail"
)

func newThumbnailHandler(client *mockHTTPClient, colors interfaces.ColorExtractor) *ThumbnailHandler {
	deps := interfaces.Dependencies{HTTPClient: client, Logger: nopLogger{}}
	return NewThumbnailHandler(thumbnail.NewResolver(deps), colors, nopLogger{})
}

func TestThumbnail_ReturnsBestURLAndColor(t *testing.T) {
	client := &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.Contains(url, "maxresdefault") {
				return &mockResponse{statusCode: 200}, nil
			}
			return &mockResponse{statusCode: 404}, nil
		},
	}
	colors := &mockColorExtractor{color: &domain.RGBColor{R: 12, G: 34, B: 56}}
	h := newThumbnailHandler(client, colors)

	req := httptest.NewRequest(http.MethodGet, "/api/thumbnail/youtube/dQw4w9WgXcQ", nil)
	rec := httptest.NewRecorder()
	h.YouTube(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp responses.ThumbnailResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if !strings.Contains(resp.URL, "maxresdefault") {
		t.Errorf("URL = %q", resp.URL)
	}
	if resp.Color == nil || resp.Color.R != 12 {
		t.Errorf("Color = %+v", resp.Color)
	}
}

func TestThumbnail_InvalidID(t *testing.T) {
	h := newThumbnailHandler(&mockHTTPClient{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/thumbnail/youtube/short", nil)
	rec := httptest.NewRecorder()
	h.YouTube(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestThumbnail_NoColorExtractor(t *testing.T) {
	client := &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 404}, nil
		},
	}
	h := newThumbnailHandler(client, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/thumbnail/youtube/dQw4w9WgXcQ", nil)
	rec := httptest.NewRecorder()
	h.YouTube(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp responses.ThumbnailResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.URL == "" {
		t.Error("expected non-empty fallback URL")
	}
	if resp.Color != nil {
		t.Errorf("Color = %+v, expected omitted", resp.Color)
	}
}
