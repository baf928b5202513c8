// ABOUTME: Shared mocks for handler tests
// ABOUTME: Provides extractor, color and HTTP client stubs

package handlers

import (
	"bytes"
	"context"
	"io"

	"vidextract-api/core/domain"
	"vidextract-api/core/interfaces"
)

type mockExtractor struct {
	extractFunc func(ctx context.Context, platform domain.Platform, raw string) (*domain.Metadata, error)
	batchFunc   func(ctx context.Context, platform domain.Platform, raws []string) map[string]*domain.Metadata
}

func (m *mockExtractor) Extract(ctx context.Context, platform domain.Platform, raw string) (*domain.Metadata, error) {
	return m.extractFunc(ctx, platform, raw)
}

func (m *mockExtractor) ExtractBatch(ctx context.Context, platform domain.Platform, raws []string) map[string]*domain.Metadata {
	if m.batchFunc != nil {
		return m.batchFunc(ctx, platform, raws)
	}
	return nil
}

type mockColorExtractor struct {
	color *domain.RGBColor
	err   error
}

func (m *mockColorExtractor) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	return m.color, m.err
}

type mockResponse struct {
	statusCode int
	body       []byte
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int { return m.statusCode }

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(bytes.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string { return m.headers[key] }

type mockHTTPClient struct {
	getOptsFunc func(ctx context.Context, url string, opts interfaces.RequestOptions) (interfaces.Response, error)
	headFunc    func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return m.GetWithOptions(ctx, url, interfaces.RequestOptions{})
}

func (m *mockHTTPClient) GetWithOptions(ctx context.Context, url string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	return m.getOptsFunc(ctx, url, opts)
}

func (m *mockHTTPClient) Head(ctx context.Context, url string) (interfaces.Response, error) {
	if m.headFunc != nil {
		return m.headFunc(ctx, url)
	}
	return &mockResponse{statusCode: 404}, nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}
