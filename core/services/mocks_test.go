// ABOUTME: Shared mocks for service tests
// ABOUTME: Provides a routing HTTP client, an in-memory cache and a silent logger

package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"vidextract-api/core/interfaces"
)

// mockResponse implements interfaces.Response over a static body.
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int { return m.statusCode }

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(bytes.NewBufferString(m.body))
}

func (m *mockResponse) Header(key string) string {
	return m.headers[key]
}

// routingClient answers requests from URL-prefix routes and records every
// URL it sees.
type routingClient struct {
	mu       sync.Mutex
	routes   map[string]*mockResponse
	getURLs  []string
	headURLs []string
}

func newRoutingClient() *routingClient {
	return &routingClient{routes: map[string]*mockResponse{}}
}

func (c *routingClient) route(prefix string, resp *mockResponse) {
	c.routes[prefix] = resp
}

func (c *routingClient) lookup(url string) (interfaces.Response, error) {
	var best *mockResponse
	bestLen := -1
	for prefix, resp := range c.routes {
		if strings.HasPrefix(url, prefix) && len(prefix) > bestLen {
			best, bestLen = resp, len(prefix)
		}
	}
	if best != nil {
		return best, nil
	}
	return &mockResponse{statusCode: 404, body: "not found"}, nil
}

func (c *routingClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	c.mu.Lock()
	c.getURLs = append(c.getURLs, url)
	c.mu.Unlock()
	return c.lookup(url)
}

func (c *routingClient) GetWithOptions(ctx context.Context, url string, opts interfaces.RequestOptions) (interfaces.Response, error) {
	return c.Get(ctx, url)
}

func (c *routingClient) Head(ctx context.Context, url string) (interfaces.Response, error) {
	c.mu.Lock()
	c.headURLs = append(c.headURLs, url)
	c.mu.Unlock()
	return c.lookup(url)
}

func (c *routingClient) requestCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.getURLs) + len(c.headURLs)
}

// memCache is a map-backed cache for tests.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	return nil, errors.New("key not found")
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

func newTestService(client *routingClient, cache *memCache) *MetadataService {
	deps := interfaces.Dependencies{
		HTTPClient: client,
		Logger:     nopLogger{},
	}
	if cache != nil {
		deps.Cache = cache
	}
	return NewMetadataService(deps, time.Hour)
}
