package interfaces

import (
	"context"
	"io"
)

// RequestOptions tunes a single outgoing request. Platforms need different
// header profiles, and some flows must observe redirects instead of
// following them.
type RequestOptions struct {
	// Headers are set verbatim on the request. A "User-Agent" entry
	// overrides the client default.
	Headers map[string]string

	// UseCookieJar routes the request through the client's shared cookie
	// jar. Instagram requires cookies to persist between the JSON and
	// HTML attempts.
	UseCookieJar bool

	// NoFollowRedirects stops the client at the first redirect so the
	// caller can read the Location header.
	NoFollowRedirects bool
}

// HTTPClient defines the interface for making HTTP requests.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations.
type HTTPClient interface {
	// Get performs an HTTP GET request with the client's default profile.
	Get(ctx context.Context, url string) (Response, error)

	// GetWithOptions performs an HTTP GET request with per-request
	// header, cookie and redirect behavior.
	GetWithOptions(ctx context.Context, url string, opts RequestOptions) (Response, error)

	// Head performs an HTTP HEAD request. Used for cheap existence
	// probes such as the thumbnail quality ladder.
	Head(ctx context.Context, url string) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	Header(key string) string
}
