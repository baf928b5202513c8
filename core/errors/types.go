// ABOUTME: Custom error types for the resolution and extraction pipeline
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// InvalidInputError represents malformed or empty input before resolution
type InvalidInputError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input on field '%s': %s", e.Field, e.Message)
}

// UnresolvedIdentifierError means no platform identifier could be derived
// from the input. UserMessage carries the platform-specific guidance that is
// safe to show to end users.
type UnresolvedIdentifierError struct {
	Platform    string
	Input       string
	UserMessage string
}

// Error implements the error interface
func (e *UnresolvedIdentifierError) Error() string {
	return fmt.Sprintf("could not resolve %s identifier from %q", e.Platform, e.Input)
}

// FetchError represents a transport-level failure (DNS, TLS, timeout)
type FetchError struct {
	URL     string
	Attempt int
	Err     error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed for %s (attempt %d): %v", e.URL, e.Attempt, e.Err)
}

// Unwrap returns the underlying transport error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// HTTPStatusError represents a non-success HTTP status from a remote host
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface
func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// ParseError represents a page or payload that could not be interpreted
type ParseError struct {
	Source  string
	Message string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse failure in %s: %s", e.Source, e.Message)
}

// NoOpError means a validation or synthesis step produced nothing usable.
// Callers treat it as an empty result, never as a request failure.
type NoOpError struct {
	Stage string
}

// Error implements the error interface
func (e *NoOpError) Error() string {
	return fmt.Sprintf("%s produced no usable output", e.Stage)
}

// IsInvalidInput checks if an error is an InvalidInputError
func IsInvalidInput(err error) bool {
	var inputErr *InvalidInputError
	return errors.As(err, &inputErr)
}

// IsUnresolvedIdentifier checks if an error is an UnresolvedIdentifierError
func IsUnresolvedIdentifier(err error) bool {
	var unresolvedErr *UnresolvedIdentifierError
	return errors.As(err, &unresolvedErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsHTTPStatus checks if an error is an HTTPStatusError and returns its code
func IsHTTPStatus(err error) (int, bool) {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode, true
	}
	return 0, false
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsNoOp checks if an error is a NoOpError
func IsNoOp(err error) bool {
	var noOpErr *NoOpError
	return errors.As(err, &noOpErr)
}

// UserMessage extracts the user-facing message from an error when one is
// attached, falling back to a generic message.
func UserMessage(err error) string {
	var unresolvedErr *UnresolvedIdentifierError
	if errors.As(err, &unresolvedErr) && unresolvedErr.UserMessage != "" {
		return unresolvedErr.UserMessage
	}
	var inputErr *InvalidInputError
	if errors.As(err, &inputErr) {
		return inputErr.Message
	}
	return "We were unable to process the provided link. Please check the URL and try again."
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
