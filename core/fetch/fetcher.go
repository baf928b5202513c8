// ABOUTME: Fetch orchestration with platform-aware retry classification
// ABOUTME: Buffers each page body once so every extraction strategy can re-read it

package fetch

import (
	"context"
	"errors"
	"io"

	"vidextract-api/core/domain"
	coreerrors "vidextract-api/core/errors"
	"vidextract-api/core/interfaces"
)

// maxBodyBytes caps buffered page bodies. Facebook watch pages run to a few
// megabytes of inline script.
const maxBodyBytes = 10 * 1024 * 1024

// Fetcher retrieves platform pages with the right profile for each host.
type Fetcher struct {
	deps interfaces.Dependencies
}

// NewFetcher creates a new fetcher
func NewFetcher(deps interfaces.Dependencies) *Fetcher {
	return &Fetcher{deps: deps}
}

// FetchPage retrieves target and returns the buffered body. A 401 or 403
// (plus 429 for Instagram) is retried exactly once with an altered referrer
// before being reported as an HTTPStatusError.
func (f *Fetcher) FetchPage(ctx context.Context, platform domain.Platform, target string) (string, error) {
	opts := ProfileFor(platform, target)

	body, status, err := f.attempt(ctx, target, opts, 1)
	if err != nil {
		return "", err
	}
	if retryableStatus(platform, status) {
		f.deps.Logger.Debug("Blocked response, retrying with altered referrer", map[string]interface{}{
			"url":    target,
			"status": status,
		})
		body, status, err = f.attempt(ctx, target, alteredReferrerProfile(opts, platform), 2)
		if err != nil {
			return "", err
		}
	}

	if status < 200 || status >= 300 {
		return "", &coreerrors.HTTPStatusError{URL: target, StatusCode: status}
	}
	return body, nil
}

// FetchFirst tries candidate URLs in order and returns the first body that
// arrives with a success status, along with the URL that produced it.
func (f *Fetcher) FetchFirst(ctx context.Context, platform domain.Platform, candidates []string) (string, string, error) {
	var lastErr error
	for _, target := range candidates {
		body, err := f.FetchPage(ctx, platform, target)
		if err != nil {
			lastErr = err
			continue
		}
		if body != "" {
			return body, target, nil
		}
	}
	if lastErr == nil {
		lastErr = &coreerrors.FetchError{Err: errors.New("no candidate URLs")}
	}
	return "", "", lastErr
}

// FetchAll walks every candidate URL, invoking visit with each buffered body.
// Iteration stops when visit returns false. Used by extraction flows that
// accumulate fields across surfaces.
func (f *Fetcher) FetchAll(ctx context.Context, platform domain.Platform, candidates []string, visit func(body, source string) bool) error {
	var lastErr error
	fetched := false
	for _, target := range candidates {
		body, err := f.FetchPage(ctx, platform, target)
		if err != nil {
			lastErr = err
			continue
		}
		fetched = true
		if !visit(body, target) {
			return nil
		}
	}
	if !fetched {
		return lastErr
	}
	return nil
}

func (f *Fetcher) attempt(ctx context.Context, target string, opts interfaces.RequestOptions, n int) (string, int, error) {
	resp, err := f.deps.HTTPClient.GetWithOptions(ctx, target, opts)
	if err != nil {
		return "", 0, &coreerrors.FetchError{URL: target, Attempt: n, Err: err}
	}
	defer resp.Body().Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body(), maxBodyBytes))
	if err != nil {
		return "", 0, &coreerrors.FetchError{URL: target, Attempt: n, Err: err}
	}
	return string(data), resp.StatusCode(), nil
}

func retryableStatus(platform domain.Platform, status int) bool {
	if status == 401 || status == 403 {
		return true
	}
	return platform == domain.PlatformInstagram && status == 429
}
