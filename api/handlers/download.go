// ABOUTME: Image proxy handler that fetches platform CDN images server-side
// ABOUTME: Sends the referrer each CDN expects and optionally resizes before returning

package handlers

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/nfnt/resize"

	coreerrors "vidextract-api/core/errors"
	"vidextract-api/core/extract"
	"vidextract-api/core/interfaces"
)

const maxImageBytes = 20 * 1024 * 1024

// cdnReferrers maps CDN host fragments to the referrer their edge expects.
var cdnReferrers = map[string]string{
	"cdninstagram.com": "https://www.instagram.com/",
	"fbcdn.net":        "https://www.facebook.com/",
	"twimg.com":        "https://twitter.com/",
	"ytimg.com":        "https://www.youtube.com/",
	"ggpht.com":        "https://www.youtube.com/",
}

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// DownloadHandler proxies platform images past referrer checks.
type DownloadHandler struct {
	client interfaces.HTTPClient
	logger interfaces.Logger
}

// NewDownloadHandler creates a download handler.
func NewDownloadHandler(client interfaces.HTTPClient, logger interfaces.Logger) *DownloadHandler {
	return &DownloadHandler{client: client, logger: logger}
}

// Serve handles GET /api/download?url=...&filename=...&width=...
func (h *DownloadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		writeError(w, &coreerrors.InvalidInputError{Field: "url", Message: "An image URL is required."})
		return
	}

	target, err := normalizeImageURL(rawURL)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := h.fetchImage(r, target)
	if err != nil {
		writeError(w, err)
		return
	}

	width := r.URL.Query().Get("width")
	height := r.URL.Query().Get("height")
	if width != "" || height != "" {
		if resized, ok := h.resizeImage(data, width, height); ok {
			data = resized
			w.Header().Set("Content-Type", "image/jpeg")
		}
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", contentTypeFor(target))
	}

	filename := r.URL.Query().Get("filename")
	display := r.URL.Query().Get("display")
	switch {
	case display == "inline" || (filename == "" && display != "download"):
		w.Header().Set("Content-Disposition", "inline")
	case filename != "":
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", path.Base(filename)))
	default:
		w.Header().Set("Content-Disposition", "attachment")
	}

	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

// fetchImage retrieves the image with the CDN's expected referrer. A blocked
// response gets one retry with a generic referrer.
func (h *DownloadHandler) fetchImage(r *http.Request, target string) ([]byte, error) {
	referrer := referrerFor(target)

	data, status, err := h.attempt(r, target, referrer)
	if err != nil {
		return nil, err
	}
	if status == 401 || status == 403 || (status == 429 && strings.Contains(target, "cdninstagram")) {
		h.logger.Debug("Image blocked, retrying with generic referrer", map[string]interface{}{
			"url":    target,
			"status": status,
		})
		data, status, err = h.attempt(r, target, "https://www.google.com/")
		if err != nil {
			return nil, err
		}
	}
	if status < 200 || status >= 300 {
		return nil, &coreerrors.HTTPStatusError{URL: target, StatusCode: status}
	}
	return data, nil
}

func (h *DownloadHandler) attempt(r *http.Request, target, referrer string) ([]byte, int, error) {
	opts := interfaces.RequestOptions{}
	if referrer != "" {
		opts.Headers = map[string]string{"Referer": referrer}
	}
	if strings.Contains(target, "cdninstagram") {
		if opts.Headers == nil {
			opts.Headers = map[string]string{}
		}
		opts.Headers["Sec-Fetch-Dest"] = "image"
		opts.Headers["Sec-Fetch-Mode"] = "no-cors"
		opts.Headers["Sec-Fetch-Site"] = "cross-site"
		opts.UseCookieJar = true
	}

	resp, err := h.client.GetWithOptions(r.Context(), target, opts)
	if err != nil {
		return nil, 0, &coreerrors.FetchError{URL: target, Attempt: 1, Err: err}
	}
	defer resp.Body().Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body(), maxImageBytes))
	if err != nil {
		return nil, 0, &coreerrors.FetchError{URL: target, Attempt: 1, Err: err}
	}
	return data, resp.StatusCode(), nil
}

// resizeImage scales the image down to the requested dimensions. A zero
// width or height preserves the aspect ratio. Returns false when the input
// cannot be decoded or the dimensions are not usable.
func (h *DownloadHandler) resizeImage(data []byte, widthParam, heightParam string) ([]byte, bool) {
	width := parseDimension(widthParam)
	height := parseDimension(heightParam)
	if width == 0 && height == 0 {
		return nil, false
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	if width > 0 && img.Bounds().Dx() <= width && height == 0 {
		return nil, false
	}

	scaled := resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: 85}); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

// normalizeImageURL validates the target and repairs escaped Instagram CDN
// links that arrive straight from scraped script blocks.
func normalizeImageURL(raw string) (string, error) {
	repaired := extract.RepairInstagramURL(raw)

	parsed, err := url.Parse(repaired)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &coreerrors.InvalidInputError{Field: "url", Message: "The image URL is not a valid absolute URL."}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", &coreerrors.InvalidInputError{Field: "url", Message: "Only http and https image URLs are supported."}
	}
	return repaired, nil
}

func parseDimension(param string) int {
	if param == "" {
		return 0
	}
	n, err := strconv.Atoi(param)
	if err != nil || n < 16 || n > 4096 {
		return 0
	}
	return n
}

func referrerFor(target string) string {
	for fragment, referrer := range cdnReferrers {
		if strings.Contains(target, fragment) {
			return referrer
		}
	}
	return ""
}

func contentTypeFor(target string) string {
	parsed, err := url.Parse(target)
	ext := ""
	if err == nil {
		ext = strings.ToLower(path.Ext(parsed.Path))
	}
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return "image/jpeg"
}
