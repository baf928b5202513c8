// ABOUTME: Thumbnail resolution HTTP handler
// ABOUTME: Walks the YouTube quality ladder and attaches an accent color

package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"vidextract-api/api/dto/responses"
	coreerrors "vidextract-api/core/errors"
	"vidextract-api/core/interfaces"
	"vidextract-api/core/thumbnail"
)

var videoIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ThumbnailHandler serves thumbnail lookups.
type ThumbnailHandler struct {
	resolver *thumbnail.Resolver
	colors   interfaces.ColorExtractor
	logger   interfaces.Logger
}

// NewThumbnailHandler creates a thumbnail handler.
func NewThumbnailHandler(resolver *thumbnail.Resolver, colors interfaces.ColorExtractor, logger interfaces.Logger) *ThumbnailHandler {
	return &ThumbnailHandler{resolver: resolver, colors: colors, logger: logger}
}

// YouTube handles GET /api/thumbnail/youtube/{id}.
func (h *ThumbnailHandler) YouTube(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/thumbnail/youtube/")
	if !videoIDPattern.MatchString(id) {
		writeError(w, &coreerrors.InvalidInputError{
			Field:   "id",
			Message: "Video ID must be 11 characters of letters, digits, hyphen or underscore.",
		})
		return
	}

	url := h.resolver.BestURL(r.Context(), id)
	resp := responses.ThumbnailResponse{URL: url}

	if h.colors != nil {
		color, err := h.colors.ExtractColor(r.Context(), url)
		if err != nil {
			h.logger.Debug("Color extraction failed", map[string]interface{}{
				"url":   url,
				"error": err.Error(),
			})
		} else {
			resp.Color = color
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
