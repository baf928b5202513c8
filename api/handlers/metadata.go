// ABOUTME: Metadata extraction HTTP handlers
// ABOUTME: Validates requests, delegates to the metadata service and shapes responses

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"vidextract-api/api/dto/requests"
	"vidextract-api/api/dto/responses"
	"vidextract-api/core/domain"
	coreerrors "vidextract-api/core/errors"
	"vidextract-api/core/interfaces"
)

const maxBatchSize = 25

// MetadataHandler serves extraction requests.
type MetadataHandler struct {
	service interfaces.MetadataExtractor
	logger  interfaces.Logger
}

// NewMetadataHandler creates a metadata handler.
func NewMetadataHandler(service interfaces.MetadataExtractor, logger interfaces.Logger) *MetadataHandler {
	return &MetadataHandler{service: service, logger: logger}
}

// Extract handles POST /api/metadata.
func (h *MetadataHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req requests.MetadataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &coreerrors.InvalidInputError{Field: "body", Message: "Request body must be valid JSON."})
		return
	}

	platform, err := parsePlatform(req.Platform)
	if err != nil {
		writeError(w, err)
		return
	}

	meta, err := h.service.Extract(r.Context(), platform, req.URL)
	if err != nil {
		h.logger.Warn("Extraction failed", map[string]interface{}{
			"platform": req.Platform,
			"url":      req.URL,
			"error":    err.Error(),
		})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.MetadataResponse{
		Success:  true,
		Metadata: meta,
	})
}

// ExtractBatch handles POST /api/metadata/batch.
func (h *MetadataHandler) ExtractBatch(w http.ResponseWriter, r *http.Request) {
	var req requests.BatchMetadataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &coreerrors.InvalidInputError{Field: "body", Message: "Request body must be valid JSON."})
		return
	}

	platform, err := parsePlatform(req.Platform)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(req.URLs) == 0 {
		writeError(w, &coreerrors.InvalidInputError{Field: "urls", Message: "At least one URL is required."})
		return
	}
	if len(req.URLs) > maxBatchSize {
		writeError(w, &coreerrors.InvalidInputError{Field: "urls", Message: "Too many URLs in one batch."})
		return
	}

	results := h.service.ExtractBatch(r.Context(), platform, req.URLs)
	writeJSON(w, http.StatusOK, responses.BatchMetadataResponse{Results: results})
}

func parsePlatform(raw string) (domain.Platform, error) {
	platform, ok := domain.ParsePlatform(strings.ToLower(strings.TrimSpace(raw)))
	if !ok {
		return "", &coreerrors.InvalidInputError{
			Field:   "platform",
			Message: "Platform must be one of: youtube, facebook, instagram, twitter.",
		}
	}
	return platform, nil
}
