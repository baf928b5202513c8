// ABOUTME: Response DTOs for metadata extraction endpoints
// ABOUTME: Serialized straight into the JSON response bodies

package responses

import (
	"vidextract-api/core/domain"
)

// MetadataResponse wraps an extraction result for the API.
type MetadataResponse struct {
	Success  bool             `json:"success"`
	Metadata *domain.Metadata `json:"metadata,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// BatchMetadataResponse maps each input to its extraction result.
type BatchMetadataResponse struct {
	Results map[string]*domain.Metadata `json:"results"`
}

// ThumbnailResponse carries a resolved thumbnail URL and its accent color.
type ThumbnailResponse struct {
	URL   string           `json:"url"`
	Color *domain.RGBColor `json:"color,omitempty"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}
