// ABOUTME: Service-level interfaces consumed by the API handlers
// ABOUTME: Keeps handlers decoupled from concrete service implementations

package interfaces

import (
	"context"

	"vidextract-api/core/domain"
)

// MetadataExtractor resolves a raw link for a platform and returns the
// extracted metadata record.
type MetadataExtractor interface {
	Extract(ctx context.Context, platform domain.Platform, raw string) (*domain.Metadata, error)
	ExtractBatch(ctx context.Context, platform domain.Platform, raws []string) map[string]*domain.Metadata
}

// ColorExtractor extracts a prominent accent color from an image URL.
type ColorExtractor interface {
	ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
}
