// ABOUTME: Request DTOs for metadata extraction endpoints
// ABOUTME: Decoded straight from the JSON request bodies

package requests

// MetadataRequest is the body for a single extraction request.
type MetadataRequest struct {
	// Platform is one of youtube, facebook, instagram, twitter or x.
	Platform string `json:"platform"`

	// URL is the link or raw identifier to resolve.
	URL string `json:"url"`
}

// BatchMetadataRequest is the body for a batch extraction request.
type BatchMetadataRequest struct {
	Platform string   `json:"platform"`
	URLs     []string `json:"urls"`
}
