// ABOUTME: RGB color value returned by the thumbnail accent color service
// ABOUTME: Kept as a small value type so handlers can serialize it directly

package domain

// RGBColor represents an RGB color value
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}
