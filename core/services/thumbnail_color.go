// ABOUTME: Accent color extraction service for metadata thumbnails
// ABOUTME: Uses K-means clustering to find the most prominent color in an image

package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp"

	"vidextract-api/core/domain"
	"vidextract-api/core/interfaces"
)

const (
	neutralColorValue = 128
	colorFetchTimeout = 10 * time.Second
	colorCacheTTL     = 24 * time.Hour
)

// ThumbnailColorService extracts a display accent color from thumbnail images.
type ThumbnailColorService struct {
	deps       interfaces.Dependencies
	httpClient *http.Client
}

// NewThumbnailColorService creates a thumbnail color service.
func NewThumbnailColorService(deps interfaces.Dependencies) *ThumbnailColorService {
	return &ThumbnailColorService{
		deps: deps,
		httpClient: &http.Client{
			Timeout: colorFetchTimeout,
		},
	}
}

// ExtractColor returns the prominent color of the image at imageURL.
// Extraction failures degrade to a neutral gray instead of an error so a
// thumbnail response never loses its accent field.
func (s *ThumbnailColorService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return s.neutralColor(), nil
	}

	cacheKey := fmt.Sprintf("thumbnailColor:%s", imageURL)
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var color domain.RGBColor
			if _, err := fmt.Sscanf(string(data), "%d,%d,%d", &color.R, &color.G, &color.B); err == nil {
				return &color, nil
			}
		}
	}

	color, err := s.extractFromURL(ctx, imageURL)
	if err != nil {
		s.deps.Logger.Debug("Failed to extract color from thumbnail", map[string]interface{}{
			"url":   imageURL,
			"error": err.Error(),
		})
		color = s.neutralColor()
	}
	if color == nil {
		color = s.neutralColor()
	}

	if s.deps.Cache != nil {
		cacheData := fmt.Sprintf("%d,%d,%d", color.R, color.G, color.B)
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(cacheData), colorCacheTTL)
	}

	return color, nil
}

func (s *ThumbnailColorService) extractFromURL(ctx context.Context, imageURL string) (color *domain.RGBColor, err error) {
	// prominentcolor can panic on degenerate images.
	defer func() {
		if rec := recover(); rec != nil {
			s.deps.Logger.Debug("Recovered from panic in color extraction", map[string]interface{}{
				"url":   imageURL,
				"panic": fmt.Sprintf("%v", rec),
			})
			color = s.neutralColor()
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsed, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid image URL: %s", imageURL)
	}
	if strings.HasSuffix(strings.ToLower(parsed.Path), ".svg") {
		return nil, fmt.Errorf("SVG images cannot be decoded as raster")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; MetadataBot/1.0)")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has empty bounds")
	}
	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		imgNRGBA,
		prominentcolor.DefaultK,
		1,
		prominentcolor.GetDefaultMasks(),
	)
	if err != nil || len(colors) == 0 {
		// Masks can exclude the whole frame on flat images.
		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentDefault,
			imgNRGBA,
			prominentcolor.DefaultK,
			1,
			nil,
		)
		if err != nil || len(colors) == 0 {
			return nil, fmt.Errorf("no colors extracted from image")
		}
	}

	return &domain.RGBColor{
		R: uint8(colors[0].Color.R),
		G: uint8(colors[0].Color.G),
		B: uint8(colors[0].Color.B),
	}, nil
}

func (s *ThumbnailColorService) neutralColor() *domain.RGBColor {
	return &domain.RGBColor{R: neutralColorValue, G: neutralColorValue, B: neutralColorValue}
}
