// ABOUTME: HTTP server assembly wiring handlers, middleware and CORS
// ABOUTME: Routes are plain net/http with method guards in the mux setup

package api

import (
	"net/http"

	"github.com/rs/cors"

	"vidextract-api/api/handlers"
	"vidextract-api/api/middleware"
	"vidextract-api/core/interfaces"
	"vidextract-api/core/thumbnail"
	"vidextract-api/pkg/config"
)

// Server bundles the HTTP handler chain for the API.
type Server struct {
	handler http.Handler
}

// NewServer builds the full handler chain.
func NewServer(
	cfg *config.Config,
	deps interfaces.Dependencies,
	metadata interfaces.MetadataExtractor,
	colors interfaces.ColorExtractor,
) *Server {
	mux := http.NewServeMux()

	metadataHandler := handlers.NewMetadataHandler(metadata, deps.Logger)
	thumbnailHandler := handlers.NewThumbnailHandler(thumbnail.NewResolver(deps), colors, deps.Logger)
	downloadHandler := handlers.NewDownloadHandler(deps.HTTPClient, deps.Logger)

	mux.HandleFunc("/health", methodGuard(http.MethodGet, handlers.Health))
	mux.HandleFunc("/api/metadata", methodGuard(http.MethodPost, metadataHandler.Extract))
	mux.HandleFunc("/api/metadata/batch", methodGuard(http.MethodPost, metadataHandler.ExtractBatch))
	mux.HandleFunc("/api/thumbnail/youtube/", methodGuard(http.MethodGet, thumbnailHandler.YouTube))
	mux.HandleFunc("/api/download", methodGuard(http.MethodGet, downloadHandler.Serve))

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(limiter)(handler)
	handler = middleware.RequestLoggingMiddleware(deps.Logger)(handler)
	handler = cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding"},
	}).Handler(handler)

	return &Server{handler: handler}
}

// Handler returns the assembled HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func methodGuard(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}
