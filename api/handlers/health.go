// ABOUTME: Health check handler
// ABOUTME: Returns a static ok status for liveness probes

package handlers

import (
	"net/http"

	"vidextract-api/api/dto/responses"
)

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, responses.HealthResponse{Status: "ok"})
}
