package api

import (
	"net/http"
	"time"

	"github.com/jwhitley/storefront-api/internal/api/shared"
)

// HealthHandler serves the liveness endpoint. It deliberately has no
// dependency on the database pool, so it stays responsive even when the
// store is unreachable. There is no separate readiness check.
type HealthHandler struct {
	service string
	version string
	now     func() time.Time
}

// NewHealthHandler creates a new HealthHandler reporting the given service
// name and version.
func NewHealthHandler(service, version string) *HealthHandler {
	return &HealthHandler{
		service: service,
		version: version,
		now:     time.Now,
	}
}

// Check handles GET /health requests.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "ok",
		Service:   h.service,
		Version:   h.version,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}
