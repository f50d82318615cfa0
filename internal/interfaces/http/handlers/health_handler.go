package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/CineStyle-Engine/internal/domain/director"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	provider *director.Provider
	started  time.Time
	version  string
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(provider *director.Provider, version string) *HealthHandler {
	return &HealthHandler{provider: provider, started: time.Now(), version: version}
}

// Health handles GET /health.  The engine is ready once a non-empty catalog
// is loaded.
func (h *HealthHandler) Health(c *gin.Context) {
	catalogSize := 0
	if catalog := h.provider.Current(); catalog != nil {
		catalogSize = catalog.Len()
	}

	status := "ok"
	code := http.StatusOK
	if catalogSize == 0 {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":       status,
		"version":      h.version,
		"uptime":       time.Since(h.started).String(),
		"catalog_size": catalogSize,
	})
}
