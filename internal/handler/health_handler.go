package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports process liveness.
type HealthHandler struct {
	service string
}

// NewHealthHandler creates a health handler for the named service.
func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

// RegisterRoutes registers the health route on the given engine.
func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.service,
	})
}
