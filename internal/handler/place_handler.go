package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/y-smart/service-tripplan/internal/application"
	"github.com/y-smart/service-tripplan/internal/response"
)

// PlaceHandler handles destination autocomplete requests.
type PlaceHandler struct {
	service *application.PlaceService
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(service *application.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

// RegisterRoutes registers the place routes on the given router group.
func (h *PlaceHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/v1/places/suggest", h.Suggest)
}

// Suggest handles GET /api/v1/places/suggest?q=<keyword>. Short keywords
// and provider failures both yield an empty list.
func (h *PlaceHandler) Suggest(c *gin.Context) {
	results := h.service.Suggest(c.Request.Context(), c.Query("q"))
	response.Success(c, results)
}
