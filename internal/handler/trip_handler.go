package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/y-smart/service-tripplan/internal/application"
	"github.com/y-smart/service-tripplan/internal/response"
)

// TripHandler handles HTTP requests for trip search and itinerary lookup.
type TripHandler struct {
	service *application.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(service *application.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// RegisterRoutes registers all trip routes on the given router group.
func (h *TripHandler) RegisterRoutes(r *gin.RouterGroup) {
	trips := r.Group("/api/v1/trips")
	{
		trips.POST("/search", h.SearchTrips)
		trips.GET("/:searchId", h.GetSearch)
		trips.GET("/:searchId/routes/:routeId", h.GetRoute)
	}
}

// SearchTrips handles POST /api/v1/trips/search.
func (h *TripHandler) SearchTrips(c *gin.Context) {
	var req application.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.SearchTrips(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetSearch handles GET /api/v1/trips/:searchId.
func (h *TripHandler) GetSearch(c *gin.Context) {
	result, err := h.service.GetSearch(c.Param("searchId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetRoute handles GET /api/v1/trips/:searchId/routes/:routeId.
func (h *TripHandler) GetRoute(c *gin.Context) {
	result, err := h.service.GetRoute(c.Param("searchId"), c.Param("routeId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
