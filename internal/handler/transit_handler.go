package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/y-smart/service-tripplan/internal/application"
	"github.com/y-smart/service-tripplan/internal/response"
)

// TransitHandler handles live bus information requests.
type TransitHandler struct {
	service *application.TransitService
}

// NewTransitHandler creates a new TransitHandler.
func NewTransitHandler(service *application.TransitService) *TransitHandler {
	return &TransitHandler{service: service}
}

// RegisterRoutes registers the bus information routes on the given router
// group.
func (h *TransitHandler) RegisterRoutes(r *gin.RouterGroup) {
	bus := r.Group("/api/v1/bus")
	{
		bus.GET("/arrivals/:stationId", h.Arrivals)
		bus.GET("/locations/:routeId", h.Locations)
		bus.GET("/routes", h.Routes)
	}
}

// Arrivals handles GET /api/v1/bus/arrivals/:stationId.
func (h *TransitHandler) Arrivals(c *gin.Context) {
	response.Success(c, h.service.Arrivals(c.Request.Context(), c.Param("stationId")))
}

// Locations handles GET /api/v1/bus/locations/:routeId.
func (h *TransitHandler) Locations(c *gin.Context) {
	response.Success(c, h.service.Locations(c.Request.Context(), c.Param("routeId")))
}

// Routes handles GET /api/v1/bus/routes?name=<routeName>.
func (h *TransitHandler) Routes(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		response.BadRequest(c, "name query parameter is required")
		return
	}
	response.Success(c, h.service.Routes(c.Request.Context(), name))
}
