package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/y-smart/service-tripplan/internal/application"
	"github.com/y-smart/service-tripplan/internal/response"
)

// PaymentHandler handles the integrated payment screen's requests.
type PaymentHandler struct {
	service *application.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *application.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// RegisterRoutes registers the payment routes on the given router group.
func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/api/v1/payments")
	{
		payments.GET("/methods", h.Methods)
		payments.GET("/quote", h.Quote)
		payments.POST("", h.Pay)
	}
}

// Methods handles GET /api/v1/payments/methods.
func (h *PaymentHandler) Methods(c *gin.Context) {
	response.Success(c, h.service.Methods())
}

// Quote handles GET /api/v1/payments/quote?search_id=&route_id=.
func (h *PaymentHandler) Quote(c *gin.Context) {
	searchID := c.Query("search_id")
	routeID := c.Query("route_id")
	if searchID == "" || routeID == "" {
		response.BadRequest(c, "search_id and route_id query parameters are required")
		return
	}

	quote, err := h.service.Quote(searchID, routeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, quote)
}

// Pay handles POST /api/v1/payments.
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req application.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	receipt, err := h.service.Pay(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, receipt)
}
