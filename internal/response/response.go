package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/y-smart/service-tripplan/internal/domain"
)

// Success writes a 200 response with the standard data envelope.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Created writes a 201 response with the standard data envelope.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

// BadRequest writes a 400 response with an error message.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// NotFound writes a 404 response with an error message.
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

// Error maps a domain error to an HTTP response by its kind.
func Error(c *gin.Context, err error) {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case domain.KindUpstream:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
