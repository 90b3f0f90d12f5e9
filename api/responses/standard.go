// Package responses holds the JSON shapes returned by the API and small
// helpers for writing success responses.
package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthStatusOK is the only status the health endpoint reports; failures go
// through the error path instead.
const HealthStatusOK = "ok"

// HealthCheckResponse is returned by GET /api/healthchecker.
type HealthCheckResponse struct {
	Status string `json:"status" example:"ok"`
}

// MessageResponse carries a single informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// OK sends a 200 response with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 Created response
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}
