package http

import (
	"github.com/gofiber/fiber/v2"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct{}

// New func - Creates new HTTP handler
func New() *HTTPHandler {
	return &HTTPHandler{}
}

// HealthCheck func
// HealthCheck godoc
// @Summary Health check
// @Description Health check
// @Tags HEALTH
// @Success 200 {object} HealthResponse
// @Router /health [get]
// @Produce json
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(HealthResponse{Status: "ok"})
}
