package handlers

import (
	"net/http"

	"finvoice/internal/config"
	"finvoice/internal/dto"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	cfg *config.Config
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(cfg *config.Config) *HealthCheckHandler {
	return &HealthCheckHandler{cfg: cfg}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check service status and configured integrations
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is healthy"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	briefing := "disabled"
	if h.cfg.BriefingEnabled() {
		briefing = "enabled"
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:      "healthy",
		Environment: h.cfg.Server.Environment,
		Checks: map[string]string{
			"gateway":  h.cfg.Gateway.Mode,
			"briefing": briefing,
		},
	})
}
