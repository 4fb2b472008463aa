package handlers

import (
	"log/slog"
	"net/http"

	"finvoice/internal/dto"
	"finvoice/internal/errors"
	"finvoice/internal/services"

	"github.com/labstack/echo/v4"
)

// BriefingHandler serves the assembled morning news briefing
type BriefingHandler struct {
	briefing services.BriefingServiceInterface
	logger   *slog.Logger
}

// NewBriefingHandler creates a new briefing handler. A nil briefing service
// means the news source is not configured; requests then get BRIEFING_002.
func NewBriefingHandler(briefing services.BriefingServiceInterface, logger *slog.Logger) *BriefingHandler {
	return &BriefingHandler{briefing: briefing, logger: logger}
}

// GetBriefing handles the briefing endpoint
// @Summary Get the daily news briefing
// @Description Fetch and assemble the spoken tech news briefing
// @Tags Briefing
// @Produce json
// @Success 200 {object} dto.BriefingResponse "Assembled briefing"
// @Failure 502 {object} errors.ErrorResponse "BRIEFING_001 - News source unavailable"
// @Failure 503 {object} errors.ErrorResponse "BRIEFING_002 - Briefing not configured"
// @Router /api/v1/briefing [get]
func (h *BriefingHandler) GetBriefing(c echo.Context) error {
	if h.briefing == nil {
		return SendError(c, errors.BriefingNotConfigured)
	}

	briefing, headlines, err := h.briefing.DailyBriefing(c.Request().Context())
	if err != nil {
		h.logger.Error("briefing assembly failed",
			slog.String("trace_id", getTraceID(c)),
			slog.String("error", err.Error()),
		)
		return SendError(c, errors.BriefingUnavailable)
	}

	return c.JSON(http.StatusOK, dto.BriefingResponse{
		Briefing:  briefing,
		Headlines: headlines,
		TraceID:   getTraceID(c),
	})
}
