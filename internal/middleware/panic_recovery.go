package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"finvoice/internal/dto"
	"finvoice/internal/errors"
	"finvoice/internal/handlers"

	"github.com/labstack/echo/v4"
)

// PanicRecovery is a middleware that recovers from panics. Requests that
// came from a live voice call get a 200 with a speakable apology, since
// the platform reads whatever body it receives to the caller; everything
// else gets the standardized error response.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					traceID := GetTraceID(c)
					if traceID == "" {
						traceID = "unknown"
					}

					stackTrace := string(debug.Stack())
					slog.Error("Panic recovered",
						"trace_id", traceID,
						"call_id", GetCallID(c),
						"panic", fmt.Sprintf("%v", r),
						"stack_trace", stackTrace,
						"path", c.Request().URL.Path,
						"method", c.Request().Method,
					)

					var err error
					if GetCallID(c) != "" {
						err = c.JSON(http.StatusOK, dto.ProcessCommandResponse{
							Reply:   handlers.SpokenApology,
							TraceID: traceID,
						})
					} else {
						err = c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(
							errors.SystemInternalError,
							traceID,
						))
					}

					if err != nil {
						slog.Error("Failed to send panic recovery response",
							"trace_id", traceID,
							"error", err.Error(),
						)
					}
				}
			}()

			return next(c)
		}
	}
}
