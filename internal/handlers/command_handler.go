package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"finvoice/internal/dto"
	"finvoice/internal/errors"
	"finvoice/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// SpokenApology is the last-resort speakable reply, used when a request
// dies before the response generator is reachable (panic recovery). The
// voice platform reads the reply field aloud regardless of what went
// wrong server-side, so failures must still produce speakable text.
const SpokenApology = "I'm sorry, I'm having trouble reaching your account information right now. Please try again in a moment."

// errAccountUnreachable is what failed command processing sounds like to
// the caller. Internal error detail stays in the logs; the spoken wrapper
// gets a fixed, speakable description instead.
var errAccountUnreachable = stderrors.New("trouble reaching your account information")

// CommandHandler handles transcribed voice commands from the platform webhook
type CommandHandler struct {
	processor services.CommandProcessorInterface
	responses services.ResponseGeneratorInterface
	logger    *slog.Logger
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(processor services.CommandProcessorInterface, responses services.ResponseGeneratorInterface, logger *slog.Logger) *CommandHandler {
	return &CommandHandler{processor: processor, responses: responses, logger: logger}
}

// ProcessCommand handles the voice command webhook
// @Summary Process a voice command
// @Description Interpret a transcribed utterance and return the spoken reply
// @Tags Commands
// @Accept json
// @Produce json
// @Success 200 {object} dto.ProcessCommandResponse "Spoken reply"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Utterance is required"
// @Router /api/v1/commands [post]
func (h *CommandHandler) ProcessCommand(c echo.Context) error {
	var req dto.ProcessCommandRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Tag() == "spoken_text" {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("utterance must be speakable text"))
		}
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("utterance is required"))
	}

	reply, err := h.processor.ProcessCommand(c.Request().Context(), req.Utterance)
	if err != nil {
		if stderrors.Is(err, services.ErrEmptyUtterance) {
			return SendError(c, errors.CommandEmptyUtterance)
		}

		// The caller is a voice platform, not a browser. Surface the
		// failure as speech instead of an error status it would ignore.
		h.logger.Error("command processing failed",
			slog.String("trace_id", getTraceID(c)),
			slog.String("error", err.Error()),
		)
		return c.JSON(http.StatusOK, dto.ProcessCommandResponse{
			Reply:   h.responses.ErrorMessage(errAccountUnreachable),
			TraceID: getTraceID(c),
		})
	}

	return c.JSON(http.StatusOK, dto.ProcessCommandResponse{
		Reply:   reply,
		TraceID: getTraceID(c),
	})
}
