package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"finvoice/internal/dto"
	apperrors "finvoice/internal/errors"
	"finvoice/internal/services"
	"finvoice/internal/services/service_mocks"
)

type CommandHandlerTestSuite struct {
	suite.Suite
	echo          *echo.Echo
	ctrl          *gomock.Controller
	mockProcessor *service_mocks.MockCommandProcessorInterface
	handler       *CommandHandler
}

func TestCommandHandlerSuite(t *testing.T) {
	suite.Run(t, new(CommandHandlerTestSuite))
}

func (s *CommandHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockProcessor = service_mocks.NewMockCommandProcessorInterface(s.ctrl)
	s.handler = NewCommandHandler(s.mockProcessor, services.NewResponseGenerator(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *CommandHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CommandHandlerTestSuite) postCommand(body string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")
	return rec, c
}

func (s *CommandHandlerTestSuite) TestProcessCommand_Success() {
	s.mockProcessor.EXPECT().
		ProcessCommand(gomock.Any(), "show my virtual cards").
		Return("You have 2 virtual cards. ", nil)

	rec, c := s.postCommand(`{"utterance":"show my virtual cards"}`)
	s.Require().NoError(s.handler.ProcessCommand(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ProcessCommandResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("You have 2 virtual cards. ", resp.Reply)
	s.Equal("trace-123", resp.TraceID)
}

func (s *CommandHandlerTestSuite) TestProcessCommand_MissingUtterance() {
	rec, c := s.postCommand(`{}`)
	s.Require().NoError(s.handler.ProcessCommand(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(apperrors.ValidationRequiredField), resp.Error.Code)
}

func (s *CommandHandlerTestSuite) TestProcessCommand_MalformedBody() {
	rec, c := s.postCommand(`{"utterance":`)
	s.Require().NoError(s.handler.ProcessCommand(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(apperrors.ValidationGeneral), resp.Error.Code)
}

func (s *CommandHandlerTestSuite) TestProcessCommand_BlankUtterance() {
	s.mockProcessor.EXPECT().
		ProcessCommand(gomock.Any(), "   ").
		Return("", services.ErrEmptyUtterance)

	rec, c := s.postCommand(`{"utterance":"   "}`)
	s.Require().NoError(s.handler.ProcessCommand(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(apperrors.CommandEmptyUtterance), resp.Error.Code)
}

func (s *CommandHandlerTestSuite) TestProcessCommand_GatewayFailureSpeaksApology() {
	s.mockProcessor.EXPECT().
		ProcessCommand(gomock.Any(), "show my transactions").
		Return("", errors.New("gateway returned status 503"))

	rec, c := s.postCommand(`{"utterance":"show my transactions"}`)
	s.Require().NoError(s.handler.ProcessCommand(c))

	// The voice platform reads the reply aloud; errors still return 200
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ProcessCommandResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("I encountered an error: trouble reaching your account information. Please try again or ask for help.", resp.Reply)
	s.NotContains(resp.Reply, "503")
}

func (s *CommandHandlerTestSuite) TestProcessCommand_UnspeakableUtterance() {
	rec, c := s.postCommand(`{"utterance":"show my cards\u0000"}`)
	s.Require().NoError(s.handler.ProcessCommand(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(apperrors.ValidationInvalidFormat), resp.Error.Code)
}
