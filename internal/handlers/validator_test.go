package handlers

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"

	"finvoice/internal/dto"
)

type ValidatorTestSuite struct {
	suite.Suite
	validator *CustomValidator
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	s.validator = NewValidator().(*CustomValidator)
}

func (s *ValidatorTestSuite) TestAcceptsTranscribedSpeech() {
	valid := []string{
		"show my virtual cards",
		"how much did I spend this month on food",
		"   ",
		"first line\nsecond line",
	}

	for _, utterance := range valid {
		err := s.validator.Validate(&dto.ProcessCommandRequest{Utterance: utterance})
		s.NoError(err, "utterance %q", utterance)
	}
}

func (s *ValidatorTestSuite) TestRejectsEmptyUtterance() {
	err := s.validator.Validate(&dto.ProcessCommandRequest{Utterance: ""})
	s.Require().Error(err)

	var fieldErrs validator.ValidationErrors
	s.Require().ErrorAs(err, &fieldErrs)
	s.Equal("required", fieldErrs[0].Tag())
	// Field names come from the JSON tag, not the Go field
	s.Equal("utterance", fieldErrs[0].Field())
}

func (s *ValidatorTestSuite) TestRejectsControlCharacters() {
	err := s.validator.Validate(&dto.ProcessCommandRequest{Utterance: "show my cards\x00"})
	s.Require().Error(err)

	var fieldErrs validator.ValidationErrors
	s.Require().ErrorAs(err, &fieldErrs)
	s.Equal("spoken_text", fieldErrs[0].Tag())
}

func (s *ValidatorTestSuite) TestRejectsRunawayTranscript() {
	runaway := strings.Repeat("blah ", 200)
	err := s.validator.Validate(&dto.ProcessCommandRequest{Utterance: runaway})
	s.Require().Error(err)

	var fieldErrs validator.ValidationErrors
	s.Require().ErrorAs(err, &fieldErrs)
	s.Equal("spoken_text", fieldErrs[0].Tag())
}
