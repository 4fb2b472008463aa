package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// maxUtteranceLength bounds incoming transcripts. Spoken commands are a
// sentence or two; anything longer is a transcription runaway.
const maxUtteranceLength = 500

// CustomValidator wraps the go-playground validator with rules for
// transcribed speech and implements echo.Validator
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a validator with the custom speech rules registered.
// Field names in validation errors use the JSON tag so they match what the
// webhook caller actually sent.
func NewValidator() echo.Validator {
	v := validator.New()

	_ = v.RegisterValidation("spoken_text", validateSpokenText)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// validateSpokenText accepts text a speech recognizer could plausibly
// produce: bounded length, no control characters. Plain whitespace still
// passes; blank utterances are the command pipeline's concern.
func validateSpokenText(fl validator.FieldLevel) bool {
	text := fl.Field().String()
	if len(text) > maxUtteranceLength {
		return false
	}

	for _, r := range text {
		if r == '\t' || r == '\n' {
			continue
		}
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}
