package dto

// ProcessCommandRequest is the webhook payload carrying a transcribed
// voice command
type ProcessCommandRequest struct {
	Utterance string `json:"utterance" validate:"required,spoken_text"`
}

// ProcessCommandResponse carries the spoken reply back to the voice platform
type ProcessCommandResponse struct {
	Reply   string `json:"reply"`
	TraceID string `json:"traceId,omitempty"`
}
