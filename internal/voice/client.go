package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"finvoice/internal/config"
)

var ErrMissingAPIKey = errors.New("voice client requires an API key")

// MetricsRecorder is the slice of the metrics seam this client needs.
// Declared locally so the client does not depend on the services package.
type MetricsRecorder interface {
	RecordGauge(name string, value float64, tags map[string]string)
}

// Session is an active voice call on the platform
type Session struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type assistantPayload struct {
	Name                 string `json:"name"`
	Model                string `json:"model"`
	Voice                string `json:"voice"`
	FirstMessage         string `json:"firstMessage"`
	RecordingEnabled     bool   `json:"recordingEnabled"`
	InterruptionsEnabled bool   `json:"interruptionsEnabled"`
}

type startCallRequest struct {
	Assistant assistantPayload `json:"assistant"`
}

// APIError is a rejected request to the voice platform
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("voice platform returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("voice platform returned status %d: %s", e.StatusCode, e.Message)
}

// Client drives outbound voice sessions on the hosted voice platform
type Client struct {
	baseURL    string
	apiKey     string
	assistant  config.VoiceConfig
	httpClient *http.Client
	metrics    MetricsRecorder
}

// NewClient creates a voice platform client from explicit configuration
func NewClient(cfg config.VoiceConfig, metrics MetricsRecorder) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		assistant:  cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		metrics:    metrics,
	}, nil
}

// StartSession opens a voice call that greets the caller with firstMessage.
// Recording and barge-in interruptions are always on.
func (c *Client) StartSession(ctx context.Context, firstMessage string) (*Session, error) {
	payload := startCallRequest{
		Assistant: assistantPayload{
			Name:                 c.assistant.AssistantName,
			Model:                c.assistant.AssistantModel,
			Voice:                c.assistant.AssistantVoice,
			FirstMessage:         firstMessage,
			RecordingEnabled:     true,
			InterruptionsEnabled: true,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding session request: %w", err)
	}

	var session Session
	if err := c.do(ctx, http.MethodPost, "/call", bytes.NewReader(body), &session); err != nil {
		return nil, err
	}
	c.recordActiveSessions(1)
	return &session, nil
}

// StopSession ends an active voice call
func (c *Client) StopSession(ctx context.Context, sessionID string) error {
	if err := c.do(ctx, http.MethodDelete, "/call/"+sessionID, nil, nil); err != nil {
		return err
	}
	c.recordActiveSessions(0)
	return nil
}

func (c *Client) recordActiveSessions(value float64) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordGauge("active_sessions", value, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building voice platform request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling voice platform %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&errBody) == nil {
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding voice platform response: %w", err)
	}
	return nil
}
