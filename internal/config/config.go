package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Gateway operating modes
const (
	GatewayModeLive    = "live"
	GatewayModeSandbox = "sandbox"
)

var (
	ErrMissingGatewayCredentials = errors.New("EXTEND_API_KEY and EXTEND_API_SECRET must be set when the gateway mode is live")
	ErrMissingWebhookSecret      = errors.New("VOICE_WEBHOOK_SECRET must be set in production environments")
	ErrInvalidGatewayMode        = errors.New("GATEWAY_MODE must be either live or sandbox")
)

type Config struct {
	Server   ServerConfig
	Gateway  GatewayConfig
	News     NewsConfig
	Voice    VoiceConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// GatewayConfig holds the spend-management API credentials and endpoint
type GatewayConfig struct {
	Mode      string
	APIKey    string
	APISecret string
	BaseURL   string
	Timeout   time.Duration
	// SandboxSeed seeds the generated data set in sandbox mode
	SandboxSeed int64
}

// NewsConfig holds the briefing news source settings. An empty APIKey
// disables the briefing feature rather than failing startup.
type NewsConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// VoiceConfig holds the voice-platform settings: the outbound session API
// and the shared secret the platform signs webhook callbacks with
type VoiceConfig struct {
	APIKey         string
	BaseURL        string
	AssistantName  string
	AssistantModel string
	AssistantVoice string
	WebhookSecret  string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// Load reads configuration from the process environment and returns an
// explicit Config value. Missing required credentials are reported as
// errors; Load never terminates the process itself.
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Gateway: GatewayConfig{
			Mode:        getEnv("GATEWAY_MODE", GatewayModeLive),
			APIKey:      getEnv("EXTEND_API_KEY", ""),
			APISecret:   getEnv("EXTEND_API_SECRET", ""),
			BaseURL:     getEnv("EXTEND_API_URL", "https://api.paywithextend.com"),
			Timeout:     getDurationEnv("EXTEND_API_TIMEOUT", 10*time.Second),
			SandboxSeed: getInt64Env("GATEWAY_SANDBOX_SEED", 1),
		},
		News: NewsConfig{
			APIKey:  getEnv("NEWSAPI_KEY", ""),
			BaseURL: getEnv("NEWSAPI_URL", "https://newsapi.org"),
			Timeout: getDurationEnv("NEWSAPI_TIMEOUT", 10*time.Second),
		},
		Voice: VoiceConfig{
			APIKey:         getEnv("VAPI_API_KEY", ""),
			BaseURL:        getEnv("VAPI_API_URL", "https://api.vapi.ai"),
			AssistantName:  getEnv("VOICE_ASSISTANT_NAME", "Extend Finance Assistant"),
			AssistantModel: getEnv("VOICE_ASSISTANT_MODEL", "gpt-4"),
			AssistantVoice: getEnv("VOICE_ASSISTANT_VOICE", "shimmer-openai"),
			WebhookSecret:  getEnv("VOICE_WEBHOOK_SECRET", ""),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.Gateway.Mode {
	case GatewayModeLive:
		if c.Gateway.APIKey == "" || c.Gateway.APISecret == "" {
			return ErrMissingGatewayCredentials
		}
	case GatewayModeSandbox:
		// Sandbox mode needs no credentials
	default:
		return fmt.Errorf("%w: %q", ErrInvalidGatewayMode, c.Gateway.Mode)
	}

	if c.Voice.WebhookSecret == "" {
		if c.IsProduction() {
			return ErrMissingWebhookSecret
		}
		// Known development secret keeps local webhook testing friction-free
		c.Voice.WebhookSecret = "finvoice-dev-secret"
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// BriefingEnabled reports whether a news source is configured
func (c *Config) BriefingEnabled() bool {
	return c.News.APIKey != ""
}

// Address returns the host:port the HTTP server binds to
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
