package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setLiveCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("GATEWAY_MODE", "live")
	t.Setenv("EXTEND_API_KEY", "key-123")
	t.Setenv("EXTEND_API_SECRET", "secret-456")
}

func TestLoad_Defaults(t *testing.T) {
	setLiveCredentials(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "https://api.paywithextend.com", cfg.Gateway.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, "https://newsapi.org", cfg.News.BaseURL)
	assert.Equal(t, "https://api.vapi.ai", cfg.Voice.BaseURL)
	assert.Equal(t, "gpt-4", cfg.Voice.AssistantModel)
	assert.Equal(t, "shimmer-openai", cfg.Voice.AssistantVoice)
	assert.Equal(t, 5, cfg.Security.RateLimitPerSecond)
	assert.Equal(t, 10, cfg.Security.RateLimitBurst)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.BriefingEnabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	setLiveCredentials(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")
	t.Setenv("NEWSAPI_KEY", "news-key")
	t.Setenv("RATE_LIMIT_PER_SECOND", "20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 20, cfg.Security.RateLimitPerSecond)
	assert.True(t, cfg.BriefingEnabled())
}

func TestLoad_LiveModeRequiresCredentials(t *testing.T) {
	t.Setenv("GATEWAY_MODE", "live")
	t.Setenv("EXTEND_API_KEY", "")
	t.Setenv("EXTEND_API_SECRET", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingGatewayCredentials)
}

func TestLoad_SandboxModeNeedsNoCredentials(t *testing.T) {
	t.Setenv("GATEWAY_MODE", "sandbox")
	t.Setenv("EXTEND_API_KEY", "")
	t.Setenv("EXTEND_API_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, GatewayModeSandbox, cfg.Gateway.Mode)
}

func TestLoad_InvalidGatewayMode(t *testing.T) {
	t.Setenv("GATEWAY_MODE", "staging")

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidGatewayMode)
}

func TestLoad_WebhookSecret(t *testing.T) {
	t.Run("defaults in development", func(t *testing.T) {
		setLiveCredentials(t)
		t.Setenv("VOICE_WEBHOOK_SECRET", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.NotEmpty(t, cfg.Voice.WebhookSecret)
	})

	t.Run("required in production", func(t *testing.T) {
		setLiveCredentials(t)
		t.Setenv("APP_ENV", "production")
		t.Setenv("VOICE_WEBHOOK_SECRET", "")

		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingWebhookSecret)
	})
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	setLiveCredentials(t)
	t.Setenv("RATE_LIMIT_PER_SECOND", "many")
	t.Setenv("SERVER_WRITE_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Security.RateLimitPerSecond)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
}

func TestServerConfig_Address(t *testing.T) {
	cfg := ServerConfig{Host: "0.0.0.0", Port: "8080"}
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
}
