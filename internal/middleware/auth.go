package middleware

import (
	stderrors "errors"
	"strings"

	"finvoice/internal/errors"
	"finvoice/internal/handlers"
	"finvoice/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// WebhookAuth creates a middleware that requires webhook requests to carry
// a bearer token signed with the shared webhook secret. The voice platform
// signs every callback; anything else gets rejected before reaching a
// handler. Each outcome is counted under webhook_auth_events_total.
func WebhookAuth(secret string, metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				recordAuthEvent(metrics, "missing_token")
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				recordAuthEvent(metrics, "malformed_token")
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil {
				if stderrors.Is(err, jwt.ErrTokenExpired) {
					recordAuthEvent(metrics, "expired_token")
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				recordAuthEvent(metrics, "invalid_token")
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}
			if !token.Valid {
				recordAuthEvent(metrics, "invalid_token")
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			if subject, err := token.Claims.GetSubject(); err == nil {
				c.Set("webhook_subject", subject)
			}

			recordAuthEvent(metrics, "accepted")
			return next(c)
		}
	}
}

func recordAuthEvent(metrics services.MetricsRecorderInterface, eventType string) {
	if metrics == nil {
		return
	}
	metrics.IncrementCounter("auth.event", map[string]string{"event_type": eventType})
}
