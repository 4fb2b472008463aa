package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader is the header name for the trace ID
	TraceIDHeader = "X-Trace-ID"
	// CallIDHeader carries the voice platform's call identifier on
	// webhook requests
	CallIDHeader = "X-Call-ID"
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
	// CallIDContextKey is the context key for storing the call ID
	CallIDContextKey = "call_id"
)

// RequestID resolves a trace ID for each request and sets it in both the
// response header and the request context. Webhook retries for the same
// voice call repeat the platform's call ID, so the call ID doubles as the
// trace ID when no explicit trace header is present; every utterance from
// one call then shares a trace. Requests without either header get a
// fresh UUID.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			callID := req.Header.Get(CallIDHeader)
			if callID != "" {
				c.Set(CallIDContextKey, callID)
			}

			traceID := req.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = callID
			}
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			res.Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID extracts the trace ID from the Echo context
// Returns empty string if not found
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// GetCallID extracts the voice platform call ID from the Echo context.
// Returns empty string for requests that did not come from a live call.
func GetCallID(c echo.Context) string {
	callID, ok := c.Get(CallIDContextKey).(string)
	if !ok {
		return ""
	}
	return callID
}
