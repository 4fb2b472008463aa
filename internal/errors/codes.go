package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
)

// Command error codes (COMMAND_*)
const (
	CommandProcessingFailed ErrorCode = "COMMAND_001"
	CommandEmptyUtterance   ErrorCode = "COMMAND_002"
)

// Gateway error codes (GATEWAY_*)
const (
	GatewayUnavailable   ErrorCode = "GATEWAY_001"
	GatewayRejected      ErrorCode = "GATEWAY_002"
	GatewayAuthFailed    ErrorCode = "GATEWAY_003"
	GatewayNotConfigured ErrorCode = "GATEWAY_004"
)

// Briefing error codes (BRIEFING_*)
const (
	BriefingUnavailable   ErrorCode = "BRIEFING_001"
	BriefingNotConfigured ErrorCode = "BRIEFING_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",

	// Command errors
	CommandProcessingFailed: "Command could not be processed",
	CommandEmptyUtterance:   "Utterance must not be empty",

	// Gateway errors
	GatewayUnavailable:   "Spend-management service is temporarily unavailable",
	GatewayRejected:      "Spend-management service rejected the request",
	GatewayAuthFailed:    "Spend-management service authentication failed",
	GatewayNotConfigured: "Spend-management credentials are not configured",

	// Briefing errors
	BriefingUnavailable:   "News briefing source is temporarily unavailable",
	BriefingNotConfigured: "News briefing is not configured",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
