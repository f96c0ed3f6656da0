package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrTokenRequired ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid  ErrCode = "TOKEN_INVALID"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden ErrCode = "FORBIDDEN"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"
	ErrInvalidID  ErrCode = "INVALID_ID"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal        ErrCode = "INTERNAL_ERROR"
	ErrPaymentProvider ErrCode = "PAYMENT_PROVIDER_ERROR"
)

// GetMessage returns the client-facing message for a given error code.
// The auth messages keep the wording the web clients already match on.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrTokenRequired:
		return "unauthorized access"
	case ErrTokenInvalid:
		return "unauthorized"
	case ErrForbidden:
		return "forbidden"
	case ErrValidation:
		return "validation failed, please check your input"
	case ErrInvalidID:
		return "invalid id format"
	case ErrRateLimitExceeded:
		return "too many requests, please try again later"
	case ErrPaymentProvider:
		return "payment provider request failed"
	case ErrInternal:
		return "internal server error"
	default:
		return "an unexpected error occurred"
	}
}
