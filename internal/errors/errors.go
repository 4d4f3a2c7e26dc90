package errors

import (
	"errors"
	"net/http"
	"strings"
)

// This package defines the failure taxonomy for the gateway. Services return
// a *Classified; the API layer uses its Type to pick an HTTP status and a
// localized user-facing message, and its wrapped error as the raw diagnostic
// string. Keeping the taxonomy here decouples the services from HTTP concerns.

// Type names one category of the error taxonomy. The string values appear
// verbatim in the `errorType` field of error response bodies.
type Type string

const (
	// TypeValidation marks client input that failed a required-field or
	// business rule check. Mapped to 400.
	TypeValidation Type = "validation"

	// TypeRateLimit marks provider throttling. Mapped to 429.
	TypeRateLimit Type = "rate_limit"

	// TypeServiceUnavailable marks timeouts and connection failures on the
	// outbound provider call. Mapped to 503.
	TypeServiceUnavailable Type = "service_unavailable"

	// TypeAuthError marks rejected provider credentials. Mapped to 401.
	TypeAuthError Type = "auth_error"

	// TypeQuotaExceeded marks exhausted provider quota. Mapped to 429.
	TypeQuotaExceeded Type = "quota_exceeded"

	// TypeUnknown is everything else. Mapped to 500.
	TypeUnknown Type = "unknown"
)

// HTTPStatus maps a taxonomy type onto its response status code.
func (t Type) HTTPStatus() int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeRateLimit, TypeQuotaExceeded:
		return http.StatusTooManyRequests
	case TypeServiceUnavailable:
		return http.StatusServiceUnavailable
	case TypeAuthError:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// MessageKey is the i18n lookup key for this type's user-facing message.
func (t Type) MessageKey() string { return "error." + string(t) }

// Classified is an error annotated with its taxonomy type. It wraps the
// underlying cause so errors.Is / errors.As keep working through it.
type Classified struct {
	Kind Type
	Err  error
}

func (e *Classified) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *Classified) Unwrap() error { return e.Err }

// New wraps err with an explicit taxonomy type.
func New(kind Type, err error) *Classified {
	return &Classified{Kind: kind, Err: err}
}

// statusCoder is satisfied by provider errors that carry the HTTP status code
// of the upstream response.
type statusCoder interface {
	StatusCode() int
}

// Classify maps a provider failure onto the taxonomy. Structured fields are
// inspected first: if the error carries the provider's HTTP status code, that
// decides the category. Substring matching on the error text is the fallback
// for transport errors that never produced a response; the matching rules are
// best-effort by nature.
func Classify(err error) *Classified {
	var c *Classified
	if errors.As(err, &c) {
		return c
	}

	var sc statusCoder
	if errors.As(err, &sc) {
		if kind, ok := classifyStatus(sc.StatusCode(), err.Error()); ok {
			return New(kind, err)
		}
	}

	return New(classifyMessage(err.Error()), err)
}

func classifyStatus(status int, msg string) (Type, bool) {
	switch status {
	case http.StatusTooManyRequests:
		if containsQuota(msg) {
			return TypeQuotaExceeded, true
		}
		return TypeRateLimit, true
	case http.StatusUnauthorized, http.StatusForbidden:
		return TypeAuthError, true
	case http.StatusRequestTimeout, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return TypeServiceUnavailable, true
	}
	return TypeUnknown, false
}

// classifyMessage applies the substring rules inherited from the original
// deployment. They are checked in specificity order: quota before rate limit,
// auth before connectivity.
func classifyMessage(msg string) Type {
	lower := strings.ToLower(msg)

	switch {
	case containsQuota(msg):
		return TypeQuotaExceeded
	case strings.Contains(msg, "429") || strings.Contains(lower, "rate limit"):
		return TypeRateLimit
	case strings.Contains(msg, "401") || strings.Contains(lower, "unauthorized") ||
		strings.Contains(lower, "invalid api key") || strings.Contains(lower, "authentication"):
		return TypeAuthError
	case strings.Contains(msg, "ECONNRESET") || strings.Contains(msg, "ECONNREFUSED") ||
		strings.Contains(msg, "ETIMEDOUT") || strings.Contains(lower, "timeout") ||
		strings.Contains(lower, "connection refused") || strings.Contains(lower, "connection reset") ||
		strings.Contains(lower, "no such host"):
		return TypeServiceUnavailable
	default:
		return TypeUnknown
	}
}

func containsQuota(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "quota")
}
