package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Kind identifies the category of a failed call. The set is closed.
type Kind int

const (
	// KindGeneric covers unmapped status codes and transport faults.
	KindGeneric Kind = iota
	// KindAuthenticationFailed is a 401 response.
	KindAuthenticationFailed
	// KindNotFound is a 404 response.
	KindNotFound
	// KindValidation is a 400 response that matched no more specific pattern.
	KindValidation
	// KindSlotNotAvailable is a 400 response reporting an unavailable slot.
	KindSlotNotAvailable
	// KindUserNotFound is a 400 response reporting an unknown user.
	KindUserNotFound
	// KindRequestTimeout is produced when the configured timeout or the
	// caller's deadline elapses.
	KindRequestTimeout
	// KindBookingFailed is reserved for callers composing booking flows.
	KindBookingFailed
	// KindPaymentFailed is reserved for callers composing payment flows.
	KindPaymentFailed
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindAuthenticationFailed:
		return "authentication_failed"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindSlotNotAvailable:
		return "slot_not_available"
	case KindUserNotFound:
		return "user_not_found"
	case KindRequestTimeout:
		return "request_timeout"
	case KindBookingFailed:
		return "booking_failed"
	case KindPaymentFailed:
		return "payment_failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// UnknownErrorMessage is used when an error response carries no body.
const UnknownErrorMessage = "Unknown error"

// Error is the single error type produced by the transport.
type Error struct {
	Kind    Kind
	Message string
	// StatusCode is zero when no HTTP status applies (transport faults).
	StatusCode int
	// Payload is the parsed error body, kept for diagnostics.
	Payload any
	RawBody []byte
	// Fields holds per-field validation messages. Only set by NewValidationError.
	Fields map[string][]string
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// ParseErrorFromResponse builds a typed error from a non-2xx response.
func ParseErrorFromResponse(statusCode int, body []byte) *Error {
	e := &Error{
		StatusCode: statusCode,
		Message:    UnknownErrorMessage,
		RawBody:    body,
	}

	if payload, ok := decodeErrorBody(body); ok {
		e.Payload = payload
		e.Message = messageFromBody(body, payload)
	} else {
		e.Payload = map[string]any{}
	}

	e.Kind = kindForStatus(statusCode, e.Message)
	return e
}

func decodeErrorBody(body []byte) (any, bool) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, false
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil || v == nil {
		return nil, false
	}
	return v, true
}

// messageFromBody picks the first of "error", "detail", "non_field_errors[0]",
// falling back to the JSON text of the whole body as the server sent it.
func messageFromBody(raw []byte, body any) string {
	if obj, ok := body.(map[string]any); ok {
		if s, ok := obj["error"].(string); ok {
			return s
		}
		if s, ok := obj["detail"].(string); ok {
			return s
		}
		if list, ok := obj["non_field_errors"].([]any); ok && len(list) > 0 {
			if s, ok := list[0].(string); ok {
				return s
			}
			var fields struct {
				NonFieldErrors []json.RawMessage `json:"non_field_errors"`
			}
			if err := json.Unmarshal(raw, &fields); err == nil && len(fields.NonFieldErrors) > 0 {
				return compactJSON(fields.NonFieldErrors[0])
			}
		}
	}
	return compactJSON(raw)
}

// compactJSON strips insignificant whitespace without reordering keys or
// escaping HTML characters.
func compactJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	return buf.String()
}

func kindForStatus(statusCode int, message string) Kind {
	switch statusCode {
	case http.StatusUnauthorized:
		return KindAuthenticationFailed
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusRequestTimeout:
		return KindRequestTimeout
	case http.StatusBadRequest:
		lower := strings.ToLower(message)
		switch {
		case strings.Contains(lower, "not available"):
			return KindSlotNotAvailable
		case strings.Contains(lower, "user") && strings.Contains(lower, "not found"):
			return KindUserNotFound
		default:
			return KindValidation
		}
	default:
		return KindGeneric
	}
}

// NewNetworkError wraps a transport fault.
func NewNetworkError(err error) *Error {
	return &Error{
		Kind:    KindGeneric,
		Message: err.Error(),
		Err:     err,
	}
}

// NewTimeoutError is returned when the per-call timeout elapses.
func NewTimeoutError(timeout time.Duration, err error) *Error {
	return &Error{
		Kind:       KindRequestTimeout,
		Message:    fmt.Sprintf("request timed out after %v", timeout),
		StatusCode: http.StatusRequestTimeout,
		Err:        err,
	}
}

// NewDeadlineError is returned when the caller's context deadline expires
// before the per-call timeout does.
func NewDeadlineError(elapsed time.Duration, err error) *Error {
	return &Error{
		Kind:       KindRequestTimeout,
		Message:    fmt.Sprintf("request exceeded the caller's deadline after %v", elapsed.Round(time.Millisecond)),
		StatusCode: http.StatusRequestTimeout,
		Err:        err,
	}
}

// NewValidationError creates a validation error carrying field-level messages.
func NewValidationError(message string, fields map[string][]string) *Error {
	return &Error{
		Kind:       KindValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Fields:     fields,
	}
}

// NewNotFoundError is returned when a client-side search finds no match.
func NewNotFoundError(message string) *Error {
	return &Error{
		Kind:       KindNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// NewBookingFailedError wraps cause as a booking failure. Status and payload
// are inherited from cause when it is an *Error.
func NewBookingFailedError(message string, cause error) *Error {
	return wrapAs(KindBookingFailed, message, cause)
}

// NewPaymentFailedError wraps cause as a payment failure.
func NewPaymentFailedError(message string, cause error) *Error {
	return wrapAs(KindPaymentFailed, message, cause)
}

func wrapAs(kind Kind, message string, cause error) *Error {
	e := &Error{Kind: kind, Message: message, Err: cause}
	if inner, ok := AsError(cause); ok {
		e.StatusCode = inner.StatusCode
		e.Payload = inner.Payload
		e.RawBody = inner.RawBody
	}
	return e
}

// AsError extracts the typed error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of the outermost *Error in err's chain, and false
// when err carries none.
func KindOf(err error) (Kind, bool) {
	if e, ok := AsError(err); ok {
		return e.Kind, true
	}
	return KindGeneric, false
}

func isKind(err error, kinds ...Kind) bool {
	k, ok := KindOf(err)
	if !ok {
		return false
	}
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

// IsAuthenticationError reports a 401.
func IsAuthenticationError(err error) bool {
	return isKind(err, KindAuthenticationFailed)
}

// IsNotFoundError reports a not-found condition, including an unknown user.
func IsNotFoundError(err error) bool {
	return isKind(err, KindNotFound, KindUserNotFound)
}

// IsValidationError reports a generic 400.
func IsValidationError(err error) bool {
	return isKind(err, KindValidation)
}

// IsSlotNotAvailableError reports a booking rejected for an unavailable slot.
func IsSlotNotAvailableError(err error) bool {
	return isKind(err, KindSlotNotAvailable)
}

// IsUserNotFoundError reports an unknown user.
func IsUserNotFoundError(err error) bool {
	return isKind(err, KindUserNotFound)
}

// IsTimeoutError reports a request timeout.
func IsTimeoutError(err error) bool {
	return isKind(err, KindRequestTimeout)
}
