package slotbook

import (
	"errors"

	"github.com/slotbook/slotbook-sdk-go/internal/httpx"
)

// Configuration errors returned by NewClient.
var (
	ErrNoBaseURL = errors.New("slotbook: base URL is required")
	ErrNoAuth    = errors.New("slotbook: access token is required")
)

// Error is the single error type returned by every API call. Inspect Kind,
// or use the Is* helpers, to branch on the failure.
type Error = httpx.Error

// ErrorKind classifies an Error.
type ErrorKind = httpx.Kind

// Error kinds.
const (
	KindGeneric              = httpx.KindGeneric
	KindAuthenticationFailed = httpx.KindAuthenticationFailed
	KindNotFound             = httpx.KindNotFound
	KindValidation           = httpx.KindValidation
	KindSlotNotAvailable     = httpx.KindSlotNotAvailable
	KindUserNotFound         = httpx.KindUserNotFound
	KindRequestTimeout       = httpx.KindRequestTimeout
	KindBookingFailed        = httpx.KindBookingFailed
	KindPaymentFailed        = httpx.KindPaymentFailed
)

// UnknownErrorMessage is the message of an error whose body named none.
const UnknownErrorMessage = httpx.UnknownErrorMessage

// AsError extracts the *Error from err's chain.
func AsError(err error) (*Error, bool) {
	return httpx.AsError(err)
}

// KindOf returns the kind of the *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	return httpx.KindOf(err)
}

// IsAuthenticationError reports a rejected access token.
func IsAuthenticationError(err error) bool {
	return httpx.IsAuthenticationError(err)
}

// IsNotFoundError reports a missing entity, including an unknown user.
func IsNotFoundError(err error) bool {
	return httpx.IsNotFoundError(err)
}

// IsValidationError reports a 400 that matched no narrower kind.
func IsValidationError(err error) bool {
	return httpx.IsValidationError(err)
}

// IsSlotNotAvailableError reports a booking attempt on an unavailable slot.
func IsSlotNotAvailableError(err error) bool {
	return httpx.IsSlotNotAvailableError(err)
}

// IsUserNotFoundError reports an unknown user external ID.
func IsUserNotFoundError(err error) bool {
	return httpx.IsUserNotFoundError(err)
}

// IsTimeoutError reports an elapsed per-call timeout.
func IsTimeoutError(err error) bool {
	return httpx.IsTimeoutError(err)
}

// IsBookingFailedError reports a failure wrapped by BookAndPay's booking step.
func IsBookingFailedError(err error) bool {
	k, ok := httpx.KindOf(err)
	return ok && k == httpx.KindBookingFailed
}

// IsPaymentFailedError reports a failure wrapped by BookAndPay's payment step.
func IsPaymentFailedError(err error) bool {
	k, ok := httpx.KindOf(err)
	return ok && k == httpx.KindPaymentFailed
}

// NewValidationError builds a validation error with field-level messages.
func NewValidationError(message string, fields map[string][]string) *Error {
	return httpx.NewValidationError(message, fields)
}
