package types

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// PaymentStatus is the payment state of a booking.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// DefaultCancellationReason is sent when a cancellation names no reason.
const DefaultCancellationReason = "user_request"

// Booking is a reservation of a resource for an interval.
type Booking struct {
	ID                 int           `json:"id"`
	BookingReference   string        `json:"booking_reference"`
	Resource           int           `json:"resource"`
	ResourceName       string        `json:"resource_name,omitempty"`
	VenueName          string        `json:"venue_name,omitempty"`
	UserExternalID     string        `json:"user_external_id,omitempty"`
	StartTime          time.Time     `json:"start_time"`
	EndTime            time.Time     `json:"end_time"`
	Timezone           string        `json:"timezone,omitempty"`
	Status             BookingStatus `json:"status"`
	PaymentStatus      PaymentStatus `json:"payment_status"`
	TotalPrice         string        `json:"total_price,omitempty"`
	Currency           string        `json:"currency,omitempty"`
	Notes              string        `json:"notes,omitempty"`
	CancellationReason string        `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time    `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// IsPaid reports whether payment has been collected.
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == PaymentStatusPaid
}

// IsCancelled reports whether the booking was cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// IsConfirmed reports whether the booking is confirmed.
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

// IsPending reports whether the booking awaits confirmation.
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

// Duration returns EndTime minus StartTime.
func (b *Booking) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

// CreateBookingParams describes a booking to create.
//
// Start and End are wall-clock times in Timezone; their own Location is
// ignored. An empty Timezone uses the Location of Start. Exactly one of
// ResourceID and ResourceExternalID should be set.
type CreateBookingParams struct {
	UserExternalID     string
	ResourceID         int
	ResourceExternalID string
	Start              time.Time
	End                time.Time
	Timezone           string
	Notes              string
	Metadata           JSONObject
}

// ListBookingsParams filters GET /bookings/. UserExternalID, when set, is sent
// as the X-User-External-ID header.
type ListBookingsParams struct {
	Status         *BookingStatus
	Upcoming       *bool
	UserExternalID string
}

// CancelBookingParams describes a cancellation. An empty Reason is sent as
// DefaultCancellationReason.
type CancelBookingParams struct {
	UserExternalID string
	Reason         string
	Notes          string
}

// PaymentIntent is the payment-provider intent issued for a booking. The
// front end completes collection with ClientSecret.
type PaymentIntent struct {
	PaymentIntentID  string `json:"payment_intent_id"`
	ClientSecret     string `json:"client_secret"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
	Status           string `json:"status,omitempty"`
	BookingID        int    `json:"booking_id,omitempty"`
	BookingReference string `json:"booking_reference,omitempty"`
}

// RequiresAction reports whether the customer still has to act on the intent.
func (p *PaymentIntent) RequiresAction() bool {
	switch p.Status {
	case "requires_payment_method", "requires_confirmation", "requires_action":
		return true
	}
	return false
}
