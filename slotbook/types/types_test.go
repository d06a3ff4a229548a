package types

import (
	"encoding/json"
	"testing"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingPredicates(t *testing.T) {
	tests := []struct {
		name      string
		booking   Booking
		paid      bool
		cancelled bool
		confirmed bool
	}{
		{"pending unpaid", Booking{Status: BookingStatusPending, PaymentStatus: PaymentStatusPending}, false, false, false},
		{"confirmed paid", Booking{Status: BookingStatusConfirmed, PaymentStatus: PaymentStatusPaid}, true, false, true},
		{"cancelled refunded", Booking{Status: BookingStatusCancelled, PaymentStatus: PaymentStatusRefunded}, false, true, false},
		{"unknown status", Booking{Status: "archived", PaymentStatus: "disputed"}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.paid, tt.booking.IsPaid())
			assert.Equal(t, tt.cancelled, tt.booking.IsCancelled())
			assert.Equal(t, tt.confirmed, tt.booking.IsConfirmed())
		})
	}
}

func TestBooking_Decode(t *testing.T) {
	raw := `{
		"id": 42,
		"booking_reference": "BK-7F3A",
		"resource": 3,
		"start_time": "2025-07-15T10:00:00+02:00",
		"end_time": "2025-07-15T11:30:00+02:00",
		"status": "confirmed",
		"payment_status": "paid",
		"total_price": "45.00",
		"created_at": "2025-07-01T08:00:00Z",
		"updated_at": "2025-07-01T08:00:00Z"
	}`

	var b Booking
	require.NoError(t, json.Unmarshal([]byte(raw), &b))
	assert.Equal(t, "BK-7F3A", b.BookingReference)
	assert.Equal(t, 90*time.Minute, b.Duration())
	assert.True(t, b.IsPaid())
	assert.True(t, b.IsConfirmed())
	assert.False(t, b.IsPending())
	_, offset := b.StartTime.Zone()
	assert.Equal(t, 2*3600, offset)
}

func TestAvailabilityResponse_Decode(t *testing.T) {
	raw := `{
		"resource_id": 3,
		"resource_name": "Court 1",
		"timezone": "Europe/Berlin",
		"start_date": "2025-07-15",
		"end_date": "2025-07-16",
		"availability": [
			{"date": "2025-07-15", "start_time": "10:00", "end_time": "11:30", "price": "45.00", "is_available": true},
			{"date": "2025-07-15", "start_time": "12:00:00", "end_time": "13:00:00", "price": "30.00", "is_available": false}
		]
	}`

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	assert.Equal(t, 2025, resp.StartDate.Year())
	assert.Equal(t, time.July, resp.EndDate.Month())
	require.Len(t, resp.Windows, 2)

	available := resp.Available()
	require.Len(t, available, 1)
	assert.Equal(t, "45.00", available[0].Price)

	d, err := resp.Windows[0].Duration()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	berlin := time.FixedZone("CEST", 2*3600)
	start, err := resp.Windows[1].Start(berlin)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 15, 12, 0, 0, 0, berlin), start)
}

func TestAvailabilityWindow_InvalidClock(t *testing.T) {
	w := AvailabilityWindow{StartTime: "noon", EndTime: "13:00"}
	_, err := w.Duration()
	assert.Error(t, err)
}

func TestPage_HasNext(t *testing.T) {
	var p Page[Venue]
	require.NoError(t, json.Unmarshal([]byte(`{"count":1,"next":null,"previous":null,"results":[{"id":1,"name":"A","slug":"a"}]}`), &p))
	assert.False(t, p.HasNext())
	assert.Len(t, p.Results, 1)

	p.Next = String("https://api.example.com/api/v1/venues/?page=2")
	assert.True(t, p.HasNext())
}

func TestVenueDetail_Decode(t *testing.T) {
	raw := `{"id":5,"name":"Center Court","slug":"center-court","timezone":"Europe/Berlin",
		"is_active":true,"resources":[{"id":9,"venue":5,"name":"Court 1","is_active":true,"is_bookable":true,"price_per_hour":"30.50"}]}`

	var v VenueDetail
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	assert.Equal(t, "center-court", v.Slug)
	require.Len(t, v.Resources, 1)

	price, err := v.Resources[0].HourlyPrice()
	require.NoError(t, err)
	assert.InDelta(t, 30.5, price, 0.0001)
}

func TestUserMapping_FullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", (&UserMapping{FirstName: "Ada", LastName: "Lovelace"}).FullName())
	assert.Equal(t, "Ada", (&UserMapping{FirstName: "Ada"}).FullName())
	assert.Equal(t, "Lovelace", (&UserMapping{LastName: "Lovelace"}).FullName())
}

func TestRegisterUserRequest_InvalidEmail(t *testing.T) {
	_, err := json.Marshal(RegisterUserRequest{ExternalID: "u1", Email: "not-an-email"})
	assert.Error(t, err)

	b, err := json.Marshal(RegisterUserRequest{ExternalID: "u1", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"external_id":"u1","email":"ada@example.com"}`, string(b))
}

func TestRegisterUserRequest_Validate(t *testing.T) {
	assert.Nil(t, (&RegisterUserRequest{ExternalID: "u1", Email: "ada@example.com"}).Validate())

	for _, email := range []string{"", "not-an-email"} {
		fields := (&RegisterUserRequest{ExternalID: "u1", Email: openapi_types.Email(email)}).Validate()
		assert.Contains(t, fields, "email", email)
	}
}

func TestPaymentIntent_RequiresAction(t *testing.T) {
	assert.True(t, (&PaymentIntent{Status: "requires_payment_method"}).RequiresAction())
	assert.False(t, (&PaymentIntent{Status: "succeeded"}).RequiresAction())
}
