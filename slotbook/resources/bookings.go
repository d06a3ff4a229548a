package resources

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/slotbook/slotbook-sdk-go/internal/httpx"
	"github.com/slotbook/slotbook-sdk-go/slotbook/datetime"
	"github.com/slotbook/slotbook-sdk-go/slotbook/types"
)

// BookingsResource provides access to booking operations.
type BookingsResource struct {
	base      *Base
	formatter datetime.Formatter
}

// NewBookingsResource creates a new BookingsResource. A nil formatter uses
// datetime.Default.
func NewBookingsResource(transport *httpx.Transport, formatter datetime.Formatter) *BookingsResource {
	if formatter == nil {
		formatter = datetime.Default()
	}
	return &BookingsResource{base: NewBase(transport), formatter: formatter}
}

type createBookingRequest struct {
	Resource           int              `json:"resource,omitempty"`
	ResourceExternalID string           `json:"resource_external_id,omitempty"`
	StartTime          string           `json:"start_time"`
	EndTime            string           `json:"end_time"`
	Timezone           string           `json:"timezone"`
	Notes              string           `json:"notes,omitempty"`
	Metadata           types.JSONObject `json:"metadata,omitempty"`
}

// Create books a resource on behalf of params.UserExternalID.
//
// Start and End are rendered as wall-clock times in params.Timezone with the
// offset in effect there. Missing params, a missing user or an unknown zone
// fail before any request is made.
func (r *BookingsResource) Create(ctx context.Context, params *types.CreateBookingParams) (*types.Booking, error) {
	if params == nil {
		return nil, httpx.NewValidationError("booking parameters are required", nil)
	}
	if err := requireUser(params.UserExternalID); err != nil {
		return nil, err
	}

	zone := params.Timezone
	if zone == "" {
		zone = params.Start.Location().String()
	}

	start, err := r.formatter.Format(params.Start, zone)
	if err != nil {
		return nil, zoneError(err)
	}
	end, err := r.formatter.Format(params.End, zone)
	if err != nil {
		return nil, zoneError(err)
	}

	body := &createBookingRequest{
		Resource:           params.ResourceID,
		ResourceExternalID: params.ResourceExternalID,
		StartTime:          start,
		EndTime:            end,
		Timezone:           zone,
		Notes:              params.Notes,
		Metadata:           params.Metadata,
	}

	var result types.Booking
	if err := r.base.Post(ctx, "/bookings/", body, &result, WithUserExternalID(params.UserExternalID)); err != nil {
		return nil, err
	}
	return &result, nil
}

func zoneError(err error) error {
	return httpx.NewValidationError(err.Error(), map[string][]string{"timezone": {err.Error()}})
}

// requireUser rejects calls that must act on behalf of a user.
func requireUser(userExternalID string) error {
	if userExternalID != "" {
		return nil
	}
	const msg = "user external ID is required"
	return httpx.NewValidationError(msg, map[string][]string{"user_external_id": {msg}})
}

// Get retrieves a booking by ID. userExternalID may be empty.
func (r *BookingsResource) Get(ctx context.Context, id int, userExternalID string) (*types.Booking, error) {
	var result types.Booking
	if err := r.base.Get(ctx, fmt.Sprintf("/bookings/%d/", id), &result, WithUserExternalID(userExternalID)); err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns the bookings visible to params.UserExternalID as a flat slice,
// whether the server answers with a bare array or a paginated envelope.
func (r *BookingsResource) List(ctx context.Context, params *types.ListBookingsParams) ([]types.Booking, error) {
	var (
		q    httpx.Params
		opts []RequestOption
	)
	if params != nil {
		if params.Status != nil {
			q.Add("status", string(*params.Status))
		}
		q.AddBool("upcoming", params.Upcoming)
		opts = append(opts, WithUserExternalID(params.UserExternalID))
	}
	opts = append(opts, WithQuery(q))

	resp, err := r.base.Raw(ctx, http.MethodGet, "/bookings/", nil, opts...)
	if err != nil {
		return nil, err
	}
	return decodeBookingList(resp)
}

func decodeBookingList(resp *httpx.Response) ([]types.Booking, error) {
	trimmed := bytes.TrimSpace(resp.Body)
	if len(trimmed) == 0 {
		return []types.Booking{}, nil
	}

	if trimmed[0] == '[' {
		var list []types.Booking
		if err := resp.Decode(&list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var page types.Page[types.Booking]
	if err := resp.Decode(&page); err != nil {
		return nil, err
	}
	if page.Results == nil {
		return []types.Booking{}, nil
	}
	return page.Results, nil
}

// CreatePaymentIntent issues a payment intent for an unpaid booking.
func (r *BookingsResource) CreatePaymentIntent(ctx context.Context, id int, userExternalID string) (*types.PaymentIntent, error) {
	if err := requireUser(userExternalID); err != nil {
		return nil, err
	}

	var result types.PaymentIntent
	path := fmt.Sprintf("/bookings/%d/create-payment-intent/", id)
	if err := r.base.Post(ctx, path, struct{}{}, &result, WithUserExternalID(userExternalID)); err != nil {
		return nil, err
	}
	return &result, nil
}

type cancelBookingRequest struct {
	Reason string `json:"reason"`
	Notes  string `json:"notes,omitempty"`
}

// Cancel cancels a booking on behalf of params.UserExternalID. An empty
// Reason sends types.DefaultCancellationReason.
func (r *BookingsResource) Cancel(ctx context.Context, id int, params *types.CancelBookingParams) (*types.Booking, error) {
	if params == nil {
		params = &types.CancelBookingParams{}
	}
	if err := requireUser(params.UserExternalID); err != nil {
		return nil, err
	}

	body := &cancelBookingRequest{Reason: types.DefaultCancellationReason, Notes: params.Notes}
	if params.Reason != "" {
		body.Reason = params.Reason
	}

	var result types.Booking
	path := fmt.Sprintf("/bookings/%d/cancel/", id)
	if err := r.base.Post(ctx, path, body, &result, WithUserExternalID(params.UserExternalID)); err != nil {
		return nil, err
	}
	return &result, nil
}
