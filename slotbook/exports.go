package slotbook

import (
	"context"

	"github.com/slotbook/slotbook-sdk-go/internal/httpx"
	"github.com/slotbook/slotbook-sdk-go/slotbook/types"
)

// EnsureUser returns the mapping for req.ExternalID, registering it first
// when the platform does not know it yet.
//
// Example:
//
//	user, err := slotbook.EnsureUser(ctx, client, &types.RegisterUserRequest{
//		ExternalID: "member-1042",
//		Email:      "ada@example.com",
//	})
func EnsureUser(ctx context.Context, c *Client, req *types.RegisterUserRequest) (*types.UserMapping, error) {
	if req == nil {
		return nil, httpx.NewValidationError("user registration is required", nil)
	}
	existing, err := c.Users().Lookup(ctx, req.ExternalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return c.Users().Register(ctx, req)
}

// BookAndPay creates a booking and issues its payment intent.
//
// A failed booking step is returned as KindBookingFailed and a failed payment
// step as KindPaymentFailed; the transport error stays reachable through
// errors.Unwrap. When only the payment step fails the booking is returned
// alongside the error so the caller can retry payment or cancel it.
func BookAndPay(ctx context.Context, c *Client, params *types.CreateBookingParams) (*types.Booking, *types.PaymentIntent, error) {
	if params == nil {
		return nil, nil, httpx.NewValidationError("booking parameters are required", nil)
	}

	booking, err := c.Bookings().Create(ctx, params)
	if err != nil {
		return nil, nil, httpx.NewBookingFailedError("booking could not be created", err)
	}

	intent, err := c.Bookings().CreatePaymentIntent(ctx, booking.ID, params.UserExternalID)
	if err != nil {
		return booking, nil, httpx.NewPaymentFailedError("payment intent could not be created", err)
	}
	return booking, intent, nil
}

// FindVenue is a shortcut for client.Venues().GetBySlug.
func FindVenue(ctx context.Context, c *Client, slug string) (*types.VenueDetail, error) {
	return c.Venues().GetBySlug(ctx, slug)
}
