package resources

import (
	"context"

	"github.com/slotbook/slotbook-sdk-go/internal/httpx"
	"github.com/slotbook/slotbook-sdk-go/slotbook/types"
)

// UsersResource provides access to user mapping operations.
type UsersResource struct {
	base *Base
}

// NewUsersResource creates a new UsersResource.
func NewUsersResource(transport *httpx.Transport) *UsersResource {
	return &UsersResource{base: NewBase(transport)}
}

// Register creates the mapping for req.ExternalID, or returns the existing one.
// An invalid email is rejected before any request is made.
func (r *UsersResource) Register(ctx context.Context, req *types.RegisterUserRequest) (*types.UserMapping, error) {
	if req == nil {
		return nil, httpx.NewValidationError("user registration is required", nil)
	}
	if fields := req.Validate(); fields != nil {
		return nil, httpx.NewValidationError("invalid user registration", fields)
	}

	var result types.UserMapping
	if err := r.base.Post(ctx, "/client/users/register/", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Lookup returns the mapping for externalID, or nil without error when the
// platform does not know it.
func (r *UsersResource) Lookup(ctx context.Context, externalID string) (*types.UserMapping, error) {
	return lookup[types.UserMapping](ctx, r.base, "/client/users/lookup/", externalID)
}
