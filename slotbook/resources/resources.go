package resources

import (
	"context"

	"github.com/slotbook/slotbook-sdk-go/internal/httpx"
	"github.com/slotbook/slotbook-sdk-go/slotbook/types"
)

// ResourcesResource provides access to bookable resources and their mappings.
type ResourcesResource struct {
	base *Base
}

// NewResourcesResource creates a new ResourcesResource.
func NewResourcesResource(transport *httpx.Transport) *ResourcesResource {
	return &ResourcesResource{base: NewBase(transport)}
}

// Register maps req.ExternalID onto a platform resource.
func (r *ResourcesResource) Register(ctx context.Context, req *types.RegisterResourceRequest) (*types.ResourceMapping, error) {
	var result types.ResourceMapping
	if err := r.base.Post(ctx, "/client/resources/register/", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Lookup returns the mapping for externalID, or nil without error when unknown.
func (r *ResourcesResource) Lookup(ctx context.Context, externalID string) (*types.ResourceMapping, error) {
	return lookup[types.ResourceMapping](ctx, r.base, "/client/resources/lookup/", externalID)
}

// List retrieves one page of resources.
func (r *ResourcesResource) List(ctx context.Context, params *types.ListResourcesParams) (*types.Page[types.Resource], error) {
	var q httpx.Params
	if params != nil {
		q.AddInt("venue", params.Venue)
		q.AddString("venue_slug", params.VenueSlug)
		q.AddBool("is_active", params.IsActive)
		q.AddBool("is_bookable", params.IsBookable)
	}

	var result types.Page[types.Resource]
	if err := r.base.Get(ctx, "/resources/", &result, WithQuery(q)); err != nil {
		return nil, err
	}
	return &result, nil
}
