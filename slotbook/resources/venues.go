package resources

import (
	"context"
	"fmt"

	"github.com/slotbook/slotbook-sdk-go/internal/httpx"
	"github.com/slotbook/slotbook-sdk-go/slotbook/types"
)

// VenuesResource provides access to venue operations.
type VenuesResource struct {
	base *Base
}

// NewVenuesResource creates a new VenuesResource.
func NewVenuesResource(transport *httpx.Transport) *VenuesResource {
	return &VenuesResource{base: NewBase(transport)}
}

// Register maps req.ExternalID onto a platform venue.
func (r *VenuesResource) Register(ctx context.Context, req *types.RegisterVenueRequest) (*types.VenueMapping, error) {
	var result types.VenueMapping
	if err := r.base.Post(ctx, "/client/venues/register/", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Lookup returns the mapping for externalID, or nil without error when unknown.
func (r *VenuesResource) Lookup(ctx context.Context, externalID string) (*types.VenueMapping, error) {
	return lookup[types.VenueMapping](ctx, r.base, "/client/venues/lookup/", externalID)
}

// WithResources returns the venue registered under venueExternalID together
// with its resources.
func (r *VenuesResource) WithResources(ctx context.Context, venueExternalID string) (*types.VenueWithResources, error) {
	var q httpx.Params
	q.Add("venue_external_id", venueExternalID)

	var result types.VenueWithResources
	if err := r.base.Get(ctx, "/venues/resources/", &result, WithQuery(q)); err != nil {
		return nil, err
	}
	return &result, nil
}

// List retrieves one page of venues.
func (r *VenuesResource) List(ctx context.Context, params *types.ListVenuesParams) (*types.Page[types.Venue], error) {
	var q httpx.Params
	if params != nil {
		q.AddString("city", params.City)
		q.AddString("venue_type", params.VenueType)
		q.AddString("search", params.Search)
		q.AddBool("is_active", params.IsActive)
		q.AddBool("is_featured", params.IsFeatured)
		q.AddInt("page", params.Page)
		q.AddInt("page_size", params.PageSize)
	}

	var result types.Page[types.Venue]
	if err := r.base.Get(ctx, "/venues/", &result, WithQuery(q)); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get retrieves a venue by ID.
func (r *VenuesResource) Get(ctx context.Context, id int) (*types.VenueDetail, error) {
	var result types.VenueDetail
	if err := r.base.Get(ctx, fmt.Sprintf("/venues/%d/", id), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetBySlug searches venues for slug and fetches the exact match. The search
// endpoint matches loosely, so results are filtered on Slug before the
// detail call. No exact match yields a not-found error.
func (r *VenuesResource) GetBySlug(ctx context.Context, slug string) (*types.VenueDetail, error) {
	page, err := r.List(ctx, &types.ListVenuesParams{Search: &slug})
	if err != nil {
		return nil, err
	}
	for _, v := range page.Results {
		if v.Slug == slug {
			return r.Get(ctx, v.ID)
		}
	}
	return nil, httpx.NewNotFoundError(fmt.Sprintf("venue with slug %q not found", slug))
}
