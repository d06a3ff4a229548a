package resources

import (
	"context"
	"fmt"

	"github.com/slotbook/slotbook-sdk-go/internal/httpx"
	"github.com/slotbook/slotbook-sdk-go/slotbook/datetime"
	"github.com/slotbook/slotbook-sdk-go/slotbook/types"
)

// AvailabilityResource provides access to resource availability windows.
type AvailabilityResource struct {
	base *Base
}

// NewAvailabilityResource creates a new AvailabilityResource.
func NewAvailabilityResource(transport *httpx.Transport) *AvailabilityResource {
	return &AvailabilityResource{base: NewBase(transport)}
}

// ForResource retrieves availability for a platform resource ID.
func (r *AvailabilityResource) ForResource(ctx context.Context, resourceID int, params *types.AvailabilityParams) (*types.AvailabilityResponse, error) {
	var result types.AvailabilityResponse
	path := fmt.Sprintf("/resources/%d/availability/", resourceID)
	if err := r.base.Get(ctx, path, &result, WithQuery(dateRange(params))); err != nil {
		return nil, err
	}
	return &result, nil
}

// ForExternalResource retrieves availability for a registered external resource ID.
func (r *AvailabilityResource) ForExternalResource(ctx context.Context, resourceExternalID string, params *types.AvailabilityParams) (*types.AvailabilityResponse, error) {
	var q httpx.Params
	q.Add("resource_external_id", resourceExternalID)
	q = append(q, dateRange(params)...)

	var result types.AvailabilityResponse
	if err := r.base.Get(ctx, "/resources/availability/", &result, WithQuery(q)); err != nil {
		return nil, err
	}
	return &result, nil
}

// dateRange renders the date bounds in the caller's local calendar.
func dateRange(params *types.AvailabilityParams) httpx.Params {
	var q httpx.Params
	if params == nil {
		return q
	}
	if !params.StartDate.IsZero() {
		q.Add("start_date", datetime.FormatDate(params.StartDate))
	}
	if !params.EndDate.IsZero() {
		q.Add("end_date", datetime.FormatDate(params.EndDate))
	}
	return q
}
