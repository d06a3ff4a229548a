package types

import (
	"strconv"
	"time"
)

// RegisterResourceRequest maps an external resource ID onto a platform resource.
type RegisterResourceRequest struct {
	ExternalID   string     `json:"external_id"`
	ResourceID   int        `json:"resource_id"`
	ExternalData JSONObject `json:"external_data,omitempty"`
}

// ResourceMapping links an external resource ID to a platform resource.
type ResourceMapping struct {
	ID           int        `json:"id"`
	ExternalID   string     `json:"external_id"`
	ResourceID   int        `json:"resource_id"`
	ResourceName string     `json:"resource_name,omitempty"`
	ExternalData JSONObject `json:"external_data,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Resource is a bookable unit (court, room, desk) belonging to a venue.
type Resource struct {
	ID                 int    `json:"id"`
	Venue              int    `json:"venue"`
	VenueName          string `json:"venue_name,omitempty"`
	VenueSlug          string `json:"venue_slug,omitempty"`
	Name               string `json:"name"`
	Slug               string `json:"slug,omitempty"`
	ResourceType       string `json:"resource_type,omitempty"`
	Description        string `json:"description,omitempty"`
	Capacity           int    `json:"capacity,omitempty"`
	IsActive           bool   `json:"is_active"`
	IsBookable         bool   `json:"is_bookable"`
	PricePerHour       string `json:"price_per_hour,omitempty"`
	Currency           string `json:"currency,omitempty"`
	MinBookingDuration int    `json:"min_booking_duration,omitempty"`
	MaxBookingDuration int    `json:"max_booking_duration,omitempty"`
}

// HourlyPrice parses PricePerHour. The API serializes decimals as strings.
func (r *Resource) HourlyPrice() (float64, error) {
	return strconv.ParseFloat(r.PricePerHour, 64)
}

// ListResourcesParams filters GET /resources/.
type ListResourcesParams struct {
	Venue      *int
	VenueSlug  *string
	IsActive   *bool
	IsBookable *bool
}
