package types

import "time"

// RegisterVenueRequest maps an external venue ID onto a platform venue.
type RegisterVenueRequest struct {
	ExternalID   string     `json:"external_id"`
	VenueID      int        `json:"venue_id"`
	ExternalData JSONObject `json:"external_data,omitempty"`
}

// VenueMapping links an external venue ID to a platform venue.
type VenueMapping struct {
	ID           int        `json:"id"`
	ExternalID   string     `json:"external_id"`
	VenueID      int        `json:"venue_id"`
	VenueName    string     `json:"venue_name,omitempty"`
	ExternalData JSONObject `json:"external_data,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Venue is a place offering bookable resources.
type Venue struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description,omitempty"`
	VenueType   string   `json:"venue_type,omitempty"`
	Address     string   `json:"address,omitempty"`
	City        string   `json:"city,omitempty"`
	Country     string   `json:"country,omitempty"`
	Timezone    string   `json:"timezone,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Email       string   `json:"email,omitempty"`
	Website     string   `json:"website,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	IsActive    bool     `json:"is_active"`
	IsFeatured  bool     `json:"is_featured"`
}

// OpeningHours is one weekday's opening window; Weekday 0 is Monday.
type OpeningHours struct {
	Weekday  int    `json:"weekday"`
	OpensAt  string `json:"opens_at"`
	ClosesAt string `json:"closes_at"`
	IsClosed bool   `json:"is_closed"`
}

// VenueDetail is the full venue record returned by GET /venues/{id}/.
type VenueDetail struct {
	Venue
	Resources    []Resource     `json:"resources"`
	OpeningHours []OpeningHours `json:"opening_hours,omitempty"`
	Amenities    []string       `json:"amenities,omitempty"`
}

// VenueWithResources is the venue and resource set addressed by a venue external ID.
type VenueWithResources struct {
	Venue     Venue      `json:"venue"`
	Resources []Resource `json:"resources"`
}

// ListVenuesParams filters GET /venues/.
type ListVenuesParams struct {
	City       *string
	VenueType  *string
	Search     *string
	IsActive   *bool
	IsFeatured *bool
	Page       *int
	PageSize   *int
}
