package types

import (
	"fmt"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// AvailabilityParams bounds an availability query. Zero dates are omitted
// and the backend applies its own defaults.
type AvailabilityParams struct {
	StartDate time.Time
	EndDate   time.Time
}

// AvailabilityResponse lists the priced windows of one resource.
type AvailabilityResponse struct {
	ResourceID   int                  `json:"resource_id"`
	ResourceName string               `json:"resource_name,omitempty"`
	Timezone     string               `json:"timezone,omitempty"`
	StartDate    openapi_types.Date   `json:"start_date"`
	EndDate      openapi_types.Date   `json:"end_date"`
	Windows      []AvailabilityWindow `json:"availability"`
}

// Available returns the windows that can still be booked.
func (r *AvailabilityResponse) Available() []AvailabilityWindow {
	out := make([]AvailabilityWindow, 0, len(r.Windows))
	for _, w := range r.Windows {
		if w.IsAvailable {
			out = append(out, w)
		}
	}
	return out
}

// AvailabilityWindow is a priced interval on a given date. Times are venue
// wall-clock times ("15:04" or "15:04:05").
type AvailabilityWindow struct {
	Date        openapi_types.Date `json:"date"`
	StartTime   string             `json:"start_time"`
	EndTime     string             `json:"end_time"`
	Price       string             `json:"price"`
	Currency    string             `json:"currency,omitempty"`
	IsAvailable bool               `json:"is_available"`
}

// Start returns the window start as a wall time on Date in loc.
func (w AvailabilityWindow) Start(loc *time.Location) (time.Time, error) {
	return w.at(w.StartTime, loc)
}

// End returns the window end as a wall time on Date in loc.
func (w AvailabilityWindow) End(loc *time.Location) (time.Time, error) {
	return w.at(w.EndTime, loc)
}

// Duration returns EndTime minus StartTime.
func (w AvailabilityWindow) Duration() (time.Duration, error) {
	start, err := w.Start(time.UTC)
	if err != nil {
		return 0, err
	}
	end, err := w.End(time.UTC)
	if err != nil {
		return 0, err
	}
	return end.Sub(start), nil
}

func (w AvailabilityWindow) at(clock string, loc *time.Location) (time.Time, error) {
	t, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := w.Date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, loc), nil
}

func parseClock(s string) (time.Time, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid clock time %q", s)
}
