// Package datetime renders booking times as fixed-offset ISO-8601 strings.
//
// The backend expects start and end times of the form
//
//	2025-07-15T10:00:00+02:00
//
// where the offset is the one in effect for that wall-clock time in the
// venue's IANA zone. A zero offset is written as +00:00, never Z.
//
// Two strategies implement Formatter. Zoned relies on time.Date resolving the
// wall clock inside the zone; Components resolves the offset itself and
// assembles the string field by field. Default picks one once per process.
// Hosts without a system zone database can build with the slotbook_tzdata
// tag to link Go's embedded copy.
package datetime

import (
	"fmt"
	"sync"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Layout is the time.Format layout of the rendered value.
const Layout = "2006-01-02T15:04:05-07:00"

// Formatter renders a wall-clock time in a named zone.
//
// Only the calendar and clock fields of wall are used; its Location is
// ignored and fractional seconds are dropped.
type Formatter interface {
	Format(wall time.Time, zone string) (string, error)
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(wall time.Time, zone string) (string, error)

// Format implements Formatter.
func (f FormatterFunc) Format(wall time.Time, zone string) (string, error) {
	return f(wall, zone)
}

func loadLocation(zone string) (*time.Location, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", zone, err)
	}
	return loc, nil
}

// Zoned is the primary strategy. Wall times inside a spring-forward gap or a
// fall-back overlap are resolved the way time.Date resolves them.
type Zoned struct{}

// Format implements Formatter.
func (Zoned) Format(wall time.Time, zone string) (string, error) {
	loc, err := loadLocation(zone)
	if err != nil {
		return "", err
	}
	local := time.Date(wall.Year(), wall.Month(), wall.Day(),
		wall.Hour(), wall.Minute(), wall.Second(), 0, loc)
	return local.Format(Layout), nil
}

// Components is the fallback strategy. It reads the wall fields as if they
// were UTC, looks up the zone offset at that instant, corrects once if the
// corrected instant falls under a different offset, and then writes each
// field with fixed-width zero padding.
//
// Inside a gap the result moves forward by the gap length; inside an overlap
// the post-transition offset wins.
type Components struct{}

// Format implements Formatter.
func (Components) Format(wall time.Time, zone string) (string, error) {
	loc, err := loadLocation(zone)
	if err != nil {
		return "", err
	}

	asUTC := time.Date(wall.Year(), wall.Month(), wall.Day(),
		wall.Hour(), wall.Minute(), wall.Second(), 0, time.UTC)

	offset := offsetAt(asUTC, loc)
	instant := asUTC.Add(-time.Duration(offset) * time.Second)
	if corrected := offsetAt(instant, loc); corrected != offset {
		offset = corrected
		instant = asUTC.Add(-time.Duration(offset) * time.Second)
	}

	local := instant.In(loc)
	_, offset = local.Zone()

	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d%s",
		local.Year(), int(local.Month()), local.Day(),
		local.Hour(), local.Minute(), local.Second(),
		FormatOffset(offset)), nil
}

func offsetAt(t time.Time, loc *time.Location) int {
	_, offset := t.In(loc).Zone()
	return offset
}

// FormatOffset renders an offset in seconds east of UTC as ±HH:MM.
func FormatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("%c%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}

// referenceVector is a wall time and zone whose rendering is known for any
// zone database; Default uses it to decide whether Zoned is trustworthy.
var referenceVector = struct {
	wall time.Time
	zone string
	want string
}{
	wall: time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC),
	zone: "Asia/Kolkata",
	want: "2025-01-15T10:00:00+05:30",
}

var (
	defaultOnce      sync.Once
	defaultFormatter Formatter
)

// Default returns the process-wide strategy, selected on first use: Zoned
// when it reproduces a known reference value, Components otherwise.
func Default() Formatter {
	defaultOnce.Do(func() {
		defaultFormatter = selectFormatter(Zoned{}, Components{})
	})
	return defaultFormatter
}

func selectFormatter(primary, fallback Formatter) Formatter {
	got, err := primary.Format(referenceVector.wall, referenceVector.zone)
	if err == nil && got == referenceVector.want {
		return primary
	}
	return fallback
}

// FormatInZone renders wall in zone with the Default strategy.
func FormatInZone(wall time.Time, zone string) (string, error) {
	return Default().Format(wall, zone)
}

// FormatDate renders the calendar date of t, as observed in the process's
// local time zone, as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return openapi_types.Date{Time: t.Local()}.Format(openapi_types.DateFormat)
}
