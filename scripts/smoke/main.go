// Package main runs an end-to-end smoke test of the SDK against a live
// Slotbook platform.
//
// Usage:
//
//	BASE_URL=http://localhost:8000 ACCESS_TOKEN=... RESOURCE_ID=9 go run ./scripts/smoke
//
// Booking steps run only when RESOURCE_ID is set. Bookings created by the
// run are cancelled before it exits.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/slotbook/slotbook-sdk-go/slotbook"
	"github.com/slotbook/slotbook-sdk-go/slotbook/datetime"
	"github.com/slotbook/slotbook-sdk-go/slotbook/types"
)

var (
	baseURL     = getEnv("BASE_URL", "http://localhost:8000")
	accessToken = os.Getenv("ACCESS_TOKEN")
	resourceID  = getEnvInt("RESOURCE_ID", 0)
	timezone    = getEnv("TIMEZONE", "Europe/Berlin")
	verbose     = os.Getenv("VERBOSE") == "1"
)

type TestResult struct {
	Name    string
	Passed  bool
	Skipped bool
	Error   string
}

var (
	results   []TestResult
	resultsMu sync.Mutex
)

type Runner struct {
	name string
}

func (r *Runner) Run(name string, fn func()) {
	fullName := fmt.Sprintf("%s: %s", r.name, name)
	defer func() {
		if rec := recover(); rec != nil {
			resultsMu.Lock()
			results = append(results, TestResult{Name: fullName, Error: fmt.Sprintf("%v", rec)})
			resultsMu.Unlock()
			fmt.Printf("  ✗ %s\n    Error: %v\n", name, rec)
		}
	}()

	fn()
	resultsMu.Lock()
	results = append(results, TestResult{Name: fullName, Passed: true})
	resultsMu.Unlock()
	fmt.Printf("  ✓ %s\n", name)
}

func (r *Runner) Skip(name, reason string) {
	resultsMu.Lock()
	results = append(results, TestResult{Name: fmt.Sprintf("%s: %s", r.name, name), Passed: true, Skipped: true})
	resultsMu.Unlock()
	fmt.Printf("  - %s (skipped: %s)\n", name, reason)
}

func assertTrue(cond bool, msg string) {
	if !cond {
		panic(fmt.Sprintf("Assertion failed: %s", msg))
	}
}

func assertNoError(err error) {
	if err != nil {
		panic(fmt.Sprintf("Unexpected error: %v", err))
	}
}

func logf(format string, args ...any) {
	if verbose {
		fmt.Printf("    → "+format+"\n", args...)
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func testFormatter() {
	r := &Runner{name: "DateTime"}

	r.Run("strategy selection", func() {
		f := datetime.Default()
		logf("selected %T", f)
		out, err := f.Format(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC), "Asia/Kolkata")
		assertNoError(err)
		assertTrue(out == "2025-01-15T10:00:00+05:30", "Kolkata offset, got "+out)
	})
}

func testUsers(ctx context.Context, client *slotbook.Client, externalID string) {
	r := &Runner{name: "Users"}

	r.Run("lookup unknown returns nil", func() {
		user, err := client.Users().Lookup(ctx, "smoke-missing-"+uuid.NewString())
		assertNoError(err)
		assertTrue(user == nil, "expected nil mapping")
	})

	r.Run("ensure registers once", func() {
		req := &types.RegisterUserRequest{
			ExternalID: externalID,
			Email:      openapi_types.Email("smoke+" + externalID[:8] + "@example.com"),
			FirstName:  "Smoke",
			LastName:   "Test",
		}
		first, err := slotbook.EnsureUser(ctx, client, req)
		assertNoError(err)
		second, err := slotbook.EnsureUser(ctx, client, req)
		assertNoError(err)
		assertTrue(first.UserID == second.UserID, "same platform user on repeat")
		logf("user_id=%d", first.UserID)
	})
}

func testVenues(ctx context.Context, client *slotbook.Client) {
	r := &Runner{name: "Venues"}

	var first *types.Venue
	r.Run("list", func() {
		page, err := client.Venues().List(ctx, &types.ListVenuesParams{PageSize: types.Int(5)})
		assertNoError(err)
		logf("count=%d", page.Count)
		if len(page.Results) > 0 {
			first = &page.Results[0]
		}
	})

	if first == nil {
		r.Skip("get by slug", "no venues")
		return
	}
	r.Run("get by slug", func() {
		venue, err := slotbook.FindVenue(ctx, client, first.Slug)
		assertNoError(err)
		assertTrue(venue.ID == first.ID, "slug resolves to listed venue")
	})

	r.Run("unknown slug is not found", func() {
		_, err := client.Venues().GetBySlug(ctx, "smoke-"+uuid.NewString())
		assertTrue(slotbook.IsNotFoundError(err), fmt.Sprintf("expected not found, got %v", err))
	})
}

func testBookings(ctx context.Context, client *slotbook.Client, userExternalID string) {
	r := &Runner{name: "Bookings"}
	if resourceID == 0 {
		r.Skip("create and cancel", "RESOURCE_ID not set")
		return
	}

	var slot *types.AvailabilityWindow
	r.Run("availability", func() {
		resp, err := client.Availability().ForResource(ctx, resourceID, &types.AvailabilityParams{
			StartDate: time.Now().AddDate(0, 0, 1),
			EndDate:   time.Now().AddDate(0, 0, 7),
		})
		assertNoError(err)
		if open := resp.Available(); len(open) > 0 {
			slot = &open[0]
		}
		logf("%d windows", len(resp.Windows))
	})

	if slot == nil {
		r.Skip("create and cancel", "no open window")
		return
	}

	r.Run("create and cancel", func() {
		loc, err := time.LoadLocation(timezone)
		assertNoError(err)
		start, err := slot.Start(loc)
		assertNoError(err)
		end, err := slot.End(loc)
		assertNoError(err)

		booking, err := client.Bookings().Create(ctx, &types.CreateBookingParams{
			UserExternalID: userExternalID,
			ResourceID:     resourceID,
			Start:          start,
			End:            end,
			Timezone:       timezone,
			Notes:          "smoke test",
		})
		assertNoError(err)
		logf("booking %s", booking.BookingReference)

		cancelled, err := client.Bookings().Cancel(ctx, booking.ID, &types.CancelBookingParams{UserExternalID: userExternalID})
		assertNoError(err)
		assertTrue(cancelled.IsCancelled(), "booking cancelled")
	})
}

func main() {
	if accessToken == "" {
		fmt.Fprintln(os.Stderr, "ACCESS_TOKEN environment variable is required")
		os.Exit(2)
	}

	client, err := slotbook.NewClient(
		slotbook.WithBaseURL(baseURL),
		slotbook.WithAccessToken(accessToken),
		slotbook.WithDebug(verbose),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
		os.Exit(2)
	}
	defer client.Close()

	ctx := context.Background()
	userExternalID := "smoke-" + uuid.NewString()

	fmt.Printf("Slotbook smoke test against %s\n\n", baseURL)
	testFormatter()
	testUsers(ctx, client, userExternalID)
	testVenues(ctx, client)
	testBookings(ctx, client, userExternalID)

	passed, failed, skipped := 0, 0, 0
	for _, r := range results {
		switch {
		case r.Skipped:
			skipped++
		case r.Passed:
			passed++
		default:
			failed++
		}
	}
	fmt.Printf("\n%d passed, %d failed, %d skipped\n", passed, failed, skipped)
	if failed > 0 {
		os.Exit(1)
	}
}
