// Package slotbook provides a Go client for the Slotbook booking platform.
//
// The platform maps an integrator's own user, venue and resource IDs
// (external IDs) onto its records, exposes availability per resource, and
// takes bookings with optional card payment.
//
// # Basic Usage
//
//	client, err := slotbook.NewClient(
//		slotbook.WithBaseURL("https://book.example.com"),
//		slotbook.WithAccessToken(os.Getenv("SLOTBOOK_TOKEN")),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// # Creating Bookings
//
// Start and End are wall-clock times in the venue's zone. The SDK sends them
// with the UTC offset in effect there, for example 2025-07-15T10:00:00+02:00
// for Europe/Berlin in summer.
//
//	booking, err := client.Bookings().Create(ctx, &types.CreateBookingParams{
//		UserExternalID: "member-1042",
//		ResourceID:     9,
//		Start:          time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC),
//		End:            time.Date(2025, 7, 15, 11, 0, 0, 0, time.UTC),
//		Timezone:       "Europe/Berlin",
//	})
//
// # Error Handling
//
// Every failed call returns a *slotbook.Error whose Kind says what went wrong:
//
//	_, err := client.Bookings().Create(ctx, params)
//	switch {
//	case slotbook.IsSlotNotAvailableError(err):
//		// offer another slot
//	case slotbook.IsTimeoutError(err):
//		// the call took longer than WithTimeout allows
//	case err != nil:
//		var apiErr *slotbook.Error
//		if errors.As(err, &apiErr) {
//			log.Printf("status=%d payload=%v", apiErr.StatusCode, apiErr.Payload)
//		}
//	}
//
// Lookups by external ID return nil without error when nothing matches.
//
// # Time Zone Data
//
// Booking times need the IANA zone database. On hosts without one, build with
// -tags slotbook_tzdata to embed it.
package slotbook
