package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/slotbook/slotbook-sdk-go/slotbook"
	"github.com/slotbook/slotbook-sdk-go/slotbook/types"
)

// wallLayouts are accepted for --start and --end; the value is a wall time
// in --timezone.
var wallLayouts = []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02 15:04"}

func parseWallTime(s string) (time.Time, error) {
	for _, layout := range wallLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q, want YYYY-MM-DDTHH:MM", s)
}

func parseBookingID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid booking ID %q", s)
	}
	return id, nil
}

func newBookingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Create and manage bookings",
	}
	cmd.AddCommand(
		newBookingsCreateCmd(a),
		newBookingsGetCmd(a),
		newBookingsListCmd(a),
		newBookingsCancelCmd(a),
		newBookingsPayCmd(a),
	)
	return cmd
}

func newBookingsCreateCmd(a *app) *cobra.Command {
	var (
		params     types.CreateBookingParams
		start, end string
		pay        bool
	)

	c := &cobra.Command{
		Use:   "create",
		Short: "Book a resource",
		Example: `  slotbook bookings create --user member-1042 --resource 9 \
    --start 2025-07-15T10:00 --end 2025-07-15T11:00 --timezone Europe/Berlin --pay`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (params.ResourceID == 0) == (params.ResourceExternalID == "") {
				return fmt.Errorf("exactly one of --resource and --resource-external is required")
			}

			var err error
			if params.Start, err = parseWallTime(start); err != nil {
				return err
			}
			if params.End, err = parseWallTime(end); err != nil {
				return err
			}
			if !params.End.After(params.Start) {
				return fmt.Errorf("--end must be after --start")
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			if !pay {
				booking, err := client.Bookings().Create(cmd.Context(), &params)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), booking)
			}

			booking, intent, err := slotbook.BookAndPay(cmd.Context(), client, &params)
			if err != nil {
				if booking != nil {
					a.logger.Warn().Int("booking_id", booking.ID).Msg("Booking created but payment intent failed")
				}
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"booking":         booking,
				"payment_intent":  intent,
				"publishable_key": client.PublishableKey(),
			})
		},
	}

	c.Flags().StringVar(&params.UserExternalID, "user", "", "external ID of the booking user")
	c.Flags().IntVar(&params.ResourceID, "resource", 0, "platform resource ID")
	c.Flags().StringVar(&params.ResourceExternalID, "resource-external", "", "external resource ID")
	c.Flags().StringVar(&start, "start", "", "start wall time, YYYY-MM-DDTHH:MM")
	c.Flags().StringVar(&end, "end", "", "end wall time, YYYY-MM-DDTHH:MM")
	c.Flags().StringVar(&params.Timezone, "timezone", "", "IANA zone of the venue (default: UTC)")
	c.Flags().StringVar(&params.Notes, "notes", "", "booking notes")
	c.Flags().BoolVar(&pay, "pay", false, "also create a payment intent")
	_ = c.MarkFlagRequired("user")
	_ = c.MarkFlagRequired("start")
	_ = c.MarkFlagRequired("end")
	return c
}

func newBookingsGetCmd(a *app) *cobra.Command {
	var user string

	c := &cobra.Command{
		Use:   "get ID",
		Short: "Show a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBookingID(args[0])
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			booking, err := client.Bookings().Get(cmd.Context(), id, user)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), booking)
		},
	}

	c.Flags().StringVar(&user, "user", "", "external ID of the booking user")
	return c
}

func newBookingsListCmd(a *app) *cobra.Command {
	var (
		user, status string
		upcoming     bool
	)

	c := &cobra.Command{
		Use:   "list",
		Short: "List bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			params := &types.ListBookingsParams{UserExternalID: user}
			if status != "" {
				s := types.BookingStatus(status)
				params.Status = &s
			}
			if cmd.Flags().Changed("upcoming") {
				params.Upcoming = types.Bool(upcoming)
			}

			bookings, err := client.Bookings().List(cmd.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), bookings)
		},
	}

	c.Flags().StringVar(&user, "user", "", "external ID of the booking user")
	c.Flags().StringVar(&status, "status", "", "pending, confirmed, cancelled, completed or no_show")
	c.Flags().BoolVar(&upcoming, "upcoming", false, "only future bookings")
	return c
}

func newBookingsCancelCmd(a *app) *cobra.Command {
	var params types.CancelBookingParams

	c := &cobra.Command{
		Use:   "cancel ID",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBookingID(args[0])
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			booking, err := client.Bookings().Cancel(cmd.Context(), id, &params)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), booking)
		},
	}

	c.Flags().StringVar(&params.UserExternalID, "user", "", "external ID of the booking user")
	c.Flags().StringVar(&params.Reason, "reason", "", "cancellation reason (default: "+types.DefaultCancellationReason+")")
	c.Flags().StringVar(&params.Notes, "notes", "", "cancellation notes")
	_ = c.MarkFlagRequired("user")
	return c
}

func newBookingsPayCmd(a *app) *cobra.Command {
	var user string

	c := &cobra.Command{
		Use:   "pay ID",
		Short: "Create a payment intent for a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBookingID(args[0])
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			intent, err := client.Bookings().CreatePaymentIntent(cmd.Context(), id, user)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), intent)
		},
	}

	c.Flags().StringVar(&user, "user", "", "external ID of the booking user")
	_ = c.MarkFlagRequired("user")
	return c
}
