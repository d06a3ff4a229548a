package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slotbook/slotbook-sdk-go/slotbook/types"
)

func newResourcesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "Browse bookable resources",
	}
	cmd.AddCommand(newResourcesListCmd(a), newResourcesLookupCmd(a))
	return cmd
}

func newResourcesListCmd(a *app) *cobra.Command {
	var (
		venue     int
		venueSlug string
		bookable  bool
	)

	c := &cobra.Command{
		Use:   "list",
		Short: "List resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			params := &types.ListResourcesParams{}
			if venue > 0 {
				params.Venue = types.Int(venue)
			}
			if venueSlug != "" {
				params.VenueSlug = types.String(venueSlug)
			}
			if cmd.Flags().Changed("bookable") {
				params.IsBookable = types.Bool(bookable)
			}

			page, err := client.Resources().List(cmd.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), page)
		},
	}

	c.Flags().IntVar(&venue, "venue", 0, "venue ID")
	c.Flags().StringVar(&venueSlug, "venue-slug", "", "venue slug")
	c.Flags().BoolVar(&bookable, "bookable", false, "only bookable (or, with =false, unbookable) resources")
	return c
}

func newResourcesLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup EXTERNAL_ID",
		Short: "Look up a resource mapping by external ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			mapping, err := client.Resources().Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if mapping == nil {
				return fmt.Errorf("resource %q is not registered", args[0])
			}
			return printJSON(cmd.OutOrStdout(), mapping)
		},
	}
}
