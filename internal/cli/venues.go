package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/slotbook/slotbook-sdk-go/slotbook"
	"github.com/slotbook/slotbook-sdk-go/slotbook/types"
)

func newVenuesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venues",
		Short: "Browse venues",
	}
	cmd.AddCommand(newVenuesListCmd(a), newVenuesGetCmd(a), newVenuesResourcesCmd(a))
	return cmd
}

func newVenuesListCmd(a *app) *cobra.Command {
	var (
		city, venueType, search string
		page, pageSize          int
	)

	c := &cobra.Command{
		Use:   "list",
		Short: "List venues",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			params := &types.ListVenuesParams{}
			if city != "" {
				params.City = types.String(city)
			}
			if venueType != "" {
				params.VenueType = types.String(venueType)
			}
			if search != "" {
				params.Search = types.String(search)
			}
			if page > 0 {
				params.Page = types.Int(page)
			}
			if pageSize > 0 {
				params.PageSize = types.Int(pageSize)
			}

			venues, err := client.Venues().List(cmd.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), venues)
		},
	}

	c.Flags().StringVar(&city, "city", "", "filter by city")
	c.Flags().StringVar(&venueType, "type", "", "filter by venue type")
	c.Flags().StringVar(&search, "search", "", "free-text search")
	c.Flags().IntVar(&page, "page", 0, "page number")
	c.Flags().IntVar(&pageSize, "page-size", 0, "results per page")
	return c
}

func newVenuesGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID|SLUG",
		Short: "Show a venue by numeric ID or slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			var venue *types.VenueDetail
			if id, convErr := strconv.Atoi(args[0]); convErr == nil {
				venue, err = client.Venues().Get(cmd.Context(), id)
			} else {
				venue, err = slotbook.FindVenue(cmd.Context(), client, args[0])
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), venue)
		},
	}
}

func newVenuesResourcesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resources VENUE_EXTERNAL_ID",
		Short: "Show a registered venue with its resources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			venue, err := client.Venues().WithResources(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), venue)
		},
	}
}
