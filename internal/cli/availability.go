package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/slotbook/slotbook-sdk-go/slotbook"
	"github.com/slotbook/slotbook-sdk-go/slotbook/types"
)

// ResourceAvailability is the filtered availability of one resource.
type ResourceAvailability struct {
	Resource     string                     `json:"resource"`
	ResourceName string                     `json:"resource_name,omitempty"`
	Timezone     string                     `json:"timezone,omitempty"`
	Windows      []types.AvailabilityWindow `json:"windows"`
}

const dateLayout = "2006-01-02"

func newAvailabilityCmd(a *app) *cobra.Command {
	var (
		external   bool
		from, to   string
		filterExpr string
	)

	c := &cobra.Command{
		Use:   "availability RESOURCE...",
		Short: "Show availability windows of one or more resources",
		Long: `Show availability windows of one or more resources, fetched concurrently.

Resources are platform IDs, or external IDs with --external. --filter takes an
expression over resource_id, date, start, end, minutes, price, currency and
available, for example:

  slotbook availability 9 10 --filter 'available && price <= 40 && start >= "18:00"'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := CompileWindowFilter(filterExpr)
			if err != nil {
				return err
			}
			params, err := parseDateRange(from, to)
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}

			fetch := func(ctx context.Context, resource string) (*types.AvailabilityResponse, error) {
				if external {
					return client.Availability().ForExternalResource(ctx, resource, params)
				}
				id, err := strconv.Atoi(resource)
				if err != nil {
					return nil, fmt.Errorf("resource %q is not a numeric ID; use --external for external IDs", resource)
				}
				return client.Availability().ForResource(ctx, id, params)
			}

			out, err := collectAvailability(cmd.Context(), args, fetch, filter)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	c.Flags().BoolVar(&external, "external", false, "treat arguments as external resource IDs")
	c.Flags().StringVar(&from, "from", "", "first date (YYYY-MM-DD)")
	c.Flags().StringVar(&to, "to", "", "last date (YYYY-MM-DD)")
	c.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	return c
}

type availabilityFetcher func(ctx context.Context, resource string) (*types.AvailabilityResponse, error)

// collectAvailability fetches every resource concurrently. The first failure
// cancels the rest. Output keeps the order of resources.
func collectAvailability(ctx context.Context, resources []string, fetch availabilityFetcher, filter *WindowFilter) ([]ResourceAvailability, error) {
	out := make([]ResourceAvailability, len(resources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, resource := range resources {
		i, resource := i, resource
		g.Go(func() error {
			resp, err := fetch(ctx, resource)
			if err != nil {
				if slotbook.IsNotFoundError(err) {
					return fmt.Errorf("resource %s: %w", resource, err)
				}
				return err
			}
			windows, err := filter.Apply(resp)
			if err != nil {
				return err
			}
			out[i] = ResourceAvailability{
				Resource:     resource,
				ResourceName: resp.ResourceName,
				Timezone:     resp.Timezone,
				Windows:      windows,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseDateRange(from, to string) (*types.AvailabilityParams, error) {
	params := &types.AvailabilityParams{}
	if from != "" {
		t, err := time.ParseInLocation(dateLayout, from, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid --from date: %w", err)
		}
		params.StartDate = t
	}
	if to != "" {
		t, err := time.ParseInLocation(dateLayout, to, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid --to date: %w", err)
		}
		params.EndDate = t
	}
	if !params.StartDate.IsZero() && !params.EndDate.IsZero() && params.EndDate.Before(params.StartDate) {
		return nil, fmt.Errorf("--to %s is before --from %s", to, from)
	}
	return params, nil
}
