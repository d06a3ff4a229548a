package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/slotbook/slotbook-sdk-go/slotbook"
	"github.com/slotbook/slotbook-sdk-go/slotbook/types"
)

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage external user mappings",
	}
	cmd.AddCommand(newUsersRegisterCmd(a), newUsersLookupCmd(a), newUsersImportCmd(a))
	return cmd
}

func newUsersRegisterCmd(a *app) *cobra.Command {
	var rec UserRecord

	c := &cobra.Command{
		Use:   "register",
		Short: "Register a user, or return the existing mapping",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			if rec.ExternalID == "" {
				rec.ExternalID = uuid.NewString()
			}

			user, err := slotbook.EnsureUser(cmd.Context(), client, rec.Request())
			if err != nil {
				return fmt.Errorf("registering %s: %w", rec.ExternalID, err)
			}
			return printJSON(cmd.OutOrStdout(), user)
		},
	}

	c.Flags().StringVar(&rec.ExternalID, "external-id", "", "external user ID (default: random UUID)")
	c.Flags().StringVar(&rec.Email, "email", "", "email address")
	c.Flags().StringVar(&rec.FirstName, "first-name", "", "first name")
	c.Flags().StringVar(&rec.LastName, "last-name", "", "last name")
	_ = c.MarkFlagRequired("email")
	return c
}

func newUsersLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup EXTERNAL_ID",
		Short: "Look up a user mapping by external ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			user, err := client.Users().Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if user == nil {
				return fmt.Errorf("user %q is not registered", args[0])
			}
			return printJSON(cmd.OutOrStdout(), user)
		},
	}
}

func newUsersImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Register every user listed in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			records, err := ParseUsers(f)
			if err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			ensure := func(ctx context.Context, req *types.RegisterUserRequest) (*types.UserMapping, error) {
				return slotbook.EnsureUser(ctx, client, req)
			}
			a.logger.Info().Int("users", len(records)).Int("concurrency", a.cfg.Import.Concurrency).Msg("Importing users")

			results, err := NewImporter(ensure, a.cfg.Import, a.logger).Run(cmd.Context(), records)
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Error != "" {
					failed++
				}
			}
			if err := printJSON(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d users failed to import", failed, len(results))
			}
			return nil
		},
	}
}
