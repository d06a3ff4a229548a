// Package cli implements the slotbook command-line tool.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/slotbook/slotbook-sdk-go/slotbook"
)

type app struct {
	cfgFile string
	cfg     *Config
	logger  zerolog.Logger
	stderr  io.Writer
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{stderr: os.Stderr}

	root := &cobra.Command{
		Use:   "slotbook",
		Short: "Manage users, venues and bookings on a Slotbook platform",
		Long: `slotbook talks to a Slotbook booking platform on behalf of an integrator.
It registers external users, browses venues and availability, and creates,
pays and cancels bookings.

Settings come from slotbook.yaml, SLOTBOOK_* environment variables and flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initialize,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./slotbook.yaml)")
	root.PersistentFlags().String("base-url", "", "platform address")
	root.PersistentFlags().String("token", "", "access token")
	root.PersistentFlags().Duration("timeout", 0, "per-request timeout")
	root.PersistentFlags().String("log-level", "", "debug, info, warn or error")

	root.AddCommand(
		newUsersCmd(a),
		newVenuesCmd(a),
		newResourcesCmd(a),
		newAvailabilityCmd(a),
		newBookingsCmd(a),
		newVersionCmd(version),
	)
	return root
}

func (a *app) initialize(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(a.cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg
	a.logger = NewLogger(cfg.Logging, a.stderr)
	return nil
}

func (a *app) client() (*slotbook.Client, error) {
	opts := []slotbook.Option{
		slotbook.WithBaseURL(a.cfg.API.BaseURL),
		slotbook.WithAccessToken(a.cfg.API.Token),
		slotbook.WithPublishableKey(a.cfg.API.PublishableKey),
		slotbook.WithTimeout(a.cfg.API.Timeout),
		slotbook.WithZerolog(a.logger),
	}
	c, err := slotbook.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return c, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "slotbook %s\n", version)
			return nil
		},
	}
}

// Exit codes returned by ExitCode.
const (
	ExitError    = 1
	ExitAuth     = 3
	ExitNotFound = 4
	ExitTimeout  = 5
)

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case slotbook.IsAuthenticationError(err):
		return ExitAuth
	case slotbook.IsNotFoundError(err):
		return ExitNotFound
	case slotbook.IsTimeoutError(err):
		return ExitTimeout
	default:
		return ExitError
	}
}
