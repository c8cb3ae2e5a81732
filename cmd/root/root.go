// Package root contains the root command for the application.
package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tallybook/internal/config"
	"tallybook/internal/container"
	"tallybook/internal/ledger"
	"tallybook/internal/ledgererror"
	"tallybook/internal/models"
)

var (
	// App holds the wired application dependencies, built before any
	// subcommand runs.
	App *container.Container

	// DataFile overrides the snapshot file path from the command line.
	DataFile string

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "tallybook",
		Short: "A ledger CLI for small shops: track customer debts, payments and reminders.",
		Long: `tallybook keeps a small shop's customer ledger in a local snapshot file.
Record debts and payments per customer, see who is due or overdue,
plan tasks on a calendar and run a reminder loop that notifies once
per condition.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Initialize()
			if err != nil {
				return err
			}
			if DataFile != "" {
				cfg.Data.File = DataFile
			}
			App, err = container.New(cfg)
			return err
		},
	}
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&DataFile, "file", "f", "", "Snapshot file (default from config)")
}

// ResolveCustomer finds a customer by id or by name. A name must match
// exactly one customer, case-insensitive.
func ResolveCustomer(s *models.Snapshot, ref string) (*models.Customer, error) {
	if c := s.CustomerByID(ref); c != nil {
		return c, nil
	}
	var matches []*models.Customer
	for _, c := range ledger.SearchCustomers(s, ref) {
		if strings.EqualFold(c.Name, ref) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return nil, &ledgererror.CustomerNotFoundError{ID: ref}
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("customer name '%s' is ambiguous, use the id", ref)
	}
}
