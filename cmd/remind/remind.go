// Package remind implements the reminder subcommand.
package remind

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tallybook/cmd/root"
	"tallybook/internal/models"
)

var once bool

// Cmd is the remind command.
var Cmd = &cobra.Command{
	Use:   "remind",
	Short: "Scan for due and overdue items, notifying once per condition",
	Long: `Scans every customer's debts and every open task. Each condition
(debt due today, debt overdue, task due today) notifies exactly once
and is then latched until the debt is settled or the task reopened.

By default the scan repeats on the configured interval until
interrupted; --once runs a single scan and exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := root.App.Store().Load()
		if err != nil {
			return err
		}

		if once {
			emitted := root.App.Scanner().Scan(s)
			if len(emitted) > 0 {
				if err := root.App.Store().Save(s); err != nil {
					return err
				}
			}
			fmt.Printf("Scan finished, %d notification(s)\n", len(emitted))
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		root.App.Loop().Run(ctx, s, func(snapshot *models.Snapshot) error {
			return root.App.Store().Save(snapshot)
		})
		return nil
	},
}

func init() {
	Cmd.Flags().BoolVar(&once, "once", false, "Run a single scan and exit")
}
