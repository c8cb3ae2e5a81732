// Package export implements the CSV export subcommands.
package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"tallybook/cmd/root"
)

var (
	customerRef string
	output      string
)

// Cmd is the export command group.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export ledger data to CSV",
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Export a customer's history to CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := root.App.Store().Load()
		if err != nil {
			return err
		}
		c, err := root.ResolveCustomer(s, customerRef)
		if err != nil {
			return err
		}
		if err := root.App.Exporter().WriteHistoryCSV(c, output); err != nil {
			return err
		}
		fmt.Printf("Wrote history of %s to %s\n", c.Name, output)
		return nil
	},
}

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Export all customers with balances to CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := root.App.Store().Load()
		if err != nil {
			return err
		}
		if err := root.App.Exporter().WriteCustomersCSV(s, output); err != nil {
			return err
		}
		fmt.Printf("Wrote %d customer(s) to %s\n", len(s.Customers), output)
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVarP(&customerRef, "customer", "c", "", "Customer id or name (required)")
	historyCmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (required)")
	_ = historyCmd.MarkFlagRequired("customer")
	_ = historyCmd.MarkFlagRequired("output")

	customersCmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (required)")
	_ = customersCmd.MarkFlagRequired("output")

	Cmd.AddCommand(historyCmd)
	Cmd.AddCommand(customersCmd)
}
