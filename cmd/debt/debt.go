// Package debt implements the debt subcommands.
package debt

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tallybook/cmd/root"
	"tallybook/internal/dateutils"
	"tallybook/internal/models"
)

var (
	customerRef   string
	amountStr     string
	dateStr       string
	description   string
	repaymentDays int
)

// Cmd is the debt command group.
var Cmd = &cobra.Command{
	Use:   "debt",
	Short: "Record customer debts",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new debt for a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := models.ParseAmount(amountStr)
		if err != nil {
			return err
		}
		date := dateutils.Midnight(time.Now())
		if dateStr != "" {
			if date, err = dateutils.ParseDate(dateStr); err != nil {
				return err
			}
		}

		s, err := root.App.Store().Load()
		if err != nil {
			return err
		}
		c, err := root.ResolveCustomer(s, customerRef)
		if err != nil {
			return err
		}
		debt, err := root.App.Engine().RecordDebt(s, c.ID, amount, date, description, repaymentDays)
		if err != nil {
			return err
		}
		if err := root.App.Store().Save(s); err != nil {
			return err
		}
		fmt.Printf("Recorded debt of %s for %s, due %s\n",
			models.FormatAmount(debt.Amount), c.Name, dateutils.ToISODate(debt.DueDate))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&customerRef, "customer", "c", "", "Customer id or name (required)")
	addCmd.Flags().StringVarP(&amountStr, "amount", "a", "", "Debt amount (required)")
	addCmd.Flags().StringVarP(&dateStr, "date", "t", "", "Debt date (default today)")
	addCmd.Flags().StringVarP(&description, "desc", "m", "", "What the debt is for")
	addCmd.Flags().IntVarP(&repaymentDays, "days", "d", 0, "Repayment window in days (default customer's)")
	_ = addCmd.MarkFlagRequired("customer")
	_ = addCmd.MarkFlagRequired("amount")

	Cmd.AddCommand(addCmd)
}
