// Package payment implements the payment subcommands.
package payment

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tallybook/cmd/root"
	"tallybook/internal/dateutils"
	"tallybook/internal/ledger"
	"tallybook/internal/models"
)

var (
	customerRef string
	amountStr   string
	dateStr     string
	note        string
)

// Cmd is the payment command group.
var Cmd = &cobra.Command{
	Use:   "payment",
	Short: "Record customer payments",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a payment and allocate it across outstanding debts",
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
		payment, err := root.App.Engine().RecordPayment(s, c.ID, amount, date, note)
		if err != nil {
			return err
		}
		if err := root.App.Store().Save(s); err != nil {
			return err
		}
		fmt.Printf("Recorded payment of %s from %s, remaining balance %s\n",
			models.FormatAmount(payment.Amount), c.Name,
			models.FormatAmount(ledger.CustomerBalance(c)))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&customerRef, "customer", "c", "", "Customer id or name (required)")
	addCmd.Flags().StringVarP(&amountStr, "amount", "a", "", "Payment amount (required)")
	addCmd.Flags().StringVarP(&dateStr, "date", "t", "", "Payment date (default today)")
	addCmd.Flags().StringVarP(&note, "note", "m", "", "Payment note")
	_ = addCmd.MarkFlagRequired("customer")
	_ = addCmd.MarkFlagRequired("amount")

	Cmd.AddCommand(addCmd)
}
