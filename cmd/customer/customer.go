// Package customer implements the customer subcommands.
package customer

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
	name          string
	phone         string
	note          string
	repaymentDays int
	query         string
)

// Cmd is the customer command group.
var Cmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customers",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := root.App.Store().Load()
		if err != nil {
			return err
		}
		c := root.App.Engine().AddCustomer(s, name, phone, note,
			repaymentDays, root.App.Config().Ledger.DefaultRepaymentDays)
		if err := root.App.Store().Save(s); err != nil {
			return err
		}
		fmt.Printf("Added customer %s (%s)\n", c.Name, c.ID)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers with balance and due status",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := root.App.Store().Load()
		if err != nil {
			return err
		}
		customers := ledger.CustomersByActivity(s)
		if query != "" {
			customers = ledger.SearchCustomers(s, query)
		}
		if len(customers) == 0 {
			fmt.Println("No customers")
			return nil
		}
		for _, c := range customers {
			info := ledger.CustomerDueInfo(c, time.Now())
			line := fmt.Sprintf("%-20s %10s  %-8s", c.Name,
				models.FormatAmount(ledger.CustomerBalance(c)), info.Status)
			if info.NextDueDate != nil {
				line += "  due " + dateutils.ToISODate(*info.NextDueDate)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <customer>",
	Short: "Show a customer's debts, payments and history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := root.App.Store().Load()
		if err != nil {
			return err
		}
		c, err := root.ResolveCustomer(s, args[0])
		if err != nil {
			return err
		}

		info := ledger.CustomerDueInfo(c, time.Now())
		fmt.Printf("%s  (%s)\n", c.Name, c.Phone)
		fmt.Printf("Balance: %s  Status: %s\n",
			models.FormatAmount(ledger.CustomerBalance(c)), info.Status)
		if info.NextDueDate != nil {
			fmt.Printf("Next due: %s (%d days)\n",
				dateutils.ToISODate(*info.NextDueDate), info.DaysLeft)
		}

		fmt.Println("\nHistory (newest first):")
		for _, entry := range ledger.HistoryByDateDesc(c) {
			fmt.Printf("  %s  %-8s %10s  %s\n",
				dateutils.ToISODate(entry.Date), entry.Type,
				models.FormatAmount(entry.Amount), entry.Description)
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <customer>",
	Short: "Delete a customer and all their records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := root.App.Store().Load()
		if err != nil {
			return err
		}
		c, err := root.ResolveCustomer(s, args[0])
		if err != nil {
			return err
		}
		if err := root.App.Engine().DeleteCustomer(s, c.ID); err != nil {
			return err
		}
		if err := root.App.Store().Save(s); err != nil {
			return err
		}
		fmt.Printf("Deleted customer %s\n", c.Name)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Customer name (required)")
	addCmd.Flags().StringVarP(&phone, "phone", "p", "", "Phone number")
	addCmd.Flags().StringVar(&note, "note", "", "Free-form note")
	addCmd.Flags().IntVarP(&repaymentDays, "days", "d", 0, "Repayment window in days (default from config)")
	_ = addCmd.MarkFlagRequired("name")

	listCmd.Flags().StringVarP(&query, "search", "s", "", "Filter by name or phone")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(deleteCmd)
}
