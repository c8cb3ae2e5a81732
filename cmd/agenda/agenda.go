// Package agenda implements the calendar view subcommands.
package agenda

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"tallybook/cmd/root"
	"tallybook/internal/dateutils"
	"tallybook/internal/models"
	"tallybook/internal/schedule"
)

var (
	dateStr  string
	monthStr string
)

// Cmd is the agenda command.
var Cmd = &cobra.Command{
	Use:   "agenda",
	Short: "Show tasks and debt due dates for a day or a month",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := root.App.Store().Load()
		if err != nil {
			return err
		}

		if monthStr != "" {
			month, err := time.ParseInLocation(dateutils.MonthLayoutISO, monthStr, time.Local)
			if err != nil {
				return fmt.Errorf("invalid month '%s', expected YYYY-MM: %w", monthStr, err)
			}
			printMonth(s, month.Year(), month.Month())
			return nil
		}

		date := dateutils.Midnight(time.Now())
		if dateStr != "" {
			if date, err = dateutils.ParseDate(dateStr); err != nil {
				return err
			}
		}
		printDay(s, date)
		return nil
	},
}

func printDay(s *models.Snapshot, date time.Time) {
	items := schedule.ItemsForDate(s, date)
	fmt.Printf("Agenda for %s\n", date.Format(dateutils.DateLayoutHuman))
	if len(items) == 0 {
		fmt.Println("  nothing due")
		return
	}
	for _, item := range items {
		switch item.Kind {
		case schedule.KindTask:
			mark := " "
			if item.Task.Done {
				mark = "x"
			}
			fmt.Printf("  [%s] %s\n", mark, item.Task.Name)
		case schedule.KindDebtReminder:
			fmt.Printf("      %s owes %s\n",
				item.Customer.Name, models.FormatAmount(item.Debt.Outstanding()))
		}
	}
}

func printMonth(s *models.Snapshot, year int, month time.Month) {
	index := schedule.ItemsByDateForMonth(s, year, month)
	fmt.Printf("Agenda for %s\n", dateutils.MonthKey(year, month))
	if len(index) == 0 {
		fmt.Println("  nothing due")
		return
	}
	days := make([]string, 0, len(index))
	for day := range index {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		tasks, debts := 0, 0
		for _, item := range index[day] {
			if item.Kind == schedule.KindTask {
				tasks++
			} else {
				debts++
			}
		}
		fmt.Printf("  %s  %d task(s), %d debt(s) due\n", day, tasks, debts)
	}
}

func init() {
	Cmd.Flags().StringVarP(&dateStr, "date", "t", "", "Day to show (default today)")
	Cmd.Flags().StringVarP(&monthStr, "month", "M", "", "Month to summarize (YYYY-MM)")
}
