// Package main provides the entry point for the tallybook CLI.
package main

import (
	"fmt"
	"os"

	"tallybook/cmd/agenda"
	"tallybook/cmd/customer"
	"tallybook/cmd/debt"
	exportcmd "tallybook/cmd/export"
	"tallybook/cmd/payment"
	"tallybook/cmd/remind"
	"tallybook/cmd/root"
	"tallybook/cmd/task"
	"tallybook/internal/config"
)

func init() {
	// Load environment variables first so logging and config pick them up.
	config.LoadEnv()

	root.Init()

	root.Cmd.AddCommand(customer.Cmd)
	root.Cmd.AddCommand(debt.Cmd)
	root.Cmd.AddCommand(payment.Cmd)
	root.Cmd.AddCommand(task.Cmd)
	root.Cmd.AddCommand(agenda.Cmd)
	root.Cmd.AddCommand(remind.Cmd)
	root.Cmd.AddCommand(exportcmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
