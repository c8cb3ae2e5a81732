// Package task implements the task subcommands.
package task

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tallybook/cmd/root"
	"tallybook/internal/dateutils"
)

var (
	name    string
	typ     string
	dateStr string
	note    string
)

// Cmd is the task command group.
var Cmd = &cobra.Command{
	Use:   "task",
	Short: "Manage standalone tasks",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a task with a due date",
	RunE: func(cmd *cobra.Command, args []string) error {
		dueDate := dateutils.Midnight(time.Now())
		if dateStr != "" {
			var err error
			if dueDate, err = dateutils.ParseDate(dateStr); err != nil {
				return err
			}
		}

		s, err := root.App.Store().Load()
		if err != nil {
			return err
		}
		task := root.App.Engine().CreateTask(s, name, typ, dueDate, note)
		if err := root.App.Store().Save(s); err != nil {
			return err
		}
		fmt.Printf("Created task '%s' due %s (%s)\n",
			task.Name, dateutils.ToISODate(task.DueDate), task.ID)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := root.App.Store().Load()
		if err != nil {
			return err
		}
		if len(s.Tasks) == 0 {
			fmt.Println("No tasks")
			return nil
		}
		for _, task := range s.Tasks {
			mark := " "
			if task.Done {
				mark = "x"
			}
			fmt.Printf("[%s] %s  due %s  %s\n",
				mark, task.Name, dateutils.ToISODate(task.DueDate), task.ID)
		}
		return nil
	},
}

var doneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Toggle a task's done state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := root.App.Store().Load()
		if err != nil {
			return err
		}
		task, err := root.App.Engine().ToggleTaskDone(s, args[0])
		if err != nil {
			return err
		}
		if err := root.App.Store().Save(s); err != nil {
			return err
		}
		state := "reopened"
		if task.Done {
			state = "done"
		}
		fmt.Printf("Task '%s' marked %s\n", task.Name, state)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := root.App.Store().Load()
		if err != nil {
			return err
		}
		if err := root.App.Engine().DeleteTask(s, args[0]); err != nil {
			return err
		}
		if err := root.App.Store().Save(s); err != nil {
			return err
		}
		fmt.Println("Task deleted")
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Task name (required)")
	addCmd.Flags().StringVar(&typ, "type", "", "Task type label")
	addCmd.Flags().StringVarP(&dateStr, "date", "t", "", "Due date (default today)")
	addCmd.Flags().StringVarP(&note, "note", "m", "", "Free-form note")
	_ = addCmd.MarkFlagRequired("name")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(doneCmd)
	Cmd.AddCommand(deleteCmd)
}
