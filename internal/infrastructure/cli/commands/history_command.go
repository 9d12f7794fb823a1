package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"nous/internal/app"
	"nous/internal/domain"
)

const msgNoHistoryRecorded = "No commands recorded yet."

// NewHistoryCommand creates the history command with all subcommands.
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the recorded command log",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryDeleteCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
	)

	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCommands(cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", container.Config.Preferences.HistoryLimit, "Max entries to show")
	return cmd
}

func newHistoryDeleteCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one command by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !container.State.DeleteCommand(args[0]) {
				return fmt.Errorf("no command with id %s", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded command",
		RunE: func(cmd *cobra.Command, args []string) error {
			container.State.ClearCommands()
			fmt.Fprintln(cmd.OutOrStdout(), "Command log cleared.")
			return nil
		},
	}
}

func newHistoryExportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the command log to a jsonl file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportCommands(container.State.Commands(), args[0])
		},
	}
}

func listCommands(w io.Writer, container *app.Container, limit int) error {
	entries := container.State.Commands()
	if len(entries) == 0 {
		fmt.Fprintln(w, msgNoHistoryRecorded)
		return nil
	}
	// Most recent first.
	start := 0
	if limit > 0 && len(entries) > limit {
		start = len(entries) - limit
	}
	for i := len(entries) - 1; i >= start; i-- {
		entry := entries[i]
		fmt.Fprintf(w, "%s  %s  %s\n", entry.ID, humanize.Time(entry.CreatedAt), entry.Text)
	}
	return nil
}

func exportCommands(entries []domain.Command, dest string) error {
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, entry := range entries {
		b, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		if _, err := file.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}
