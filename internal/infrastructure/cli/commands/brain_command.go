package commands

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"nous/internal/app"
)

// NewBrainCommand creates the brain command with all subcommands.
func NewBrainCommand(container *app.Container) *cobra.Command {
	brainCmd := &cobra.Command{
		Use:   "brain",
		Short: "Run and inspect the plan synthesizer",
	}

	brainCmd.AddCommand(
		newBrainRunCommand(container),
		newBrainListCommand(container),
		newBrainShowCommand(container),
		newBrainWatchCommand(container),
	)

	return brainCmd
}

func newBrainRunCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Synthesize a plan now and record it",
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := container.BrainService.RunNow()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), run.Plan)
			fmt.Fprintf(cmd.OutOrStdout(), "\nRecorded as %s\n", run.ID)
			return nil
		},
	}
}

func newBrainListCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List retained brain runs, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs := container.State.BrainRuns()
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No brain runs recorded yet.")
				return nil
			}
			for i, run := range runs {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s  %s\n", i+1, run.ID, humanize.Time(run.CreatedAt))
			}
			return nil
		},
	}
}

func newBrainShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <n>",
		Short: "Print the plan of the n-th most recent run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return errors.New("argument must be a positive run index")
			}
			runs := container.State.BrainRuns()
			if n > len(runs) {
				return fmt.Errorf("only %d runs retained", len(runs))
			}
			fmt.Fprint(cmd.OutOrStdout(), runs[n-1].Plan)
			return nil
		},
	}
}

func newBrainWatchCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep the session open, synthesizing a plan on the configured period",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !container.Config.Brain.IsEnabled() {
				return errors.New("brain is disabled in the config")
			}
			container.Scheduler.Start()
			defer container.Scheduler.Stop()
			fmt.Fprintf(cmd.OutOrStdout(), "Synthesizing every %s; press Ctrl-C to stop.\n",
				container.Config.Brain.Interval())

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sig)
			select {
			case <-sig:
			case <-cmd.Context().Done():
			}
			return nil
		},
	}
}
