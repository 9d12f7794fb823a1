// Package cli wires the cobra command tree.
package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"nous/internal/app"
	"nous/internal/application/interpret"
	"nous/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	interpretCmd := newInterpretCommand(container)

	root := &cobra.Command{
		Use:   "nous [command text]",
		Short: "nous - command interpretation and planning",
		Long: "nous turns a free-text command into a structured interpretation, scores it\n" +
			"against prior commands and a snippet library, and periodically synthesizes\n" +
			"a pseudocode plan from the accumulated history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			interpretCmd.SetArgs(args)
			return interpretCmd.ExecuteContext(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(interpretCmd)
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewSnippetCommand(container))
	root.AddCommand(commands.NewBrainCommand(container))
	root.AddCommand(commands.NewDictCommand(container))
	root.AddCommand(commands.NewExportCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}

func newInterpretCommand(container *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "interpret [command text]",
		Short: "Interpret a free-text command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := container.InterpretService.Run(interpret.Request{
				Text:   strings.Join(args, " "),
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}
			RenderInterpretation(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Analyze without recording the command")
	return cmd
}
