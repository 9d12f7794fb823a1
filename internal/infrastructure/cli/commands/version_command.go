package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI release version.
const Version = "0.1.0"

// NewVersionCommand prints the version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the nous version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nous %s\n", Version)
		},
	}
}
