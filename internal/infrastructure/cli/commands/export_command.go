package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nous/internal/app"
)

// NewExportCommand serializes all four collections into one JSON document.
func NewExportCommand(container *app.Container) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export commands, brain runs, snippets and dictionary as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := container.State.Export()
			raw, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			raw = append(raw, '\n')
			if out == "" {
				cmd.OutOrStdout().Write(raw)
				return nil
			}
			if err := os.WriteFile(out, raw, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination file (default stdout)")
	return cmd
}
