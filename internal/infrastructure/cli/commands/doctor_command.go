package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nous/internal/app"
)

// NewDoctorCommand runs environment diagnostics.
func NewDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check config, storage and dictionary health",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.DoctorService.Run(cmd.Context())
			for _, check := range report.Checks {
				fmt.Fprintf(cmd.OutOrStdout(), "[%-5s] %-14s %s\n",
					strings.ToUpper(string(check.Status)), check.Name, check.Details)
			}
			return err
		},
	}
}
