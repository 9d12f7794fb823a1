package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nous/internal/app"
	"nous/internal/domain"
)

// NewSnippetCommand creates the snippet command with all subcommands.
func NewSnippetCommand(container *app.Container) *cobra.Command {
	snippetCmd := &cobra.Command{
		Use:   "snippet",
		Short: "Manage the snippet library",
	}

	snippetCmd.AddCommand(
		newSnippetAddCommand(container),
		newSnippetListCommand(container),
	)

	return snippetCmd
}

func newSnippetAddCommand(container *app.Container) *cobra.Command {
	var (
		title    string
		language string
		tags     []string
		body     string
		bodyFile string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a snippet to the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return errors.New("--title required")
			}
			if bodyFile != "" {
				data, err := os.ReadFile(bodyFile)
				if err != nil {
					return err
				}
				body = string(data)
			}
			if strings.TrimSpace(body) == "" {
				return errors.New("--body or --body-file required")
			}
			snippet := domain.NewSnippet(title, language, tags, body)
			container.State.AddSnippet(snippet)
			fmt.Fprintf(cmd.OutOrStdout(), "Added snippet %s\n", snippet.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Snippet title")
	cmd.Flags().StringVar(&language, "lang", "", "Language tag (normalized to lowercase)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma-separated tags")
	cmd.Flags().StringVar(&body, "body", "", "Snippet body text")
	cmd.Flags().StringVar(&bodyFile, "body-file", "", "Read the body from a file")
	return cmd
}

func newSnippetListCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the snippet library",
		RunE: func(cmd *cobra.Command, args []string) error {
			snippets := container.State.Snippets()
			if len(snippets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Snippet library is empty.")
				return nil
			}
			for _, snippet := range snippets {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-8s %s [%s]\n",
					snippet.ID, snippet.Language, snippet.Title, strings.Join(snippet.Tags, ", "))
			}
			return nil
		},
	}
}
