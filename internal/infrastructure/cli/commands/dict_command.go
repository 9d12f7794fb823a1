package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"nous/internal/app"
)

// NewDictCommand creates the dict command with all subcommands.
func NewDictCommand(container *app.Container) *cobra.Command {
	dictCmd := &cobra.Command{
		Use:   "dict",
		Short: "Inspect and edit the analysis dictionary",
	}

	dictCmd.AddCommand(
		newDictShowCommand(container),
		newDictAddSynonymCommand(container),
		newDictAddAntonymCommand(container),
		newDictStopwordCommand(container),
		newDictResetCommand(container),
	)

	return dictCmd
}

func newDictShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the dictionary as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := yaml.Marshal(container.State.Dictionary())
			if err != nil {
				return err
			}
			cmd.OutOrStdout().Write(raw)
			return nil
		},
	}
}

func newDictAddSynonymCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add-synonym <word> <synonym> [synonym...]",
		Short: "Map a word to one or more synonyms",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, terms := normalizeWords(args)
			container.State.AddSynonym(word, terms)
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", word, strings.Join(terms, ", "))
			return nil
		},
	}
}

func newDictAddAntonymCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add-antonym <word> <antonym> [antonym...]",
		Short: "Map a word to one or more antonyms",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, terms := normalizeWords(args)
			container.State.AddAntonym(word, terms)
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", word, strings.Join(terms, ", "))
			return nil
		},
	}
}

func newDictStopwordCommand(container *app.Container) *cobra.Command {
	stopwordCmd := &cobra.Command{
		Use:   "stopword",
		Short: "Manage the stopword set",
	}

	stopwordCmd.AddCommand(
		&cobra.Command{
			Use:   "add <word>",
			Short: "Add a stopword",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				container.State.AddStopword(strings.ToLower(strings.TrimSpace(args[0])))
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <word>",
			Short: "Remove a stopword",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				word := strings.ToLower(strings.TrimSpace(args[0]))
				if !container.State.RemoveStopword(word) {
					return fmt.Errorf("%q is not a stopword", word)
				}
				return nil
			},
		},
	)

	return stopwordCmd
}

func newDictResetCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the built-in default dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			container.State.ResetDictionary()
			fmt.Fprintln(cmd.OutOrStdout(), "Dictionary reset to defaults.")
			return nil
		},
	}
}

func normalizeWords(args []string) (string, []string) {
	word := strings.ToLower(strings.TrimSpace(args[0]))
	terms := make([]string, 0, len(args)-1)
	for _, term := range args[1:] {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			terms = append(terms, term)
		}
	}
	return word, terms
}
