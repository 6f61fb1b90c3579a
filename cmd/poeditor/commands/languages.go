package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// NewLanguagesCommand creates the languages command group.
func NewLanguagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "Manage project languages",
		Long:  "List available languages and manage the languages of a project",
	}

	cmd.AddCommand(newLanguagesAvailableCommand())
	cmd.AddCommand(newLanguagesListCommand())
	cmd.AddCommand(newLanguagesAddCommand())
	cmd.AddCommand(newLanguagesDeleteCommand())
	cmd.AddCommand(newLanguagesUpdateCommand())

	return cmd
}

func newLanguagesAvailableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "available",
		Short: "List all languages POEditor supports",
		Long:  "List the global catalog of languages that can be added to projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			languages, err := client.Languages().Available(context.Background())
			if err != nil {
				return err
			}

			return renderOutput(languages, []string{"Code", "Name"}, func() [][]string {
				rows := make([][]string, 0, len(languages))
				for _, language := range languages {
					rows = append(rows, []string{language.Code, language.Name})
				}

				return rows
			})
		},
	}
}

func newLanguagesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT_ID",
		Short: "List project languages",
		Long:  "List the languages of a project with translation progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			languages, err := client.Languages().List(context.Background(), projectID)
			if err != nil {
				return err
			}

			return renderOutput(languages, []string{"Code", "Name", "Translations", "Progress", "Updated"}, func() [][]string {
				rows := make([][]string, 0, len(languages))
				for _, language := range languages {
					rows = append(rows, []string{
						language.Code,
						language.Name,
						strconv.Itoa(int(language.Translations)),
						fmt.Sprintf("%.1f%%", language.Percentage),
						formatTimestamp(language.Updated),
					})
				}

				return rows
			})
		},
	}
}

func newLanguagesAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add PROJECT_ID LANGUAGE_CODE",
		Short: "Add a language to a project",
		Long:  "Add a language to a project by its language code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Languages().Add(context.Background(), projectID, args[1])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Added language '%s' to project %d\n", args[1], projectID)

			return nil
		},
	}
}

func newLanguagesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete PROJECT_ID LANGUAGE_CODE",
		Short: "Delete a language from a project",
		Long:  "Delete a project language together with all of its translations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}

			if !confirm(fmt.Sprintf("Really delete language '%s' and its translations?", args[1]), force) {
				_, _ = os.Stdout.WriteString("Cancelled\n")

				return nil
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Languages().Delete(context.Background(), projectID, args[1])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Deleted language '%s' from project %d\n", args[1], projectID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newLanguagesUpdateCommand() *cobra.Command {
	var (
		file         string
		fuzzyTrigger bool
	)

	cmd := &cobra.Command{
		Use:   "update PROJECT_ID LANGUAGE_CODE",
		Short: "Update translations for a language",
		Long:  "Insert or overwrite translations for one project language from a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}

			var entries []poeditor.TranslationUpdate

			err = decodeDataFile(file, &entries)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			counters, err := client.Languages().Update(context.Background(), projectID, args[1], entries, fuzzyTrigger)
			if err != nil {
				return err
			}

			return outputCounters(counters)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "F", "", "JSON file with translation entries (required)")
	cmd.Flags().BoolVar(&fuzzyTrigger, "fuzzy-trigger", false, "mark other-language translations of updated terms as fuzzy")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
