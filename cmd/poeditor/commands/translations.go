package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// NewTranslationsCommand creates the translations command group.
func NewTranslationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translations",
		Short: "Manage translations",
		Long:  "Bulk add, update, and delete translations for one project language",
	}

	cmd.AddCommand(newTranslationsAddCommand())
	cmd.AddCommand(newTranslationsUpdateCommand())
	cmd.AddCommand(newTranslationsDeleteCommand())

	return cmd
}

func newTranslationsAddCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "add PROJECT_ID LANGUAGE_CODE",
		Short: "Add translations",
		Long:  "Add translations for untranslated terms from a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslationsMutation(args, file, func(ctx context.Context, client poeditor.Client, projectID int, entries []poeditor.TranslationUpdate) (*poeditor.UploadCounters, error) {
				return client.Translations().Add(ctx, projectID, args[1], entries)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "F", "", "JSON file with translation entries (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newTranslationsUpdateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "update PROJECT_ID LANGUAGE_CODE",
		Short: "Update translations",
		Long:  "Overwrite existing translations from a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslationsMutation(args, file, func(ctx context.Context, client poeditor.Client, projectID int, entries []poeditor.TranslationUpdate) (*poeditor.UploadCounters, error) {
				return client.Translations().Update(ctx, projectID, args[1], entries)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "F", "", "JSON file with translation entries (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newTranslationsDeleteCommand() *cobra.Command {
	var (
		file  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "delete PROJECT_ID LANGUAGE_CODE",
		Short: "Delete translations",
		Long:  "Delete translations for the terms listed in a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}

			var keys []poeditor.TermKey

			err = decodeDataFile(file, &keys)
			if err != nil {
				return err
			}

			if !confirm(fmt.Sprintf("Really delete translations for %d term(s)?", len(keys)), force) {
				_, _ = os.Stdout.WriteString("Cancelled\n")

				return nil
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			counters, err := client.Translations().Delete(context.Background(), projectID, args[1], keys)
			if err != nil {
				return err
			}

			return outputCounters(counters)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "F", "", "JSON file with term keys (required)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runTranslationsMutation(args []string, file string, mutate func(context.Context, poeditor.Client, int, []poeditor.TranslationUpdate) (*poeditor.UploadCounters, error)) error {
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

	counters, err := mutate(context.Background(), client, projectID, entries)
	if err != nil {
		return err
	}

	return outputCounters(counters)
}
