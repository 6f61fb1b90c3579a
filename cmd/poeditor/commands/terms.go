package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// NewTermsCommand creates the terms command group.
func NewTermsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terms",
		Short: "Manage project terms",
		Long:  "List and bulk-edit the translatable terms of a project",
	}

	cmd.AddCommand(newTermsListCommand())
	cmd.AddCommand(newTermsAddCommand())
	cmd.AddCommand(newTermsUpdateCommand())
	cmd.AddCommand(newTermsDeleteCommand())
	cmd.AddCommand(newTermsAddCommentsCommand())

	return cmd
}

func newTermsListCommand() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "list PROJECT_ID",
		Short: "List project terms",
		Long:  "List the terms of a project, optionally with translations for one language",
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

			terms, err := client.Terms().List(context.Background(), projectID, language)
			if err != nil {
				return err
			}

			header := []string{"Term", "Context", "Tags"}
			if language != "" {
				header = append(header, "Translation", "Fuzzy")
			}

			return renderOutput(terms, header, func() [][]string {
				rows := make([][]string, 0, len(terms))
				for _, term := range terms {
					row := []string{term.Term, term.Context, strings.Join(term.Tags, ",")}
					if language != "" {
						content, fuzzy := "", ""
						if term.Translation != nil {
							content = term.Translation.Content
							fuzzy = formatFlag(term.Translation.Fuzzy)
						}

						row = append(row, content, fuzzy)
					}

					rows = append(rows, row)
				}

				return rows
			})
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "include translations for this language")

	return cmd
}

func newTermsAddCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "add PROJECT_ID",
		Short: "Add terms",
		Long:  "Add terms to a project from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}

			var terms []poeditor.Term

			err = decodeDataFile(file, &terms)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			counters, err := client.Terms().Add(context.Background(), projectID, terms)
			if err != nil {
				return err
			}

			return outputCounters(counters)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "F", "", "JSON file with terms (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newTermsUpdateCommand() *cobra.Command {
	var (
		file         string
		fuzzyTrigger bool
	)

	cmd := &cobra.Command{
		Use:   "update PROJECT_ID",
		Short: "Update terms",
		Long:  "Rename or edit terms from a JSON file of term updates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}

			var updates []poeditor.TermUpdate

			err = decodeDataFile(file, &updates)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			counters, err := client.Terms().Update(context.Background(), projectID, updates, fuzzyTrigger)
			if err != nil {
				return err
			}

			return outputCounters(counters)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "F", "", "JSON file with term updates (required)")
	cmd.Flags().BoolVar(&fuzzyTrigger, "fuzzy-trigger", false, "mark translations of renamed terms as fuzzy")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newTermsDeleteCommand() *cobra.Command {
	var (
		file  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "delete PROJECT_ID",
		Short: "Delete terms",
		Long:  "Delete terms listed in a JSON file, together with their translations",
		Args:  cobra.ExactArgs(1),
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

			if !confirm(fmt.Sprintf("Really delete %d term(s)?", len(keys)), force) {
				_, _ = os.Stdout.WriteString("Cancelled\n")

				return nil
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			counters, err := client.Terms().Delete(context.Background(), projectID, keys)
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

func newTermsAddCommentsCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "add-comments PROJECT_ID",
		Short: "Add comments to terms",
		Long:  "Attach comments to existing terms from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}

			var comments []poeditor.TermComment

			err = decodeDataFile(file, &comments)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			counters, err := client.Terms().AddComments(context.Background(), projectID, comments)
			if err != nil {
				return err
			}

			return outputCounters(counters)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "F", "", "JSON file with term comments (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
