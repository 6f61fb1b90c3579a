package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// NewUploadCommand creates the upload command.
func NewUploadCommand() *cobra.Command {
	var (
		updating     string
		language     string
		overwrite    bool
		syncTerms    bool
		tags         []string
		fuzzyTrigger bool
	)

	cmd := &cobra.Command{
		Use:   "upload PROJECT_ID FILE",
		Short: "Upload a localization file",
		Long: `Upload a localization file to a project. --updating selects what the
upload mutates: terms, terms_translations, or translations. A language
is required unless updating terms only. The API accepts at most one
upload every 30 seconds per project.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Projects().Upload(context.Background(), &poeditor.UploadRequest{
				ProjectID:    projectID,
				Updating:     poeditor.UploadUpdating(updating),
				FilePath:     args[1],
				Language:     language,
				Overwrite:    overwrite,
				SyncTerms:    syncTerms,
				Tags:         tags,
				FuzzyTrigger: fuzzyTrigger,
			})
			if err != nil {
				return err
			}

			return outputUploadResult(result)
		},
	}

	cmd.Flags().StringVarP(&updating, "updating", "u", string(poeditor.UpdatingTermsTranslations),
		"what to update: terms, terms_translations, or translations")
	cmd.Flags().StringVarP(&language, "language", "l", "", "language of the uploaded translations")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite existing translations")
	cmd.Flags().BoolVar(&syncTerms, "sync-terms", false, "delete project terms absent from the file")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tags to apply to imported terms")
	cmd.Flags().BoolVar(&fuzzyTrigger, "fuzzy-trigger", false, "mark other-language translations of updated terms as fuzzy")

	return cmd
}

func outputUploadResult(result *poeditor.UploadResult) error {
	return renderOutput(result, []string{"Kind", "Parsed", "Added", "Updated", "Deleted"}, func() [][]string {
		var rows [][]string

		appendCounters := func(kind string, counters *poeditor.UploadCounters) {
			if counters == nil {
				return
			}

			rows = append(rows, []string{
				kind,
				fmt.Sprintf("%d", int(counters.Parsed)),
				fmt.Sprintf("%d", int(counters.Added)),
				fmt.Sprintf("%d", int(counters.Updated)),
				fmt.Sprintf("%d", int(counters.Deleted)),
			})
		}

		appendCounters("terms", result.Terms)
		appendCounters("translations", result.Translations)

		if len(rows) == 0 {
			_, _ = os.Stdout.WriteString("Upload accepted\n")
		}

		return rows
	})
}
