package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	var (
		filters      []string
		tags         []string
		orderByTerms bool
		out          string
	)

	cmd := &cobra.Command{
		Use:   "export PROJECT_ID LANGUAGE_CODE FILE_TYPE",
		Short: "Export a localization file",
		Long: `Export the translations of one project language to a localization
file. The file is downloaded to --out, or to a temp file when --out is
not given. Supported file types include po, pot, key_value_json,
android_strings, apple_strings, xliff, and more.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}

			exportFilters := make([]poeditor.ExportFilter, 0, len(filters))
			for _, filter := range filters {
				exportFilters = append(exportFilters, poeditor.ExportFilter(filter))
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Projects().Export(context.Background(), &poeditor.ExportRequest{
				ProjectID:    projectID,
				Language:     args[1],
				FileType:     poeditor.FileType(args[2]),
				Filters:      exportFilters,
				Tags:         tags,
				OrderByTerms: orderByTerms,
				LocalPath:    out,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Exported to %s\n", result.LocalPath)

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&filters, "filter", nil, "restrict exported terms (translated, untranslated, fuzzy, not_fuzzy, ...)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "restrict exported terms to ones carrying any of these tags")
	cmd.Flags().BoolVar(&orderByTerms, "order-terms", false, "sort the exported file by term")
	cmd.Flags().StringVarP(&out, "out", "o", "", "local path for the downloaded file")

	return cmd
}
