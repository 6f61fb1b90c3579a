package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage POEditor projects",
		Long:  "List, inspect, create, update, delete, and sync POEditor projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsViewCommand())
	cmd.AddCommand(newProjectsCreateCommand())
	cmd.AddCommand(newProjectsUpdateCommand())
	cmd.AddCommand(newProjectsDeleteCommand())
	cmd.AddCommand(newProjectsSyncCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List all projects the API token can access",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			projects, err := client.Projects().List(context.Background())
			if err != nil {
				return err
			}

			return renderOutput(projects, []string{"ID", "Name", "Public", "Open", "Created"}, func() [][]string {
				rows := make([][]string, 0, len(projects))
				for _, project := range projects {
					rows = append(rows, []string{
						strconv.Itoa(int(project.ID)),
						project.Name,
						formatFlag(project.Public),
						formatFlag(project.Open),
						formatTimestamp(project.Created),
					})
				}

				return rows
			})
		},
	}
}

func newProjectsViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view PROJECT_ID",
		Short: "Show project details",
		Long:  "Display the full details of one project",
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

			project, err := client.Projects().Get(context.Background(), projectID)
			if err != nil {
				return err
			}

			return renderOutput(project, []string{"Property", "Value"}, func() [][]string {
				return [][]string{
					{"ID", strconv.Itoa(int(project.ID))},
					{"Name", project.Name},
					{"Description", project.Description},
					{"Public", formatFlag(project.Public)},
					{"Open", formatFlag(project.Open)},
					{"Reference Language", project.ReferenceLanguage},
					{"Terms", strconv.Itoa(int(project.Terms))},
					{"Created", formatTimestamp(project.Created)},
				}
			})
		},
	}
}

func newProjectsCreateCommand() *cobra.Command {
	var (
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Long:  "Create a new POEditor project",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			project, err := client.Projects().Create(context.Background(), name, description)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Created project '%s' with ID %d\n", project.Name, int(project.ID))

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "project name (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "project description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectsUpdateCommand() *cobra.Command {
	var (
		name              string
		description       string
		referenceLanguage string
	)

	cmd := &cobra.Command{
		Use:   "update PROJECT_ID",
		Short: "Update project settings",
		Long: `Update project settings. Only flags that are set are sent; pass
--reference-language "" to clear the reference language.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &poeditor.ProjectUpdateRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("description") {
				request.Description = &description
			}

			if cmd.Flags().Changed("reference-language") {
				request.ReferenceLanguage = &referenceLanguage
			}

			project, err := client.Projects().Update(context.Background(), projectID, request)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Updated project '%s'\n", project.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new project name")
	cmd.Flags().StringVar(&description, "description", "", "new project description")
	cmd.Flags().StringVar(&referenceLanguage, "reference-language", "", "reference language code (empty clears it)")

	return cmd
}

func newProjectsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete PROJECT_ID",
		Short: "Delete a project",
		Long:  "Delete a project and all of its terms and translations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}

			if !confirm(fmt.Sprintf("Really delete project %d?", projectID), force) {
				_, _ = os.Stdout.WriteString("Cancelled\n")

				return nil
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Projects().Delete(context.Background(), projectID)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Deleted project %d\n", projectID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newProjectsSyncCommand() *cobra.Command {
	var (
		file  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "sync PROJECT_ID",
		Short: "Sync project terms from a file",
		Long: `Replace the project's terms with the ones in a JSON file. Terms
missing from the file are deleted along with their translations.`,
		Args: cobra.ExactArgs(1),
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

			if !confirm(fmt.Sprintf("Syncing deletes terms absent from %s. Continue?", file), force) {
				_, _ = os.Stdout.WriteString("Cancelled\n")

				return nil
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			counters, err := client.Projects().Sync(context.Background(), projectID, terms)
			if err != nil {
				return err
			}

			return outputCounters(counters)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "F", "", "JSON file with the full term list (required)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
