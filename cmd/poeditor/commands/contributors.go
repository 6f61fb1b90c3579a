package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// NewContributorsCommand creates the contributors command group.
func NewContributorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contributors",
		Short: "Manage project contributors",
		Long:  "List, add, and remove project contributors and administrators",
	}

	cmd.AddCommand(newContributorsListCommand())
	cmd.AddCommand(newContributorsAddCommand())
	cmd.AddCommand(newContributorsRemoveCommand())

	return cmd
}

func newContributorsListCommand() *cobra.Command {
	var (
		projectID int
		language  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contributors",
		Long:  "List contributors, optionally scoped to one project and language",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			contributors, err := client.Contributors().List(context.Background(), projectID, language)
			if err != nil {
				return err
			}

			return renderOutput(contributors, []string{"Name", "Email", "Role", "Languages"}, func() [][]string {
				rows := make([][]string, 0, len(contributors))
				for _, contributor := range contributors {
					role, languages := summarizePermissions(contributor.Permissions)
					rows = append(rows, []string{contributor.Name, contributor.Email, role, languages})
				}

				return rows
			})
		},
	}

	cmd.Flags().IntVarP(&projectID, "project", "p", 0, "limit to one project")
	cmd.Flags().StringVarP(&language, "language", "l", "", "limit to one language")

	return cmd
}

func summarizePermissions(permissions []poeditor.ContributorPermission) (string, string) {
	if len(permissions) == 0 {
		return "-", "-"
	}

	roles := make([]string, 0, len(permissions))
	languages := make([]string, 0, len(permissions))

	for _, permission := range permissions {
		roles = append(roles, permission.Type)
		languages = append(languages, permission.Languages...)
	}

	languagesOut := strings.Join(languages, ",")
	if languagesOut == "" {
		languagesOut = "-"
	}

	return strings.Join(roles, ","), languagesOut
}

func newContributorsAddCommand() *cobra.Command {
	var (
		projectID int
		name      string
		email     string
		language  string
		admin     bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contributor",
		Long: `Add a contributor to a project language, or an administrator to the
whole project with --admin (the language is ignored for administrators).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Contributors().Add(context.Background(), &poeditor.ContributorAddRequest{
				ProjectID: projectID,
				Name:      name,
				Email:     email,
				Language:  language,
				Admin:     admin,
			})
			if err != nil {
				return err
			}

			role := "contributor"
			if admin {
				role = "administrator"
			}

			_, _ = fmt.Fprintf(os.Stdout, "Added %s '%s' to project %d\n", role, email, projectID)

			return nil
		},
	}

	cmd.Flags().IntVarP(&projectID, "project", "p", 0, "project ID (required)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "contributor name (required)")
	cmd.Flags().StringVarP(&email, "email", "e", "", "contributor email (required)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "language the contributor works on")
	cmd.Flags().BoolVar(&admin, "admin", false, "add as project administrator")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newContributorsRemoveCommand() *cobra.Command {
	var (
		projectID int
		email     string
		language  string
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a contributor",
		Long: `Remove a contributor from one project language, or from the whole
project when no language is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := "the whole project"
			if language != "" {
				scope = "language '" + language + "'"
			}

			if !confirm(fmt.Sprintf("Really remove '%s' from %s?", email, scope), force) {
				_, _ = os.Stdout.WriteString("Cancelled\n")

				return nil
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Contributors().Remove(context.Background(), projectID, email, language)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Removed '%s' from %s\n", email, scope)

			return nil
		},
	}

	cmd.Flags().IntVarP(&projectID, "project", "p", 0, "project ID (required)")
	cmd.Flags().StringVarP(&email, "email", "e", "", "contributor email (required)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "remove from this language only")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
