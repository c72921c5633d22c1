package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newUsersCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users (admin)",
	}

	cmd.AddCommand(newUsersListCmd(app))

	return cmd
}

func newUsersListCmd(app *app) *cobra.Command {
	var (
		search string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runFetchSpinner(cmd.Context(), cmd.OutOrStdout(), "Fetching users...", func(ctx context.Context) error {
				return app.userList.Load(ctx)
			})
			if err != nil {
				return err
			}

			app.userList.SetSearchQuery(search)
			filtered := app.userList.Filtered()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(filtered)
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "users: %d\n", len(filtered)); err != nil {
				return err
			}
			for _, user := range filtered {
				active := "active"
				if !user.IsActive {
					active = "inactive"
				}
				name := user.Name
				if name == "" {
					name = "-"
				}
				if _, err := fmt.Fprintf(out, "%s  %s  %s  %s\n", user.Email, name, user.Role, active); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Substring match on email or name")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
