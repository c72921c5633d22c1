package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gwagwa/travelgo-cli/internal/domain"
)

func newProfileCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show and edit the merged user profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := app.profile.Fetch(cmd.Context())
			if err != nil {
				return err
			}

			return writeProfile(cmd, profile, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.AddCommand(newProfileUpdateCmd(app))

	return cmd
}

func newProfileUpdateCmd(app *app) *cobra.Command {
	var (
		name        string
		phone       string
		address     string
		document    string
		preferences []string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the remote profile fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := app.profile.Update(cmd.Context(), domain.ProfileUpdate{
				Name:        name,
				Phone:       phone,
				Address:     address,
				DocumentID:  document,
				Preferences: preferences,
			})
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), "Profile saved"); err != nil {
				return err
			}

			return writeProfile(cmd, profile, false)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&address, "address", "", "Address")
	cmd.Flags().StringVar(&document, "document", "", "Identity document number")
	cmd.Flags().StringSliceVar(&preferences, "preference", nil, "Travel preference (repeatable)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func writeProfile(cmd *cobra.Command, profile domain.UserProfile, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%s <%s> (%s)\n", profile.Name, profile.Email, profile.Role); err != nil {
		return err
	}

	lines := []struct {
		label string
		value string
	}{
		{"phone", profile.Phone},
		{"address", profile.Address},
		{"document", profile.DocumentID},
		{"preferences", strings.Join(profile.Preferences, ", ")},
	}
	for _, line := range lines {
		if line.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(out, "%s: %s\n", line.label, line.value); err != nil {
			return err
		}
	}

	return nil
}
