package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gwagwa/travelgo-cli/internal/application"
	"github.com/gwagwa/travelgo-cli/internal/ports"
)

type whoamiOutput struct {
	State     string     `json:"state"`
	Email     string     `json:"email,omitempty"`
	Role      string     `json:"role,omitempty"`
	UserID    string     `json:"user_id,omitempty"`
	TokenExp  *time.Time `json:"token_expires_at,omitempty"`
	TokenDead bool       `json:"token_expired,omitempty"`
}

func newWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the restored session",
		Long:  "whoami restores the persisted session without a network round trip. The token is not revalidated server-side; the expiry shown comes from its claims.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.auth.RestoreSession(cmd.Context())
			if err != nil {
				return err
			}

			out := whoamiOutput{State: status.State.String(), Role: status.Role}

			if status.State == application.StateAuthenticated {
				if out.Email, err = app.store.Get(cmd.Context(), ports.FieldUserEmail); err != nil {
					return err
				}
				if out.UserID, err = app.store.Get(cmd.Context(), ports.FieldUserID); err != nil {
					return err
				}

				token, err := app.store.Get(cmd.Context(), ports.FieldAuthToken)
				if err != nil {
					return err
				}
				if info, err := application.InspectToken(token, app.now()); err == nil && !info.ExpiresAt.IsZero() {
					exp := info.ExpiresAt
					out.TokenExp = &exp
					out.TokenDead = info.Expired
				}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			return writeWhoami(cmd, out)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func writeWhoami(cmd *cobra.Command, out whoamiOutput) error {
	if out.State != application.StateAuthenticated.String() {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
		return err
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", out.Email, out.Role); err != nil {
		return err
	}

	if out.TokenExp != nil {
		label := "expires"
		if out.TokenDead {
			label = "expired"
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "token %s %s\n", label, out.TokenExp.Format(time.RFC3339)); err != nil {
			return err
		}
	}

	return nil
}
