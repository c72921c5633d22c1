package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func newLoginCmd(app *app) *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := resolvePassword(password, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if err := app.auth.Login(cmd.Context(), email, resolved); err != nil {
				return err
			}

			status := app.auth.Status()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", email, status.Role)
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")

	return cmd
}

// resolvePassword prompts without echo when the flag was omitted and stdin is
// a terminal. Otherwise the value passes through as-is and blank input fails
// locally in the coordinator.
func resolvePassword(flagValue string, out io.Writer) (string, error) {
	if flagValue != "" || !term.IsTerminal(int(os.Stdin.Fd())) {
		return flagValue, nil
	}

	if _, err := fmt.Fprint(out, "Password: "); err != nil {
		return "", err
	}
	raw, err := readPassword(int(os.Stdin.Fd()))
	_, _ = fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	return string(raw), nil
}
