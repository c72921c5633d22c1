package cmd

import "github.com/spf13/cobra"

func Execute() error {
	rootCmd, app := newRootCmd()
	defer func() {
		if app != nil {
			app.close()
		}
	}()

	return rootCmd.Execute()
}

func newRootCmd() (*cobra.Command, *app) {
	rootCmd := &cobra.Command{
		Use:           "tg",
		Short:         "TravelGo CLI (tg): book and manage tour packages",
		Long:          "tg is the terminal client for the TravelGo booking service: log in, browse and filter tour packages, manage your profile, and (as admin) create packages and list users.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd, nil
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newProfileCmd(app),
		newPackagesCmd(app),
		newUsersCmd(app),
	)

	return rootCmd, app
}
