package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	packagesrender "github.com/gwagwa/travelgo-cli/internal/adapters/render/packages"
	"github.com/gwagwa/travelgo-cli/internal/domain"
)

func newPackagesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "Browse and manage tour packages",
	}

	cmd.AddCommand(newPackagesListCmd(app), newPackagesShowCmd(app), newPackagesCreateCmd(app))

	return cmd
}

func newPackagesListCmd(app *app) *cobra.Command {
	var (
		all      bool
		search   string
		category string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tour packages with client-side filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runFetchSpinner(cmd.Context(), cmd.OutOrStdout(), "Fetching packages...", func(ctx context.Context) error {
				return app.packageList.Load(ctx, all)
			})
			if err != nil {
				return err
			}

			app.packageList.SetSearchQuery(search)
			app.packageList.SetCategory(category)
			filtered := app.packageList.Filtered()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(filtered)
			}

			rendered, err := app.packageRenderer(filtered, packagesrender.RenderOptions{
				Query:    search,
				Category: category,
			})
			if err != nil {
				return fmt.Errorf("render packages: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include packages not open for booking")
	cmd.Flags().StringVar(&search, "search", "", "Substring match on name or destination")
	cmd.Flags().StringVar(&category, "category", "", "Exact destination category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newPackagesShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg, err := app.packages.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return writePackage(cmd, pkg, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newPackagesCreateCmd(app *app) *cobra.Command {
	var (
		name        string
		description string
		destination string
		price       int
		days        int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a package (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := app.packages.Create(cmd.Context(), domain.PackageDraft{
				Name:         name,
				Description:  description,
				Destination:  destination,
				Price:        price,
				DurationDays: days,
			})
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), "Package created"); err != nil {
				return err
			}

			return writePackage(cmd, created, false)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Package name")
	cmd.Flags().StringVar(&description, "description", "", "Itinerary description")
	cmd.Flags().StringVar(&destination, "destination", "", "Destination category")
	cmd.Flags().IntVar(&price, "price", 0, "Price")
	cmd.Flags().IntVar(&days, "days", 0, "Duration in days")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("destination")

	return cmd
}

func writePackage(cmd *cobra.Command, pkg domain.TravelPackage, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(pkg)
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%s (%s)\n", pkg.Name, pkg.ID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "%s  $%.2f", pkg.Destination, pkg.Price); err != nil {
		return err
	}
	if pkg.DurationDays > 0 {
		if _, err := fmt.Fprintf(out, "  %dd", pkg.DurationDays); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	if pkg.Description != "" {
		if _, err := fmt.Fprintln(out, pkg.Description); err != nil {
			return err
		}
	}

	return nil
}
