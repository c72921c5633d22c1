package packages

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/gwagwa/travelgo-cli/internal/domain"
)

type RenderOptions struct {
	Title string
	// Query and Category are echoed in the header so the listing shows which
	// filters produced it.
	Query    string
	Category string
}

func renderView(packages []domain.TravelPackage, opts RenderOptions, s styles) string {
	title := opts.Title
	if title == "" {
		title = "TravelGo Packages"
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(headerLine(len(packages), opts)),
	}

	if len(packages) == 0 {
		lines = append(lines, s.empty.Render("No packages match."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, pkg := range packages {
		lines = append(lines, s.section.Render(renderPackage(pkg, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(count int, opts RenderOptions) string {
	header := fmt.Sprintf("packages: %d", count)
	if opts.Query != "" {
		header += fmt.Sprintf("  search: %q", opts.Query)
	}
	if opts.Category != "" {
		header += fmt.Sprintf("  category: %s", opts.Category)
	}

	return header
}

func renderPackage(pkg domain.TravelPackage, s styles) string {
	parts := []string{
		s.name.Render(packageTitle(pkg)),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.category.Render(pkg.Destination),
			s.detail.Render("  "),
			s.price.Render(fmt.Sprintf("$%.2f", pkg.Price)),
			s.detail.Render(durationLabel(pkg.DurationDays)),
		),
	}

	if pkg.Description != "" {
		parts = append(parts, s.detail.Render(pkg.Description))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func packageTitle(pkg domain.TravelPackage) string {
	if pkg.ID == "" {
		return pkg.Name
	}

	return fmt.Sprintf("%s (%s)", pkg.Name, pkg.ID)
}

func durationLabel(days int) string {
	if days <= 0 {
		return ""
	}

	return fmt.Sprintf("  %dd", days)
}
