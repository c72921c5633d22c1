package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gwagwa/travelgo-cli/internal/domain"
	"github.com/gwagwa/travelgo-cli/internal/ports"
)

// PackageList holds the last fetched package collection and a derived
// filtered view. Load replaces the collection wholesale; changing a filter
// never triggers a network call.
type PackageList struct {
	api ports.APIClient

	mu       sync.Mutex
	packages []domain.TravelPackage
	query    string
	category string
}

func NewPackageList(api ports.APIClient) *PackageList {
	return &PackageList{api: api}
}

// Load fetches the collection in one call. With all set it lists every
// package, otherwise only the ones open for booking. Last successful fetch
// wins; a failed fetch leaves the previous collection in place.
func (l *PackageList) Load(ctx context.Context, all bool) error {
	var (
		packages []domain.TravelPackage
		err      error
	)
	if all {
		packages, err = l.api.AllPackages(ctx)
	} else {
		packages, err = l.api.AvailablePackages(ctx)
	}
	if err != nil {
		return fmt.Errorf("load packages: %w", err)
	}

	l.mu.Lock()
	l.packages = packages
	l.mu.Unlock()
	return nil
}

func (l *PackageList) SetSearchQuery(query string) {
	l.mu.Lock()
	l.query = query
	l.mu.Unlock()
}

// SetCategory sets the exact-match destination filter; empty means unset.
func (l *PackageList) SetCategory(category string) {
	l.mu.Lock()
	l.category = category
	l.mu.Unlock()
}

// Filtered recomputes the derived view from the current collection and
// filters. Both filters compose with AND and commute.
func (l *PackageList) Filtered() []domain.TravelPackage {
	l.mu.Lock()
	defer l.mu.Unlock()
	return FilterPackages(l.packages, l.query, l.category)
}

// FilterPackages is the pure filter: case-insensitive substring match on
// name or destination, AND exact category match when category is set.
func FilterPackages(packages []domain.TravelPackage, query, category string) []domain.TravelPackage {
	needle := strings.ToLower(strings.TrimSpace(query))

	filtered := make([]domain.TravelPackage, 0, len(packages))
	for _, pkg := range packages {
		if needle != "" &&
			!strings.Contains(strings.ToLower(pkg.Name), needle) &&
			!strings.Contains(strings.ToLower(pkg.Destination), needle) {
			continue
		}
		if category != "" && pkg.Destination != category {
			continue
		}
		filtered = append(filtered, pkg)
	}

	return filtered
}

// UserList is the admin-side user collection with a text filter.
type UserList struct {
	api ports.APIClient

	mu    sync.Mutex
	users []domain.UserProfile
	query string
}

func NewUserList(api ports.APIClient) *UserList {
	return &UserList{api: api}
}

func (l *UserList) Load(ctx context.Context) error {
	users, err := l.api.Users(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	l.mu.Lock()
	l.users = users
	l.mu.Unlock()
	return nil
}

func (l *UserList) SetSearchQuery(query string) {
	l.mu.Lock()
	l.query = query
	l.mu.Unlock()
}

func (l *UserList) Filtered() []domain.UserProfile {
	l.mu.Lock()
	defer l.mu.Unlock()
	return FilterUsers(l.users, l.query)
}

// FilterUsers matches case-insensitively against email or display name.
func FilterUsers(users []domain.UserProfile, query string) []domain.UserProfile {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return users
	}

	filtered := make([]domain.UserProfile, 0, len(users))
	for _, user := range users {
		if strings.Contains(strings.ToLower(user.Email), needle) ||
			strings.Contains(strings.ToLower(user.Name), needle) {
			filtered = append(filtered, user)
		}
	}

	return filtered
}
