package ports

import (
	"context"

	"github.com/gwagwa/travelgo-cli/internal/domain"
)

// APIClient is the typed surface of the TravelGo REST API. Each operation is
// a single synchronous attempt: no retry, no caching, no business logic.
type APIClient interface {
	Login(ctx context.Context, email, password string) (domain.AuthResult, error)
	Register(ctx context.Context, name, email, password, role string) (domain.AuthResult, error)

	Profile(ctx context.Context) (domain.ProfileDetails, error)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.ProfileDetails, error)

	AvailablePackages(ctx context.Context) ([]domain.TravelPackage, error)
	AllPackages(ctx context.Context) ([]domain.TravelPackage, error)
	PackageByID(ctx context.Context, id string) (domain.TravelPackage, error)
	CreatePackage(ctx context.Context, draft domain.PackageDraft) (domain.TravelPackage, error)

	Users(ctx context.Context) ([]domain.UserProfile, error)
}
