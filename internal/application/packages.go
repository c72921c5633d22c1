package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/gwagwa/travelgo-cli/internal/domain"
	"github.com/gwagwa/travelgo-cli/internal/ports"
)

// PackageService covers the single-package operations: detail lookup and
// creation (the admin path).
type PackageService struct {
	api ports.APIClient
}

func NewPackageService(api ports.APIClient) *PackageService {
	return &PackageService{api: api}
}

func (s *PackageService) Get(ctx context.Context, id string) (domain.TravelPackage, error) {
	if strings.TrimSpace(id) == "" {
		return domain.TravelPackage{}, fmt.Errorf("%w: package id is required", domain.ErrValidation)
	}

	return s.api.PackageByID(ctx, id)
}

// Create validates the draft locally and posts it. The server enforces the
// admin role; the client only forwards the bearer token.
func (s *PackageService) Create(ctx context.Context, draft domain.PackageDraft) (domain.TravelPackage, error) {
	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Destination) == "" {
		return domain.TravelPackage{}, fmt.Errorf("%w: name and destination are required", domain.ErrValidation)
	}
	if draft.Price <= 0 {
		return domain.TravelPackage{}, fmt.Errorf("%w: price must be a positive number", domain.ErrValidation)
	}
	if draft.DurationDays <= 0 {
		return domain.TravelPackage{}, fmt.Errorf("%w: duration must be a positive number of days", domain.ErrValidation)
	}

	created, err := s.api.CreatePackage(ctx, draft)
	if err != nil {
		return domain.TravelPackage{}, fmt.Errorf("create package: %w", err)
	}

	return created, nil
}
