package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/gwagwa/travelgo-cli/internal/domain"
	"github.com/gwagwa/travelgo-cli/internal/ports"
)

// ProfileService assembles the composite user profile from the session
// identity fields and the remote profile document, and handles update round
// trips. The merged record is never persisted; the split sources of truth
// stay where they are.
type ProfileService struct {
	api   ports.APIClient
	store ports.CredentialStore
}

func NewProfileService(api ports.APIClient, store ports.CredentialStore) *ProfileService {
	return &ProfileService{api: api, store: store}
}

// Fetch merges the persisted identity with the remote profile details.
// An incomplete session fails before any network call is made.
func (s *ProfileService) Fetch(ctx context.Context) (domain.UserProfile, error) {
	session, err := s.readSession(ctx)
	if err != nil {
		return domain.UserProfile{}, err
	}

	details, err := s.api.Profile(ctx)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("%w: %w", domain.ErrProfileFetch, err)
	}

	return domain.MergeProfile(session, details), nil
}

// Update sends the edited fields to the remote profile store and rebuilds
// the merged profile from the response, no second fetch needed.
func (s *ProfileService) Update(ctx context.Context, update domain.ProfileUpdate) (domain.UserProfile, error) {
	if strings.TrimSpace(update.Name) == "" {
		return domain.UserProfile{}, fmt.Errorf("%w: display name is required", domain.ErrValidation)
	}

	session, err := s.readSession(ctx)
	if err != nil {
		return domain.UserProfile{}, err
	}

	details, err := s.api.UpdateProfile(ctx, update)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("save profile: %w", err)
	}

	return domain.MergeProfile(session, details), nil
}

func (s *ProfileService) readSession(ctx context.Context) (domain.Session, error) {
	session := domain.Session{}

	reads := []struct {
		field ports.SessionField
		dst   *string
	}{
		{ports.FieldUserID, &session.UserID},
		{ports.FieldUserEmail, &session.Email},
		{ports.FieldUserRole, &session.Role},
	}

	for _, read := range reads {
		value, err := s.store.Get(ctx, read.field)
		if err != nil {
			return domain.Session{}, fmt.Errorf("read session field %s: %w", read.field, err)
		}
		*read.dst = value
	}

	if !session.Complete() {
		return domain.Session{}, fmt.Errorf("%w: log in before loading the profile", domain.ErrSessionIncomplete)
	}

	return session, nil
}
