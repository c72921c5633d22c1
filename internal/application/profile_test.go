package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwagwa/travelgo-cli/internal/domain"
	"github.com/gwagwa/travelgo-cli/internal/ports"
)

func seedSession(t *testing.T, store *fakeStore) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, ports.FieldUserID, "u1"))
	require.NoError(t, store.Save(ctx, ports.FieldUserEmail, "a@b.com"))
	require.NoError(t, store.Save(ctx, ports.FieldUserRole, "CLIENTE"))
}

func TestProfileFetchMergesSessionAndRemoteDetails(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	api := &fakeAPI{profileFn: func(context.Context) (domain.ProfileDetails, error) {
		return domain.ProfileDetails{
			Name:        "Sora",
			Phone:       "555",
			Address:     "Calle 1",
			DocumentID:  "CC-9",
			Preferences: []string{"playa"},
			CreatedAt:   created,
			IsActive:    true,
		}, nil
	}}
	store := newFakeStore()
	seedSession(t, store)

	profile, err := NewProfileService(api, store).Fetch(context.Background())
	require.NoError(t, err)

	// Identity comes from the session, everything else from the remote doc.
	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, "a@b.com", profile.Email)
	assert.Equal(t, "CLIENTE", profile.Role)
	assert.Equal(t, "Sora", profile.Name)
	assert.Equal(t, "555", profile.Phone)
	assert.Equal(t, []string{"playa"}, profile.Preferences)
	assert.Equal(t, created, profile.CreatedAt)
	assert.True(t, profile.IsActive)
}

func TestProfileFetchIncompleteSessionFailsBeforeNetwork(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	store := newFakeStore()
	require.NoError(t, store.Save(context.Background(), ports.FieldUserID, "u1"))

	_, err := NewProfileService(api, store).Fetch(context.Background())
	require.ErrorIs(t, err, domain.ErrSessionIncomplete)
	assert.Empty(t, api.calls)
}

func TestProfileFetchWrapsRemoteFailure(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{profileFn: func(context.Context) (domain.ProfileDetails, error) {
		return domain.ProfileDetails{}, domain.ErrServer
	}}
	store := newFakeStore()
	seedSession(t, store)

	_, err := NewProfileService(api, store).Fetch(context.Background())
	require.ErrorIs(t, err, domain.ErrProfileFetch)
	assert.ErrorIs(t, err, domain.ErrServer)
}

func TestProfileUpdateRequiresName(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	store := newFakeStore()
	seedSession(t, store)

	_, err := NewProfileService(api, store).Update(context.Background(), domain.ProfileUpdate{Name: "  "})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, api.calls)
}

func TestProfileUpdateRebuildsMergedProfileFromResponse(t *testing.T) {
	t.Parallel()

	var sent domain.ProfileUpdate
	api := &fakeAPI{updateFn: func(_ context.Context, update domain.ProfileUpdate) (domain.ProfileDetails, error) {
		sent = update
		return domain.ProfileDetails{Name: update.Name, Phone: update.Phone, IsActive: true}, nil
	}}
	store := newFakeStore()
	seedSession(t, store)

	update := domain.ProfileUpdate{Name: "Sora R.", Phone: "777"}
	profile, err := NewProfileService(api, store).Update(context.Background(), update)
	require.NoError(t, err)

	assert.Equal(t, update, sent)
	assert.Equal(t, "Sora R.", profile.Name)
	assert.Equal(t, "777", profile.Phone)
	assert.Equal(t, "a@b.com", profile.Email)
	assert.Equal(t, []string{"UpdateProfile"}, api.calls, "update must not refetch the profile")
}

func TestProfileUpdateIncompleteSession(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	store := newFakeStore()

	_, err := NewProfileService(api, store).Update(context.Background(), domain.ProfileUpdate{Name: "Sora"})
	require.ErrorIs(t, err, domain.ErrSessionIncomplete)
	assert.Empty(t, api.calls)
}
