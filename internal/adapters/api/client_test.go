package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwagwa/travelgo-cli/internal/domain"
)

func TestClientLoginDecodesSuccessResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])
		assert.Equal(t, "pw", body["password"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"message": "ok",
			"data": {
				"user": {"_id": "u1", "email": "a@b.com", "role": "ADMIN"},
				"access_token": "tok1"
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api/", nil)

	result, err := client.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.Data)
	assert.Equal(t, "tok1", result.Data.AccessToken)
	assert.Equal(t, domain.UserSummary{ID: "u1", Email: "a@b.com", Role: "ADMIN"}, result.Data.User)
}

func TestClientLoginUnauthorizedMapsToInvalidCredentials(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "bad credentials"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Login(context.Background(), "a@b.com", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "bad credentials")
}

func TestClientRegisterConflictMapsToConflict(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "CLIENTE", body["role"])
		assert.Equal(t, "Sora", body["name"])

		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message": "email already registered"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Register(context.Background(), "Sora", "a@b.com", "pw", "CLIENTE")
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestClientServerErrorMapsToServer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.AllPackages(context.Background())
	require.ErrorIs(t, err, domain.ErrServer)
}

func TestClientUnreachableServerMapsToNetwork(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Login(context.Background(), "a@b.com", "pw")
	require.ErrorIs(t, err, domain.ErrNetwork)
}

func TestClientAvailablePackagesUnwrapsEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/paquete-turistico/disponibles", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"success": true,
			"total": 1,
			"data": [{"_id": "p1", "nombre": "Beach Trip", "descripcion": "sol", "precio": 499.9, "destino": "Playa", "duracionDias": 5}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	packages, err := client.AvailablePackages(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, domain.TravelPackage{
		ID:           "p1",
		Name:         "Beach Trip",
		Description:  "sol",
		Price:        499.9,
		Destination:  "Playa",
		DurationDays: 5,
	}, packages[0])
}

func TestClientAvailablePackagesServerReportedFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "data": [], "total": 0}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.AvailablePackages(context.Background())
	require.ErrorIs(t, err, domain.ErrServer)
}

func TestClientAllPackagesDecodesBareArray(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/paquete-turistico", r.URL.Path)
		_, _ = w.Write([]byte(`[{"_id": "p1", "nombre": "Mountain Trek", "destino": "Aventura", "precio": 120}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	packages, err := client.AllPackages(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "Mountain Trek", packages[0].Name)
}

func TestClientPackageByIDNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.PackageByID(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestClientUpdateProfileSendsUpstreamFieldNames(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/cliente-profile/me", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Sora", body["nombre"])
		assert.Equal(t, "555", body["telefono"])
		assert.Contains(t, body, "documentoIdentidad")
		assert.Contains(t, body, "preferencias")

		_, _ = w.Write([]byte(`{"user": "u1", "_id": "prof1", "nombre": "Sora", "telefono": "555", "isActive": true, "createdAt": "2026-01-02T15:04:05Z"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	details, err := client.UpdateProfile(context.Background(), domain.ProfileUpdate{Name: "Sora", Phone: "555"})
	require.NoError(t, err)
	assert.Equal(t, "Sora", details.Name)
	assert.Equal(t, "555", details.Phone)
	assert.True(t, details.IsActive)
	assert.Equal(t, 2026, details.CreatedAt.Year())
}

func TestClientUsersUnwrapsEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/users", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [{"_id": "u1", "email": "a@b.com", "role": "ADMIN", "nombre": "Sora", "isActive": true}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	users, err := client.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "a@b.com", users[0].Email)
	assert.Equal(t, "Sora", users[0].Name)
	assert.True(t, users[0].IsActive)
}
