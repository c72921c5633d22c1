package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gwagwa/travelgo-cli/internal/domain"
	"github.com/gwagwa/travelgo-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

// Client is a thin typed binding over the TravelGo REST endpoints. It holds
// no state beyond the base URL and the HTTP client it was given; bearer-token
// injection lives in the transport, not here.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.APIClient = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	var resp authResponse
	err := c.doJSON(ctx, http.MethodPost, "auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("login: %w", err)
	}

	return resp.toDomain(), nil
}

func (c *Client) Register(ctx context.Context, name, email, password, role string) (domain.AuthResult, error) {
	req := registerRequest{Email: email, Password: password, Role: role, Name: name}

	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "auth/register", req, &resp); err != nil {
		return domain.AuthResult{}, fmt.Errorf("register: %w", err)
	}

	return resp.toDomain(), nil
}

func (c *Client) Profile(ctx context.Context) (domain.ProfileDetails, error) {
	var resp profileDetailsDTO
	if err := c.doJSON(ctx, http.MethodGet, "cliente-profile/me", nil, &resp); err != nil {
		return domain.ProfileDetails{}, fmt.Errorf("get profile: %w", err)
	}

	return resp.toDetails(), nil
}

func (c *Client) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.ProfileDetails, error) {
	req := updateProfileRequest{
		Nombre:             update.Name,
		Telefono:           update.Phone,
		Direccion:          update.Address,
		DocumentoIdentidad: update.DocumentID,
		Preferencias:       update.Preferences,
	}

	var resp profileDetailsDTO
	if err := c.doJSON(ctx, http.MethodPut, "cliente-profile/me", req, &resp); err != nil {
		return domain.ProfileDetails{}, fmt.Errorf("update profile: %w", err)
	}

	return resp.toDetails(), nil
}

// AvailablePackages lists only packages currently open for booking. The
// endpoint wraps its payload in {success, data, total}.
func (c *Client) AvailablePackages(ctx context.Context) ([]domain.TravelPackage, error) {
	var resp packageListResponse
	if err := c.doJSON(ctx, http.MethodGet, "paquete-turistico/disponibles", nil, &resp); err != nil {
		return nil, fmt.Errorf("list available packages: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("list available packages: %w: server reported failure", domain.ErrServer)
	}

	return packagesToDomain(resp.Data), nil
}

// AllPackages lists every package, available or not. This endpoint returns a
// bare array.
func (c *Client) AllPackages(ctx context.Context) ([]domain.TravelPackage, error) {
	var resp []packageDTO
	if err := c.doJSON(ctx, http.MethodGet, "paquete-turistico", nil, &resp); err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}

	return packagesToDomain(resp), nil
}

func (c *Client) PackageByID(ctx context.Context, id string) (domain.TravelPackage, error) {
	var resp packageDTO
	err := c.doJSON(ctx, http.MethodGet, "paquete-turistico/"+id, nil, &resp)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return domain.TravelPackage{}, fmt.Errorf("get package %s: %w", id, domain.ErrPackageNotFound)
		}
		return domain.TravelPackage{}, fmt.Errorf("get package %s: %w", id, err)
	}

	return resp.toDomain(), nil
}

func (c *Client) CreatePackage(ctx context.Context, draft domain.PackageDraft) (domain.TravelPackage, error) {
	req := createPackageRequest{
		Nombre:       draft.Name,
		Descripcion:  draft.Description,
		Destino:      draft.Destination,
		Precio:       draft.Price,
		DuracionDias: draft.DurationDays,
	}

	var resp packageDTO
	if err := c.doJSON(ctx, http.MethodPost, "paquete-turistico", req, &resp); err != nil {
		return domain.TravelPackage{}, fmt.Errorf("create package: %w", err)
	}

	return resp.toDomain(), nil
}

func (c *Client) Users(ctx context.Context) ([]domain.UserProfile, error) {
	var resp usersResponse
	if err := c.doJSON(ctx, http.MethodGet, "auth/users", nil, &resp); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("list users: %w: server reported failure", domain.ErrServer)
	}

	users := make([]domain.UserProfile, 0, len(resp.Data))
	for _, user := range resp.Data {
		users = append(users, user.toProfile())
	}

	return users, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return networkError(method+" "+path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newStatusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func packagesToDomain(dtos []packageDTO) []domain.TravelPackage {
	packages := make([]domain.TravelPackage, 0, len(dtos))
	for _, dto := range dtos {
		packages = append(packages, dto.toDomain())
	}

	return packages
}
