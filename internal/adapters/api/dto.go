package api

import (
	"time"

	"github.com/gwagwa/travelgo-cli/internal/domain"
)

// Wire shapes follow the upstream API field names verbatim, Spanish included.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

type authResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    *authData `json:"data"`
}

type authData struct {
	User        userDTO `json:"user"`
	AccessToken string  `json:"access_token"`
}

type userDTO struct {
	ID                 string   `json:"_id"`
	Email              string   `json:"email"`
	Role               string   `json:"role"`
	Nombre             string   `json:"nombre"`
	Telefono           *string  `json:"telefono"`
	Direccion          *string  `json:"direccion"`
	DocumentoIdentidad *string  `json:"documentoIdentidad"`
	Preferencias       []string `json:"preferencias"`
	CreatedAt          string   `json:"createdAt"`
	IsActive           bool     `json:"isActive"`
}

// profileDetailsDTO is the cliente-profile/me document: no {success, data}
// wrapper and no auth fields (email, role).
type profileDetailsDTO struct {
	UserID             string   `json:"user"`
	ProfileID          string   `json:"_id"`
	Nombre             string   `json:"nombre"`
	Telefono           *string  `json:"telefono"`
	Direccion          *string  `json:"direccion"`
	DocumentoIdentidad *string  `json:"documentoIdentidad"`
	Preferencias       []string `json:"preferencias"`
	IsActive           bool     `json:"isActive"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
}

type updateProfileRequest struct {
	Nombre             string   `json:"nombre"`
	Telefono           string   `json:"telefono"`
	Direccion          string   `json:"direccion"`
	DocumentoIdentidad string   `json:"documentoIdentidad"`
	Preferencias       []string `json:"preferencias"`
}

type packageDTO struct {
	ID           string  `json:"_id"`
	Nombre       string  `json:"nombre"`
	Descripcion  string  `json:"descripcion"`
	Imagen       *string `json:"imagen"`
	Precio       float64 `json:"precio"`
	Destino      string  `json:"destino"`
	DuracionDias int     `json:"duracionDias"`
}

type packageListResponse struct {
	Success bool         `json:"success"`
	Data    []packageDTO `json:"data"`
	Total   int          `json:"total"`
}

type createPackageRequest struct {
	Nombre       string `json:"nombre"`
	Descripcion  string `json:"descripcion"`
	Destino      string `json:"destino"`
	Precio       int    `json:"precio"`
	DuracionDias int    `json:"duracionDias"`
}

type usersResponse struct {
	Success bool      `json:"success"`
	Data    []userDTO `json:"data"`
}

func (d userDTO) toSummary() domain.UserSummary {
	return domain.UserSummary{ID: d.ID, Email: d.Email, Role: d.Role}
}

func (d userDTO) toProfile() domain.UserProfile {
	return domain.UserProfile{
		ID:          d.ID,
		Email:       d.Email,
		Role:        d.Role,
		Name:        d.Nombre,
		Phone:       deref(d.Telefono),
		Address:     deref(d.Direccion),
		DocumentID:  deref(d.DocumentoIdentidad),
		Preferences: d.Preferencias,
		CreatedAt:   parseTime(d.CreatedAt),
		IsActive:    d.IsActive,
	}
}

func (d profileDetailsDTO) toDetails() domain.ProfileDetails {
	return domain.ProfileDetails{
		Name:        d.Nombre,
		Phone:       deref(d.Telefono),
		Address:     deref(d.Direccion),
		DocumentID:  deref(d.DocumentoIdentidad),
		Preferences: d.Preferencias,
		CreatedAt:   parseTime(d.CreatedAt),
		IsActive:    d.IsActive,
	}
}

func (d packageDTO) toDomain() domain.TravelPackage {
	return domain.TravelPackage{
		ID:           d.ID,
		Name:         d.Nombre,
		Description:  d.Descripcion,
		Price:        d.Precio,
		Destination:  d.Destino,
		DurationDays: d.DuracionDias,
		ImageURL:     deref(d.Imagen),
	}
}

func (r authResponse) toDomain() domain.AuthResult {
	result := domain.AuthResult{Success: r.Success, Message: r.Message}
	if r.Data != nil {
		result.Data = &domain.AuthData{
			User:        r.Data.User.toSummary(),
			AccessToken: r.Data.AccessToken,
		}
	}

	return result
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}
