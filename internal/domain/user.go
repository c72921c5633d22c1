package domain

import "time"

// UserSummary is the identity slice returned by the auth endpoints.
type UserSummary struct {
	ID    string
	Email string
	Role  string
}

// ProfileDetails is the remote profile document: everything about a user
// except their identity, which the session owns.
type ProfileDetails struct {
	Name        string
	Phone       string
	Address     string
	DocumentID  string
	Preferences []string
	CreatedAt   time.Time
	IsActive    bool
}

// UserProfile is the composite view shown to the user: session identity
// merged with remote details. It is assembled on demand and never persisted.
type UserProfile struct {
	ID          string
	Email       string
	Role        string
	Name        string
	Phone       string
	Address     string
	DocumentID  string
	Preferences []string
	CreatedAt   time.Time
	IsActive    bool
}

// MergeProfile combines the two sources of truth: the session wins for
// identity, the remote document wins for everything else.
func MergeProfile(session Session, details ProfileDetails) UserProfile {
	return UserProfile{
		ID:          session.UserID,
		Email:       session.Email,
		Role:        session.Role,
		Name:        details.Name,
		Phone:       details.Phone,
		Address:     details.Address,
		DocumentID:  details.DocumentID,
		Preferences: details.Preferences,
		CreatedAt:   details.CreatedAt,
		IsActive:    details.IsActive,
	}
}

// ProfileUpdate carries the editable profile fields for a save round trip.
type ProfileUpdate struct {
	Name        string
	Phone       string
	Address     string
	DocumentID  string
	Preferences []string
}

// AuthResult mirrors the auth endpoint outcome. Data is nil when the server
// rejected the attempt.
type AuthResult struct {
	Success bool
	Message string
	Data    *AuthData
}

// AuthData is the accepted-auth payload: the user identity and the bearer
// token to persist.
type AuthData struct {
	User        UserSummary
	AccessToken string
}
