package application

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what can be read from a bearer token without verifying its
// signature. RestoreSession trusts the persisted token blindly, so this is
// the only local staleness signal the client has.
type TokenInfo struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Expired   bool
}

// InspectToken decodes the claims of a JWT without signature verification.
// The server remains the authority; this exists purely for display.
func InspectToken(raw string, now time.Time) (TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return TokenInfo{}, fmt.Errorf("parse token claims: %w", err)
	}

	info := TokenInfo{}

	if subject, err := claims.GetSubject(); err == nil {
		info.Subject = subject
	}
	if issued, err := claims.GetIssuedAt(); err == nil && issued != nil {
		info.IssuedAt = issued.Time
	}
	if expires, err := claims.GetExpirationTime(); err == nil && expires != nil {
		info.ExpiresAt = expires.Time
		info.Expired = expires.Time.Before(now)
	}

	return info, nil
}
