package domain

// DefaultRole is assigned to self-registered accounts; the server only
// promotes roles out-of-band.
const DefaultRole = "CLIENTE"

// Session is the locally persisted identity: the bearer token plus the three
// identity fields captured at login. It is the client-side source of truth
// for who is logged in; profile details live remotely.
type Session struct {
	Token  string
	UserID string
	Email  string
	Role   string
}

// Authenticated reports whether a token is present at all.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Complete reports whether the identity fields needed to assemble a profile
// are all present. The token is deliberately not part of this check: profile
// assembly reads identity, the transport reads the token.
func (s Session) Complete() bool {
	return s.UserID != "" && s.Email != "" && s.Role != ""
}
