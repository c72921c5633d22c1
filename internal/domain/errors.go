package domain

import "errors"

// Error taxonomy surfaced to callers. Local validation failures never reach
// the network layer; everything else is classified at the API boundary so
// raw transport errors are never shown verbatim.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrConflict           = errors.New("account already exists")
	ErrSessionIncomplete  = errors.New("session incomplete")
	ErrServer             = errors.New("server error")
	ErrNetwork            = errors.New("network error")
	ErrProfileFetch       = errors.New("profile fetch failed")
	ErrPackageNotFound    = errors.New("package not found")
)
