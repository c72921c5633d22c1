package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gwagwa/travelgo-cli/internal/domain"
)

// StatusError carries the HTTP status and server-provided message of a
// failed call. It always wraps one of the domain sentinels, so callers can
// branch with errors.Is without knowing HTTP codes.
type StatusError struct {
	Code    int
	Message string
	kind    error
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d: %s", e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("http %d: %s", e.Code, e.Message)
}

func (e *StatusError) Unwrap() error { return e.kind }

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// newStatusError classifies an HTTP failure into the domain taxonomy:
// 400/401 invalid credentials, 409 duplicate account, everything else a
// server-side error.
func newStatusError(resp *http.Response) *StatusError {
	var body errorBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body)

	message := body.Message
	if message == "" {
		message = body.Error
	}

	var kind error
	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized:
		kind = domain.ErrInvalidCredentials
	case http.StatusConflict:
		kind = domain.ErrConflict
	default:
		kind = domain.ErrServer
	}

	return &StatusError{Code: resp.StatusCode, Message: message, kind: kind}
}

func networkError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrNetwork, err)
}
