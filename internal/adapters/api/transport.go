package api

import (
	"fmt"
	"net/http"

	"github.com/gwagwa/travelgo-cli/internal/ports"
)

// BearerTransport attaches "Authorization: Bearer <token>" to every outbound
// request when a token is present in the credential store, and forwards the
// request untouched otherwise. The token lookup is a deliberate synchronous
// read against local storage on each call; it runs on the transport
// goroutine, never a UI path, and its cost is one small file read.
type BearerTransport struct {
	Store ports.CredentialStore
	Base  http.RoundTripper
}

var _ http.RoundTripper = (*BearerTransport)(nil)

func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.Store.Get(req.Context(), ports.FieldAuthToken)
	if err != nil {
		return nil, fmt.Errorf("resolve auth token: %w", err)
	}

	if token != "" {
		// Clone so the caller's request is never mutated.
		authed := req.Clone(req.Context())
		authed.Header.Set("Authorization", "Bearer "+token)
		req = authed
	}

	return t.base().RoundTrip(req)
}

func (t *BearerTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
