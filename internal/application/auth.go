package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gwagwa/travelgo-cli/internal/domain"
	"github.com/gwagwa/travelgo-cli/internal/ports"
)

// AuthState is the coordinator's position in the login lifecycle.
type AuthState int

const (
	StateAnonymous AuthState = iota
	StateAuthenticating
	StateAuthenticated
	StateFailed
)

func (s AuthState) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("AuthState(%d)", int(s))
	}
}

// AuthStatus is the observable coordinator state. Role is set only when
// State is StateAuthenticated; Err only when State is StateFailed.
type AuthStatus struct {
	State AuthState
	Role  string
	Err   error
}

// AuthService orchestrates login, registration, logout and session restore
// against the API client and the credential store. One instance per process;
// operations are one-at-a-time, callers gate re-entrancy.
type AuthService struct {
	api   ports.APIClient
	store ports.CredentialStore

	mu     sync.Mutex
	status AuthStatus

	cancelWatch ports.CancelFunc
	watchDone   chan struct{}
}

func NewAuthService(api ports.APIClient, store ports.CredentialStore) *AuthService {
	s := &AuthService{
		api:    api,
		store:  store,
		status: AuthStatus{State: StateAnonymous},
	}

	// Mirror the token field: an out-of-band clear drops the coordinator
	// back to anonymous, the way the original app's token stream drove the
	// login screen.
	tokens, cancel := store.Subscribe(ports.FieldAuthToken)
	// Discard the replayed current value: startup state is RestoreSession's
	// job, the watcher only reacts to later clears.
	select {
	case <-tokens:
	default:
	}
	s.cancelWatch = cancel
	s.watchDone = make(chan struct{})
	go s.watchToken(tokens)

	return s
}

func (s *AuthService) watchToken(tokens <-chan string) {
	defer close(s.watchDone)

	for token := range tokens {
		if token != "" {
			continue
		}
		s.mu.Lock()
		if s.status.State == StateAuthenticated {
			s.status = AuthStatus{State: StateAnonymous}
		}
		s.mu.Unlock()
	}
}

// Close releases the token subscription.
func (s *AuthService) Close() {
	s.cancelWatch()
	<-s.watchDone
}

// Status returns the current coordinator state.
func (s *AuthService) Status() AuthStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Login authenticates the user and persists the resulting session. Blank
// credentials fail locally without touching the network. On a rejected or
// failed call nothing is persisted.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		return s.fail(fmt.Errorf("%w: email and password are required", domain.ErrValidation))
	}

	s.setState(AuthStatus{State: StateAuthenticating})

	result, err := s.api.Login(ctx, email, password)
	if err != nil {
		return s.fail(err)
	}

	return s.completeAuth(ctx, result)
}

// Register creates an account with the default client role and persists the
// session exactly like Login. A duplicate email surfaces as
// domain.ErrConflict, distinct from generic validation failure.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if name == "" || email == "" || password == "" {
		return s.fail(fmt.Errorf("%w: name, email and password are required", domain.ErrValidation))
	}

	s.setState(AuthStatus{State: StateAuthenticating})

	result, err := s.api.Register(ctx, name, email, password, domain.DefaultRole)
	if err != nil {
		return s.fail(err)
	}

	return s.completeAuth(ctx, result)
}

func (s *AuthService) completeAuth(ctx context.Context, result domain.AuthResult) error {
	if !result.Success || result.Data == nil {
		message := result.Message
		if message == "" {
			message = "authentication rejected"
		}
		return s.fail(fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, message))
	}

	if err := s.persistSession(ctx, *result.Data); err != nil {
		return s.fail(err)
	}

	s.setState(AuthStatus{State: StateAuthenticated, Role: result.Data.User.Role})
	return nil
}

// persistSession writes all four session fields. If any write fails the
// store is cleared so a partial session is never left behind.
func (s *AuthService) persistSession(ctx context.Context, data domain.AuthData) error {
	writes := []struct {
		field ports.SessionField
		value string
	}{
		{ports.FieldAuthToken, data.AccessToken},
		{ports.FieldUserID, data.User.ID},
		{ports.FieldUserEmail, data.User.Email},
		{ports.FieldUserRole, data.User.Role},
	}

	for _, write := range writes {
		if err := s.store.Save(ctx, write.field, write.value); err != nil {
			_ = s.store.ClearAll(ctx)
			return fmt.Errorf("persist session field %s: %w", write.field, err)
		}
	}

	return nil
}

// Logout clears the persisted session. The coordinator ends up anonymous
// even when the store was already empty.
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.store.ClearAll(ctx)
	s.setState(AuthStatus{State: StateAnonymous})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

// RestoreSession reads the persisted token at startup and, when non-blank,
// reports authenticated with the persisted role without a network round
// trip. The token is trusted as-is: a revoked or expired token is only
// detected when the next authenticated call fails.
func (s *AuthService) RestoreSession(ctx context.Context) (AuthStatus, error) {
	token, err := s.store.Get(ctx, ports.FieldAuthToken)
	if err != nil {
		return s.Status(), fmt.Errorf("read persisted token: %w", err)
	}

	if strings.TrimSpace(token) == "" {
		s.setState(AuthStatus{State: StateAnonymous})
		return s.Status(), nil
	}

	role, err := s.store.Get(ctx, ports.FieldUserRole)
	if err != nil {
		return s.Status(), fmt.Errorf("read persisted role: %w", err)
	}

	s.setState(AuthStatus{State: StateAuthenticated, Role: role})
	return s.Status(), nil
}

func (s *AuthService) setState(status AuthStatus) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

func (s *AuthService) fail(err error) error {
	s.setState(AuthStatus{State: StateFailed, Err: err})
	return err
}
