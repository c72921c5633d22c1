package application

import (
	"context"
	"errors"
	"sync"

	"github.com/gwagwa/travelgo-cli/internal/domain"
	"github.com/gwagwa/travelgo-cli/internal/ports"
)

// fakeAPI implements ports.APIClient with per-method function hooks; a call
// without a hook fails loudly so tests notice unexpected network traffic.
type fakeAPI struct {
	loginFn    func(ctx context.Context, email, password string) (domain.AuthResult, error)
	registerFn func(ctx context.Context, name, email, password, role string) (domain.AuthResult, error)
	profileFn  func(ctx context.Context) (domain.ProfileDetails, error)
	updateFn   func(ctx context.Context, update domain.ProfileUpdate) (domain.ProfileDetails, error)
	availFn    func(ctx context.Context) ([]domain.TravelPackage, error)
	allFn      func(ctx context.Context) ([]domain.TravelPackage, error)
	byIDFn     func(ctx context.Context, id string) (domain.TravelPackage, error)
	createFn   func(ctx context.Context, draft domain.PackageDraft) (domain.TravelPackage, error)
	usersFn    func(ctx context.Context) ([]domain.UserProfile, error)

	calls []string
}

var _ ports.APIClient = (*fakeAPI)(nil)

var errUnexpectedCall = errors.New("unexpected api call")

func (f *fakeAPI) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	f.calls = append(f.calls, "Login")
	if f.loginFn == nil {
		return domain.AuthResult{}, errUnexpectedCall
	}
	return f.loginFn(ctx, email, password)
}

func (f *fakeAPI) Register(ctx context.Context, name, email, password, role string) (domain.AuthResult, error) {
	f.calls = append(f.calls, "Register")
	if f.registerFn == nil {
		return domain.AuthResult{}, errUnexpectedCall
	}
	return f.registerFn(ctx, name, email, password, role)
}

func (f *fakeAPI) Profile(ctx context.Context) (domain.ProfileDetails, error) {
	f.calls = append(f.calls, "Profile")
	if f.profileFn == nil {
		return domain.ProfileDetails{}, errUnexpectedCall
	}
	return f.profileFn(ctx)
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.ProfileDetails, error) {
	f.calls = append(f.calls, "UpdateProfile")
	if f.updateFn == nil {
		return domain.ProfileDetails{}, errUnexpectedCall
	}
	return f.updateFn(ctx, update)
}

func (f *fakeAPI) AvailablePackages(ctx context.Context) ([]domain.TravelPackage, error) {
	f.calls = append(f.calls, "AvailablePackages")
	if f.availFn == nil {
		return nil, errUnexpectedCall
	}
	return f.availFn(ctx)
}

func (f *fakeAPI) AllPackages(ctx context.Context) ([]domain.TravelPackage, error) {
	f.calls = append(f.calls, "AllPackages")
	if f.allFn == nil {
		return nil, errUnexpectedCall
	}
	return f.allFn(ctx)
}

func (f *fakeAPI) PackageByID(ctx context.Context, id string) (domain.TravelPackage, error) {
	f.calls = append(f.calls, "PackageByID")
	if f.byIDFn == nil {
		return domain.TravelPackage{}, errUnexpectedCall
	}
	return f.byIDFn(ctx, id)
}

func (f *fakeAPI) CreatePackage(ctx context.Context, draft domain.PackageDraft) (domain.TravelPackage, error) {
	f.calls = append(f.calls, "CreatePackage")
	if f.createFn == nil {
		return domain.TravelPackage{}, errUnexpectedCall
	}
	return f.createFn(ctx, draft)
}

func (f *fakeAPI) Users(ctx context.Context) ([]domain.UserProfile, error) {
	f.calls = append(f.calls, "Users")
	if f.usersFn == nil {
		return nil, errUnexpectedCall
	}
	return f.usersFn(ctx)
}

// fakeStore is an in-memory CredentialStore with the same Subscribe contract
// as the file-backed one: replay on subscribe, conflate to the latest value.
type fakeStore struct {
	mu     sync.Mutex
	values map[ports.SessionField]string
	subs   map[ports.SessionField][]chan string

	saveErrOn ports.SessionField // fail Save for this field when set
	saveErr   error
	getErr    error
	clearErr  error
}

var _ ports.CredentialStore = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		values: make(map[ports.SessionField]string),
		subs:   make(map[ports.SessionField][]chan string),
	}
}

func (s *fakeStore) Save(_ context.Context, field ports.SessionField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil && field == s.saveErrOn {
		return s.saveErr
	}

	s.values[field] = value
	s.notify(field, value)
	return nil
}

func (s *fakeStore) Get(_ context.Context, field ports.SessionField) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.getErr != nil {
		return "", s.getErr
	}
	return s.values[field], nil
}

func (s *fakeStore) Subscribe(field ports.SessionField) (<-chan string, ports.CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan string, 1)
	ch <- s.values[field]
	s.subs[field] = append(s.subs[field], ch)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			subs := s.subs[field]
			for i, sub := range subs {
				if sub == ch {
					s.subs[field] = append(subs[:i], subs[i+1:]...)
					break
				}
			}
			close(ch)
		})
	}

	return ch, cancel
}

func (s *fakeStore) ClearAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clearErr != nil {
		return s.clearErr
	}

	s.values = make(map[ports.SessionField]string)
	for _, field := range ports.SessionFields {
		s.notify(field, "")
	}
	return nil
}

// notify is called with mu held.
func (s *fakeStore) notify(field ports.SessionField, value string) {
	for _, ch := range s.subs[field] {
		select {
		case <-ch:
		default:
		}
		ch <- value
	}
}

func (s *fakeStore) snapshot() map[ports.SessionField]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[ports.SessionField]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
