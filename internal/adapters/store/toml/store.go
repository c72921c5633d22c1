package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/gwagwa/travelgo-cli/internal/ports"
)

const (
	configName        = "config"
	configType        = "toml"
	sessionPathKey    = "session.path"
	sessionFileMode   = 0o600
	sessionDirMode    = 0o700
	sessionConfigDir  = ".travelgo"
	sessionConfigFile = "session.toml"
	tempFilePattern   = ".session-*.toml.tmp"
)

// Store persists the four session fields in a single TOML file. Writes go
// through a temp file and rename so readers never observe a torn session.
type Store struct {
	sessionPath string
	mu          *sync.RWMutex

	subMu     sync.Mutex
	subs      map[ports.SessionField]map[int]chan string
	nextSubID int
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.CredentialStore = (*Store)(nil)

func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, sessionConfigDir, sessionConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, sessionConfigDir))
	cfg.SetDefault(sessionPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	sessionPath := cfg.GetString(sessionPathKey)
	if sessionPath == "" {
		return nil, errors.New("session path is empty")
	}
	sessionPath, err = normalizeSessionPath(sessionPath)
	if err != nil {
		return nil, err
	}

	return &Store{
		sessionPath: sessionPath,
		mu:          lockForPath(sessionPath),
		subs:        map[ports.SessionField]map[int]chan string{},
	}, nil
}

func (s *Store) Save(ctx context.Context, field ports.SessionField, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	file, err := s.readSchema()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	file.applyDefaults()

	if err := setField(&file.Session, field, value); err != nil {
		s.mu.Unlock()
		return err
	}

	if err := s.writeSchema(file); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notify(field, value)
	return nil
}

func (s *Store) Get(ctx context.Context, field ports.SessionField) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return "", err
	}

	return getField(file.Session, field)
}

// Subscribe replays the current value of field and then emits every
// subsequent write until cancel is called. Channels are conflating: a slow
// consumer sees the latest value, not every intermediate one.
func (s *Store) Subscribe(field ports.SessionField) (<-chan string, ports.CancelFunc) {
	current, err := s.Get(context.Background(), field)
	if err != nil {
		current = ""
	}

	ch := make(chan string, 1)
	ch <- current

	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	if s.subs[field] == nil {
		s.subs[field] = map[int]chan string{}
	}
	s.subs[field][id] = ch
	s.subMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs[field], id)
			close(ch)
			s.subMu.Unlock()
		})
	}

	return ch, cancel
}

func (s *Store) ClearAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	file, err := s.readSchema()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	file.applyDefaults()
	file.Session = sessionSchema{}

	if err := s.writeSchema(file); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	for _, field := range ports.SessionFields {
		s.notify(field, "")
	}
	return nil
}

func (s *Store) notify(field ports.SessionField, value string) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subs[field] {
		select {
		case <-ch:
		default:
		}
		ch <- value
	}
}

func (s *Store) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.sessionPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read session file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode session file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}

	return file, nil
}

func (s *Store) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.sessionPath), sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.sessionPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}

	if err := tempFile.Chmod(sessionFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp session file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tempName, s.sessionPath); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(s.sessionPath, sessionFileMode); err != nil {
		return fmt.Errorf("chmod session file: %w", err)
	}

	return nil
}

func setField(session *sessionSchema, field ports.SessionField, value string) error {
	switch field {
	case ports.FieldAuthToken:
		session.AuthToken = value
	case ports.FieldUserID:
		session.UserID = value
	case ports.FieldUserEmail:
		session.UserEmail = value
	case ports.FieldUserRole:
		session.UserRole = value
	default:
		return fmt.Errorf("unknown session field %q", field)
	}

	return nil
}

func getField(session sessionSchema, field ports.SessionField) (string, error) {
	switch field {
	case ports.FieldAuthToken:
		return session.AuthToken, nil
	case ports.FieldUserID:
		return session.UserID, nil
	case ports.FieldUserEmail:
		return session.UserEmail, nil
	case ports.FieldUserRole:
		return session.UserRole, nil
	default:
		return "", fmt.Errorf("unknown session field %q", field)
	}
}

func normalizeSessionPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve session path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
