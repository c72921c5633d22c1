package ports

import "context"

// SessionField names one persisted string field of the session.
type SessionField string

const (
	FieldAuthToken SessionField = "auth_token"
	FieldUserID    SessionField = "user_id"
	FieldUserEmail SessionField = "user_email"
	FieldUserRole  SessionField = "user_role"
)

// SessionFields lists every field cleared together on logout.
var SessionFields = []SessionField{FieldAuthToken, FieldUserID, FieldUserEmail, FieldUserRole}

// CancelFunc releases a subscription and closes its channel. Safe to call
// more than once.
type CancelFunc func()

// CredentialStore persists the session fields to durable local storage.
//
// Get returns "" with a nil error for a field that was never set. Subscribe
// replays the current value immediately and then emits on every subsequent
// write to that field until cancelled; new subscribers always start from the
// current value. ClearAll removes every session field atomically from the
// caller's perspective. Storage errors propagate; nothing retries.
type CredentialStore interface {
	Save(ctx context.Context, field SessionField, value string) error
	Get(ctx context.Context, field SessionField) (string, error)
	Subscribe(field SessionField) (<-chan string, CancelFunc)
	ClearAll(ctx context.Context) error
}
