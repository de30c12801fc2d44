package domain

import "context"

// UserRepository stores back-office accounts. GetByEmail returns
// (nil, nil) when no account matches.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, user *User) error
	Count(ctx context.Context) (int64, error)
}

// SessionRepository stores sessions keyed by token, typically in
// Redis with a TTL. Get returns (nil, nil) when the token is unknown.
type SessionRepository interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
