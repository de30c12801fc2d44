package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tokobajusablon/storefront/internal/auth/domain"
	"github.com/tokobajusablon/storefront/pkg/logger"
)

// AuthService authenticates back-office admins with opaque bearer
// tokens backed by the session store.
type AuthService struct {
	users      domain.UserRepository
	sessions   domain.SessionRepository
	sessionTTL time.Duration
}

func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository, sessionTTL time.Duration) *AuthService {
	return &AuthService{users: users, sessions: sessions, sessionTTL: sessionTTL}
}

// Login verifies the credentials and issues a new session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	session := &domain.Session{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	logger.Info(ctx, "admin logged in", "email", user.Email)
	return session, nil
}

// Logout discards the session for token. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves a bearer token to a live session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrInvalidSession
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil || session.IsExpired() {
		return nil, domain.ErrInvalidSession
	}
	return session, nil
}

// EnsureAdmin seeds the initial back-office account when none exists.
// Called once at startup with the configured credentials.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.User{Email: email, PasswordHash: string(hash)}
	if err := s.users.Save(ctx, user); err != nil {
		return err
	}

	logger.Info(ctx, "seeded initial admin account", "email", email)
	return nil
}
