package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
	"github.com/aussiebroadwan/doorman/internal/auth/metrics"
	"github.com/aussiebroadwan/doorman/internal/auth/store"
	"github.com/aussiebroadwan/doorman/pkg/slogx"
)

// dummyPassword is hashed once per service and verified against when an
// identity is unknown, so lookups cost the same whether or not the user exists.
const dummyPassword = "doorman-timing-equaliser"

// AuthService owns registration, password checks and the session lifecycle.
// A user is logged in exactly while their SessionID is set.
type AuthService struct {
	Store   store.Store
	Hasher  PasswordHasher
	Tokens  TokenGenerator
	Metrics *metrics.Metrics

	dummyOnce sync.Once
	dummyHash string
	dummyErr  error
}

// RegisterUser creates a user with a freshly salted hash of password.
// ErrUserAlreadyExists is returned when the email is taken, including when
// a concurrent registration wins the race to insert.
func (s *AuthService) RegisterUser(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	_, err := s.Store.Users().FindUser(ctx, store.ByEmail(email))
	switch {
	case err == nil, errors.Is(err, store.ErrAmbiguous):
		return domain.User{}, ErrUserAlreadyExists
	case !errors.Is(err, store.ErrNotFound):
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.Store.Users().AddUser(ctx, email, hash)
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.User{}, ErrUserAlreadyExists
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("add user: %w", err)
	}

	log.Info("user registered", slog.String("user_id", u.ID))
	return u, nil
}

// ValidLogin reports whether password matches the stored hash for email. An
// unknown email is false, not an error.
func (s *AuthService) ValidLogin(ctx context.Context, email, password string) (bool, error) {
	_, ok, err := s.Authenticate(ctx, email, password)
	return ok, err
}

// Authenticate returns the user owning email when password verifies against
// their stored hash. Unknown and ambiguous emails and wrong passwords all
// come back as ok=false; only store and hasher faults are errors.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (domain.User, bool, error) {
	u, err := s.Store.Users().FindUser(ctx, store.ByEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrAmbiguous) {
			s.burnVerify(password)
			s.Metrics.Login("failure")
			return domain.User{}, false, nil
		}
		return domain.User{}, false, fmt.Errorf("lookup user: %w", err)
	}

	ok, err := s.Hasher.Verify(password, u.PasswordHash)
	if err != nil {
		return domain.User{}, false, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		s.Metrics.Login("failure")
		return domain.User{}, false, nil
	}

	s.Metrics.Login("success")
	return u, true, nil
}

// CreateSession issues a new session token for email, replacing any token
// the user already held. ok is false when no such user exists.
func (s *AuthService) CreateSession(ctx context.Context, email string) (token string, ok bool, err error) {
	u, err := s.Store.Users().FindUser(ctx, store.ByEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrAmbiguous) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("lookup user: %w", err)
	}

	token, err = s.Tokens.NewToken()
	if err != nil {
		return "", false, fmt.Errorf("generate session token: %w", err)
	}

	if err := s.Store.Users().UpdateUser(ctx, u.ID, store.UserUpdate{SessionID: store.SetToken(token)}); err != nil {
		return "", false, fmt.Errorf("store session: %w", err)
	}

	s.Metrics.Session("created")
	slogx.FromContext(ctx).Info("session created", slog.String("user_id", u.ID))
	return token, true, nil
}

// GetUserFromSession resolves a session token to its owner. ok is false for
// an empty token or one that was never issued, was replaced or was destroyed.
func (s *AuthService) GetUserFromSession(ctx context.Context, token string) (domain.User, bool, error) {
	if token == "" {
		return domain.User{}, false, nil
	}

	u, err := s.Store.Users().FindUser(ctx, store.BySessionID(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrAmbiguous) {
			s.Metrics.Session("missed")
			return domain.User{}, false, nil
		}
		return domain.User{}, false, fmt.Errorf("lookup session: %w", err)
	}

	s.Metrics.Session("resolved")
	return u, true, nil
}

// DestroySession logs the user out. It is a no-op for a user without a
// session or an unknown id.
func (s *AuthService) DestroySession(ctx context.Context, userID string) error {
	err := s.Store.Users().UpdateUser(ctx, userID, store.UserUpdate{
		SessionID:    store.ClearToken(),
		IfHasSession: true,
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.Metrics.Session("destroyed")
	slogx.FromContext(ctx).Info("session destroyed", slog.String("user_id", userID))
	return nil
}

// burnVerify runs a verification that always fails so that a miss on the
// lookup spends the same hashing time as a wrong password.
func (s *AuthService) burnVerify(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, s.dummyErr = s.Hasher.Hash(dummyPassword)
	})
	if s.dummyErr == nil {
		_, _ = s.Hasher.Verify(password, s.dummyHash)
	}
}
