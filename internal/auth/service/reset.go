package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/doorman/internal/auth/metrics"
	"github.com/aussiebroadwan/doorman/internal/auth/store"
	"github.com/aussiebroadwan/doorman/pkg/slogx"
)

// ResetService issues single-use password reset tokens and exchanges them
// for a new password. Each user holds at most one live reset token.
type ResetService struct {
	Store   store.Store
	Hasher  PasswordHasher
	Tokens  TokenGenerator
	Metrics *metrics.Metrics
}

// GetResetToken issues a reset token for email. Any previously issued token
// stops working immediately.
func (s *ResetService) GetResetToken(ctx context.Context, email string) (string, error) {
	u, err := s.Store.Users().FindUser(ctx, store.ByEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrAmbiguous) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	token, err := s.Tokens.NewToken()
	if err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}

	if err := s.Store.Users().UpdateUser(ctx, u.ID, store.UserUpdate{ResetToken: store.SetToken(token)}); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}

	s.Metrics.PasswordReset("issued")
	slogx.FromContext(ctx).Info("reset token issued", slog.String("user_id", u.ID))
	return token, nil
}

// UpdatePassword replaces the password of the user holding resetToken and
// clears the token in the same update. Unknown, consumed and superseded
// tokens all yield ErrInvalidResetToken, including a token consumed by a
// concurrent call between lookup and update.
func (s *ResetService) UpdatePassword(ctx context.Context, resetToken, newPassword string) error {
	log := slogx.FromContext(ctx)

	if resetToken == "" {
		s.Metrics.PasswordReset("rejected")
		return ErrInvalidResetToken
	}

	u, err := s.Store.Users().FindUser(ctx, store.ByResetToken(resetToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrAmbiguous) {
			s.Metrics.PasswordReset("rejected")
			return ErrInvalidResetToken
		}
		return fmt.Errorf("lookup reset token: %w", err)
	}

	hash, err := s.Hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	// Guarded on the token so that only one of several concurrent
	// redemptions can consume it.
	err = s.Store.Users().UpdateUser(ctx, u.ID, store.UserUpdate{
		PasswordHash: &hash,
		ResetToken:   store.ClearToken(),
		IfResetToken: &resetToken,
	})
	if errors.Is(err, store.ErrNotFound) {
		s.Metrics.PasswordReset("rejected")
		return ErrInvalidResetToken
	}
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.Metrics.PasswordReset("completed")
	log.Info("password updated", slog.String("user_id", u.ID))
	return nil
}
