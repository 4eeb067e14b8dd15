package domain

import "time"

// User is a credential record. SessionID and ResetToken are nil while the
// user is logged out or has no pending reset.
type User struct {
	ID           string
	Email        string
	PasswordHash string // encoded by the configured password hasher
	SessionID    *string
	ResetToken   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasSession reports whether the user currently holds a live session token.
func (u User) HasSession() bool { return u.SessionID != nil }

// HasResetToken reports whether a password reset is pending for the user.
func (u User) HasResetToken() bool { return u.ResetToken != nil }
