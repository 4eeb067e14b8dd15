package service

import "errors"

var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidResetToken = errors.New("invalid reset token")
)

// PasswordHasher is a one-way salted hash with a verify operation. Hash must
// use a fresh salt on every call. Verify returns (false, nil) for a mismatch
// and an error only when the hash cannot be checked at all.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}

// TokenGenerator produces unguessable opaque tokens for sessions and resets.
type TokenGenerator interface {
	NewToken() (string, error)
}
