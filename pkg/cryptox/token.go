package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// Token size constants (in bytes before encoding).
const (
	// TokenSize128 provides 128 bits of entropy (22 chars base64url).
	TokenSize128 = 16
	// TokenSize256 provides 256 bits of entropy (43 chars base64url).
	TokenSize256 = 32
)

// GenerateToken creates a cryptographically secure random token of the specified byte length.
// The token is returned as a base64url-encoded string (URL-safe, no padding).
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// RandomTokens issues base64url tokens of Size random bytes. A zero Size
// means TokenSize256.
type RandomTokens struct {
	Size int
}

func (g RandomTokens) NewToken() (string, error) {
	size := g.Size
	if size == 0 {
		size = TokenSize256
	}
	return GenerateToken(size)
}

// UUIDTokens issues random (version 4) UUID strings.
type UUIDTokens struct{}

func (UUIDTokens) NewToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate uuid token: %w", err)
	}
	return id.String(), nil
}
