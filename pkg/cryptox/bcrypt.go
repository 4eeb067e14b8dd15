package cryptox

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords with bcrypt. A zero Cost uses
// bcrypt.DefaultCost.
//
// The password is first reduced to HMAC-SHA256 keyed by the pepper and
// base64 encoded (44 bytes), which keeps any password and pepper length
// under bcrypt's 72-byte input limit.
type BcryptHasher struct {
	Cost   int
	Pepper string
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	out, err := bcrypt.GenerateFromPassword(h.prehash(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(out), nil
}

// Verify reports whether password matches the bcrypt hash. A mismatch is
// (false, nil); an unparseable hash is ErrMalformedHash.
func (h BcryptHasher) Verify(password, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), h.prehash(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}

func (h BcryptHasher) prehash(password string) []byte {
	mac := hmac.New(sha256.New, []byte(h.Pepper))
	mac.Write([]byte(password))
	sum := mac.Sum(nil)

	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum)
	return out
}
