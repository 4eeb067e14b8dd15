package scheme

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
)

const basicPrefix = "Basic "

// Authenticator checks an identity and secret pair. AuthService implements
// it, including the dummy verification for unknown identities.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (domain.User, bool, error)
}

// Basic authenticates requests carrying an HTTP Basic Authorization header
// whose identity is the user's email.
type Basic struct {
	Paths       Paths
	Credentials Authenticator
}

func (b *Basic) Name() string { return KindBasic }

func (b *Basic) RequiresAuth(path string) bool { return b.Paths.RequiresAuth(path) }

func (b *Basic) ExtractCredential(h http.Header, _ []*http.Cookie) (string, bool) {
	return ExtractBase64Credential(h.Get("Authorization"))
}

func (b *Basic) ResolveUser(ctx context.Context, credential string) (domain.User, error) {
	pair, ok := DecodeBase64Credential(credential)
	if !ok {
		return domain.User{}, ErrRejected
	}
	identity, secret, ok := SplitCredentials(pair)
	if !ok {
		return domain.User{}, ErrRejected
	}
	return b.UserFromCredentials(ctx, identity, secret)
}

// UserFromCredentials returns the user whose email is identity when secret
// verifies against their password hash.
func (b *Basic) UserFromCredentials(ctx context.Context, identity, secret string) (domain.User, error) {
	u, ok, err := b.Credentials.Authenticate(ctx, identity, secret)
	if err != nil {
		return domain.User{}, fmt.Errorf("basic auth: %w", err)
	}
	if !ok {
		return domain.User{}, ErrRejected
	}
	return u, nil
}

// ExtractBase64Credential returns whatever follows the literal "Basic " in an
// Authorization header value, byte for byte.
func ExtractBase64Credential(header string) (string, bool) {
	blob, ok := strings.CutPrefix(header, basicPrefix)
	if !ok {
		return "", false
	}
	return blob, true
}

// DecodeBase64Credential decodes a standard base64 blob into text. Invalid
// base64 or bytes that are not valid UTF-8 give ok=false.
func DecodeBase64Credential(blob string) (string, bool) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil || !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// SplitCredentials splits "identity:secret" on the first colon. The secret
// keeps any further colons.
func SplitCredentials(pair string) (identity, secret string, ok bool) {
	identity, secret, ok = strings.Cut(pair, ":")
	if !ok {
		return "", "", false
	}
	return identity, secret, true
}
