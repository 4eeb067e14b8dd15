package scheme

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
)

// DefaultSessionCookie carries the session token when no cookie name is set.
const DefaultSessionCookie = "session_id"

// SessionResolver looks a session token up. AuthService implements it.
type SessionResolver interface {
	GetUserFromSession(ctx context.Context, token string) (domain.User, bool, error)
}

// Session authenticates requests by the opaque session token in a cookie.
type Session struct {
	Paths      Paths
	CookieName string
	Sessions   SessionResolver
}

func (s *Session) Name() string { return KindSession }

func (s *Session) RequiresAuth(path string) bool { return s.Paths.RequiresAuth(path) }

func (s *Session) cookieName() string {
	if s.CookieName == "" {
		return DefaultSessionCookie
	}
	return s.CookieName
}

func (s *Session) ExtractCredential(_ http.Header, cookies []*http.Cookie) (string, bool) {
	name := s.cookieName()
	for _, c := range cookies {
		if c.Name == name && c.Value != "" {
			return c.Value, true
		}
	}
	return "", false
}

func (s *Session) ResolveUser(ctx context.Context, credential string) (domain.User, error) {
	u, ok, err := s.Sessions.GetUserFromSession(ctx, credential)
	if err != nil {
		return domain.User{}, fmt.Errorf("session auth: %w", err)
	}
	if !ok {
		return domain.User{}, ErrRejected
	}
	return u, nil
}
