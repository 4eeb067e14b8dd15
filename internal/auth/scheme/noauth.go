package scheme

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
)

// NoAuth is the scheme for deployments without authentication. It never
// requires a credential and never resolves a user.
type NoAuth struct{}

func (NoAuth) Name() string { return KindNone }

func (NoAuth) RequiresAuth(string) bool { return false }

func (NoAuth) ExtractCredential(http.Header, []*http.Cookie) (string, bool) { return "", false }

func (NoAuth) ResolveUser(context.Context, string) (domain.User, error) {
	return domain.User{}, ErrRejected
}
