package httpx

import (
	"context"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
)

type ctxKey string

const CtxKeyUser ctxKey = "user"

// WithUser stores the authenticated user in ctx.
func WithUser(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, CtxKeyUser, u)
}

// UserFromContext returns the user attached by Authn, if any.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(CtxKeyUser).(domain.User)
	return u, ok
}
