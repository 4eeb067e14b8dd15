package httpx

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/doorman/internal/auth/scheme"
	"github.com/aussiebroadwan/doorman/pkg/slogx"
)

// DecisionRecorder counts authentication decisions. *metrics.Metrics
// satisfies it.
type DecisionRecorder interface {
	SchemeDecision(scheme, outcome string)
}

// AuthnMiddleware gates requests behind s. Paths the scheme does not require
// auth for pass straight through. Otherwise a missing credential is 401, a
// rejected one is 403, and the resolved user is attached to the context.
func AuthnMiddleware(s scheme.Scheme, rec DecisionRecorder) Middleware {
	record := func(outcome string) {
		if rec != nil {
			rec.SchemeDecision(s.Name(), outcome)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !s.RequiresAuth(r.URL.Path) {
				record("skipped")
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			log := slogx.FromContext(ctx)

			cred, ok := s.ExtractCredential(r.Header, r.Cookies())
			if !ok {
				record("missing")
				if s.Name() == scheme.KindBasic {
					w.Header().Set("WWW-Authenticate", `Basic realm="doorman"`)
				}
				WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			u, err := s.ResolveUser(ctx, cred)
			switch {
			case errors.Is(err, scheme.ErrRejected):
				record("rejected")
				WriteMessage(w, http.StatusForbidden, "Forbidden")
				return
			case err != nil:
				record("error")
				log.Error("resolve user failed", "scheme", s.Name(), "err", err)
				WriteMessage(w, http.StatusInternalServerError, "internal error")
				return
			}

			record("accepted")
			ctx = WithUser(ctx, u)
			ctx = slogx.WithAttrs(ctx, "user_id", u.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
