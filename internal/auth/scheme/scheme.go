// Package scheme decides whether a request path needs authentication and
// turns request credentials into a user under one of the supported schemes.
package scheme

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
)

// ErrRejected is returned by ResolveUser for any credential that does not
// identify exactly one user. It never says why.
var ErrRejected = errors.New("scheme: credential rejected")

const (
	KindNone    = "none"
	KindBasic   = "basic"
	KindSession = "session"
)

// Scheme is one way of authenticating a request.
type Scheme interface {
	// Name identifies the scheme in logs and metrics.
	Name() string

	// RequiresAuth reports whether requests to path must carry a credential.
	RequiresAuth(path string) bool

	// ExtractCredential pulls the raw credential from the request metadata.
	// Malformed or missing material is reported as ok=false.
	ExtractCredential(h http.Header, cookies []*http.Cookie) (credential string, ok bool)

	// ResolveUser maps a raw credential to its user. Any rejection is
	// ErrRejected; other errors are store or hasher faults.
	ResolveUser(ctx context.Context, credential string) (domain.User, error)
}

// ValidateKind checks that kind names a known scheme.
func ValidateKind(kind string) error {
	switch kind {
	case KindNone, KindBasic, KindSession:
		return nil
	default:
		return fmt.Errorf("unknown auth type %q (want %s, %s or %s)", kind, KindNone, KindBasic, KindSession)
	}
}
