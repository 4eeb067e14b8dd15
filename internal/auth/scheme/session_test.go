package scheme

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
)

type fakeSessions struct {
	tokens map[string]domain.User
	err    error
}

func (f fakeSessions) GetUserFromSession(_ context.Context, token string) (domain.User, bool, error) {
	if f.err != nil {
		return domain.User{}, false, f.err
	}
	u, ok := f.tokens[token]
	return u, ok, nil
}

func TestSessionExtractCredential(t *testing.T) {
	s := &Session{}

	got, ok := s.ExtractCredential(nil, []*http.Cookie{
		{Name: "other", Value: "x"},
		{Name: DefaultSessionCookie, Value: "tok"},
	})
	require.True(t, ok)
	require.Equal(t, "tok", got)

	_, ok = s.ExtractCredential(nil, []*http.Cookie{{Name: DefaultSessionCookie, Value: ""}})
	require.False(t, ok)

	_, ok = s.ExtractCredential(nil, nil)
	require.False(t, ok)

	custom := &Session{CookieName: "sid"}
	got, ok = custom.ExtractCredential(nil, []*http.Cookie{{Name: "sid", Value: "abc"}})
	require.True(t, ok)
	require.Equal(t, "abc", got)
}

func TestSessionResolveUser(t *testing.T) {
	s := &Session{Sessions: fakeSessions{tokens: map[string]domain.User{"tok": {ID: "u1"}}}}

	u, err := s.ResolveUser(context.Background(), "tok")
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)

	_, err = s.ResolveUser(context.Background(), "stale")
	require.ErrorIs(t, err, ErrRejected)

	fault := errors.New("db down")
	s.Sessions = fakeSessions{err: fault}
	_, err = s.ResolveUser(context.Background(), "tok")
	require.ErrorIs(t, err, fault)
}

func TestNoAuth(t *testing.T) {
	var n NoAuth
	require.Equal(t, KindNone, n.Name())
	require.False(t, n.RequiresAuth("/anything"))

	h := http.Header{}
	h.Set("Authorization", "Basic YWxpY2U6c2VjcmV0")
	_, ok := n.ExtractCredential(h, []*http.Cookie{{Name: DefaultSessionCookie, Value: "x"}})
	require.False(t, ok)

	_, err := n.ResolveUser(context.Background(), "anything")
	require.ErrorIs(t, err, ErrRejected)
}

func TestValidateKind(t *testing.T) {
	for _, k := range []string{KindNone, KindBasic, KindSession} {
		require.NoError(t, ValidateKind(k))
	}
	require.Error(t, ValidateKind("jwt"))
}

var (
	_ Scheme = NoAuth{}
	_ Scheme = (*Basic)(nil)
	_ Scheme = (*Session)(nil)
)
