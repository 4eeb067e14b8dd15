package authsdk_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/aussiebroadwan/doorman/internal/auth/http"
	"github.com/aussiebroadwan/doorman/internal/auth/scheme"
	"github.com/aussiebroadwan/doorman/internal/auth/service"
	"github.com/aussiebroadwan/doorman/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/doorman/pkg/authsdk"
	"github.com/aussiebroadwan/doorman/pkg/cryptox"
)

const (
	email    = "guillaume@holberton.io"
	password = "b4l0u"
	newPwd   = "t4rt1fl3tt3"
)

// newServer runs the real router over an in-memory store. build picks the
// scheme gating /api/v1.
func newServer(t *testing.T, build func(auth *service.AuthService) scheme.Scheme) *authsdk.SDKClient {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	hasher := cryptox.BcryptHasher{Cost: 4}
	auth := &service.AuthService{Store: st, Hasher: hasher, Tokens: cryptox.RandomTokens{}}
	reset := &service.ResetService{Store: st, Hasher: hasher, Tokens: cryptox.RandomTokens{}}

	r := httpapi.NewRouter(build(auth), "test", st, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.AuthService = auth
	r.ResetService = reset
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return authsdk.NewSDKClient(srv.URL + "/")
}

func sessionScheme(auth *service.AuthService) scheme.Scheme {
	return &scheme.Session{Paths: scheme.MustCompilePaths("/api/v1/status/"), Sessions: auth}
}

func basicScheme(auth *service.AuthService) scheme.Scheme {
	return &scheme.Basic{Paths: scheme.MustCompilePaths("/api/v1/status/"), Credentials: auth}
}

// Mirrors the reference client script: register, fail a login, log in,
// read the profile, log out, reset the password and log in with the new one.
func TestAccountWalkthrough(t *testing.T) {
	client := newServer(t, sessionScheme)
	ctx := t.Context()

	reg, err := client.Register(ctx, email, password)
	require.NoError(t, err)
	assert.Equal(t, &authsdk.EmailMessageResponse{Email: email, Message: "user created"}, reg)

	_, err = client.Register(ctx, email, password)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, authsdk.StatusCode(err))
	assert.Contains(t, err.Error(), "email already registered")

	_, err = client.Login(ctx, email, newPwd)
	assert.True(t, authsdk.IsUnauthorized(err))

	_, err = client.NewSessionFromToken("").Profile(ctx)
	assert.True(t, authsdk.IsForbidden(err))

	session, err := client.Login(ctx, email, password)
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)

	profile, err := session.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, email, profile.Email)

	require.NoError(t, session.Logout(ctx))
	_, err = session.Profile(ctx)
	assert.True(t, authsdk.IsForbidden(err))

	reset, err := client.RequestPasswordReset(ctx, email)
	require.NoError(t, err)
	require.NotEmpty(t, reset.ResetToken)

	upd, err := client.UpdatePassword(ctx, email, reset.ResetToken, newPwd)
	require.NoError(t, err)
	assert.Equal(t, "Password updated", upd.Message)

	_, err = client.UpdatePassword(ctx, email, reset.ResetToken, "again")
	assert.True(t, authsdk.IsForbidden(err))

	_, err = client.Login(ctx, email, newPwd)
	require.NoError(t, err)
}

func TestMeWithSessionCredential(t *testing.T) {
	client := newServer(t, sessionScheme)
	ctx := t.Context()

	_, err := client.Register(ctx, email, password)
	require.NoError(t, err)
	session, err := client.Login(ctx, email, password)
	require.NoError(t, err)

	me, err := client.Me(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, email, me.Email)
	assert.NotEmpty(t, me.ID)

	_, err = client.Me(ctx, nil)
	assert.True(t, authsdk.IsUnauthorized(err))

	_, err = client.Me(ctx, client.NewSessionFromToken("forged"))
	assert.True(t, authsdk.IsForbidden(err))
}

func TestMeWithBasicCredential(t *testing.T) {
	client := newServer(t, basicScheme)
	ctx := t.Context()

	_, err := client.Register(ctx, email, password)
	require.NoError(t, err)

	me, err := client.Me(ctx, authsdk.BasicCredential{Email: email, Password: password})
	require.NoError(t, err)
	assert.Equal(t, email, me.Email)

	_, err = client.Me(ctx, authsdk.BasicCredential{Email: email, Password: "wrong"})
	assert.True(t, authsdk.IsForbidden(err))

	status, err := client.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OK", status.Status)
}

func TestHealth(t *testing.T) {
	client := newServer(t, basicScheme)

	live, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	assert.Equal(t, "ok", ready.Checks.Database)
}

func TestAPIErrorMessage(t *testing.T) {
	err := &authsdk.APIError{StatusCode: http.StatusForbidden}
	assert.Equal(t, "doorman: 403 Forbidden", err.Error())
	assert.Equal(t, 0, authsdk.StatusCode(assert.AnError))
}
