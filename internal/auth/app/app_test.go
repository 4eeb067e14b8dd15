package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, authType string) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		Driver:              DriverSQLite,
		DatabaseFile:        filepath.Join(dir, "doorman.db"),
		PepperFile:          filepath.Join(dir, "secrets", "pepper"),
		AuthType:            authType,
		ExcludedPaths:       SplitList(DefaultExcludedPaths),
		PasswordHasher:      HasherBcrypt,
		TokenFormat:         TokensUUID,
		SessionCookie:       "sid",
		Env:                 "test",
		Port:                8080,
		ShutdownGracePeriod: time.Second,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewWiresSessionScheme(t *testing.T) {
	cfg := testConfig(t, "session")

	a, err := New(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Shutdown() })

	assert.Equal(t, "session", a.scheme.Name())
	_, err = os.Stat(cfg.PepperFile)
	require.NoError(t, err, "pepper is generated on first start")

	h := a.Handler()
	form := url.Values{"email": {"bob@example.com"}, "password": {"pw"}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var sid *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "sid" {
			sid = c
		}
	}
	require.NotNil(t, sid, "configured cookie name is used")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.AddCookie(sid)
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bob@example.com")
}

func TestNewSelectsSchemes(t *testing.T) {
	for _, kind := range []string{"none", "basic", "session"} {
		t.Run(kind, func(t *testing.T) {
			a, err := New(context.Background(), testConfig(t, kind), discardLogger())
			require.NoError(t, err)
			t.Cleanup(func() { _ = a.Shutdown() })
			assert.Equal(t, kind, a.scheme.Name())
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t, "jwt")
	_, err := New(context.Background(), cfg, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_TYPE")
}

func TestMigrateIsIdempotent(t *testing.T) {
	cfg := testConfig(t, "none")
	require.NoError(t, Migrate(context.Background(), cfg))
	require.NoError(t, Migrate(context.Background(), cfg))
}
