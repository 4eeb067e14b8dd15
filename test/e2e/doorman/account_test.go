//go:build e2e

package doorman_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/doorman/pkg/authsdk"
)

// TestAccountLifecycle runs register, login, profile, logout and password
// reset against a running container.
func TestAccountLifecycle(t *testing.T) {
	client := setupDoorman(t, "session", map[string]string{"AUTH_TOKEN_FORMAT": "uuid"})
	ctx := t.Context()

	_, err := client.Register(ctx, userEmail, userPass)
	require.NoError(t, err)

	_, err = client.Login(ctx, userEmail, userNewPass)
	require.True(t, authsdk.IsUnauthorized(err), "wrong password must be 401, got %v", err)

	_, err = client.NewSessionFromToken("nope").Profile(ctx)
	require.True(t, authsdk.IsForbidden(err))

	session, err := client.Login(ctx, userEmail, userPass)
	require.NoError(t, err)

	profile, err := session.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, userEmail, profile.Email)

	require.NoError(t, session.Logout(ctx))

	reset, err := client.RequestPasswordReset(ctx, userEmail)
	require.NoError(t, err)
	require.Len(t, reset.ResetToken, 36, "uuid token format")

	_, err = client.UpdatePassword(ctx, userEmail, reset.ResetToken, userNewPass)
	require.NoError(t, err)

	_, err = client.Login(ctx, userEmail, userNewPass)
	require.NoError(t, err)
}

// A session token works from any client that presents it.
func TestSessionTokenIsPortable(t *testing.T) {
	client := setupDoorman(t, "session", nil)
	session := registerAndLogin(t, client)

	other := authsdk.NewSDKClient(client.BaseURL)
	me, err := other.Me(t.Context(), other.NewSessionFromToken(session.Token))
	require.NoError(t, err)
	require.Equal(t, userEmail, me.Email)
}
