//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/doorman/internal/auth/store"
	"github.com/aussiebroadwan/doorman/internal/auth/store/drivers/postgres"
)

func setupPostgres(t *testing.T) *postgres.Store {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("doorman_test"),
		tcpostgres.WithUsername("doorman"),
		tcpostgres.WithPassword("doorman"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := postgres.NewStore(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestPostgresUsersLifecycle(t *testing.T) {
	ctx := context.Background()
	users := setupPostgres(t).Users()

	u, err := users.AddUser(ctx, "alice@example.com", "hash")
	require.NoError(t, err)

	_, err = users.AddUser(ctx, "alice@example.com", "other")
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	require.NoError(t, users.UpdateUser(ctx, u.ID, store.UserUpdate{SessionID: store.SetToken("sess-1")}))

	got, err := users.FindUser(ctx, store.BySessionID("sess-1"))
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	require.NoError(t, users.UpdateUser(ctx, u.ID, store.UserUpdate{SessionID: store.ClearToken()}))
	_, err = users.FindUser(ctx, store.BySessionID("sess-1"))
	require.ErrorIs(t, err, store.ErrNotFound)

	b, err := users.AddUser(ctx, "bob@example.com", "hash")
	require.NoError(t, err)
	require.NoError(t, users.UpdateUser(ctx, u.ID, store.UserUpdate{ResetToken: store.SetToken("reset")}))
	err = users.UpdateUser(ctx, b.ID, store.UserUpdate{ResetToken: store.SetToken("reset")})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	err = users.UpdateUser(ctx, "missing", store.UserUpdate{SessionID: store.ClearToken()})
	require.ErrorIs(t, err, store.ErrNotFound)
}
