package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrAmbiguous is returned when a lookup that must identify a single user
	// matches more than one row. Callers treat it as a rejection.
	ErrAmbiguous = errors.New("store: ambiguous lookup")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// FindUser returns the single user matching the lookup. It returns
	// ErrNotFound when nothing matches and ErrAmbiguous when more than one
	// row does.
	FindUser(ctx context.Context, by Lookup) (domain.User, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// AddUser inserts a new user with no session or reset token. The id is
	// assigned by the driver (ULID). ErrAlreadyExists is returned when the
	// email is taken.
	AddUser(ctx context.Context, email, passwordHash string) (domain.User, error)

	// UpdateUser applies a partial update in a single statement and bumps
	// updated_at. ErrNotFound is returned when no row has the id.
	UpdateUser(ctx context.Context, id string, upd UserUpdate) error
}
