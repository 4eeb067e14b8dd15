package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
	"github.com/aussiebroadwan/doorman/internal/auth/store"
	"github.com/aussiebroadwan/doorman/pkg/idx"
)

const userColumns = `id, email, password_hash, session_id, reset_token, created_at, updated_at`

type usersRepo struct {
	pool poolIface
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.SessionID, &u.ResetToken, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// FindUser reads at most two rows so an ambiguous match is detected without
// scanning the whole table.
func (r *usersRepo) FindUser(ctx context.Context, by store.Lookup) (domain.User, error) {
	column, err := by.Column()
	if err != nil {
		return domain.User{}, oops.Code("USER_LOOKUP_INVALID").Wrap(err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE `+column+` = $1 LIMIT 2`, by.Value)
	if err != nil {
		return domain.User{}, oops.Code("USER_QUERY_FAILED").With("field", column).Wrap(err)
	}
	defer rows.Close()

	var found []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return domain.User{}, oops.Code("USER_QUERY_FAILED").With("operation", "scan user row").Wrap(err)
		}
		found = append(found, u)
	}
	if err := rows.Err(); err != nil {
		return domain.User{}, oops.Code("USER_QUERY_FAILED").With("operation", "iterate users").Wrap(err)
	}

	switch len(found) {
	case 0:
		return domain.User{}, oops.Code("USER_NOT_FOUND").With("field", column).Wrap(store.ErrNotFound)
	case 1:
		return found[0], nil
	default:
		return domain.User{}, oops.Code("USER_AMBIGUOUS").With("field", column).Wrap(store.ErrAmbiguous)
	}
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, oops.Code("USER_NOT_FOUND").With("id", id).Wrap(store.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, oops.Code("USER_QUERY_FAILED").With("id", id).Wrap(err)
	}
	return u, nil
}

func (r *usersRepo) AddUser(ctx context.Context, email, passwordHash string) (domain.User, error) {
	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.User{}, oops.Code("USER_EXISTS").Wrap(store.ErrAlreadyExists)
	}
	if err != nil {
		return domain.User{}, oops.Code("USER_CREATE_FAILED").With("operation", "insert user").Wrap(err)
	}
	return u, nil
}

func (r *usersRepo) UpdateUser(ctx context.Context, id string, upd store.UserUpdate) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if upd.PasswordHash != nil {
		sets = append(sets, "password_hash = "+arg(*upd.PasswordHash))
	}
	if upd.SessionID.Changed() {
		sets = append(sets, "session_id = "+arg(upd.SessionID.Value()))
	}
	if upd.ResetToken.Changed() {
		sets = append(sets, "reset_token = "+arg(upd.ResetToken.Value()))
	}
	sets = append(sets, "updated_at = "+arg(time.Now().UTC()))
	where := "id = " + arg(id)
	if upd.IfResetToken != nil {
		where += " AND reset_token = " + arg(*upd.IfResetToken)
	}
	if upd.IfHasSession {
		where += " AND session_id IS NOT NULL"
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET `+strings.Join(sets, ", ")+` WHERE `+where, args...)
	if isUniqueViolation(err) {
		return oops.Code("USER_TOKEN_CONFLICT").With("id", id).Wrap(store.ErrAlreadyExists)
	}
	if err != nil {
		return oops.Code("USER_UPDATE_FAILED").With("id", id).Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return oops.Code("USER_NOT_FOUND").With("id", id).Wrap(store.ErrNotFound)
	}
	return nil
}
