package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
	"github.com/aussiebroadwan/doorman/internal/auth/store"
	"github.com/aussiebroadwan/doorman/pkg/idx"
)

const userColumns = `id, email, password_hash, session_id, reset_token, created_at, updated_at`

type usersRepo struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u          domain.User
		sessionID  sql.NullString
		resetToken sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &sessionID, &resetToken, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, err
	}
	u.SessionID = mapNullStringPtr(sessionID)
	u.ResetToken = mapNullStringPtr(resetToken)
	return u, nil
}

func (r *usersRepo) FindUser(ctx context.Context, by store.Lookup) (domain.User, error) {
	column, err := by.Column()
	if err != nil {
		return domain.User{}, err
	}

	// Two rows are enough to tell a unique match from an ambiguous one.
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE `+column+` = ? LIMIT 2`, by.Value)
	if err != nil {
		return domain.User{}, err
	}
	defer rows.Close()

	var found []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return domain.User{}, err
		}
		found = append(found, u)
	}
	if err := rows.Err(); err != nil {
		return domain.User{}, err
	}

	switch len(found) {
	case 0:
		return domain.User{}, store.ErrNotFound
	case 1:
		return found[0], nil
	default:
		return domain.User{}, store.ErrAmbiguous
	}
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
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

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapConstraint(err)
	}
	return u, nil
}

func (r *usersRepo) UpdateUser(ctx context.Context, id string, upd store.UserUpdate) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if upd.PasswordHash != nil {
		sets = append(sets, "password_hash = ?")
		args = append(args, *upd.PasswordHash)
	}
	if upd.SessionID.Changed() {
		sets = append(sets, "session_id = ?")
		args = append(args, mapOptionalString(upd.SessionID.Value()))
	}
	if upd.ResetToken.Changed() {
		sets = append(sets, "reset_token = ?")
		args = append(args, mapOptionalString(upd.ResetToken.Value()))
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)

	where := "id = ?"
	if upd.IfResetToken != nil {
		where += " AND reset_token = ?"
		args = append(args, *upd.IfResetToken)
	}
	if upd.IfHasSession {
		where += " AND session_id IS NOT NULL"
	}

	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE users SET %s WHERE %s`, strings.Join(sets, ", "), where), args...)
	if err != nil {
		return mapConstraint(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
