package store

import "fmt"

// Field names a unique user column that can be used as a lookup key.
type Field int

const (
	FieldEmail Field = iota + 1
	FieldSessionID
	FieldResetToken
)

func (f Field) String() string {
	switch f {
	case FieldEmail:
		return "email"
	case FieldSessionID:
		return "session_id"
	case FieldResetToken:
		return "reset_token"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Lookup selects a user by exactly one of its unique columns. Build one with
// ByEmail, BySessionID or ByResetToken.
type Lookup struct {
	Field Field
	Value string
}

func ByEmail(email string) Lookup      { return Lookup{Field: FieldEmail, Value: email} }
func BySessionID(token string) Lookup  { return Lookup{Field: FieldSessionID, Value: token} }
func ByResetToken(token string) Lookup { return Lookup{Field: FieldResetToken, Value: token} }

// Column returns the column name for the lookup, or an error when the field
// is not one of the supported keys. Drivers interpolate the result into SQL,
// so only the fixed names above may ever be returned.
func (l Lookup) Column() (string, error) {
	switch l.Field {
	case FieldEmail, FieldSessionID, FieldResetToken:
		return l.Field.String(), nil
	default:
		return "", fmt.Errorf("store: unsupported lookup %s", l.Field)
	}
}

// TokenUpdate describes what to do with a nullable token column. The zero
// value leaves the column untouched.
type TokenUpdate struct {
	set   bool
	value *string
}

// SetToken stores v in the column.
func SetToken(v string) TokenUpdate { return TokenUpdate{set: true, value: &v} }

// ClearToken sets the column to NULL.
func ClearToken() TokenUpdate { return TokenUpdate{set: true} }

// Changed reports whether the column is written at all.
func (t TokenUpdate) Changed() bool { return t.set }

// Value is the new column value, nil meaning NULL. Only meaningful when
// Changed is true.
func (t TokenUpdate) Value() *string { return t.value }

// UserUpdate is a partial update of a user record. Nil/zero fields are left
// as they are.
//
// The If fields guard the update: it only applies when the stored row is
// still in that state, checked in the same statement. A guarded update that
// matches no row fails with ErrNotFound.
type UserUpdate struct {
	PasswordHash *string
	SessionID    TokenUpdate
	ResetToken   TokenUpdate

	IfResetToken *string // reset_token must equal this value
	IfHasSession bool    // session_id must be set
}

// Empty reports whether the update would not change any column.
func (u UserUpdate) Empty() bool {
	return u.PasswordHash == nil && !u.SessionID.Changed() && !u.ResetToken.Changed()
}
