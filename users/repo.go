package users

// Field names accepted by Repo.Update. Anything else fails with
// errors.ErrUnknownField.
const (
	FieldEmail          = "email"
	FieldHashedPassword = "hashed_password"
	FieldSessionToken   = "session_token"
	FieldResetToken     = "reset_token"
)

// Filter selects a single user. Exactly the set fields are matched; an
// entirely zero filter is rejected.
type Filter struct {
	ID           string
	Email        string
	SessionToken string
	ResetToken   string
}

// IsZero reports whether no filter field is set.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Fields carries the columns to change on Update, keyed by the Field*
// constants.
type Fields map[string]string

// Repo is the user persistence boundary. Implementations return
// errors.ErrNotFound for lookup misses and errors.ErrUnknownField for
// update keys outside the Field* set.
type Repo interface {
	FindOne(filter Filter) (*User, error)
	Insert(user *User) (*User, error)
	Update(id string, fields Fields) error
}
