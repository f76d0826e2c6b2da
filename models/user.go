package models

import "time"

// Account represents a player account known to the server.
// Password material never leaves the persistence layer.
type Account struct {
	// ID is the server-side identifier of the account (UUID).
	ID string `json:"id"`

	// Username is the unique public name of the player. It doubles as the
	// owner of sealed records and progression entries.
	Username string `json:"username"`

	// Email is the unique contact address used as an alternative login.
	Email string `json:"email"`

	// PasswordHash is the PBKDF2 digest of the account password.
	PasswordHash []byte `json:"-"`

	// PasswordSalt is the random salt the PasswordHash was derived with.
	PasswordSalt []byte `json:"-"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"created_at"`

	// Progression is the last signed progression summary, if any.
	Progression *Progression `json:"progression,omitempty"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// Credentials is the payload of register and login requests.
// Login accepts either Username or Email.
type Credentials struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// LoginField names the account column a login is resolved against.
type LoginField string

const (
	LoginByUsername LoginField = "username"
	LoginByEmail    LoginField = "email"
)

// Identifier returns the value used to look the account up on login.
func (c Credentials) Identifier() string {
	_, value := c.Lookup()
	return value
}

// Lookup returns the single column and value a login is resolved against.
// Username takes precedence when both are set.
func (c Credentials) Lookup() (LoginField, string) {
	if c.Username != "" {
		return LoginByUsername, c.Username
	}
	return LoginByEmail, c.Email
}
