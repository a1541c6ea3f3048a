package models

import "time"

// User represents an application account stored in the user table. The
// password column always holds a bcrypt hash, never plaintext.
type User struct {
	ID        int64     `db:"id" json:"id"`
	Username  string    `db:"user" json:"user"`
	Role      string    `db:"role" json:"role"`
	Password  string    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
