package model

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// SessionUser is the reduced projection returned by login and carried on the
// request context for the lifetime of a session.
type SessionUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) SessionUser() SessionUser {
	return SessionUser{ID: u.ID, Email: u.Email, Role: u.Role}
}
