package models

import (
	"strings"
	"time"
)

const (
	UserStatusActive = "active"
	UserStatusAdmin  = "admin"
)

// User represents a registered account
type User struct {
	ID           int64     `db:"user_id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password"`
	Status       string    `db:"status"`
	JoinDate     time.Time `db:"join_date"`
}

// NormalizedStatus returns the status trimmed and lower-cased
func (u *User) NormalizedStatus() string {
	return strings.ToLower(strings.TrimSpace(u.Status))
}

// IsAdmin returns true if the user has the admin status
func (u *User) IsAdmin() bool {
	return u.NormalizedStatus() == UserStatusAdmin
}
