package models

import "time"

// UserDB represents a user record in the database.
// The password hash never leaves the service layer.
type UserDB struct {
	ID           int64     `json:"id" db:"id"`             // Primary key
	Username     string    `json:"username" db:"username"` // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
}

// User is the outward-facing view of a user returned by the auth endpoints.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
