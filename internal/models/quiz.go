package models

import "time"

// QuizDB represents a quiz record in the database.
// UserID references the owning user and never changes after creation.
type QuizDB struct {
	ID          int64     `json:"id" db:"id"` // Primary key
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	UserID      int64     `json:"userId" db:"user_id"` // Owner, FK to users.id
	CreatedAt   time.Time `json:"-" db:"created_at"`
	UpdatedAt   time.Time `json:"-" db:"updated_at"`
}
