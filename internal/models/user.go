package models

import (
	"time"
)

// User is an authenticated account that owns work sessions
type User struct {
	ID        string    `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}

// AuthState holds the currently signed-in identity. At most one row exists;
// it is what lets separate CLI invocations share the same login.
type AuthState struct {
	ID         uint   `gorm:"primarykey"`
	UserID     string `gorm:"not null"`
	SignedInAt time.Time
}
