package entity

import (
	"time"
)

// User is the aggregate root for the identity domain.
// Username and Email are stored normalized (trimmed, lowercase).
// PasswordHash holds a bcrypt digest and must never leave the application layer.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicUser is the part of a User that any viewer may see.
type PublicUser struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}
