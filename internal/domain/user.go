package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents an account holder. DisplayName is optional.
type User struct {
	ID           uuid.UUID
	Email        string
	DisplayName  *string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Greeting returns the name used to address the user in emails.
func (u User) Greeting() string {
	return GreetingName(u.DisplayName)
}

// GreetingName falls back to "there" when no display name is set.
func GreetingName(displayName *string) string {
	if displayName == nil || strings.TrimSpace(*displayName) == "" {
		return "there"
	}
	return strings.TrimSpace(*displayName)
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
