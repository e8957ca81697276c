package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	IsActive     bool
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EmailVerification is written at registration. No router reads it back yet;
// the confirm flow is still frontend-pending.
type EmailVerification struct {
	Id        uuid.UUID
	Email     string
	Token     string
	ExpiresAt time.Time
	IsUsed    bool
	CreatedAt time.Time
}
