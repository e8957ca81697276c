package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is immutable once created. IsUserMessage discriminates
// user-authored turns from assistant turns.
type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	UserId        uuid.UUID
	Content       string
	IsUserMessage bool
	CreatedAt     time.Time
}
