package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByChatSessionID struct {
	ChatSessionID uuid.UUID
}

func (s ByChatSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.ChatSessionID)
}

// UserAuthoredOnly keeps only user-authored turns, excluding assistant ones.
type UserAuthoredOnly struct{}

func (s UserAuthoredOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_user_message = ?", true)
}
