package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Title string `json:"title" validate:"required"`
}

type ChatSessionResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type MessageResponse struct {
	Id            uuid.UUID `json:"id"`
	Content       string    `json:"content"`
	IsUserMessage bool      `json:"is_user_message"`
	CreatedAt     time.Time `json:"timestamp"`
}

// ChatReplyResponse carries the assistant's answer to a sent message.
type ChatReplyResponse struct {
	Message string `json:"message"`
}

type SessionTitleResponse struct {
	Title string `json:"title"`
}
