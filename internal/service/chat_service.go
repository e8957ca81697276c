package service

import (
	"context"

	"sakhi-support-be/internal/dto"
	"sakhi-support-be/internal/entity"
	"sakhi-support-be/internal/pkg/logger"
	"sakhi-support-be/internal/pkg/serverutils"
	"sakhi-support-be/internal/repository/specification"
	"sakhi-support-be/internal/repository/unitofwork"
	"sakhi-support-be/pkg/chatbot"

	"github.com/google/uuid"
)

// contextWindow is how many persisted messages are pulled back as model
// context when answering a new message.
const contextWindow = 20

type IChatService interface {
	CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.ChatSessionResponse, error)
	GetSessions(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error)
	GetMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.MessageResponse, error)
	SendMessage(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.SendMessageRequest) (*dto.ChatReplyResponse, error)
	GenerateTitle(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionTitleResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	assistant  chatbot.Assistant
	logger     logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	assistant chatbot.Assistant,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		assistant:  assistant,
		logger:     log,
	}
}

// ownedSession loads a session and enforces row-level ownership. A session
// belonging to someone else is indistinguishable from a missing one.
func (s *chatService) ownedSession(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("Chat session not found")
	}
	return session, nil
}

func toSessionResponse(session *entity.ChatSession) *dto.ChatSessionResponse {
	return &dto.ChatSessionResponse{
		Id:        session.Id,
		Title:     session.Title,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}

func (s *chatService) CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := entity.ChatSession{
		Id:     uuid.New(),
		UserId: userId,
		Title:  req.Title,
	}
	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	return toSessionResponse(&session), nil
}

func (s *chatService) GetSessions(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ChatSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, toSessionResponse(session))
	}
	return responses, nil
}

func (s *chatService) GetMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedSession(ctx, uow, userId, sessionId); err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, &dto.MessageResponse{
			Id:            message.Id,
			Content:       message.Content,
			IsUserMessage: message.IsUserMessage,
			CreatedAt:     message.CreatedAt,
		})
	}
	return responses, nil
}

func (s *chatService) SendMessage(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.SendMessageRequest) (*dto.ChatReplyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.ownedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	userMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sessionId,
		UserId:        userId,
		Content:       req.Content,
		IsUserMessage: true,
	}
	if err := uow.ChatMessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}

	// Last N messages in chronological order, the just-persisted one included.
	recent, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: contextWindow},
	)
	if err != nil {
		return nil, err
	}

	history := make([]*chatbot.ChatHistory, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		m := recent[i]
		// The new message is appended by the assistant itself.
		if m.Id == userMessage.Id {
			continue
		}
		role := chatbot.ChatMessageRoleModel
		if m.IsUserMessage {
			role = chatbot.ChatMessageRoleUser
		}
		history = append(history, &chatbot.ChatHistory{Chat: m.Content, Role: role})
	}

	reply := s.assistant.GenerateReply(ctx, req.Content, history)

	assistantMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sessionId,
		UserId:        userId,
		Content:       reply,
		IsUserMessage: false,
	}
	// The user's message is already committed at this point; a failure below
	// leaves it unanswered, which the caller learns about through the 500.
	if err := uow.ChatMessageRepository().Create(ctx, &assistantMessage); err != nil {
		s.logger.Error("ChatService", "Failed to persist assistant reply", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		s.logger.Error("ChatService", "Failed to touch session timestamp", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	return &dto.ChatReplyResponse{Message: reply}, nil
}

func (s *chatService) GenerateTitle(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionTitleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.ownedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	firstMessage, err := uow.ChatMessageRepository().FindOne(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.UserAuthoredOnly{},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	if firstMessage == nil {
		return nil, serverutils.NewValidationError("No messages found in session")
	}

	title := s.assistant.GenerateTitle(ctx, firstMessage.Content)

	session.Title = title
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return &dto.SessionTitleResponse{Title: title}, nil
}

func (s *chatService) DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedSession(ctx, uow, userId, sessionId); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := uow.ChatMessageRepository().DeleteByChatSessionId(ctx, sessionId); err != nil {
		_ = uow.Rollback()
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, sessionId); err != nil {
		_ = uow.Rollback()
		return err
	}

	return uow.Commit()
}
