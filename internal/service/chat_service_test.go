package service

import (
	"context"
	"errors"
	"testing"

	"sakhi-support-be/internal/dto"
	"sakhi-support-be/internal/entity"
	"sakhi-support-be/internal/repository/contract"
	"sakhi-support-be/internal/repository/specification"
	"sakhi-support-be/internal/repository/unitofwork"
	"sakhi-support-be/pkg/chatbot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

type cannedAssistant struct {
	reply string
	title string
}

func (a cannedAssistant) GenerateReply(context.Context, string, []*chatbot.ChatHistory) string {
	return a.reply
}

func (a cannedAssistant) GenerateTitle(context.Context, string) string {
	return a.title
}

// fakeMessageRepo counts Create calls and can fail the nth one.
type fakeMessageRepo struct {
	createCalls int
	failOnCall  int
	created     []*entity.ChatMessage
}

func (r *fakeMessageRepo) Create(_ context.Context, message *entity.ChatMessage) error {
	r.createCalls++
	if r.failOnCall == r.createCalls {
		return errors.New("insert failed")
	}
	r.created = append(r.created, message)
	return nil
}

func (r *fakeMessageRepo) DeleteByChatSessionId(context.Context, uuid.UUID) error { return nil }

func (r *fakeMessageRepo) FindOne(context.Context, ...specification.Specification) (*entity.ChatMessage, error) {
	return nil, nil
}

func (r *fakeMessageRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.ChatMessage, error) {
	return nil, nil
}

func (r *fakeMessageRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeSessionRepo struct {
	session *entity.ChatSession
	updates int
}

func (r *fakeSessionRepo) Create(context.Context, *entity.ChatSession) error { return nil }

func (r *fakeSessionRepo) Update(_ context.Context, _ *entity.ChatSession) error {
	r.updates++
	return nil
}

func (r *fakeSessionRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (r *fakeSessionRepo) FindOne(context.Context, ...specification.Specification) (*entity.ChatSession, error) {
	return r.session, nil
}

func (r *fakeSessionRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.ChatSession, error) {
	return nil, nil
}

func (r *fakeSessionRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeUow struct {
	sessions *fakeSessionRepo
	messages *fakeMessageRepo
}

func (u *fakeUow) Begin(context.Context) error { return nil }
func (u *fakeUow) Commit() error               { return nil }
func (u *fakeUow) Rollback() error             { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository               { return nil }
func (u *fakeUow) ChatSessionRepository() contract.ChatSessionRepository { return u.sessions }
func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository { return u.messages }
func (u *fakeUow) ReportRepository() contract.ReportRepository           { return nil }

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

func newSendMessageFixture(failOnCreate int) (IChatService, *fakeUow, uuid.UUID, uuid.UUID) {
	userId := uuid.New()
	sessionId := uuid.New()

	uow := &fakeUow{
		sessions: &fakeSessionRepo{session: &entity.ChatSession{Id: sessionId, UserId: userId, Title: "T"}},
		messages: &fakeMessageRepo{failOnCall: failOnCreate},
	}
	svc := NewChatService(&fakeUowFactory{uow: uow}, cannedAssistant{reply: "reply"}, noopLogger{})
	return svc, uow, userId, sessionId
}

func TestSendMessagePersistsBothTurns(t *testing.T) {
	svc, uow, userId, sessionId := newSendMessageFixture(0)

	res, err := svc.SendMessage(context.Background(), userId, sessionId, &dto.SendMessageRequest{Content: "hi"})

	assert.NoError(t, err)
	assert.Equal(t, "reply", res.Message)
	assert.Equal(t, 2, uow.messages.createCalls)
	assert.True(t, uow.messages.created[0].IsUserMessage)
	assert.False(t, uow.messages.created[1].IsUserMessage)
	assert.Equal(t, userId, uow.messages.created[1].UserId)
	assert.Equal(t, 1, uow.sessions.updates)
}

func TestSendMessageSurfacesAssistantPersistFailure(t *testing.T) {
	// Second insert is the assistant turn.
	svc, uow, userId, sessionId := newSendMessageFixture(2)

	res, err := svc.SendMessage(context.Background(), userId, sessionId, &dto.SendMessageRequest{Content: "hi"})

	assert.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, 2, uow.messages.createCalls)
	// The failure must not be papered over by bumping the session.
	assert.Equal(t, 0, uow.sessions.updates)
}

func TestSendMessageSurfacesUserPersistFailure(t *testing.T) {
	svc, _, userId, sessionId := newSendMessageFixture(1)

	res, err := svc.SendMessage(context.Background(), userId, sessionId, &dto.SendMessageRequest{Content: "hi"})

	assert.Error(t, err)
	assert.Nil(t, res)
}
