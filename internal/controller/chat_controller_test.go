package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"sakhi-support-be/internal/dto"
	"sakhi-support-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var testUserId = uuid.New()

// fakeAuth stands in for the JWT middleware on protected routes.
func fakeAuth(ctx *fiber.Ctx) error {
	ctx.Locals("user_id", testUserId.String())
	ctx.Locals("user_email", "user@example.com")
	return ctx.Next()
}

type stubChatService struct {
	sessions []*dto.ChatSessionResponse
	messages []*dto.MessageResponse
	reply    *dto.ChatReplyResponse
	title    *dto.SessionTitleResponse
	err      error

	gotUserId    uuid.UUID
	gotSessionId uuid.UUID
}

func (s *stubChatService) CreateSession(_ context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.ChatSessionResponse, error) {
	s.gotUserId = userId
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ChatSessionResponse{Id: uuid.New(), Title: req.Title, CreatedAt: time.Now(), UpdatedAt: time.Now()}, nil
}

func (s *stubChatService) GetSessions(_ context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error) {
	s.gotUserId = userId
	return s.sessions, s.err
}

func (s *stubChatService) GetMessages(_ context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.MessageResponse, error) {
	s.gotUserId = userId
	s.gotSessionId = sessionId
	return s.messages, s.err
}

func (s *stubChatService) SendMessage(_ context.Context, userId uuid.UUID, sessionId uuid.UUID, _ *dto.SendMessageRequest) (*dto.ChatReplyResponse, error) {
	s.gotUserId = userId
	s.gotSessionId = sessionId
	return s.reply, s.err
}

func (s *stubChatService) GenerateTitle(_ context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionTitleResponse, error) {
	s.gotUserId = userId
	s.gotSessionId = sessionId
	return s.title, s.err
}

func (s *stubChatService) DeleteSession(_ context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	s.gotUserId = userId
	s.gotSessionId = sessionId
	return s.err
}

func newChatTestApp(stub *stubChatService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	// Chat routes are mounted at the app root, not under /api.
	ctrl := NewChatController(stub, fakeAuth)
	ctrl.RegisterRoutes(app)
	return app
}

func decode(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(body)
	assert.NoError(t, err)
	var parsed map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &parsed))
	return parsed
}

func TestSendMessageRoutesUserAndSession(t *testing.T) {
	stub := &stubChatService{reply: &dto.ChatReplyResponse{Message: "assistant reply"}}
	app := newChatTestApp(stub)
	sessionId := uuid.New()

	payload, _ := json.Marshal(dto.SendMessageRequest{Content: "hello"})
	req := httptest.NewRequest("POST", "/chat/sessions/"+sessionId.String()+"/messages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp.Body)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "assistant reply", data["message"])
	assert.Equal(t, testUserId, stub.gotUserId)
	assert.Equal(t, sessionId, stub.gotSessionId)
}

func TestSendMessageRejectsEmptyContent(t *testing.T) {
	app := newChatTestApp(&stubChatService{})
	sessionId := uuid.New()

	payload, _ := json.Marshal(dto.SendMessageRequest{Content: ""})
	req := httptest.NewRequest("POST", "/chat/sessions/"+sessionId.String()+"/messages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestSendMessageRejectsBadSessionId(t *testing.T) {
	app := newChatTestApp(&stubChatService{})

	payload, _ := json.Marshal(dto.SendMessageRequest{Content: "hello"})
	req := httptest.NewRequest("POST", "/chat/sessions/not-a-uuid/messages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestGetMessagesMapsMissingSessionTo404(t *testing.T) {
	stub := &stubChatService{err: serverutils.NewNotFoundError("Chat session not found")}
	app := newChatTestApp(stub)

	req := httptest.NewRequest("GET", "/chat/sessions/"+uuid.New().String()+"/messages", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.Equal(t, "Chat session not found", body["message"])
}

func TestGetSessionsReturnsList(t *testing.T) {
	stub := &stubChatService{sessions: []*dto.ChatSessionResponse{
		{Id: uuid.New(), Title: "First"},
		{Id: uuid.New(), Title: "Second"},
	}}
	app := newChatTestApp(stub)

	req := httptest.NewRequest("GET", "/chat/sessions", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp.Body)
	data := body["data"].([]interface{})
	assert.Len(t, data, 2)
}
