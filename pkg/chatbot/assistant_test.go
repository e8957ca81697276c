package chatbot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubGenerator struct {
	reply    string
	err      error
	captured []*ChatHistory
}

func (s *stubGenerator) Generate(ctx context.Context, chatHistories []*ChatHistory) (string, error) {
	s.captured = chatHistories
	return s.reply, s.err
}

func newTestAssistant(stub *stubGenerator) *geminiAssistant {
	return &geminiAssistant{
		client:        stub,
		systemPrompt:  "persona",
		systemAck:     "ack",
		replyFallback: "empty fallback",
		errorFallback: "error fallback",
		titleFallback: "New Conversation",
	}
}

func TestGenerateReplyPrependsPersona(t *testing.T) {
	stub := &stubGenerator{reply: "hello there"}
	a := newTestAssistant(stub)

	reply := a.GenerateReply(context.Background(), "hi", nil)

	assert.Equal(t, "hello there", reply)
	assert.Len(t, stub.captured, 3)
	assert.Equal(t, "persona", stub.captured[0].Chat)
	assert.Equal(t, ChatMessageRoleUser, stub.captured[0].Role)
	assert.Equal(t, "ack", stub.captured[1].Chat)
	assert.Equal(t, ChatMessageRoleModel, stub.captured[1].Role)
	assert.Equal(t, "hi", stub.captured[2].Chat)
}

func TestGenerateReplyTruncatesHistory(t *testing.T) {
	stub := &stubGenerator{reply: "ok"}
	a := newTestAssistant(stub)

	history := make([]*ChatHistory, 25)
	for i := range history {
		history[i] = &ChatHistory{Chat: "turn", Role: ChatMessageRoleUser}
	}

	a.GenerateReply(context.Background(), "latest", history)

	// persona + ack + last 10 turns + new message
	assert.Len(t, stub.captured, 13)
}

func TestGenerateReplyFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		want  string
	}{
		{name: "model error", err: errors.New("boom"), want: "error fallback"},
		{name: "empty reply", reply: "", want: "empty fallback"},
		{name: "whitespace reply", reply: "   \n", want: "empty fallback"},
		{name: "normal reply trimmed", reply: "  fine  ", want: "fine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAssistant(&stubGenerator{reply: tt.reply, err: tt.err})
			got := a.GenerateReply(context.Background(), "hi", nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateTitlePostProcessing(t *testing.T) {
	tests := []struct {
		name  string
		title string
		err   error
		want  string
	}{
		{name: "strips quotes", title: `"Career 'Advice' Session"`, want: "Career Advice Session"},
		{name: "trims whitespace", title: "  Workplace Concerns  ", want: "Workplace Concerns"},
		{name: "model error falls back", err: errors.New("boom"), want: "New Conversation"},
		{name: "empty falls back", title: "''", want: "New Conversation"},
		{name: "long title truncated", title: strings.Repeat("a", 80), want: strings.Repeat("a", 50)},
		{name: "multibyte title truncated on runes", title: strings.Repeat("ñ", 60), want: strings.Repeat("ñ", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAssistant(&stubGenerator{reply: tt.title, err: tt.err})
			got := a.GenerateTitle(context.Background(), "first message")
			assert.Equal(t, tt.want, got)
		})
	}
}
