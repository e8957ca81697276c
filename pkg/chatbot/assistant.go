package chatbot

import (
	"context"
	"fmt"
	"strings"
)

// historyWindow caps how many persisted turns are replayed into the prompt.
const historyWindow = 10

// titleMaxLen caps generated session titles.
const titleMaxLen = 50

// generator abstracts the model call so the assistant can be tested without
// the network.
type generator interface {
	Generate(ctx context.Context, chatHistories []*ChatHistory) (string, error)
}

// Assistant is the AI gateway the chat service talks to. Both operations
// degrade to fixed fallback strings; they never surface model failures.
type Assistant interface {
	GenerateReply(ctx context.Context, message string, history []*ChatHistory) string
	GenerateTitle(ctx context.Context, firstMessage string) string
}

type geminiAssistant struct {
	client        generator
	systemPrompt  string
	systemAck     string
	replyFallback string
	errorFallback string
	titleFallback string
}

func NewGeminiAssistant(client *GeminiClient, systemPrompt, systemAck, emptyFallback, errorFallback, titleFallback string) Assistant {
	return &geminiAssistant{
		client:        client,
		systemPrompt:  systemPrompt,
		systemAck:     systemAck,
		replyFallback: emptyFallback,
		errorFallback: errorFallback,
		titleFallback: titleFallback,
	}
}

func (a *geminiAssistant) GenerateReply(ctx context.Context, message string, history []*ChatHistory) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	contents := make([]*ChatHistory, 0, len(history)+3)
	contents = append(contents, &ChatHistory{Chat: a.systemPrompt, Role: ChatMessageRoleUser})
	contents = append(contents, &ChatHistory{Chat: a.systemAck, Role: ChatMessageRoleModel})
	contents = append(contents, history...)
	contents = append(contents, &ChatHistory{Chat: message, Role: ChatMessageRoleUser})

	reply, err := a.client.Generate(ctx, contents)
	if err != nil {
		return a.errorFallback
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return a.replyFallback
	}
	return reply
}

func (a *geminiAssistant) GenerateTitle(ctx context.Context, firstMessage string) string {
	prompt := fmt.Sprintf(
		`Generate a short, descriptive title (3-6 words) for a conversation that starts with this message: %q

The title should capture the main topic or theme. Return only the title, no additional text.`,
		firstMessage,
	)

	title, err := a.client.Generate(ctx, []*ChatHistory{
		{Chat: prompt, Role: ChatMessageRoleUser},
	})
	if err != nil {
		return a.titleFallback
	}

	title = strings.TrimSpace(title)
	title = strings.ReplaceAll(title, `"`, "")
	title = strings.ReplaceAll(title, "'", "")
	if title == "" {
		return a.titleFallback
	}
	if runes := []rune(title); len(runes) > titleMaxLen {
		title = string(runes[:titleMaxLen])
	}
	return title
}

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"
)
