package intelligence

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/eventflow/internal/llm"
	"github.com/alexanderramin/eventflow/internal/transcript"
)

// ChatService answers the next conversational turn of event gathering.
type ChatService interface {
	// Reply sends the history plus the latest user utterance to the model
	// and returns the assistant's next question.
	Reply(ctx context.Context, history transcript.Transcript, currentText string) (string, error)
}

type chatService struct {
	client llm.Client
}

// NewChatService creates a ChatService backed by a provider client.
func NewChatService(client llm.Client) ChatService {
	return &chatService{client: client}
}

// chatTurnResponse is the JSON structure the model outputs in
// conversational mode.
type chatTurnResponse struct {
	ReplyText string `json:"reply_text"`
}

func (s *chatService) Reply(ctx context.Context, history transcript.Transcript, currentText string) (string, error) {
	msgs := append(history.Messages(), llm.Message{Role: "user", Text: currentText})

	resp, err := s.client.GenerateContent(ctx, llm.GenerateRequest{
		Task:         llm.TaskConversational,
		SystemPrompt: conversationalSystemPrompt,
		Messages:     msgs,
	})
	if err != nil {
		// Conversational mode degrades on any parse failure, including a
		// response envelope with no candidate text. Config, transport and
		// upstream errors still propagate.
		if errors.Is(err, llm.ErrInvalidOutput) {
			return fallbackRepeatReply, nil
		}
		return "", err
	}

	parsed, err := llm.ExtractJSON[chatTurnResponse](resp.Text, nil)
	if err != nil {
		return fallbackRepeatReply, nil
	}
	if strings.TrimSpace(parsed.ReplyText) == "" {
		return fallbackChatReply, nil
	}
	return parsed.ReplyText, nil
}
