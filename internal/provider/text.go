package provider

import (
	"context"
	"strings"

	"adcraft/internal/common"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/sirupsen/logrus"
)

// GroqTextProvider gọi Groq qua API chat-completions tương thích OpenAI.
type GroqTextProvider struct {
	client *openai.Client
	model  string
}

// NewGroqTextProvider tạo mới GroqTextProvider trỏ vào baseURL của Groq.
func NewGroqTextProvider(apiKey, baseURL, model string) *GroqTextProvider {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)
	return &GroqTextProvider{
		client: &client,
		model:  model,
	}
}

// ModelName trả về tên model đang dùng (lưu vào field source của caption).
func (p *GroqTextProvider) ModelName() string {
	return p.model
}

// Complete gửi hội thoại và trả về nội dung message đầu tiên.
// Timeout/hủy đi theo ctx; lỗi mạng và nội dung rỗng map về lỗi provider.
func (p *GroqTextProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)),
	}
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
		case RoleAssistant:
			params.Messages = append(params.Messages, openai.AssistantMessage(m.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(m.Content))
		}
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"model": p.model,
			"error": err,
		}).Error("Text provider trả về lỗi")
		if ctx.Err() == context.DeadlineExceeded {
			return "", common.ErrProviderTimeout
		}
		return "", common.ErrProviderResponse
	}

	if len(resp.Choices) == 0 {
		return "", common.ErrProviderEmpty
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", common.ErrProviderEmpty
	}

	return content, nil
}
