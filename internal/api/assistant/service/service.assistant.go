// Package assistantsvc chứa trợ lý quảng cáo chat trên cùng text provider
// với pipeline sinh caption/script. Chat không tính phí credit.
package assistantsvc

import (
	"context"

	"adcraft/internal/provider"
)

// Persona hệ thống của trợ lý quảng cáo
const systemPersona = "You are Shraddha, an expert advertising assistant. Provide concise, actionable ad ideas, hooks, captions, and campaign suggestions. Ask clarifying questions if needed. Keep responses focused on advertising, marketing, and creative direction."

// AssistantService trả lời hội thoại tư vấn quảng cáo
type AssistantService struct {
	text provider.TextProvider
}

// NewAssistantService tạo mới AssistantService
func NewAssistantService(text provider.TextProvider) *AssistantService {
	return &AssistantService{text: text}
}

// Chat thêm persona hệ thống vào đầu hội thoại và gọi text provider.
func (s *AssistantService) Chat(ctx context.Context, messages []provider.Message) (string, error) {
	conversation := make([]provider.Message, 0, len(messages)+1)
	conversation = append(conversation, provider.Message{
		Role:    provider.RoleSystem,
		Content: systemPersona,
	})
	conversation = append(conversation, messages...)

	return s.text.Complete(ctx, conversation)
}
