// Package provider chứa các adapter gọi dịch vụ sinh nội dung bên ngoài:
// text (Groq chat-completions), image (Pollinations) và video (ffmpeg cục bộ).
// Các service nghiệp vụ chỉ phụ thuộc vào interface ở đây để test được bằng fake.
package provider

import (
	"context"
)

// Vai trò message trong hội thoại chat-completions
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message là một message trong hội thoại gửi cho text provider
type Message struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

// TextProvider sinh văn bản từ hội thoại chat-completions.
// Nội dung rỗng hoặc toàn whitespace là lỗi (ErrProviderEmpty).
type TextProvider interface {
	Complete(ctx context.Context, messages []Message) (string, error)
	ModelName() string
}

// ImageProvider tải ảnh đã sinh theo prompt, trả về raw bytes.
type ImageProvider interface {
	Fetch(ctx context.Context, prompt string, width, height int) ([]byte, error)
}

// VideoComposer render video MP4 từ một ảnh tĩnh.
type VideoComposer interface {
	Compose(ctx context.Context, imageData []byte) ([]byte, error)
}
