package assistantdto

import (
	"adcraft/internal/provider"
)

// ChatInput dữ liệu đầu vào cho trợ lý quảng cáo.
// Messages là lịch sử hội thoại (persona hệ thống do server thêm).
type ChatInput struct {
	Messages []provider.Message `json:"messages" validate:"required,min=1,dive"`
}

// ChatResult kết quả trả về từ trợ lý
type ChatResult struct {
	Message string `json:"message"`
}
