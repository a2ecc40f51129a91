package paymentdto

// WebhookLogCreateInput dữ liệu đầu vào khi ghi webhook log (nội bộ).
// Route CRUD của webhook-log chỉ mở phần đọc, input giữ cho đủ generic.
type WebhookLogCreateInput struct {
	Source    string `json:"source" validate:"required"`
	EventID   string `json:"eventId,omitempty"`
	EventType string `json:"eventType" validate:"required"`
	Payload   string `json:"payload,omitempty"`
}

// WebhookLogUpdateInput dữ liệu đầu vào khi cập nhật trạng thái xử lý
type WebhookLogUpdateInput struct {
	Processed    bool   `json:"processed,omitempty"`
	ProcessError string `json:"processError,omitempty"`
}
