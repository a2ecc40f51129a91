package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WebhookLog lưu audit trail mọi webhook event nhận từ Stripe.
// EventID unique (sparse) để chặn xử lý trùng khi Stripe gửi lại event.
type WebhookLog struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Source    string `json:"source" bson:"source"`                                   // Nguồn webhook (stripe)
	EventID   string `json:"eventId,omitempty" bson:"eventId,omitempty" index:"unique;sparse"` // ID event từ Stripe
	EventType string `json:"eventType" bson:"eventType" index:"single:1"`            // Loại event (checkout.session.completed, ...)
	Payload   string `json:"payload" bson:"payload"`                                 // Raw body của request

	Processed    bool   `json:"processed" bson:"processed"`                               // Đã xử lý thành công chưa
	ProcessError string `json:"processError,omitempty" bson:"processError,omitempty"`     // Lỗi xử lý (nếu có)
	ProcessedAt  int64  `json:"processedAt,omitempty" bson:"processedAt,omitempty"`       // Thời điểm xử lý xong

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
