package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus định nghĩa trạng thái thanh toán của chiến dịch
const (
	PaymentStatusPending   = "pending"   // Chưa thanh toán / đang chờ
	PaymentStatusCompleted = "completed" // Đã thanh toán thành công
	PaymentStatusFailed    = "failed"    // Thanh toán thất bại
)

// Campaign đại diện cho một chiến dịch marketing.
// Mỗi chiến dịch giữ hồ sơ doanh nghiệp, ngân sách và số dư credit
// (credits là projection của sổ cái credit_events, không sửa trực tiếp qua API).
//
// Xóa chiến dịch sẽ cascade xóa captions; images, scripts và videos
// giữ nguyên (orphaned) để người dùng còn tải lại được asset đã sinh.
type Campaign struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của chiến dịch

	// ===== OWNER =====
	UserID string `json:"userId" bson:"userId" index:"single:1" default:"default_user"` // ID người dùng sở hữu

	// ===== BUSINESS PROFILE =====
	Name           string `json:"name" bson:"name"`                                         // Tên chiến dịch
	BusinessName   string `json:"businessName" bson:"businessName"`                         // Tên doanh nghiệp
	BusinessType   string `json:"businessType,omitempty" bson:"businessType,omitempty"`     // Loại hình doanh nghiệp
	Description    string `json:"description,omitempty" bson:"description,omitempty"`       // Mô tả chiến dịch
	Objective      string `json:"objective,omitempty" bson:"objective,omitempty"`           // Mục tiêu marketing
	TargetAudience string `json:"targetAudience,omitempty" bson:"targetAudience,omitempty"` // Đối tượng khách hàng
	Tone           string `json:"tone,omitempty" bson:"tone,omitempty"`                     // Giọng điệu nội dung

	// ===== BUDGET & CREDITS =====
	Budget  float64 `json:"budget" bson:"budget"`   // Ngân sách (đơn vị tiền tệ, chỉ để tham khảo)
	Credits int64   `json:"credits" bson:"credits"` // Số dư credit hiện tại (projection của ledger, luôn >= 0)

	// ===== PAYMENT =====
	PaymentStatus         string  `json:"paymentStatus" bson:"paymentStatus" index:"single:1" default:"pending"` // pending, completed, failed
	StripeSessionID       string  `json:"stripeSessionId,omitempty" bson:"stripeSessionId,omitempty"`            // Checkout session ID từ Stripe
	StripePaymentIntentID string  `json:"stripePaymentIntentId,omitempty" bson:"stripePaymentIntentId,omitempty"`
	PaidAmount            float64 `json:"paidAmount,omitempty" bson:"paidAmount,omitempty"` // Số tiền đã thanh toán (amount_total / 100)
	PaidAt                int64   `json:"paidAt,omitempty" bson:"paidAt,omitempty"`         // Thời điểm thanh toán (UnixMilli)

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật

	// Quan hệ khi xóa: captions bị xóa theo (cascade); images/scripts/videos không khai báo nên giữ nguyên.
	_Relationships struct{} `relationship:"collection:captions,field:campaignId,cascade:true"`
}
