package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreditEventType định nghĩa loại biến động credit
const (
	CreditEventGrant  = "grant"  // Cấp credit (tạo chiến dịch, nạp thêm)
	CreditEventCharge = "charge" // Trừ credit khi sinh nội dung
	CreditEventRefund = "refund" // Hoàn credit khi commit artifact thất bại
)

// CreditOperation định nghĩa nghiệp vụ gây ra biến động credit
const (
	CreditOpInitial = "initial" // Cấp ban đầu khi tạo chiến dịch
	CreditOpTopup   = "topup"   // Nạp thêm qua thanh toán Stripe
	CreditOpCaption = "caption"
	CreditOpImage   = "image"
	CreditOpScript  = "script"
	CreditOpVideo   = "video"
)

// CreditEvent là một dòng trong sổ cái credit (append-only).
// Amount có dấu: grant/refund dương, charge âm. Số dư campaign.credits
// là projection của tổng Amount, cập nhật atomic trong cùng bước nghiệp vụ.
// Event không bao giờ sửa hay xóa.
type CreditEvent struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của event

	CampaignID primitive.ObjectID `json:"campaignId" bson:"campaignId" index:"single:1"` // Chiến dịch liên quan

	Type      string             `json:"type" bson:"type"`                               // grant, charge, refund
	Amount    int64              `json:"amount" bson:"amount"`                           // Số credit có dấu
	Operation string             `json:"operation" bson:"operation"`                     // initial, topup, caption, image, script, video
	ArtifactID primitive.ObjectID `json:"artifactId,omitempty" bson:"artifactId,omitempty"` // Artifact liên quan (nếu có)

	BalanceAfter int64 `json:"balanceAfter" bson:"balanceAfter"` // Số dư sau khi áp dụng event

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật (bằng createdAt, ledger không sửa)
}
