package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các giá trị style hợp lệ cho ảnh/video
const (
	StyleProfessional = "professional"
	StyleCreative     = "creative"
	StyleMinimalist   = "minimalist"
	StyleVibrant      = "vibrant"
	StyleLuxury       = "luxury"
)

// Các giá trị platform hợp lệ
const (
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformTwitter   = "twitter"
	PlatformLinkedin  = "linkedin"
	PlatformTiktok    = "tiktok"
)

// Các giá trị resolution hợp lệ cho ảnh
const (
	ResolutionSquare    = "square"    // 512x512
	ResolutionPortrait  = "portrait"  // 512x768
	ResolutionLandscape = "landscape" // 768x512
	ResolutionBanner    = "banner"    // 1024x256
)

// Caption là caption đã sinh cho một chiến dịch.
// Artifact bất biến sau khi tạo — không có operation update.
// Bị xóa theo khi xóa chiến dịch (cascade từ Campaign).
type Caption struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CampaignID primitive.ObjectID `json:"campaignId" bson:"campaignId" index:"single:1"` // Chiến dịch sở hữu

	Text        string `json:"text" bson:"text"`               // Nội dung caption
	Prompt      string `json:"prompt" bson:"prompt"`           // Prompt đầy đủ đã gửi cho provider
	Source      string `json:"source" bson:"source"`           // Model/provider đã sinh
	CreditsUsed int64  `json:"creditsUsed" bson:"creditsUsed"` // Số credit đã trừ

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// Script là kịch bản video đã sinh cho một chiến dịch.
// Không cascade khi xóa chiến dịch — giữ lại (orphaned).
type Script struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CampaignID primitive.ObjectID `json:"campaignId" bson:"campaignId" index:"single:1"`

	Text        string `json:"text" bson:"text"`
	Prompt      string `json:"prompt" bson:"prompt"`
	CreditsUsed int64  `json:"creditsUsed" bson:"creditsUsed"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// Image là ảnh đã sinh cho một chiến dịch. ImageURL là data URI base64
// (ảnh nhúng thẳng trong document, không có object storage).
// Không cascade khi xóa chiến dịch — giữ lại (orphaned).
type Image struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CampaignID primitive.ObjectID `json:"campaignId" bson:"campaignId" index:"single:1"`

	Prompt      string `json:"prompt" bson:"prompt"`         // Prompt đã enhance (style/platform suffix)
	Style       string `json:"style" bson:"style"`           // professional, creative, minimalist, vibrant, luxury
	Platform    string `json:"platform" bson:"platform"`     // instagram, facebook, twitter, linkedin, tiktok
	Resolution  string `json:"resolution" bson:"resolution"` // square, portrait, landscape, banner
	ImageURL    string `json:"imageUrl" bson:"imageUrl"`     // data:image/...;base64,...
	CreditsUsed int64  `json:"creditsUsed" bson:"creditsUsed"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// Video là video đã sinh cho một chiến dịch. VideoURL là data URI
// data:video/mp4;base64 được render cục bộ bằng ffmpeg từ ảnh tĩnh.
// Không cascade khi xóa chiến dịch — giữ lại (orphaned).
type Video struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CampaignID primitive.ObjectID `json:"campaignId" bson:"campaignId" index:"single:1"`

	Prompt      string `json:"prompt" bson:"prompt"`
	Style       string `json:"style" bson:"style"`
	Platform    string `json:"platform" bson:"platform"`
	VideoURL    string `json:"videoUrl" bson:"videoUrl"` // data:video/mp4;base64,...
	CreditsUsed int64  `json:"creditsUsed" bson:"creditsUsed"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
