package generationdto

// CaptionGenerateInput dữ liệu đầu vào cho sinh caption.
// Prompt tự lắp từ hồ sơ chiến dịch nên client chỉ cần campaignId.
type CaptionGenerateInput struct {
	CampaignID string `json:"campaignId" validate:"required"`
}

// ScriptGenerateInput dữ liệu đầu vào cho sinh kịch bản video
type ScriptGenerateInput struct {
	CampaignID string `json:"campaignId" validate:"required"`
	Prompt     string `json:"prompt" validate:"required,max=2000,no_xss"`
}

// ImageGenerateInput dữ liệu đầu vào cho sinh ảnh
type ImageGenerateInput struct {
	CampaignID string `json:"campaignId" validate:"required"`
	Prompt     string `json:"prompt" validate:"required,max=2000,no_xss"`
	Style      string `json:"style,omitempty" validate:"omitempty,oneof=professional creative minimalist vibrant luxury"`
	Platform   string `json:"platform,omitempty" validate:"omitempty,oneof=instagram facebook twitter linkedin tiktok"`
	Resolution string `json:"resolution,omitempty" validate:"omitempty,oneof=square portrait landscape banner"`
}

// VideoGenerateInput dữ liệu đầu vào cho sinh video
type VideoGenerateInput struct {
	CampaignID string `json:"campaignId" validate:"required"`
	Prompt     string `json:"prompt" validate:"required,max=2000,no_xss"`
	Style      string `json:"style,omitempty" validate:"omitempty,oneof=professional creative minimalist vibrant luxury"`
	Platform   string `json:"platform,omitempty" validate:"omitempty,oneof=instagram facebook twitter linkedin tiktok"`
}

// CaptionGenerateResult kết quả sinh caption trả về cho client
type CaptionGenerateResult struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Source string `json:"source"`
}
