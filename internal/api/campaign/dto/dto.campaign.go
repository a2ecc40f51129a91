package campaigndto

// CampaignCreateInput dữ liệu đầu vào khi tạo chiến dịch.
// Credits không nhận từ client — server tự tính từ budget theo bảng hệ số.
type CampaignCreateInput struct {
	Name           string  `json:"name" validate:"required,max=200,no_xss"`
	BusinessName   string  `json:"businessName" validate:"required,max=200,no_xss"`
	BusinessType   string  `json:"businessType,omitempty" validate:"omitempty,max=100,no_xss"`
	Description    string  `json:"description,omitempty" validate:"omitempty,max=2000,no_xss"`
	Objective      string  `json:"objective,omitempty" validate:"omitempty,max=500,no_xss"`
	TargetAudience string  `json:"targetAudience,omitempty" validate:"omitempty,max=500,no_xss"`
	Tone           string  `json:"tone,omitempty" validate:"omitempty,max=100,no_xss"`
	Budget         float64 `json:"budget" validate:"gte=0"`
}

// CampaignUpdateInput dữ liệu đầu vào khi cập nhật chiến dịch.
// Chỉ các trường hồ sơ doanh nghiệp — credits và payment fields không
// cập nhật trực tiếp qua API (đi qua pipeline generate / webhook).
type CampaignUpdateInput struct {
	Name           string  `json:"name,omitempty" validate:"omitempty,max=200,no_xss"`
	BusinessName   string  `json:"businessName,omitempty" validate:"omitempty,max=200,no_xss"`
	BusinessType   string  `json:"businessType,omitempty" validate:"omitempty,max=100,no_xss"`
	Description    string  `json:"description,omitempty" validate:"omitempty,max=2000,no_xss"`
	Objective      string  `json:"objective,omitempty" validate:"omitempty,max=500,no_xss"`
	TargetAudience string  `json:"targetAudience,omitempty" validate:"omitempty,max=500,no_xss"`
	Tone           string  `json:"tone,omitempty" validate:"omitempty,max=100,no_xss"`
	Budget         float64 `json:"budget,omitempty" validate:"omitempty,gte=0"`
}
