package librarydto

import (
	contentmodels "adcraft/internal/api/content/models"
)

// LibraryResult là aggregate toàn bộ thư viện nội dung, mới nhất trước.
// CampaignMap map campaignId (hex) -> tên chiến dịch để hiển thị.
type LibraryResult struct {
	Captions    []contentmodels.Caption `json:"captions"`
	Images      []contentmodels.Image   `json:"images"`
	Videos      []contentmodels.Video   `json:"videos"`
	Scripts     []contentmodels.Script  `json:"scripts"`
	CampaignMap map[string]string       `json:"campaignMap"`
}

// CampaignLibraryResult là aggregate nội dung của một chiến dịch.
type CampaignLibraryResult struct {
	Captions []contentmodels.Caption `json:"captions"`
	Images   []contentmodels.Image   `json:"images"`
	Videos   []contentmodels.Video   `json:"videos"`
	Scripts  []contentmodels.Script  `json:"scripts"`
}
