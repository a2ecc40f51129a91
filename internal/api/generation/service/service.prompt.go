package generationsvc

import (
	"fmt"
	"strings"

	campaignmodels "adcraft/internal/api/campaign/models"
	contentmodels "adcraft/internal/api/content/models"
)

// Kích thước ảnh theo resolution
type imageDimensions struct {
	Width  int
	Height int
}

var resolutionDimensions = map[string]imageDimensions{
	contentmodels.ResolutionSquare:    {Width: 512, Height: 512},
	contentmodels.ResolutionPortrait:  {Width: 512, Height: 768},
	contentmodels.ResolutionLandscape: {Width: 768, Height: 512},
	contentmodels.ResolutionBanner:    {Width: 1024, Height: 256},
}

// DimensionsFor trả về width/height cho một resolution; mặc định square.
func DimensionsFor(resolution string) (int, int) {
	if d, ok := resolutionDimensions[resolution]; ok {
		return d.Width, d.Height
	}
	return 512, 512
}

// Suffix enhance prompt ảnh theo style
var imageStyleSuffixes = map[string]string{
	contentmodels.StyleProfessional: ", professional business advertisement, clean design, corporate style, high quality",
	contentmodels.StyleCreative:     ", creative artistic advertisement, innovative design, eye-catching, modern art style",
	contentmodels.StyleMinimalist:   ", minimalist design, clean white background, simple elegant, uncluttered",
	contentmodels.StyleVibrant:      ", vibrant colorful advertisement, bright colors, energetic, dynamic",
	contentmodels.StyleLuxury:       ", luxury premium advertisement, elegant gold accents, sophisticated, high-end",
}

// Suffix enhance prompt ảnh theo platform
var imagePlatformSuffixes = map[string]string{
	contentmodels.PlatformInstagram: ", instagram post, social media advertisement, engaging visual",
	contentmodels.PlatformFacebook:  ", facebook advertisement, social media post, clickable design",
	contentmodels.PlatformTwitter:   ", twitter header image, concise visual message, social media",
	contentmodels.PlatformLinkedin:  ", linkedin professional post, business networking, corporate image",
	contentmodels.PlatformTiktok:    ", tiktok video thumbnail, trendy design, viral potential, youth-oriented",
}

// Suffix enhance prompt video theo style (ngắn hơn bảng ảnh)
var videoStyleSuffixes = map[string]string{
	contentmodels.StyleProfessional: ", professional corporate advertisement",
	contentmodels.StyleCreative:     ", creative artistic advertisement",
	contentmodels.StyleMinimalist:   ", minimalist clean design",
	contentmodels.StyleVibrant:      ", vibrant energetic visuals",
	contentmodels.StyleLuxury:       ", luxury premium style",
}

// Suffix enhance prompt video theo platform (không có twitter)
var videoPlatformSuffixes = map[string]string{
	contentmodels.PlatformInstagram: ", instagram reel style",
	contentmodels.PlatformFacebook:  ", facebook ad style",
	contentmodels.PlatformLinkedin:  ", linkedin professional video",
	contentmodels.PlatformTiktok:    ", tiktok viral style",
}

// BuildCaptionPrompt lắp prompt sinh caption từ hồ sơ doanh nghiệp của chiến dịch.
func BuildCaptionPrompt(campaign campaignmodels.Campaign) string {
	return fmt.Sprintf(`
Generate ONE short, catchy marketing caption.

Business Name: %s
Business Type: %s
Target Audience: %s
Objective: %s
Tone: %s

Rules:
- Max 20 words
- No emojis
- No hashtags
`, campaign.BusinessName, campaign.BusinessType, campaign.TargetAudience, campaign.Objective, campaign.Tone)
}

// BuildScriptPrompt lắp prompt sinh kịch bản video từ hồ sơ chiến dịch và
// yêu cầu của người dùng.
func BuildScriptPrompt(campaign campaignmodels.Campaign, userPrompt string) string {
	return fmt.Sprintf(`
Write a short video advertisement script (30 seconds, spoken narration with scene directions).

Business Name: %s
Business Type: %s
Target Audience: %s
Objective: %s
Tone: %s

Creative brief: %s
`, campaign.BusinessName, campaign.BusinessType, campaign.TargetAudience, campaign.Objective, campaign.Tone, userPrompt)
}

// BuildImagePrompt enhance prompt ảnh theo style và platform.
// Style/platform không nằm trong bảng thì bỏ qua suffix tương ứng.
func BuildImagePrompt(userPrompt, style, platform string) string {
	enhanced := userPrompt
	if suffix, ok := imageStyleSuffixes[style]; ok {
		enhanced += suffix
	}
	if suffix, ok := imagePlatformSuffixes[platform]; ok {
		enhanced += suffix
	}
	return enhanced
}

// BuildVideoPrompt lắp prompt video: các phần hồ sơ chiến dịch không rỗng
// nối bằng ". ", rồi thêm suffix style/platform.
func BuildVideoPrompt(campaign campaignmodels.Campaign, userPrompt, style, platform string) string {
	parts := []string{
		fmt.Sprintf("Advertisement for %s", campaign.BusinessName),
		campaign.Description,
	}
	if campaign.TargetAudience != "" {
		parts = append(parts, fmt.Sprintf("Target audience: %s", campaign.TargetAudience))
	}
	if campaign.Tone != "" {
		parts = append(parts, fmt.Sprintf("Tone: %s", campaign.Tone))
	}
	parts = append(parts, userPrompt)

	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	enhanced := strings.Join(nonEmpty, ". ")

	if suffix, ok := videoStyleSuffixes[style]; ok {
		enhanced += suffix
	}
	if suffix, ok := videoPlatformSuffixes[platform]; ok {
		enhanced += suffix
	}
	return enhanced
}
