// Package generationsvc - Test bảng lắp prompt và kích thước ảnh.
package generationsvc

import (
	"strings"
	"testing"

	campaignmodels "adcraft/internal/api/campaign/models"
	contentmodels "adcraft/internal/api/content/models"

	"github.com/stretchr/testify/assert"
)

func TestDimensionsFor(t *testing.T) {
	cases := []struct {
		resolution string
		width      int
		height     int
	}{
		{contentmodels.ResolutionSquare, 512, 512},
		{contentmodels.ResolutionPortrait, 512, 768},
		{contentmodels.ResolutionLandscape, 768, 512},
		{contentmodels.ResolutionBanner, 1024, 256},
		{"", 512, 512},        // mặc định square
		{"unknown", 512, 512}, // resolution lạ cũng về mặc định
	}
	for _, tc := range cases {
		w, h := DimensionsFor(tc.resolution)
		assert.Equal(t, tc.width, w, "width cho resolution %q", tc.resolution)
		assert.Equal(t, tc.height, h, "height cho resolution %q", tc.resolution)
	}
}

func TestBuildImagePrompt_StyleAndPlatformSuffixes(t *testing.T) {
	prompt := BuildImagePrompt("espresso cup", contentmodels.StyleLuxury, contentmodels.PlatformInstagram)

	assert.True(t, strings.HasPrefix(prompt, "espresso cup"), "prompt gốc phải đứng đầu")
	assert.Contains(t, prompt, ", luxury premium advertisement, elegant gold accents, sophisticated, high-end")
	assert.Contains(t, prompt, ", instagram post, social media advertisement, engaging visual")
}

func TestBuildImagePrompt_UnknownStyleSkipped(t *testing.T) {
	prompt := BuildImagePrompt("espresso cup", "steampunk", contentmodels.PlatformFacebook)

	assert.NotContains(t, prompt, "steampunk advertisement")
	assert.Contains(t, prompt, ", facebook advertisement")
}

func TestBuildImagePrompt_NoSuffixes(t *testing.T) {
	assert.Equal(t, "espresso cup", BuildImagePrompt("espresso cup", "", ""))
}

func TestBuildCaptionPrompt_ContainsProfileAndRules(t *testing.T) {
	campaign := campaignmodels.Campaign{
		BusinessName:   "Cafe Mặt Trời",
		BusinessType:   "coffee shop",
		TargetAudience: "young professionals",
		Objective:      "brand awareness",
		Tone:           "friendly",
	}
	prompt := BuildCaptionPrompt(campaign)

	assert.Contains(t, prompt, "Generate ONE short, catchy marketing caption.")
	assert.Contains(t, prompt, "Business Name: Cafe Mặt Trời")
	assert.Contains(t, prompt, "Business Type: coffee shop")
	assert.Contains(t, prompt, "Max 20 words")
	assert.Contains(t, prompt, "No emojis")
	assert.Contains(t, prompt, "No hashtags")
}

func TestBuildScriptPrompt_IncludesBrief(t *testing.T) {
	campaign := campaignmodels.Campaign{BusinessName: "Cafe Mặt Trời", Tone: "friendly"}
	prompt := BuildScriptPrompt(campaign, "launch the winter menu")

	assert.Contains(t, prompt, "30 seconds")
	assert.Contains(t, prompt, "Creative brief: launch the winter menu")
	assert.Contains(t, prompt, "Business Name: Cafe Mặt Trời")
}

func TestBuildVideoPrompt_JoinsPartsAndSkipsEmpty(t *testing.T) {
	campaign := campaignmodels.Campaign{
		BusinessName:   "Cafe Mặt Trời",
		Description:    "", // phần rỗng phải bị bỏ qua, không sinh ". . "
		TargetAudience: "students",
	}
	prompt := BuildVideoPrompt(campaign, "morning rush hour", contentmodels.StyleVibrant, contentmodels.PlatformTiktok)

	assert.Contains(t, prompt, "Advertisement for Cafe Mặt Trời. Target audience: students. morning rush hour")
	assert.NotContains(t, prompt, ". . ")
	assert.Contains(t, prompt, ", vibrant energetic visuals")
	assert.Contains(t, prompt, ", tiktok viral style")
}

func TestBuildVideoPrompt_ShorterSuffixTables(t *testing.T) {
	campaign := campaignmodels.Campaign{BusinessName: "Cafe Mặt Trời", Description: "Specialty coffee"}

	// Bảng video dùng suffix ngắn, không phải bảng của ảnh
	prompt := BuildVideoPrompt(campaign, "p", contentmodels.StyleProfessional, contentmodels.PlatformInstagram)
	assert.Contains(t, prompt, ", professional corporate advertisement")
	assert.NotContains(t, prompt, "clean design, corporate style, high quality")
	assert.Contains(t, prompt, ", instagram reel style")

	// Video không có suffix twitter
	prompt = BuildVideoPrompt(campaign, "p", contentmodels.StyleProfessional, contentmodels.PlatformTwitter)
	assert.NotContains(t, prompt, "twitter")
}
