// Package provider - Test tham số render pan/zoom của video composer.
package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoompanFilter_Parameters(t *testing.T) {
	// 180 frame @ 30fps = đúng 6 giây video, khớp với -t 6 khi chạy ffmpeg
	assert.Contains(t, zoompanFilter, "d=180")
	assert.Contains(t, zoompanFilter, "fps=30")
	assert.Contains(t, zoompanFilter, "s=720x720")
	assert.Contains(t, zoompanFilter, "min(zoom+0.0015,1.15)", "zoom tăng chậm, trần 1.15")
	assert.Contains(t, zoompanFilter, "x='iw/2-(iw/zoom/2)'", "zoom vào tâm ảnh theo trục x")
	assert.Contains(t, zoompanFilter, "y='ih/2-(ih/zoom/2)'", "zoom vào tâm ảnh theo trục y")
}
