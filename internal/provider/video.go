package provider

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"adcraft/internal/common"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Filter zoompan: zoom chậm vào tâm ảnh, 180 frame @ 30fps = 6 giây.
const zoompanFilter = "zoompan=z='min(zoom+0.0015,1.15)':d=180:x='iw/2-(iw/zoom/2)':y='ih/2-(ih/zoom/2)':s=720x720:fps=30"

// FFmpegComposer render video pan/zoom từ một ảnh tĩnh bằng ffmpeg cục bộ.
// File tạm đặt tên bằng uuid trong scratchDir và luôn được dọn sau khi xong.
type FFmpegComposer struct {
	ffmpegPath string
	scratchDir string
}

// NewFFmpegComposer tạo mới FFmpegComposer. Tạo scratchDir nếu chưa có.
func NewFFmpegComposer(ffmpegPath, scratchDir string) (*FFmpegComposer, error) {
	if err := os.MkdirAll(scratchDir, 0o755); err != nil {
		return nil, fmt.Errorf("không tạo được scratch dir %s: %w", scratchDir, err)
	}
	return &FFmpegComposer{
		ffmpegPath: ffmpegPath,
		scratchDir: scratchDir,
	}, nil
}

// Compose ghi ảnh ra file tạm, chạy ffmpeg zoompan 6 giây 720x720 và
// đọc lại MP4. Timeout/hủy đi theo ctx qua exec.CommandContext.
func (c *FFmpegComposer) Compose(ctx context.Context, imageData []byte) ([]byte, error) {
	id := uuid.NewString()
	imagePath := filepath.Join(c.scratchDir, id+".png")
	videoPath := filepath.Join(c.scratchDir, id+".mp4")
	defer func() {
		os.Remove(imagePath)
		os.Remove(videoPath)
	}()

	if err := os.WriteFile(imagePath, imageData, 0o644); err != nil {
		return nil, fmt.Errorf("ghi ảnh tạm thất bại: %w", err)
	}

	args := []string{
		"-y",
		"-loop", "1",
		"-i", imagePath,
		"-vf", zoompanFilter,
		"-t", "6",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-movflags", "+faststart",
		videoPath,
	}

	cmd := exec.CommandContext(ctx, c.ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logrus.WithFields(logrus.Fields{
			"ffmpeg": c.ffmpegPath,
			"stderr": stderr.String(),
			"error":  err,
		}).Error("ffmpeg render thất bại")
		if ctx.Err() == context.DeadlineExceeded {
			return nil, common.ErrProviderTimeout
		}
		return nil, common.NewError(
			common.ErrCodeInternalServer,
			"Render video thất bại",
			common.StatusInternalServerError,
			err,
		)
	}

	data, err := os.ReadFile(videoPath)
	if err != nil {
		return nil, fmt.Errorf("đọc video đã render thất bại: %w", err)
	}
	if len(data) == 0 {
		return nil, common.NewError(
			common.ErrCodeInternalServer,
			"ffmpeg tạo ra file rỗng",
			common.StatusInternalServerError,
			nil,
		)
	}

	return data, nil
}
