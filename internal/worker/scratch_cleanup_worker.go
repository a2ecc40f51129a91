package worker

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"adcraft/internal/logger"
)

// ScratchCleanupWorker worker để dọn file tạm mồ côi trong thư mục scratch.
// Bình thường transcode tự xóa file tạm của nó, nhưng khi process bị kill
// giữa chừng thì file .png/.mp4 sẽ nằm lại. Worker chạy định kỳ và xóa các
// file cũ hơn maxAge.
type ScratchCleanupWorker struct {
	scratchDir string
	interval   time.Duration // Khoảng thời gian giữa các lần chạy
	maxAge     time.Duration // File cũ hơn maxAge sẽ bị xóa
}

// NewScratchCleanupWorker tạo mới ScratchCleanupWorker
// Tham số:
//   - scratchDir: Thư mục chứa file tạm của transcode
//   - interval: Khoảng thời gian giữa các lần chạy (mặc định: 10 phút)
//   - maxAge: Tuổi tối thiểu của file trước khi bị xóa (mặc định: 1 giờ)
func NewScratchCleanupWorker(scratchDir string, interval, maxAge time.Duration) *ScratchCleanupWorker {
	// Set defaults
	if interval < time.Minute {
		interval = 10 * time.Minute
	}
	if maxAge < 10*time.Minute {
		maxAge = time.Hour
	}

	return &ScratchCleanupWorker{
		scratchDir: scratchDir,
		interval:   interval,
		maxAge:     maxAge,
	}
}

// Start bắt đầu background worker dọn file tạm
func (w *ScratchCleanupWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"scratchDir": w.scratchDir,
		"interval":   w.interval.String(),
		"maxAge":     w.maxAge.String(),
	}).Info("🧹 [SCRATCH_CLEANUP] Starting Scratch Cleanup Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🧹 [SCRATCH_CLEANUP] Scratch Cleanup Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🧹 [SCRATCH_CLEANUP] Panic khi dọn file tạm, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				removedCount, err := w.sweep()
				if err != nil {
					log.WithError(err).Error("🧹 [SCRATCH_CLEANUP] Failed to sweep scratch directory")
					return
				}

				if removedCount > 0 {
					log.WithFields(map[string]interface{}{
						"removedCount": removedCount,
						"scratchDir":   w.scratchDir,
					}).Info("🧹 [SCRATCH_CLEANUP] Removed stale scratch files")
				}
				// Nếu removedCount = 0, không log (giảm log noise)
			}()
		}
	}
}

// sweep xóa các file trong scratchDir cũ hơn maxAge. Không đi vào thư mục con.
func (w *ScratchCleanupWorker) sweep() (int, error) {
	entries, err := os.ReadDir(w.scratchDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().Add(-w.maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(w.scratchDir, entry.Name())); err != nil {
			logger.GetAppLogger().WithError(err).Warnf("🧹 [SCRATCH_CLEANUP] Không xóa được file %s", entry.Name())
			continue
		}
		removed++
	}
	return removed, nil
}
