// Package router đăng ký các route đọc/xóa artifact: captions, scripts, images, videos.
// Tạo mới artifact đi qua pipeline generate (domain generation).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contenthdl "adcraft/internal/api/content/handler"
	apirouter "adcraft/internal/api/router"
)

// Register đăng ký tất cả route artifact lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	captionHandler, err := contenthdl.NewCaptionHandler()
	if err != nil {
		return fmt.Errorf("create caption handler: %w", err)
	}
	scriptHandler, err := contenthdl.NewScriptHandler()
	if err != nil {
		return fmt.Errorf("create script handler: %w", err)
	}
	imageHandler, err := contenthdl.NewImageHandler()
	if err != nil {
		return fmt.Errorf("create image handler: %w", err)
	}
	videoHandler, err := contenthdl.NewVideoHandler()
	if err != nil {
		return fmt.Errorf("create video handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/captions", captionHandler, apirouter.ArtifactConfig)
	r.RegisterCRUDRoutes(v1, "/scripts", scriptHandler, apirouter.ArtifactConfig)
	r.RegisterCRUDRoutes(v1, "/images", imageHandler, apirouter.ArtifactConfig)
	r.RegisterCRUDRoutes(v1, "/videos", videoHandler, apirouter.ArtifactConfig)
	return nil
}
