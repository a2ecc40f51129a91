// Package router đăng ký các route sinh nội dung: /generate/*.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	generationhdl "adcraft/internal/api/generation/handler"
	apirouter "adcraft/internal/api/router"
)

// Register đăng ký các route generate lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	generationHandler, err := generationhdl.NewGenerationHandler()
	if err != nil {
		return fmt.Errorf("create generation handler: %w", err)
	}

	none := []fiber.Handler{}
	apirouter.RegisterRouteWithMiddleware(v1, "/generate", "POST", "/caption", none, generationHandler.GenerateCaption)
	apirouter.RegisterRouteWithMiddleware(v1, "/generate", "POST", "/script", none, generationHandler.GenerateScript)
	apirouter.RegisterRouteWithMiddleware(v1, "/generate", "POST", "/image", none, generationHandler.GenerateImage)
	apirouter.RegisterRouteWithMiddleware(v1, "/generate", "POST", "/video", none, generationHandler.GenerateVideo)
	return nil
}
