// Package router đăng ký các route thuộc domain Assistant.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	assistanthdl "adcraft/internal/api/assistant/handler"
	apirouter "adcraft/internal/api/router"
)

// Register đăng ký route chat trợ lý lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	assistantHandler, err := assistanthdl.NewAssistantHandler()
	if err != nil {
		return fmt.Errorf("create assistant handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/assistant", "POST", "/chat", []fiber.Handler{}, assistantHandler.HandleChat)
	return nil
}
