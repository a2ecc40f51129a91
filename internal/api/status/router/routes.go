// Package router đăng ký các route thuộc domain Status.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "adcraft/internal/api/router"
	statushdl "adcraft/internal/api/status/handler"
)

// Register đăng ký route kiểm tra provider lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	statusHandler, err := statushdl.NewStatusHandler()
	if err != nil {
		return fmt.Errorf("create status handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/status", "GET", "/providers", []fiber.Handler{}, statusHandler.HandleProviderStatus)
	return nil
}
