// Package router đăng ký các route thuộc domain Credit: sổ cái chỉ đọc.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	credithdl "adcraft/internal/api/credit/handler"
	apirouter "adcraft/internal/api/router"
)

// Register đăng ký route đọc sổ cái credit lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	creditEventHandler, err := credithdl.NewCreditEventHandler()
	if err != nil {
		return fmt.Errorf("create credit event handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/credit-events", creditEventHandler, apirouter.ReadOnlyConfig)
	return nil
}
