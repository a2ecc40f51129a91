// Package router đăng ký các route thuộc domain Campaign.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	campaignhdl "adcraft/internal/api/campaign/handler"
	apirouter "adcraft/internal/api/router"
)

// Register đăng ký tất cả route Campaign lên v1.
// InsertOne được override trong CampaignHandler để cấp credit ban đầu.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	campaignHandler, err := campaignhdl.NewCampaignHandler()
	if err != nil {
		return fmt.Errorf("create campaign handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/campaigns", campaignHandler, apirouter.ReadWriteConfig)
	return nil
}
