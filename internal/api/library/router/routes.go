// Package router đăng ký các route thuộc domain Library.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	libraryhdl "adcraft/internal/api/library/handler"
	apirouter "adcraft/internal/api/router"
)

// Register đăng ký các route library lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	libraryHandler, err := libraryhdl.NewLibraryHandler()
	if err != nil {
		return fmt.Errorf("create library handler: %w", err)
	}

	none := []fiber.Handler{}
	// Path rỗng để route khớp đúng "/library" (StrictRouting đang bật,
	// path "/" sẽ chỉ khớp "/library/").
	apirouter.RegisterRouteWithMiddleware(v1, "/library", "GET", "", none, libraryHandler.GetLibrary)
	apirouter.RegisterRouteWithMiddleware(v1, "/library", "GET", "/:campaignId", none, libraryHandler.GetCampaignLibrary)
	apirouter.RegisterRouteWithMiddleware(v1, "/library", "DELETE", "/:id", none, libraryHandler.DeleteArtifact)
	return nil
}
