// Package libraryhdl chứa HTTP handler cho domain Library.
package libraryhdl

import (
	"fmt"

	basehdl "adcraft/internal/api/base/handler"
	librarysvc "adcraft/internal/api/library/service"
	"adcraft/internal/common"
	"adcraft/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LibraryHandler xử lý các request thư viện nội dung
type LibraryHandler struct {
	libraryService *librarysvc.LibraryService
}

// NewLibraryHandler tạo mới LibraryHandler
func NewLibraryHandler() (*LibraryHandler, error) {
	libraryService, err := librarysvc.NewLibraryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create library service: %v", err)
	}
	return &LibraryHandler{libraryService: libraryService}, nil
}

// parseObjectIDParam validate và convert một URI param ObjectID
func parseObjectIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id := c.Params(name)
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("%s không được để trống trong URL params", name),
			common.StatusBadRequest,
			nil,
		)
	}
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("%s '%s' không đúng định dạng MongoDB ObjectID", name, id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}

// GetLibrary xử lý GET /library — aggregate toàn bộ thư viện.
func (h *LibraryHandler) GetLibrary(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		result, err := h.libraryService.GetLibrary(c.Context())
		basehdl.WriteResponse(c, result, err)
		return nil
	})
}

// GetCampaignLibrary xử lý GET /library/:campaignId — aggregate một chiến dịch.
func (h *LibraryHandler) GetCampaignLibrary(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		campaignID, err := parseObjectIDParam(c, "campaignId")
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		result, err := h.libraryService.GetCampaignLibrary(c.Context(), campaignID)
		basehdl.WriteResponse(c, result, err)
		return nil
	})
}

// DeleteArtifact xử lý DELETE /library/:id?type= — xóa một artifact theo loại.
func (h *LibraryHandler) DeleteArtifact(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		artifactID, err := parseObjectIDParam(c, "id")
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		artifactType := c.Query("type")
		if artifactType == "" {
			basehdl.WriteResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Query param 'type' là bắt buộc (caption, image, video, script)",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		err = h.libraryService.DeleteArtifact(c.Context(), artifactID, artifactType)
		basehdl.WriteResponse(c, nil, err)
		return nil
	})
}
