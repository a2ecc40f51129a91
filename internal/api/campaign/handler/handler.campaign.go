package campaignhdl

import (
	"fmt"

	basehdl "adcraft/internal/api/base/handler"
	campaigndto "adcraft/internal/api/campaign/dto"
	campaignmodels "adcraft/internal/api/campaign/models"
	campaignsvc "adcraft/internal/api/campaign/service"
	"adcraft/internal/common"

	"github.com/gofiber/fiber/v3"
)

// CampaignHandler xử lý các request liên quan đến chiến dịch
type CampaignHandler struct {
	*basehdl.BaseHandler[campaignmodels.Campaign, campaigndto.CampaignCreateInput, campaigndto.CampaignUpdateInput]
	CampaignService *campaignsvc.CampaignService
}

// NewCampaignHandler tạo mới CampaignHandler
func NewCampaignHandler() (*CampaignHandler, error) {
	campaignService, err := campaignsvc.NewCampaignService()
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign service: %v", err)
	}
	hdl := &CampaignHandler{CampaignService: campaignService}
	hdl.BaseHandler = basehdl.NewBaseHandler[campaignmodels.Campaign, campaigndto.CampaignCreateInput, campaigndto.CampaignUpdateInput](campaignService.BaseServiceMongoImpl)
	return hdl, nil
}

// InsertOne override route tạo chiến dịch: sau khi validate + transform,
// đi qua CreateWithInitialCredits để cấp credit ban đầu từ ngân sách
// (client không tự set được credits).
func (h *CampaignHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input campaigndto.CampaignCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		data, err := h.CampaignService.CreateWithInitialCredits(c.Context(), *model)
		h.HandleResponse(c, data, err)
		return nil
	})
}
