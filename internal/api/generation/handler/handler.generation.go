package generationhdl

import (
	"encoding/json"
	"fmt"

	basehdl "adcraft/internal/api/base/handler"
	campaignsvc "adcraft/internal/api/campaign/service"
	contentsvc "adcraft/internal/api/content/service"
	creditsvc "adcraft/internal/api/credit/service"
	generationdto "adcraft/internal/api/generation/dto"
	generationsvc "adcraft/internal/api/generation/service"
	"adcraft/internal/common"
	"adcraft/internal/global"
	"adcraft/internal/logger"
	"adcraft/internal/provider"
	"adcraft/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GenerationHandler xử lý các request sinh nội dung có tính phí credit.
// Không dùng base CRUD handler — mỗi loại nội dung là một route POST riêng
// đi qua GenerationService.
type GenerationHandler struct {
	GenerationService *generationsvc.GenerationService
}

// NewGenerationHandler tạo mới GenerationHandler, tự lắp các store và
// provider thật từ config toàn cục.
func NewGenerationHandler() (*GenerationHandler, error) {
	campaignService, err := campaignsvc.NewCampaignService()
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign service: %v", err)
	}
	creditService, err := creditsvc.NewCreditService()
	if err != nil {
		return nil, fmt.Errorf("failed to create credit service: %v", err)
	}
	captionService, err := contentsvc.NewCaptionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create caption service: %v", err)
	}
	scriptService, err := contentsvc.NewScriptService()
	if err != nil {
		return nil, fmt.Errorf("failed to create script service: %v", err)
	}
	imageService, err := contentsvc.NewImageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create image service: %v", err)
	}
	videoService, err := contentsvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}

	cfg := global.MongoDB_ServerConfig
	textProvider := provider.NewGroqTextProvider(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel)
	imageProvider := provider.NewPollinationsImageProvider(cfg.ImageProviderBaseURL, cfg.ImageFetchTimeout, cfg.ImageFetchRetries)
	composer, err := provider.NewFFmpegComposer(cfg.FFmpegPath, cfg.ScratchDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create video composer: %v", err)
	}

	return &GenerationHandler{
		GenerationService: generationsvc.NewGenerationService(
			campaignService.BaseServiceMongoImpl,
			creditService,
			captionService.BaseServiceMongoImpl,
			scriptService.BaseServiceMongoImpl,
			imageService.BaseServiceMongoImpl,
			videoService.BaseServiceMongoImpl,
			textProvider,
			imageProvider,
			composer,
		),
	}, nil
}

// parseBody parse + validate request body cho các route generate
func parseBody(c fiber.Ctx, input interface{}) error {
	if err := json.Unmarshal(c.Body(), input); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Dữ liệu không hợp lệ: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}

// parseCampaignID validate và convert campaignId dạng chuỗi
func parseCampaignID(id string) (primitive.ObjectID, error) {
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Campaign ID '%s' không đúng định dạng MongoDB ObjectID", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}

// GenerateCaption xử lý POST /generate/caption
func (h *GenerationHandler) GenerateCaption(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input generationdto.CaptionGenerateInput
		if err := parseBody(c, &input); err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		campaignID, err := parseCampaignID(input.CampaignID)
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		caption, err := h.GenerationService.GenerateCaption(c.Context(), campaignID)
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		logger.LogGeneration("caption", input.CampaignID, caption.CreditsUsed, c, nil)
		basehdl.WriteResponse(c, generationdto.CaptionGenerateResult{
			ID:     caption.ID.Hex(),
			Text:   caption.Text,
			Source: caption.Source,
		}, nil)
		return nil
	})
}

// GenerateScript xử lý POST /generate/script
func (h *GenerationHandler) GenerateScript(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input generationdto.ScriptGenerateInput
		if err := parseBody(c, &input); err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		campaignID, err := parseCampaignID(input.CampaignID)
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		script, err := h.GenerationService.GenerateScript(c.Context(), campaignID, input.Prompt)
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		logger.LogGeneration("script", input.CampaignID, script.CreditsUsed, c, nil)
		basehdl.WriteResponse(c, script, nil)
		return nil
	})
}

// GenerateImage xử lý POST /generate/image
func (h *GenerationHandler) GenerateImage(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input generationdto.ImageGenerateInput
		if err := parseBody(c, &input); err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		campaignID, err := parseCampaignID(input.CampaignID)
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		image, err := h.GenerationService.GenerateImage(c.Context(), campaignID, input.Prompt, input.Style, input.Platform, input.Resolution)
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		logger.LogGeneration("image", input.CampaignID, image.CreditsUsed, c, nil)
		basehdl.WriteResponse(c, image, nil)
		return nil
	})
}

// GenerateVideo xử lý POST /generate/video
func (h *GenerationHandler) GenerateVideo(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input generationdto.VideoGenerateInput
		if err := parseBody(c, &input); err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		campaignID, err := parseCampaignID(input.CampaignID)
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		video, err := h.GenerationService.GenerateVideo(c.Context(), campaignID, input.Prompt, input.Style, input.Platform)
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		logger.LogGeneration("video", input.CampaignID, video.CreditsUsed, c, nil)
		basehdl.WriteResponse(c, video, nil)
		return nil
	})
}
