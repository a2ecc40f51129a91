// Package assistanthdl chứa HTTP handler cho trợ lý quảng cáo.
package assistanthdl

import (
	"encoding/json"
	"fmt"

	assistantdto "adcraft/internal/api/assistant/dto"
	assistantsvc "adcraft/internal/api/assistant/service"
	basehdl "adcraft/internal/api/base/handler"
	"adcraft/internal/common"
	"adcraft/internal/global"
	"adcraft/internal/provider"

	"github.com/gofiber/fiber/v3"
)

// AssistantHandler xử lý các request chat với trợ lý quảng cáo
type AssistantHandler struct {
	assistantService *assistantsvc.AssistantService
}

// NewAssistantHandler tạo mới AssistantHandler
func NewAssistantHandler() (*AssistantHandler, error) {
	cfg := global.MongoDB_ServerConfig
	textProvider := provider.NewGroqTextProvider(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel)
	return &AssistantHandler{
		assistantService: assistantsvc.NewAssistantService(textProvider),
	}, nil
}

// HandleChat xử lý POST /assistant/chat
func (h *AssistantHandler) HandleChat(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input assistantdto.ChatInput
		if err := json.Unmarshal(c.Body(), &input); err != nil {
			basehdl.WriteResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.WriteResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Dữ liệu không hợp lệ: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		message, err := h.assistantService.Chat(c.Context(), input.Messages)
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		basehdl.WriteResponse(c, assistantdto.ChatResult{Message: message}, nil)
		return nil
	})
}
