package paymenthdl

import (
	"fmt"

	basehdl "adcraft/internal/api/base/handler"
	paymentdto "adcraft/internal/api/payment/dto"
	paymentmodels "adcraft/internal/api/payment/models"
	paymentsvc "adcraft/internal/api/payment/service"
)

// WebhookLogHandler xử lý các route đọc webhook log
type WebhookLogHandler struct {
	*basehdl.BaseHandler[paymentmodels.WebhookLog, paymentdto.WebhookLogCreateInput, paymentdto.WebhookLogUpdateInput]
}

// NewWebhookLogHandler tạo mới WebhookLogHandler
func NewWebhookLogHandler() (*WebhookLogHandler, error) {
	webhookLogService, err := paymentsvc.NewWebhookLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook log service: %w", err)
	}

	return &WebhookLogHandler{
		BaseHandler: basehdl.NewBaseHandler[paymentmodels.WebhookLog, paymentdto.WebhookLogCreateInput, paymentdto.WebhookLogUpdateInput](webhookLogService.BaseServiceMongoImpl),
	}, nil
}
