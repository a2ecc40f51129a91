// Package paymenthdl chứa HTTP handler cho domain Payment.
package paymenthdl

import (
	"fmt"

	basehdl "adcraft/internal/api/base/handler"
	paymentsvc "adcraft/internal/api/payment/service"
	"adcraft/internal/common"
	"adcraft/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// StripeWebhookHandler xử lý webhook từ Stripe
type StripeWebhookHandler struct {
	stripeService *paymentsvc.StripeWebhookService
}

// NewStripeWebhookHandler tạo mới StripeWebhookHandler
func NewStripeWebhookHandler() (*StripeWebhookHandler, error) {
	stripeService, err := paymentsvc.NewStripeWebhookService()
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe webhook service: %v", err)
	}
	return &StripeWebhookHandler{stripeService: stripeService}, nil
}

// HandleStripeWebhook xử lý POST /webhooks/stripe.
// Body phải là raw bytes đúng như Stripe gửi — xác thực chữ ký trước,
// 400 nếu chữ ký sai. Lỗi xử lý nghiệp vụ vẫn trả 200 (đã ghi log,
// Stripe không cần retry).
func (h *StripeWebhookHandler) HandleStripeWebhook(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		log := logger.GetAppLogger()
		rawBody := c.Body()
		sigHeader := c.Get("Stripe-Signature")

		event, err := h.stripeService.VerifyEvent(rawBody, sigHeader)
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		if processErr := h.stripeService.ProcessEvent(c.Context(), event, rawBody); processErr != nil {
			log.WithError(processErr).WithField("event_type", event.Type).Error("🔔 [STRIPE WEBHOOK] Lỗi khi xử lý event")
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"code":     common.StatusOK,
			"message":  "Webhook đã được nhận và lưu log",
			"received": true,
			"status":   "success",
		})
	})
}
