// Package router đăng ký các route thuộc domain Payment: Stripe webhook (public), WebhookLog (chỉ đọc).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	paymenthdl "adcraft/internal/api/payment/handler"
	apirouter "adcraft/internal/api/router"
)

// Register đăng ký tất cả route payment lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	stripeWebhookHandler, err := paymenthdl.NewStripeWebhookHandler()
	if err != nil {
		return fmt.Errorf("create stripe webhook handler: %w", err)
	}
	v1.Post("/webhooks/stripe", stripeWebhookHandler.HandleStripeWebhook)

	webhookLogHandler, err := paymenthdl.NewWebhookLogHandler()
	if err != nil {
		return fmt.Errorf("create webhook log handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/webhook-logs", webhookLogHandler, apirouter.ReadOnlyConfig)

	return nil
}
