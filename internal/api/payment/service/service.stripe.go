package paymentsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	basesvc "adcraft/internal/api/base/service"
	campaignmodels "adcraft/internal/api/campaign/models"
	creditmodels "adcraft/internal/api/credit/models"
	creditsvc "adcraft/internal/api/credit/service"
	paymentmodels "adcraft/internal/api/payment/models"
	"adcraft/internal/common"
	"adcraft/internal/global"
	"adcraft/internal/utility"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.mongodb.org/mongo-driver/bson"
)

// Các event type Stripe được xử lý
const (
	EventCheckoutCompleted     = "checkout.session.completed"
	EventCheckoutPaymentFailed = "checkout.session.async_payment_failed"
)

// StripeWebhookService xác thực chữ ký và xử lý các event thanh toán.
// Event hợp lệ luôn được ghi vào webhook_logs trước khi xử lý.
type StripeWebhookService struct {
	webhookSecret string
	campaigns     *basesvc.BaseServiceMongoImpl[campaignmodels.Campaign]
	credits       *creditsvc.CreditService
	logs          *WebhookLogService
}

// NewStripeWebhookService tạo mới StripeWebhookService.
func NewStripeWebhookService() (*StripeWebhookService, error) {
	campaignCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Campaigns)
	if !exist {
		return nil, fmt.Errorf("failed to get campaigns collection: %v", common.ErrNotFound)
	}
	creditService, err := creditsvc.NewCreditService()
	if err != nil {
		return nil, fmt.Errorf("failed to create credit service: %v", err)
	}
	logService, err := NewWebhookLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook log service: %v", err)
	}

	return &StripeWebhookService{
		webhookSecret: global.MongoDB_ServerConfig.StripeWebhookSecret,
		campaigns:     basesvc.NewBaseServiceMongo[campaignmodels.Campaign](campaignCol),
		credits:       creditService,
		logs:          logService,
	}, nil
}

// VerifyEvent xác thực chữ ký webhook và trả về event đã parse.
// Chữ ký sai trả về ErrWebhookSignature (400).
func (s *StripeWebhookService) VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, s.webhookSecret)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"error": err,
		}).Warn("Xác thực chữ ký Stripe webhook thất bại")
		return stripe.Event{}, common.ErrWebhookSignature
	}
	return event, nil
}

// ProcessEvent xử lý một event đã xác thực chữ ký. Event trùng (đã xử lý
// thành công trước đó) được bỏ qua. Mọi event đều để lại một dòng log.
func (s *StripeWebhookService) ProcessEvent(ctx context.Context, event stripe.Event, rawPayload []byte) error {
	processed, err := s.logs.HasProcessedEvent(ctx, event.ID)
	if err == nil && processed {
		logrus.WithFields(logrus.Fields{
			"event_id":   event.ID,
			"event_type": event.Type,
		}).Info("Bỏ qua Stripe event đã xử lý")
		return nil
	}

	webhookLog, logErr := s.logs.CreateWebhookLog(ctx, paymentLogFor(event, rawPayload))
	if logErr != nil {
		logrus.WithError(logErr).Warn("Không thể lưu webhook log")
	}

	var processErr error
	switch string(event.Type) {
	case EventCheckoutCompleted:
		processErr = s.handleCheckoutCompleted(ctx, event)
	case EventCheckoutPaymentFailed:
		processErr = s.handlePaymentFailed(ctx, event)
	default:
		logrus.WithField("event_type", event.Type).Info("Stripe event không thuộc diện xử lý, chỉ lưu log")
	}

	if webhookLog != nil {
		errorMsg := ""
		if processErr != nil {
			errorMsg = processErr.Error()
		}
		_ = s.logs.UpdateProcessedStatus(ctx, webhookLog.ID, processErr == nil, errorMsg)
	}

	return processErr
}

func paymentLogFor(event stripe.Event, rawPayload []byte) paymentmodels.WebhookLog {
	return paymentmodels.WebhookLog{
		Source:    "stripe",
		EventID:   event.ID,
		EventType: string(event.Type),
		Payload:   string(rawPayload),
	}
}

// handleCheckoutCompleted đánh dấu chiến dịch đã thanh toán, lưu tham chiếu
// Stripe và cấp credit topup quy đổi từ số tiền đã trả.
func (s *StripeWebhookService) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("parse checkout session thất bại: %w", err)
	}

	campaignID := session.Metadata["campaignId"]
	// 'new' là sentinel của frontend cho session chưa gắn chiến dịch
	if campaignID == "" || campaignID == "new" {
		return nil
	}

	paidAmount := float64(session.AmountTotal) / 100
	set := map[string]interface{}{
		"paymentStatus": campaignmodels.PaymentStatusCompleted,
		"paidAmount":    paidAmount,
		"paidAt":        time.Now().UnixMilli(),
	}
	if session.ID != "" {
		set["stripeSessionId"] = session.ID
	}
	if session.PaymentIntent != nil {
		set["stripePaymentIntentId"] = session.PaymentIntent.ID
	}

	oid := utility.String2ObjectID(campaignID)
	if _, err := s.campaigns.UpdateOne(ctx,
		bson.M{"_id": oid},
		&basesvc.UpdateData{Set: set},
		nil,
	); err != nil {
		return err
	}

	topup := creditsvc.CalcCredits(paidAmount)
	if topup > 0 {
		if _, err := s.credits.Grant(ctx, oid, topup, creditmodels.CreditOpTopup); err != nil {
			return err
		}
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"paid_amount": paidAmount,
		"topup":       topup,
	}).Info("✅ Thanh toán Stripe hoàn tất, đã cấp credit topup")
	return nil
}

// handlePaymentFailed đánh dấu chiến dịch thanh toán thất bại.
func (s *StripeWebhookService) handlePaymentFailed(ctx context.Context, event stripe.Event) error {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("parse checkout session thất bại: %w", err)
	}

	campaignID := session.Metadata["campaignId"]
	if campaignID == "" || campaignID == "new" {
		return nil
	}

	_, err := s.campaigns.UpdateOne(ctx,
		bson.M{"_id": utility.String2ObjectID(campaignID)},
		&basesvc.UpdateData{Set: map[string]interface{}{
			"paymentStatus": campaignmodels.PaymentStatusFailed,
		}},
		nil,
	)
	if err != nil {
		return err
	}

	logrus.WithField("campaign_id", campaignID).Warn("Thanh toán Stripe thất bại")
	return nil
}
