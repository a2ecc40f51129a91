// Package paymentsvc - Test xác thực chữ ký webhook Stripe.
package paymentsvc

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"adcraft/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
)

const testWebhookSecret = "whsec_test_secret"

// signPayload tạo header Stripe-Signature hợp lệ cho payload
// (HMAC-SHA256 trên "<timestamp>.<payload>").
func signPayload(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("%d", ts.Unix())))
	mac.Write([]byte("."))
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func eventPayload(eventID, eventType string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "%s",
		"object": "event",
		"api_version": "%s",
		"type": "%s",
		"data": {
			"object": {
				"id": "cs_test_123",
				"object": "checkout.session",
				"amount_total": 5000,
				"metadata": {"campaignId": "68d1f2a3b4c5d6e7f8091a2b"}
			}
		}
	}`, eventID, stripe.APIVersion, eventType))
}

func TestVerifyEvent_ValidSignature(t *testing.T) {
	s := &StripeWebhookService{webhookSecret: testWebhookSecret}
	payload := eventPayload("evt_test_1", EventCheckoutCompleted)
	header := signPayload(payload, testWebhookSecret, time.Now())

	event, err := s.VerifyEvent(payload, header)
	require.NoError(t, err)
	assert.Equal(t, "evt_test_1", event.ID)
	assert.Equal(t, EventCheckoutCompleted, string(event.Type))
}

func TestVerifyEvent_WrongSecret(t *testing.T) {
	s := &StripeWebhookService{webhookSecret: testWebhookSecret}
	payload := eventPayload("evt_test_2", EventCheckoutCompleted)
	header := signPayload(payload, "whsec_other_secret", time.Now())

	_, err := s.VerifyEvent(payload, header)
	assert.ErrorIs(t, err, common.ErrWebhookSignature)
}

func TestVerifyEvent_GarbageHeader(t *testing.T) {
	s := &StripeWebhookService{webhookSecret: testWebhookSecret}
	payload := eventPayload("evt_test_3", EventCheckoutPaymentFailed)

	_, err := s.VerifyEvent(payload, "not-a-signature")
	assert.Error(t, err)
}

func TestVerifyEvent_TamperedPayload(t *testing.T) {
	s := &StripeWebhookService{webhookSecret: testWebhookSecret}
	payload := eventPayload("evt_test_4", EventCheckoutCompleted)
	header := signPayload(payload, testWebhookSecret, time.Now())

	tampered := append([]byte{}, payload...)
	tampered[len(tampered)-2] = ' '

	_, err := s.VerifyEvent(tampered, header)
	assert.Error(t, err)
}

func TestPaymentLogFor(t *testing.T) {
	payload := eventPayload("evt_test_5", EventCheckoutCompleted)
	event := stripe.Event{ID: "evt_test_5", Type: stripe.EventType(EventCheckoutCompleted)}

	log := paymentLogFor(event, payload)
	assert.Equal(t, "stripe", log.Source)
	assert.Equal(t, "evt_test_5", log.EventID)
	assert.Equal(t, EventCheckoutCompleted, log.EventType)
	assert.Equal(t, string(payload), log.Payload)
}
