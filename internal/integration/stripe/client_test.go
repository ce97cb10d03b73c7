package stripe

import (
	"context"
	"testing"

	"github.com/contractorpro/contractorpro/internal/config"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func newTestClient(secretKey, webhookSecret string) Gateway {
	cfg := config.GetDefaultConfig()
	cfg.Stripe.SecretKey = secretKey
	cfg.Stripe.WebhookSecret = webhookSecret
	return NewClient(cfg, logger.NewNoopLogger())
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(15050), ToCents(decimal.RequireFromString("150.50")))
	assert.Equal(t, int64(1000), ToCents(decimal.RequireFromString("9.995")))
	assert.Equal(t, int64(1), ToCents(decimal.RequireFromString("0.005")))
	assert.True(t, decimal.RequireFromString("150.5").Equal(FromCents(15050)))
}

func TestUnconfiguredClientRefusesCalls(t *testing.T) {
	c := newTestClient("", "")

	_, err := c.CreatePaymentIntent(context.Background(), &CreatePaymentIntentInput{AmountCents: 100, Currency: "USD"})
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidOperation(err))
	assert.Equal(t, "Stripe API key not configured", ierr.HintOf(err))

	_, err = c.ParseWebhookEvent([]byte(`{}`), "sig")
	assert.True(t, ierr.IsInvalidOperation(err))
}

func TestParseWebhookEventPaymentIntentSucceeded(t *testing.T) {
	c := newTestClient("", testWebhookSecret)
	payload := []byte(`{
		"id": "evt_1",
		"object": "event",
		"type": "payment_intent.succeeded",
		"data": {"object": {
			"id": "pi_123",
			"object": "payment_intent",
			"amount": 15050,
			"currency": "usd",
			"metadata": {"invoiceId": "inv_1", "clientEmail": "jane@example.com"}
		}}
	}`)
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload: payload,
		Secret:  testWebhookSecret,
	})

	event, err := c.ParseWebhookEvent(signed.Payload, signed.Header)
	require.NoError(t, err)
	assert.Equal(t, EventPaymentIntentSucceeded, event.Type)
	assert.Equal(t, "pi_123", event.PaymentIntentID)
	assert.Equal(t, int64(15050), event.AmountCents)
	assert.Equal(t, "inv_1", event.Metadata[MetadataInvoiceID])
}

func TestParseWebhookEventBadSignature(t *testing.T) {
	c := newTestClient("", testWebhookSecret)

	_, err := c.ParseWebhookEvent([]byte(`{"id":"evt_1","type":"charge.refunded"}`), "t=1,v1=deadbeef")
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
	assert.Equal(t, "Invalid webhook signature or payload", ierr.HintOf(err))
}
