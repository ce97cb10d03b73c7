package testutil

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/integration/stripe"
	"github.com/stretchr/testify/mock"
)

var _ stripe.Gateway = (*MockStripeGateway)(nil)

type MockStripeGateway struct {
	mock.Mock
}

func (m *MockStripeGateway) CreatePaymentIntent(ctx context.Context, input *stripe.CreatePaymentIntentInput) (*stripe.PaymentIntent, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.PaymentIntent), args.Error(1)
}

func (m *MockStripeGateway) CreateCheckoutSession(ctx context.Context, input *stripe.CreateCheckoutSessionInput) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *MockStripeGateway) GetPaymentIntent(ctx context.Context, paymentIntentID string) (*stripe.PaymentIntent, error) {
	args := m.Called(ctx, paymentIntentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.PaymentIntent), args.Error(1)
}

func (m *MockStripeGateway) GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *MockStripeGateway) CreateRefund(ctx context.Context, paymentIntentID string, amountCents *int64) (*stripe.Refund, error) {
	args := m.Called(ctx, paymentIntentID, amountCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.Refund), args.Error(1)
}

func (m *MockStripeGateway) ParseWebhookEvent(payload []byte, signature string) (*stripe.WebhookEvent, error) {
	args := m.Called(payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.WebhookEvent), args.Error(1)
}
