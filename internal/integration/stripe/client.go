package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/contractorpro/contractorpro/internal/config"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/samber/lo"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	EventPaymentIntentSucceeded     = "payment_intent.succeeded"
	EventPaymentIntentPaymentFailed = "payment_intent.payment_failed"
	EventCheckoutSessionCompleted   = "checkout.session.completed"
	EventChargeRefunded             = "charge.refunded"

	MetadataInvoiceID     = "invoiceId"
	MetadataInvoiceNumber = "invoiceNumber"
	MetadataClientEmail   = "clientEmail"
	MetadataClientName    = "clientName"
)

// Gateway is the card payment provider used by the payment service
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, input *CreatePaymentIntentInput) (*PaymentIntent, error)
	CreateCheckoutSession(ctx context.Context, input *CreateCheckoutSessionInput) (*CheckoutSession, error)
	GetPaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
	CreateRefund(ctx context.Context, paymentIntentID string, amountCents *int64) (*Refund, error)
	ParseWebhookEvent(payload []byte, signature string) (*WebhookEvent, error)
}

// Client handles Stripe API client setup and configuration
type Client struct {
	stripe        *stripe.Client
	webhookSecret string
	logger        *logger.Logger
}

// NewClient creates a new Stripe client. Calls fail with a hint when no secret key is configured.
func NewClient(cfg *config.Configuration, logger *logger.Logger) Gateway {
	c := &Client{
		webhookSecret: cfg.Stripe.WebhookSecret,
		logger:        logger,
	}
	if cfg.Stripe.SecretKey != "" {
		c.stripe = stripe.NewClient(cfg.Stripe.SecretKey, nil)
	} else {
		logger.Warn("stripe secret key not configured, card payments are disabled")
	}
	return c
}

func (c *Client) client() (*stripe.Client, error) {
	if c.stripe == nil {
		return nil, ierr.NewError("stripe client is not configured").
			WithHint("Stripe API key not configured").
			Mark(ierr.ErrInvalidOperation)
	}
	return c.stripe, nil
}

func (c *Client) CreatePaymentIntent(ctx context.Context, input *CreatePaymentIntentInput) (*PaymentIntent, error) {
	sc, err := c.client()
	if err != nil {
		return nil, err
	}

	params := &stripe.PaymentIntentCreateParams{
		Amount:       stripe.Int64(input.AmountCents),
		Currency:     stripe.String(strings.ToLower(input.Currency)),
		Description:  stripe.String(input.Description),
		ReceiptEmail: stripe.String(input.ClientEmail),
		Metadata: map[string]string{
			MetadataInvoiceID:   input.InvoiceID,
			MetadataClientEmail: input.ClientEmail,
			MetadataClientName:  input.ClientName,
		},
	}

	pi, err := sc.V1PaymentIntents.Create(ctx, params)
	if err != nil {
		c.logger.Errorw("failed to create stripe payment intent",
			"error", err,
			"invoice_id", input.InvoiceID,
		)
		return nil, providerError(err, "Failed to create payment intent")
	}

	c.logger.Infow("created stripe payment intent",
		"payment_intent_id", pi.ID,
		"invoice_id", input.InvoiceID,
		"amount_cents", input.AmountCents,
	)
	return toPaymentIntent(pi), nil
}

func (c *Client) CreateCheckoutSession(ctx context.Context, input *CreateCheckoutSessionInput) (*CheckoutSession, error) {
	sc, err := c.client()
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionCreateParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency: stripe.String(strings.ToLower(input.Currency)),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("Invoice #%s", input.InvoiceNumber)),
						Description: stripe.String(fmt.Sprintf("Payment for invoice %s", input.InvoiceNumber)),
					},
					UnitAmount: stripe.Int64(input.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(input.SuccessURL),
		CancelURL:     stripe.String(input.CancelURL),
		CustomerEmail: stripe.String(input.ClientEmail),
		Metadata: map[string]string{
			MetadataInvoiceID:     input.InvoiceID,
			MetadataInvoiceNumber: input.InvoiceNumber,
		},
	}

	session, err := sc.V1CheckoutSessions.Create(ctx, params)
	if err != nil {
		c.logger.Errorw("failed to create stripe checkout session",
			"error", err,
			"invoice_id", input.InvoiceID,
		)
		return nil, providerError(err, "Failed to create checkout session")
	}

	return toCheckoutSession(session), nil
}

func (c *Client) GetPaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error) {
	sc, err := c.client()
	if err != nil {
		return nil, err
	}

	pi, err := sc.V1PaymentIntents.Retrieve(ctx, paymentIntentID, nil)
	if err != nil {
		return nil, providerError(err, "Failed to get payment intent")
	}
	return toPaymentIntent(pi), nil
}

func (c *Client) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	sc, err := c.client()
	if err != nil {
		return nil, err
	}

	session, err := sc.V1CheckoutSessions.Retrieve(ctx, sessionID, nil)
	if err != nil {
		return nil, providerError(err, "Failed to get checkout session")
	}
	return toCheckoutSession(session), nil
}

func (c *Client) CreateRefund(ctx context.Context, paymentIntentID string, amountCents *int64) (*Refund, error) {
	sc, err := c.client()
	if err != nil {
		return nil, err
	}

	params := &stripe.RefundCreateParams{
		PaymentIntent: stripe.String(paymentIntentID),
	}
	if amountCents != nil {
		params.Amount = stripe.Int64(*amountCents)
	}

	refund, err := sc.V1Refunds.Create(ctx, params)
	if err != nil {
		c.logger.Errorw("failed to create stripe refund",
			"error", err,
			"payment_intent_id", paymentIntentID,
		)
		return nil, providerError(err, "Failed to create refund")
	}

	c.logger.Infow("created stripe refund",
		"refund_id", refund.ID,
		"payment_intent_id", paymentIntentID,
		"amount_cents", refund.Amount,
	)
	return &Refund{
		ID:              refund.ID,
		PaymentIntentID: paymentIntentID,
		AmountCents:     refund.Amount,
		Status:          string(refund.Status),
	}, nil
}

// ParseWebhookEvent verifies the signature and extracts the object the event refers to
func (c *Client) ParseWebhookEvent(payload []byte, signature string) (*WebhookEvent, error) {
	if c.webhookSecret == "" {
		return nil, ierr.NewError("stripe webhook secret is not configured").
			WithHint("Webhook secret not configured").
			Mark(ierr.ErrInvalidOperation)
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, c.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		c.logger.Errorw("stripe webhook verification failed", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Invalid webhook signature or payload").
			Mark(ierr.ErrValidation)
	}

	return decodeEvent(&event)
}

func decodeEvent(event *stripe.Event) (*WebhookEvent, error) {
	out := &WebhookEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}
	if event.Data == nil {
		return out, nil
	}

	var err error
	switch out.Type {
	case EventPaymentIntentSucceeded, EventPaymentIntentPaymentFailed:
		var pi stripe.PaymentIntent
		if err = json.Unmarshal(event.Data.Raw, &pi); err == nil {
			out.ObjectID = pi.ID
			out.PaymentIntentID = pi.ID
			out.AmountCents = pi.Amount
			out.Currency = string(pi.Currency)
			out.Metadata = pi.Metadata
		}
	case EventCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err = json.Unmarshal(event.Data.Raw, &session); err == nil {
			out.ObjectID = session.ID
			out.AmountCents = session.AmountTotal
			out.Currency = string(session.Currency)
			out.Metadata = session.Metadata
			if session.PaymentIntent != nil {
				out.PaymentIntentID = session.PaymentIntent.ID
			}
		}
	case EventChargeRefunded:
		var charge stripe.Charge
		if err = json.Unmarshal(event.Data.Raw, &charge); err == nil {
			out.ObjectID = charge.ID
			out.AmountCents = charge.AmountRefunded
			out.Currency = string(charge.Currency)
			out.Metadata = charge.Metadata
			if charge.PaymentIntent != nil {
				out.PaymentIntentID = charge.PaymentIntent.ID
			}
		}
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Malformed %s event", out.Type).
			Mark(ierr.ErrValidation)
	}
	return out, nil
}

func toPaymentIntent(pi *stripe.PaymentIntent) *PaymentIntent {
	return &PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		AmountCents:  pi.Amount,
		Currency:     string(pi.Currency),
		Metadata:     pi.Metadata,
	}
}

func toCheckoutSession(session *stripe.CheckoutSession) *CheckoutSession {
	out := &CheckoutSession{
		ID:            session.ID,
		URL:           session.URL,
		PaymentStatus: string(session.PaymentStatus),
	}
	if session.PaymentIntent != nil {
		out.PaymentIntentID = session.PaymentIntent.ID
	}
	return out
}

// providerError keeps the stripe error code as a reportable detail
func providerError(err error, hint string) error {
	details := map[string]any{}
	if stripeErr, ok := err.(*stripe.Error); ok {
		details["stripe_error_code"] = string(stripeErr.Code)
		details["stripe_error_type"] = string(stripeErr.Type)
		if stripeErr.Code == stripe.ErrorCodeCardDeclined {
			return ierr.WithError(err).
				WithHint("Payment method declined").
				WithReportableDetails(details).
				Mark(ierr.ErrInvalidOperation)
		}
	}
	return ierr.WithError(err).
		WithHint(hint).
		WithReportableDetails(lo.Assign(details, map[string]any{"provider": "stripe"})).
		Mark(ierr.ErrHTTPClient)
}
