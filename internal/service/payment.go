package service

import (
	"context"
	"strings"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/domain/invoice"
	"github.com/contractorpro/contractorpro/internal/domain/payment"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/events"
	"github.com/contractorpro/contractorpro/internal/integration/stripe"
	"github.com/contractorpro/contractorpro/internal/metrics"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
)

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, req dto.CreatePaymentIntentRequest) (*dto.CreatePaymentIntentResponse, error)
	CreateCheckoutSession(ctx context.Context, req dto.CreateCheckoutSessionRequest) (*dto.CreateCheckoutSessionResponse, error)
	GetPaymentIntentStatus(ctx context.Context, paymentIntentID string) (*dto.PaymentIntentStatusResponse, error)
	GetCheckoutSessionStatus(ctx context.Context, sessionID string) (*dto.CheckoutSessionStatusResponse, error)

	// RecordPayment stores a completed payment and marks the invoice paid in one transaction
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*dto.PaymentResponse, error)
	CreateRefund(ctx context.Context, req dto.CreateRefundRequest) (*dto.RefundResponse, error)
	ListPayments(ctx context.Context, filter *types.PaymentFilter) (*dto.ListPaymentsResponse, error)

	// HandleWebhook verifies and applies a Stripe event. Unknown event types are acknowledged.
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*dto.WebhookResponse, error)
}

type paymentService struct {
	ServiceParams
}

func NewPaymentService(params ServiceParams) PaymentService {
	return &paymentService{
		ServiceParams: params,
	}
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, req dto.CreatePaymentIntentRequest) (*dto.CreatePaymentIntentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv, err := s.InvoiceRepo.Get(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}

	pi, err := s.Gateway.CreatePaymentIntent(ctx, &stripe.CreatePaymentIntentInput{
		InvoiceID:   inv.ID,
		AmountCents: stripe.ToCents(req.Amount),
		Currency:    req.Currency,
		Description: "Payment for invoice " + inv.InvoiceNumber,
		ClientEmail: req.ClientEmail,
		ClientName:  req.ClientName,
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreatePaymentIntentResponse{
		ClientSecret:    pi.ClientSecret,
		PaymentIntentID: pi.ID,
	}, nil
}

func (s *paymentService) CreateCheckoutSession(ctx context.Context, req dto.CreateCheckoutSessionRequest) (*dto.CreateCheckoutSessionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv, err := s.InvoiceRepo.Get(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}

	session, err := s.Gateway.CreateCheckoutSession(ctx, &stripe.CreateCheckoutSessionInput{
		InvoiceID:     inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		AmountCents:   stripe.ToCents(req.Amount),
		Currency:      req.Currency,
		ClientEmail:   req.ClientEmail,
		ClientName:    req.ClientName,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateCheckoutSessionResponse{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

func (s *paymentService) GetPaymentIntentStatus(ctx context.Context, paymentIntentID string) (*dto.PaymentIntentStatusResponse, error) {
	pi, err := s.Gateway.GetPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}
	return &dto.PaymentIntentStatusResponse{
		Status:   pi.Status,
		Amount:   stripe.FromCents(pi.AmountCents),
		Currency: strings.ToUpper(pi.Currency),
	}, nil
}

func (s *paymentService) GetCheckoutSessionStatus(ctx context.Context, sessionID string) (*dto.CheckoutSessionStatusResponse, error) {
	session, err := s.Gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &dto.CheckoutSessionStatusResponse{
		PaymentStatus:   session.PaymentStatus,
		PaymentIntentID: session.PaymentIntentID,
	}, nil
}

func (s *paymentService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv, err := s.InvoiceRepo.Get(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}

	p := req.ToPayment(ctx, s.now())
	if err := s.recordPayment(ctx, inv, p); err != nil {
		return nil, err
	}
	return &dto.PaymentResponse{Payment: p}, nil
}

func (s *paymentService) recordPayment(ctx context.Context, inv *invoice.Invoice, p *payment.Payment) error {
	err := s.DB.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.PaymentRepo.Create(txCtx, p); err != nil {
			return err
		}
		inv.Status = types.InvoiceStatusPaid
		inv.UpdatedAt = p.PaymentDate
		return s.InvoiceRepo.Update(txCtx, inv)
	})
	if err != nil {
		return err
	}

	metrics.RecordPayment(string(p.PaymentMethod))
	s.Logger.Infow("recorded payment",
		"payment_id", p.ID,
		"invoice_id", inv.ID,
		"amount", p.Amount.StringFixed(2),
		"payment_method", p.PaymentMethod,
		"user_id", p.UserID,
	)

	s.publish(ctx, types.TopicPaymentRecorded, &events.PaymentRecordedPayload{
		PaymentID: p.ID,
		InvoiceID: inv.ID,
		Amount:    p.Amount,
		Method:    string(p.PaymentMethod),
	})
	return nil
}

func (s *paymentService) CreateRefund(ctx context.Context, req dto.CreateRefundRequest) (*dto.RefundResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	recorded, err := s.PaymentRepo.GetByTransactionID(ctx, req.PaymentIntentID)
	if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}
	if recorded != nil && recorded.UserID != types.GetUserID(ctx) {
		return nil, ierr.NewError("payment belongs to another user").
			WithHint("Payment not found").
			Mark(ierr.ErrNotFound)
	}

	var amountCents *int64
	if req.Amount != nil {
		amountCents = lo.ToPtr(stripe.ToCents(*req.Amount))
	}

	refund, err := s.Gateway.CreateRefund(ctx, req.PaymentIntentID, amountCents)
	if err != nil {
		return nil, err
	}

	if recorded != nil {
		if err := s.markRefunded(ctx, recorded); err != nil {
			return nil, err
		}
	}

	return &dto.RefundResponse{
		RefundID: refund.ID,
		Status:   refund.Status,
		Amount:   stripe.FromCents(refund.AmountCents),
	}, nil
}

func (s *paymentService) markRefunded(ctx context.Context, p *payment.Payment) error {
	if p.Status == types.PaymentStatusRefunded {
		return nil
	}
	p.Status = types.PaymentStatusRefunded
	p.UpdatedAt = s.now()
	return s.PaymentRepo.Update(ctx, p)
}

func (s *paymentService) ListPayments(ctx context.Context, filter *types.PaymentFilter) (*dto.ListPaymentsResponse, error) {
	if filter == nil {
		filter = types.NewPaymentFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := newListResponse(payments, len(payments), filter.QueryFilter, func(p *payment.Payment) *dto.PaymentResponse {
		return &dto.PaymentResponse{Payment: p}
	})
	return &resp, nil
}

func (s *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) (*dto.WebhookResponse, error) {
	event, err := s.Gateway.ParseWebhookEvent(payload, signature)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("received stripe webhook",
		"event_id", event.ID,
		"event_type", event.Type,
		"object_id", event.ObjectID,
	)

	switch event.Type {
	case stripe.EventPaymentIntentSucceeded:
		err = s.handlePaymentSucceeded(ctx, event)
	case stripe.EventChargeRefunded:
		err = s.handleChargeRefunded(ctx, event)
	case stripe.EventPaymentIntentPaymentFailed:
		s.Logger.Warnw("stripe payment failed",
			"payment_intent_id", event.PaymentIntentID,
			"invoice_id", event.Metadata[stripe.MetadataInvoiceID],
		)
	case stripe.EventCheckoutSessionCompleted:
		s.Logger.Infow("stripe checkout session completed",
			"session_id", event.ObjectID,
			"payment_intent_id", event.PaymentIntentID,
			"invoice_id", event.Metadata[stripe.MetadataInvoiceID],
		)
	default:
		s.Logger.Debugw("ignoring stripe webhook", "event_type", event.Type)
	}
	if err != nil {
		return nil, err
	}

	return &dto.WebhookResponse{Received: true, Type: event.Type}, nil
}

// handlePaymentSucceeded records the payment once per payment intent. Stripe
// retries deliveries, so a second delivery finds the payment and stops.
func (s *paymentService) handlePaymentSucceeded(ctx context.Context, event *stripe.WebhookEvent) error {
	invoiceID := event.Metadata[stripe.MetadataInvoiceID]
	if invoiceID == "" {
		s.Logger.Warnw("payment intent without invoice metadata", "payment_intent_id", event.PaymentIntentID)
		return nil
	}

	existing, err := s.PaymentRepo.GetByTransactionID(ctx, event.PaymentIntentID)
	if err != nil && !ierr.IsNotFound(err) {
		return err
	}
	if existing != nil {
		s.Logger.Infow("payment already recorded",
			"payment_id", existing.ID,
			"payment_intent_id", event.PaymentIntentID,
		)
		return nil
	}

	inv, err := s.InvoiceRepo.GetUnscoped(ctx, invoiceID)
	if err != nil {
		if ierr.IsNotFound(err) {
			s.Logger.Warnw("payment intent for unknown invoice",
				"payment_intent_id", event.PaymentIntentID,
				"invoice_id", invoiceID,
			)
			return nil
		}
		return err
	}

	// webhooks carry no session; act as the invoice owner
	ownerCtx := types.SetUserID(ctx, inv.UserID)
	now := s.now()
	base := types.GetDefaultBaseModel(ownerCtx)
	base.CreatedAt, base.UpdatedAt = now, now

	p := &payment.Payment{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		InvoiceID:     inv.ID,
		Amount:        stripe.FromCents(event.AmountCents),
		PaymentMethod: types.PaymentMethodCard,
		Status:        types.PaymentStatusCompleted,
		TransactionID: event.PaymentIntentID,
		Notes:         "Recorded from Stripe webhook",
		PaymentDate:   now,
		BaseModel:     base,
	}
	return s.recordPayment(ownerCtx, inv, p)
}

func (s *paymentService) handleChargeRefunded(ctx context.Context, event *stripe.WebhookEvent) error {
	if event.PaymentIntentID == "" {
		return nil
	}
	p, err := s.PaymentRepo.GetByTransactionID(ctx, event.PaymentIntentID)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil
		}
		return err
	}
	return s.markRefunded(types.SetUserID(ctx, p.UserID), p)
}
