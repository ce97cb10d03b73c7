package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/domain/invoice"
	"github.com/contractorpro/contractorpro/internal/email"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/events"
	pubsubRouter "github.com/contractorpro/contractorpro/internal/pubsub/router"
	"github.com/contractorpro/contractorpro/internal/types"
)

const emailDateLayout = "January 2, 2006"

// NotificationService turns domain events into client emails
type NotificationService interface {
	RegisterHandlers(router *pubsubRouter.Router, subscriber message.Subscriber)
	HandleEvent(ctx context.Context, event *events.Event) error
}

type notificationService struct {
	ServiceParams
}

func NewNotificationService(params ServiceParams) NotificationService {
	return &notificationService{
		ServiceParams: params,
	}
}

func (s *notificationService) RegisterHandlers(router *pubsubRouter.Router, subscriber message.Subscriber) {
	router.AddNoPublishHandler(
		"notification_payment_recorded",
		types.TopicPaymentRecorded,
		subscriber,
		s.processMessage,
	)
	router.AddNoPublishHandler(
		"notification_invoice_generated",
		types.TopicInvoiceGenerated,
		subscriber,
		s.processMessage,
	)
	s.Logger.Infow("registered notification handlers",
		"payment_confirmation", s.Config.Notifications.PaymentConfirmation,
		"invoice_email", s.Config.Notifications.InvoiceEmail,
	)
}

func (s *notificationService) processMessage(msg *message.Message) error {
	var event events.Event
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		s.Logger.Errorw("failed to unmarshal event",
			"error", err,
			"message_uuid", msg.UUID,
		)
		// a malformed message never succeeds; ack it
		return nil
	}
	return s.HandleEvent(msg.Context(), &event)
}

// HandleEvent runs with the publishing user's scope. Send failures are returned so the router
// retries the message.
func (s *notificationService) HandleEvent(ctx context.Context, event *events.Event) error {
	if s.Email == nil {
		return nil
	}
	ctx = types.SetUserID(ctx, event.UserID)

	switch event.EventName {
	case types.TopicPaymentRecorded:
		if !s.Config.Notifications.PaymentConfirmation {
			return nil
		}
		var payload events.PaymentRecordedPayload
		if err := event.Decode(&payload); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid payment.recorded payload").
				Mark(ierr.ErrValidation)
		}
		return s.sendPaymentConfirmation(ctx, &payload)
	case types.TopicInvoiceGenerated:
		if !s.Config.Notifications.InvoiceEmail {
			return nil
		}
		var payload events.InvoiceGeneratedPayload
		if err := event.Decode(&payload); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid invoice.generated payload").
				Mark(ierr.ErrValidation)
		}
		return s.sendInvoice(ctx, &payload)
	}
	return nil
}

func (s *notificationService) sendPaymentConfirmation(ctx context.Context, payload *events.PaymentRecordedPayload) error {
	inv, clientName, clientEmail, err := s.recipient(ctx, payload.InvoiceID)
	if err != nil || clientEmail == "" {
		return err
	}

	_, err = s.Email.SendPaymentConfirmation(ctx, email.PaymentConfirmationEmailData{
		ClientName:    clientName,
		ClientEmail:   clientEmail,
		InvoiceNumber: inv.InvoiceNumber,
		Amount:        payload.Amount,
		Currency:      dto.DefaultCurrency,
		PaymentDate:   s.now().Format(emailDateLayout),
		PaymentMethod: payload.Method,
	})
	return err
}

func (s *notificationService) sendInvoice(ctx context.Context, payload *events.InvoiceGeneratedPayload) error {
	inv, clientName, clientEmail, err := s.recipient(ctx, payload.InvoiceID)
	if err != nil || clientEmail == "" {
		return err
	}

	dueDate := ""
	if inv.DueDate != nil {
		dueDate = inv.DueDate.Format(emailDateLayout)
	}

	_, err = s.Email.SendInvoice(ctx, email.InvoiceEmailData{
		ClientName:    clientName,
		ClientEmail:   clientEmail,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.IssueDate.Format(emailDateLayout),
		DueDate:       dueDate,
		Amount:        inv.Total,
		Currency:      dto.DefaultCurrency,
		InvoiceURL:    s.Config.Portal.BaseURL + "/invoices/" + inv.ID,
	})
	return err
}

// recipient loads the invoice and its client. A client without an email yields an empty address.
func (s *notificationService) recipient(ctx context.Context, invoiceID string) (*invoice.Invoice, string, string, error) {
	inv, err := s.InvoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		return nil, "", "", err
	}
	c, err := s.ClientRepo.Get(ctx, inv.ClientID)
	if err != nil {
		return nil, "", "", err
	}
	if c.Email == "" {
		s.Logger.Debugw("client has no email, skipping notification",
			"client_id", c.ID,
			"invoice_id", inv.ID,
		)
	}
	return inv, c.Name, c.Email, nil
}
