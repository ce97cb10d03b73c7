package service

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/email"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
)

const emailFailedMessage = "Failed to send email"

// EmailService exposes the transactional templates to the API. A failed send returns both a
// response with Success false and the provider error.
type EmailService interface {
	SendInvoiceEmail(ctx context.Context, req dto.SendInvoiceEmailRequest) (*dto.SendEmailResponse, error)
	SendPaymentConfirmationEmail(ctx context.Context, req dto.SendPaymentConfirmationEmailRequest) (*dto.SendEmailResponse, error)
	SendPaymentReminderEmail(ctx context.Context, req dto.SendPaymentReminderEmailRequest) (*dto.SendEmailResponse, error)
	SendWelcomeEmail(ctx context.Context, req dto.SendWelcomeEmailRequest) (*dto.SendEmailResponse, error)
	SendTestEmail(ctx context.Context, req dto.SendTestEmailRequest) (*dto.SendEmailResponse, error)
}

type emailService struct {
	ServiceParams
}

func NewEmailService(params ServiceParams) EmailService {
	return &emailService{
		ServiceParams: params,
	}
}

func (s *emailService) SendInvoiceEmail(ctx context.Context, req dto.SendInvoiceEmailRequest) (*dto.SendEmailResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return toSendEmailResponse(s.Email.SendInvoice(ctx, email.InvoiceEmailData{
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		InvoiceNumber: req.InvoiceNumber,
		InvoiceDate:   req.InvoiceDate,
		DueDate:       req.DueDate,
		Amount:        req.Amount,
		Currency:      req.Currency,
		InvoiceURL:    req.InvoiceURL,
		CompanyName:   req.CompanyName,
	}))
}

func (s *emailService) SendPaymentConfirmationEmail(ctx context.Context, req dto.SendPaymentConfirmationEmailRequest) (*dto.SendEmailResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return toSendEmailResponse(s.Email.SendPaymentConfirmation(ctx, email.PaymentConfirmationEmailData{
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		InvoiceNumber: req.InvoiceNumber,
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		CompanyName:   req.CompanyName,
	}))
}

func (s *emailService) SendPaymentReminderEmail(ctx context.Context, req dto.SendPaymentReminderEmailRequest) (*dto.SendEmailResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return toSendEmailResponse(s.Email.SendPaymentReminder(ctx, email.PaymentReminderEmailData{
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		InvoiceNumber: req.InvoiceNumber,
		Amount:        req.Amount,
		Currency:      req.Currency,
		DueDate:       req.DueDate,
		DaysOverdue:   req.DaysOverdue,
		InvoiceURL:    req.InvoiceURL,
		CompanyName:   req.CompanyName,
	}))
}

func (s *emailService) SendWelcomeEmail(ctx context.Context, req dto.SendWelcomeEmailRequest) (*dto.SendEmailResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return toSendEmailResponse(s.Email.SendWelcome(ctx, email.WelcomeEmailData{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		CompanyName: req.CompanyName,
	}))
}

func (s *emailService) SendTestEmail(ctx context.Context, req dto.SendTestEmailRequest) (*dto.SendEmailResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return toSendEmailResponse(s.Email.SendTest(ctx, req.To))
}

func toSendEmailResponse(resp *email.SendEmailResponse, err error) (*dto.SendEmailResponse, error) {
	if err != nil {
		return &dto.SendEmailResponse{Success: false, Message: emailFailedMessage},
			ierr.WithError(err).
				WithHint(emailFailedMessage).
				Mark(ierr.ErrHTTPClient)
	}
	if !resp.Success {
		return &dto.SendEmailResponse{Success: false, Message: resp.Error}, nil
	}
	return &dto.SendEmailResponse{
		Success:   true,
		Message:   "Email sent successfully",
		MessageID: resp.MessageID,
	}, nil
}
