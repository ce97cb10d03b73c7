package service

import (
	"errors"
	"testing"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type EmailServiceSuite struct {
	testutil.BaseServiceTestSuite
	service EmailService
}

func TestEmailService(t *testing.T) {
	suite.Run(t, new(EmailServiceSuite))
}

func (s *EmailServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewEmailService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *EmailServiceSuite) TestSendReminder() {
	resp, err := s.service.SendPaymentReminderEmail(s.GetContext(), dto.SendPaymentReminderEmailRequest{
		ClientName:    "Birch Cafe",
		ClientEmail:   "owner@birch.test",
		InvoiceNumber: "INV-42",
		Amount:        decimal.RequireFromString("99.5"),
		DueDate:       "March 1, 2024",
		DaysOverdue:   14,
		InvoiceURL:    "https://portal.test/invoices/inv_42",
	})
	s.NoError(err)
	s.True(resp.Success)
	s.Equal("msg_test", resp.MessageID)

	sent := s.GetEmailSender().Sent()
	s.Require().Len(sent, 1)
	s.Equal("Payment Reminder: Invoice #INV-42 is Overdue", sent[0].Subject)
}

func (s *EmailServiceSuite) TestDisabledSenderIsNotAnError() {
	s.GetEmailSender().Enabled = false

	resp, err := s.service.SendTestEmail(s.GetContext(), dto.SendTestEmailRequest{To: "me@builder.test"})
	s.NoError(err)
	s.False(resp.Success)
	s.Empty(s.GetEmailSender().Sent())
}

func (s *EmailServiceSuite) TestProviderFailure() {
	s.GetEmailSender().Err = errors.New("provider unavailable")

	resp, err := s.service.SendWelcomeEmail(s.GetContext(), dto.SendWelcomeEmailRequest{
		ClientName:  "Birch Cafe",
		ClientEmail: "owner@birch.test",
	})
	s.Error(err)
	s.Equal(emailFailedMessage, ierr.HintOf(err))
	s.Require().NotNil(resp)
	s.False(resp.Success)
	s.Equal(emailFailedMessage, resp.Message)
}

func (s *EmailServiceSuite) TestInvalidRecipient() {
	_, err := s.service.SendTestEmail(s.GetContext(), dto.SendTestEmailRequest{To: "not-an-address"})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}
