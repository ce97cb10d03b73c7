package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/contractorpro/contractorpro/internal/config"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type mockSender struct {
	mock.Mock
	enabled bool
}

func (m *mockSender) IsEnabled() bool        { return m.enabled }
func (m *mockSender) GetFromAddress() string { return "noreply@contractorpro.com" }

func (m *mockSender) SendEmail(ctx context.Context, from, to, subject, htmlContent, textContent string) (string, error) {
	args := m.Called(ctx, from, to, subject, htmlContent, textContent)
	return args.String(0), args.Error(1)
}

type EmailServiceSuite struct {
	suite.Suite
	ctx    context.Context
	sender *mockSender
	email  *Email
}

func TestEmailService(t *testing.T) {
	suite.Run(t, new(EmailServiceSuite))
}

func (s *EmailServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.sender = &mockSender{enabled: true}
	s.email = NewEmail(s.sender, config.GetDefaultConfig(), logger.NewNoopLogger())
	s.email.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }
}

func (s *EmailServiceSuite) TestSendInvoiceRendersTemplate() {
	var html, text string
	s.sender.On("SendEmail", s.ctx, "noreply@contractorpro.com", "jane@example.com",
		"Invoice #REC-1-1 from ContractorPro", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			html = args.String(4)
			text = args.String(5)
		}).
		Return("msg_1", nil)

	resp, err := s.email.SendInvoice(s.ctx, InvoiceEmailData{
		ClientName:    "Jane <Doe>",
		ClientEmail:   "jane@example.com",
		InvoiceNumber: "REC-1-1",
		InvoiceDate:   "2024-05-01",
		DueDate:       "2024-05-31",
		Amount:        decimal.RequireFromString("1250.5"),
		Currency:      "USD",
		InvoiceURL:    "https://portal.contractorpro.app/abc",
	})

	s.Require().NoError(err)
	s.True(resp.Success)
	s.Equal("msg_1", resp.MessageID)
	s.Contains(html, "Hi Jane &lt;Doe&gt;,")
	s.Contains(html, "USD 1250.50")
	s.Contains(html, "&copy; 2024 ContractorPro")
	s.NotContains(html, "{{")
	s.Equal("Invoice #REC-1-1 for USD 1250.50 is due on 2024-05-31. View: https://portal.contractorpro.app/abc", text)
	s.sender.AssertExpectations(s.T())
}

func (s *EmailServiceSuite) TestSendPaymentReminderSubject() {
	s.sender.On("SendEmail", s.ctx, mock.Anything, "jane@example.com",
		"Payment Reminder: Invoice #INV-1 is Overdue", mock.Anything,
		"Invoice #INV-1 for USD 99.00 is 12 days overdue. Please pay at: https://pay").
		Return("msg_2", nil)

	resp, err := s.email.SendPaymentReminder(s.ctx, PaymentReminderEmailData{
		ClientName:    "Jane",
		ClientEmail:   "jane@example.com",
		InvoiceNumber: "INV-1",
		Amount:        decimal.NewFromInt(99),
		Currency:      "USD",
		DueDate:       "2024-04-19",
		DaysOverdue:   12,
		InvoiceURL:    "https://pay",
	})

	s.Require().NoError(err)
	s.True(resp.Success)
	s.sender.AssertExpectations(s.T())
}

func (s *EmailServiceSuite) TestDisabledSenderIsNotAnError() {
	s.sender.enabled = false

	resp, err := s.email.SendWelcome(s.ctx, WelcomeEmailData{ClientName: "Jane", ClientEmail: "jane@example.com"})

	s.NoError(err)
	s.False(resp.Success)
	s.sender.AssertNotCalled(s.T(), "SendEmail")
}

func (s *EmailServiceSuite) TestProviderFailureIsReturned() {
	s.sender.On("SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("resend unavailable"))

	resp, err := s.email.SendTest(s.ctx, "ops@example.com")

	s.Error(err)
	s.False(resp.Success)
	s.Equal("resend unavailable", resp.Error)
}
