package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/contractorpro/contractorpro/internal/domain/client"
	"github.com/contractorpro/contractorpro/internal/domain/invoice"
	"github.com/contractorpro/contractorpro/internal/events"
	"github.com/contractorpro/contractorpro/internal/testutil"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type NotificationServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  NotificationService
	testData struct {
		client  *client.Client
		invoice *invoice.Invoice
	}
}

func TestNotificationService(t *testing.T) {
	suite.Run(t, new(NotificationServiceSuite))
}

func (s *NotificationServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.GetConfig().Notifications.InvoiceEmail = true
	s.GetConfig().Notifications.PaymentConfirmation = true
	s.service = NewNotificationService(newTestServiceParams(&s.BaseServiceTestSuite))

	s.testData.client = seedClient(&s.BaseServiceTestSuite, "Birch Cafe", "owner@birch.test")
	due := s.GetNow().AddDate(0, 0, 30)
	s.testData.invoice = &invoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		ClientID:      s.testData.client.ID,
		InvoiceNumber: "REC-1710493200000-1",
		Status:        types.InvoiceStatusSent,
		IssueDate:     s.GetNow(),
		DueDate:       lo.ToPtr(due),
		Total:         decimal.RequireFromString("640.00"),
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().InvoiceRepo.Create(s.GetContext(), s.testData.invoice))
}

func (s *NotificationServiceSuite) event(name string, payload interface{}) *events.Event {
	event, err := events.NewEvent(name, testutil.DefaultUserID, payload)
	s.Require().NoError(err)
	return event
}

func (s *NotificationServiceSuite) paymentRecorded() *events.Event {
	return s.event(types.TopicPaymentRecorded, &events.PaymentRecordedPayload{
		PaymentID: "pay_1",
		InvoiceID: s.testData.invoice.ID,
		Amount:    decimal.RequireFromString("640"),
		Method:    string(types.PaymentMethodCard),
	})
}

func (s *NotificationServiceSuite) TestPaymentRecordedSendsConfirmation() {
	s.NoError(s.service.HandleEvent(s.GetContext(), s.paymentRecorded()))

	sent := s.GetEmailSender().Sent()
	s.Require().Len(sent, 1)
	s.Equal("owner@birch.test", sent[0].To)
	s.Equal("Payment Confirmation for Invoice #REC-1710493200000-1", sent[0].Subject)
	s.True(strings.Contains(sent[0].Text, "640.00"))
}

func (s *NotificationServiceSuite) TestInvoiceGeneratedSendsInvoice() {
	event := s.event(types.TopicInvoiceGenerated, &events.InvoiceGeneratedPayload{
		InvoiceID:     s.testData.invoice.ID,
		InvoiceNumber: s.testData.invoice.InvoiceNumber,
		ClientID:      s.testData.client.ID,
		Total:         s.testData.invoice.Total,
	})
	s.NoError(s.service.HandleEvent(s.GetContext(), event))

	sent := s.GetEmailSender().Sent()
	s.Require().Len(sent, 1)
	s.Equal("owner@birch.test", sent[0].To)
	s.True(strings.HasPrefix(sent[0].Subject, "Invoice #REC-1710493200000-1 from "))
	s.True(strings.Contains(sent[0].Text, "April 14, 2024"))
}

func (s *NotificationServiceSuite) TestDisabledNotificationSendsNothing() {
	s.GetConfig().Notifications.PaymentConfirmation = false
	defer func() { s.GetConfig().Notifications.PaymentConfirmation = true }()

	s.NoError(s.service.HandleEvent(s.GetContext(), s.paymentRecorded()))
	s.Empty(s.GetEmailSender().Sent())
}

func (s *NotificationServiceSuite) TestClientWithoutEmailIsSkipped() {
	s.testData.client.Email = ""
	s.NoError(s.GetStores().ClientRepo.Update(s.GetContext(), s.testData.client))

	s.NoError(s.service.HandleEvent(s.GetContext(), s.paymentRecorded()))
	s.Empty(s.GetEmailSender().Sent())
}

func (s *NotificationServiceSuite) TestSendFailureIsReturnedForRetry() {
	s.GetEmailSender().Err = errors.New("provider unavailable")

	err := s.service.HandleEvent(s.GetContext(), s.paymentRecorded())
	s.Error(err)
}

func (s *NotificationServiceSuite) TestOtherEventsAreIgnored() {
	event := s.event(types.TopicTimeEntryClockedOut, &events.TimeEntryClockedOutPayload{EntryID: "gte_1"})
	s.NoError(s.service.HandleEvent(s.GetContext(), event))
	s.Empty(s.GetEmailSender().Sent())
}
