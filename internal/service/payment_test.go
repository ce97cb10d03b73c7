package service

import (
	"context"
	"errors"
	"testing"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/domain/client"
	"github.com/contractorpro/contractorpro/internal/domain/invoice"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/events"
	"github.com/contractorpro/contractorpro/internal/integration/stripe"
	"github.com/contractorpro/contractorpro/internal/testutil"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  PaymentService
	testData struct {
		client  *client.Client
		invoice *invoice.Invoice
	}
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceSuite))
}

func (s *PaymentServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewPaymentService(newTestServiceParams(&s.BaseServiceTestSuite))

	s.testData.client = seedClient(&s.BaseServiceTestSuite, "Oak Dental", "office@oak.test")
	s.testData.invoice = &invoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		ClientID:      s.testData.client.ID,
		InvoiceNumber: "INV-2024-007",
		Status:        types.InvoiceStatusSent,
		IssueDate:     s.GetNow(),
		Total:         decimal.RequireFromString("1250.00"),
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().InvoiceRepo.Create(s.GetContext(), s.testData.invoice))
}

func (s *PaymentServiceSuite) invoiceStatus() types.InvoiceStatus {
	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), s.testData.invoice.ID)
	s.Require().NoError(err)
	return inv.Status
}

func (s *PaymentServiceSuite) payments() []*dto.PaymentResponse {
	resp, err := s.service.ListPayments(s.GetContext(), nil)
	s.Require().NoError(err)
	return resp.Items
}

func (s *PaymentServiceSuite) TestCreatePaymentIntentConvertsToCents() {
	s.GetGateway().On("CreatePaymentIntent", mock.Anything, mock.MatchedBy(func(in *stripe.CreatePaymentIntentInput) bool {
		return in.AmountCents == 12346 &&
			in.Currency == "USD" &&
			in.InvoiceID == s.testData.invoice.ID &&
			in.Description == "Payment for invoice INV-2024-007"
	})).Return(&stripe.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil)

	resp, err := s.service.CreatePaymentIntent(s.GetContext(), dto.CreatePaymentIntentRequest{
		InvoiceID:   s.testData.invoice.ID,
		Amount:      decimal.RequireFromString("123.455"),
		ClientEmail: "office@oak.test",
		ClientName:  "Oak Dental",
	})
	s.NoError(err)
	s.Equal("pi_123", resp.PaymentIntentID)
	s.Equal("pi_123_secret", resp.ClientSecret)
	s.GetGateway().AssertExpectations(s.T())
}

func (s *PaymentServiceSuite) TestCreatePaymentIntentForOtherUsersInvoice() {
	_, err := s.service.CreatePaymentIntent(testutil.SetupContextForUser("user_someone_else"), dto.CreatePaymentIntentRequest{
		InvoiceID:   s.testData.invoice.ID,
		Amount:      decimal.NewFromInt(10),
		ClientEmail: "office@oak.test",
		ClientName:  "Oak Dental",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
	s.Equal("Invoice not found", ierr.HintOf(err))
	s.GetGateway().AssertNotCalled(s.T(), "CreatePaymentIntent", mock.Anything, mock.Anything)
}

func (s *PaymentServiceSuite) TestPaymentIntentStatusInMajorUnits() {
	s.GetGateway().On("GetPaymentIntent", mock.Anything, "pi_123").
		Return(&stripe.PaymentIntent{ID: "pi_123", Status: "succeeded", AmountCents: 125000, Currency: "usd"}, nil)

	resp, err := s.service.GetPaymentIntentStatus(s.GetContext(), "pi_123")
	s.NoError(err)
	s.Equal("succeeded", resp.Status)
	s.Equal("1250.00", resp.Amount.StringFixed(2))
	s.Equal("USD", resp.Currency)
}

func (s *PaymentServiceSuite) TestRecordPaymentMarksInvoicePaid() {
	resp, err := s.service.RecordPayment(s.GetContext(), dto.RecordPaymentRequest{
		InvoiceID: s.testData.invoice.ID,
		Amount:    decimal.RequireFromString("1250"),
	})
	s.NoError(err)
	s.Equal(types.PaymentStatusCompleted, resp.Status)
	s.Equal(types.PaymentMethodCard, resp.PaymentMethod)
	s.Equal(types.InvoiceStatusPaid, s.invoiceStatus())

	published := s.GetPublisher().EventsNamed(types.TopicPaymentRecorded)
	s.Require().Len(published, 1)
	var payload events.PaymentRecordedPayload
	s.NoError(published[0].Decode(&payload))
	s.Equal(resp.ID, payload.PaymentID)
	s.Equal(s.testData.invoice.ID, payload.InvoiceID)
}

func (s *PaymentServiceSuite) TestRecordPaymentRejectsUnknownMethod() {
	_, err := s.service.RecordPayment(s.GetContext(), dto.RecordPaymentRequest{
		InvoiceID:     s.testData.invoice.ID,
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: types.PaymentMethod("barter"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
	s.Equal(types.InvoiceStatusSent, s.invoiceStatus())
}

func (s *PaymentServiceSuite) succeededEvent(eventID string) *stripe.WebhookEvent {
	return &stripe.WebhookEvent{
		ID:              eventID,
		Type:            stripe.EventPaymentIntentSucceeded,
		ObjectID:        "pi_789",
		PaymentIntentID: "pi_789",
		AmountCents:     125000,
		Currency:        "usd",
		Metadata:        map[string]string{stripe.MetadataInvoiceID: s.testData.invoice.ID},
	}
}

func (s *PaymentServiceSuite) TestWebhookRecordsPaymentOnce() {
	payload := []byte(`{"id":"evt_1"}`)
	s.GetGateway().On("ParseWebhookEvent", payload, "sig").Return(s.succeededEvent("evt_1"), nil)

	// webhooks arrive without a user session
	for i := 0; i < 2; i++ {
		resp, err := s.service.HandleWebhook(context.Background(), payload, "sig")
		s.NoError(err)
		s.True(resp.Received)
		s.Equal(stripe.EventPaymentIntentSucceeded, resp.Type)
	}

	recorded := s.payments()
	s.Require().Len(recorded, 1)
	s.Equal("pi_789", recorded[0].TransactionID)
	s.Equal("1250.00", recorded[0].Amount.StringFixed(2))
	s.Equal(testutil.DefaultUserID, recorded[0].UserID)
	s.Equal(types.InvoiceStatusPaid, s.invoiceStatus())
	s.Len(s.GetPublisher().EventsNamed(types.TopicPaymentRecorded), 1)
}

func (s *PaymentServiceSuite) TestWebhookSkipsPaymentRecordedByClient() {
	_, err := s.service.RecordPayment(s.GetContext(), dto.RecordPaymentRequest{
		InvoiceID:             s.testData.invoice.ID,
		Amount:                decimal.NewFromInt(1250),
		StripePaymentIntentID: "pi_789",
	})
	s.NoError(err)

	payload := []byte(`{"id":"evt_2"}`)
	s.GetGateway().On("ParseWebhookEvent", payload, "sig").Return(s.succeededEvent("evt_2"), nil)

	_, err = s.service.HandleWebhook(context.Background(), payload, "sig")
	s.NoError(err)
	s.Len(s.payments(), 1)
}

func (s *PaymentServiceSuite) TestWebhookForUnknownInvoiceIsAcknowledged() {
	payload := []byte(`{"id":"evt_3"}`)
	event := s.succeededEvent("evt_3")
	event.Metadata[stripe.MetadataInvoiceID] = "inv_missing"
	s.GetGateway().On("ParseWebhookEvent", payload, "sig").Return(event, nil)

	resp, err := s.service.HandleWebhook(context.Background(), payload, "sig")
	s.NoError(err)
	s.True(resp.Received)
	s.Empty(s.payments())
}

func (s *PaymentServiceSuite) TestWebhookUnknownTypeIsAcknowledged() {
	payload := []byte(`{"id":"evt_4"}`)
	s.GetGateway().On("ParseWebhookEvent", payload, "sig").
		Return(&stripe.WebhookEvent{ID: "evt_4", Type: "customer.created"}, nil)

	resp, err := s.service.HandleWebhook(context.Background(), payload, "sig")
	s.NoError(err)
	s.True(resp.Received)
	s.Equal("customer.created", resp.Type)
}

func (s *PaymentServiceSuite) TestWebhookWithBadSignatureFails() {
	payload := []byte(`{"id":"evt_5"}`)
	s.GetGateway().On("ParseWebhookEvent", payload, "forged").
		Return(nil, ierr.WithError(errors.New("signature mismatch")).
			WithHint("Invalid webhook signature").
			Mark(ierr.ErrValidation))

	_, err := s.service.HandleWebhook(context.Background(), payload, "forged")
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PaymentServiceSuite) TestRefundMarksRecordedPayment() {
	_, err := s.service.RecordPayment(s.GetContext(), dto.RecordPaymentRequest{
		InvoiceID:             s.testData.invoice.ID,
		Amount:                decimal.NewFromInt(1250),
		StripePaymentIntentID: "pi_789",
	})
	s.NoError(err)

	s.GetGateway().On("CreateRefund", mock.Anything, "pi_789", lo.ToPtr(int64(50000))).
		Return(&stripe.Refund{ID: "re_1", PaymentIntentID: "pi_789", AmountCents: 50000, Status: "succeeded"}, nil)

	resp, err := s.service.CreateRefund(s.GetContext(), dto.CreateRefundRequest{
		PaymentIntentID: "pi_789",
		Amount:          lo.ToPtr(decimal.NewFromInt(500)),
	})
	s.NoError(err)
	s.Equal("re_1", resp.RefundID)
	s.Equal("500.00", resp.Amount.StringFixed(2))

	recorded := s.payments()
	s.Require().Len(recorded, 1)
	s.Equal(types.PaymentStatusRefunded, recorded[0].Status)
}

func (s *PaymentServiceSuite) TestRefundOfOtherUsersPaymentIsRejected() {
	_, err := s.service.RecordPayment(s.GetContext(), dto.RecordPaymentRequest{
		InvoiceID:             s.testData.invoice.ID,
		Amount:                decimal.NewFromInt(1250),
		StripePaymentIntentID: "pi_789",
	})
	s.NoError(err)

	_, err = s.service.CreateRefund(testutil.SetupContextForUser("user_someone_else"), dto.CreateRefundRequest{
		PaymentIntentID: "pi_789",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
	s.GetGateway().AssertNotCalled(s.T(), "CreateRefund", mock.Anything, mock.Anything, mock.Anything)
}
