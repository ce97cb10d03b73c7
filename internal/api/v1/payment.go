package v1

import (
	"io"
	"net/http"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/service"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/gin-gonic/gin"
)

const stripeSignatureHeader = "Stripe-Signature"

type PaymentHandler struct {
	service service.PaymentService
	logger  *logger.Logger
}

func NewPaymentHandler(service service.PaymentService, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a payment intent
// @Description Create a Stripe payment intent for an invoice
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param intent body dto.CreatePaymentIntentRequest true "Payment intent"
// @Success 201 {object} dto.CreatePaymentIntentResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /payments/create-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req dto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreatePaymentIntent(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Create a checkout session
// @Description Create a hosted Stripe checkout session for an invoice
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body dto.CreateCheckoutSessionRequest true "Checkout session"
// @Success 201 {object} dto.CreateCheckoutSessionResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /payments/create-checkout [post]
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req dto.CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateCheckoutSession(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get payment intent status
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment intent ID"
// @Success 200 {object} dto.PaymentIntentStatusResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /payments/intent/{id}/status [get]
func (h *PaymentHandler) GetPaymentIntentStatus(c *gin.Context) {
	resp, err := h.service.GetPaymentIntentStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get checkout session status
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Checkout session ID"
// @Success 200 {object} dto.CheckoutSessionStatusResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /payments/checkout/{id}/status [get]
func (h *PaymentHandler) GetCheckoutSessionStatus(c *gin.Context) {
	resp, err := h.service.GetCheckoutSessionStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Record a payment
// @Description Store a completed payment and mark the invoice paid
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payment body dto.RecordPaymentRequest true "Payment"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /payments/record [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.RecordPayment(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Refund a payment
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param refund body dto.CreateRefundRequest true "Refund"
// @Success 200 {object} dto.RefundResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /payments/refund [post]
func (h *PaymentHandler) CreateRefund(c *gin.Context) {
	var req dto.CreateRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateRefund(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List payments
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Param filter query types.PaymentFilter false "Filter"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	filter := types.NewPaymentFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListPayments(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Stripe webhook
// @Description Receives Stripe events. The raw body is verified against the Stripe-Signature header.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe webhook signature"
// @Success 200 {object} dto.WebhookResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /payments/webhook [post]
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.Errorw("failed to read webhook body", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Failed to read request body").
			Mark(ierr.ErrValidation))
		return
	}

	signature := c.GetHeader(stripeSignatureHeader)
	if signature == "" {
		c.Error(ierr.NewError("missing stripe signature").
			WithHint("Missing Stripe-Signature header").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.HandleWebhook(c.Request.Context(), body, signature)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
