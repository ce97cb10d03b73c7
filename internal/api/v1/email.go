package v1

import (
	"net/http"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/service"
	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	service service.EmailService
	logger  *logger.Logger
}

func NewEmailHandler(service service.EmailService, logger *logger.Logger) *EmailHandler {
	return &EmailHandler{
		service: service,
		logger:  logger,
	}
}

// respond renders the send result. A provider failure still carries a response
// body, which is returned with a 500 instead of the generic error envelope.
func (h *EmailHandler) respond(c *gin.Context, resp *dto.SendEmailResponse, err error) {
	if err != nil {
		if resp != nil {
			h.logger.Errorw("email send failed", "error", err)
			c.JSON(http.StatusInternalServerError, resp)
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func bindEmailRequest(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return false
	}
	return true
}

// @Summary Send an invoice email
// @Tags Email
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email body dto.SendInvoiceEmailRequest true "Invoice email"
// @Success 200 {object} dto.SendEmailResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} dto.SendEmailResponse
// @Router /email/invoice [post]
func (h *EmailHandler) SendInvoiceEmail(c *gin.Context) {
	var req dto.SendInvoiceEmailRequest
	if !bindEmailRequest(c, &req) {
		return
	}

	resp, err := h.service.SendInvoiceEmail(c.Request.Context(), req)
	h.respond(c, resp, err)
}

// @Summary Send a payment confirmation email
// @Tags Email
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email body dto.SendPaymentConfirmationEmailRequest true "Payment confirmation email"
// @Success 200 {object} dto.SendEmailResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} dto.SendEmailResponse
// @Router /email/payment-confirmation [post]
func (h *EmailHandler) SendPaymentConfirmationEmail(c *gin.Context) {
	var req dto.SendPaymentConfirmationEmailRequest
	if !bindEmailRequest(c, &req) {
		return
	}

	resp, err := h.service.SendPaymentConfirmationEmail(c.Request.Context(), req)
	h.respond(c, resp, err)
}

// @Summary Send a payment reminder email
// @Tags Email
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email body dto.SendPaymentReminderEmailRequest true "Payment reminder email"
// @Success 200 {object} dto.SendEmailResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} dto.SendEmailResponse
// @Router /email/payment-reminder [post]
func (h *EmailHandler) SendPaymentReminderEmail(c *gin.Context) {
	var req dto.SendPaymentReminderEmailRequest
	if !bindEmailRequest(c, &req) {
		return
	}

	resp, err := h.service.SendPaymentReminderEmail(c.Request.Context(), req)
	h.respond(c, resp, err)
}

// @Summary Send a welcome email
// @Tags Email
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email body dto.SendWelcomeEmailRequest true "Welcome email"
// @Success 200 {object} dto.SendEmailResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} dto.SendEmailResponse
// @Router /email/welcome [post]
func (h *EmailHandler) SendWelcomeEmail(c *gin.Context) {
	var req dto.SendWelcomeEmailRequest
	if !bindEmailRequest(c, &req) {
		return
	}

	resp, err := h.service.SendWelcomeEmail(c.Request.Context(), req)
	h.respond(c, resp, err)
}

// @Summary Send a test email
// @Tags Email
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email body dto.SendTestEmailRequest true "Test email"
// @Success 200 {object} dto.SendEmailResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} dto.SendEmailResponse
// @Router /email/test [post]
func (h *EmailHandler) SendTestEmail(c *gin.Context) {
	var req dto.SendTestEmailRequest
	if !bindEmailRequest(c, &req) {
		return
	}

	resp, err := h.service.SendTestEmail(c.Request.Context(), req)
	h.respond(c, resp, err)
}
