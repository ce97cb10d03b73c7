package v1

import (
	"net/http"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/service"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/gin-gonic/gin"
)

type RecurringInvoiceHandler struct {
	service service.RecurringInvoiceService
	logger  *logger.Logger
}

func NewRecurringInvoiceHandler(service service.RecurringInvoiceService, logger *logger.Logger) *RecurringInvoiceHandler {
	return &RecurringInvoiceHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a recurring invoice
// @Tags Recurring Invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recurring_invoice body dto.CreateRecurringInvoiceRequest true "Recurring invoice"
// @Success 201 {object} dto.RecurringInvoiceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /recurring-invoices [post]
func (h *RecurringInvoiceHandler) CreateRecurringInvoice(c *gin.Context) {
	var req dto.CreateRecurringInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateRecurringInvoice(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a recurring invoice
// @Tags Recurring Invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recurring invoice ID"
// @Success 200 {object} dto.RecurringInvoiceResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /recurring-invoices/{id} [get]
func (h *RecurringInvoiceHandler) GetRecurringInvoice(c *gin.Context) {
	resp, err := h.service.GetRecurringInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List recurring invoices
// @Tags Recurring Invoices
// @Produce json
// @Security BearerAuth
// @Param filter query types.RecurringInvoiceFilter false "Filter"
// @Success 200 {object} dto.ListRecurringInvoicesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /recurring-invoices [get]
func (h *RecurringInvoiceHandler) ListRecurringInvoices(c *gin.Context) {
	filter := types.NewRecurringInvoiceFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListRecurringInvoices(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a recurring invoice
// @Description Only the provided fields change
// @Tags Recurring Invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recurring invoice ID"
// @Param recurring_invoice body dto.UpdateRecurringInvoiceRequest true "Recurring invoice"
// @Success 200 {object} dto.RecurringInvoiceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /recurring-invoices/{id} [put]
func (h *RecurringInvoiceHandler) UpdateRecurringInvoice(c *gin.Context) {
	var req dto.UpdateRecurringInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateRecurringInvoice(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a recurring invoice
// @Tags Recurring Invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recurring invoice ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /recurring-invoices/{id} [delete]
func (h *RecurringInvoiceHandler) DeleteRecurringInvoice(c *gin.Context) {
	if err := h.service.DeleteRecurringInvoice(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Recurring invoice deleted successfully"))
}

// @Summary Generate due invoices
// @Description Create one invoice for every active template that is due and advance each template by one period
// @Tags Recurring Invoices
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.GenerateDueInvoicesResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /recurring-invoices/generate [post]
func (h *RecurringInvoiceHandler) GenerateDueInvoices(c *gin.Context) {
	resp, err := h.service.GenerateDueInvoices(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
