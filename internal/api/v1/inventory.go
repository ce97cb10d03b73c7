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

type InventoryHandler struct {
	service service.InventoryService
	logger  *logger.Logger
}

func NewInventoryHandler(service service.InventoryService, logger *logger.Logger) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create an inventory item
// @Description Create an item and log its initial addition
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body dto.CreateInventoryItemRequest true "Inventory item"
// @Success 201 {object} dto.InventoryItemResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /inventory [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req dto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateItem(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get an inventory item
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inventory item ID"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /inventory/{id} [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	resp, err := h.service.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List inventory items
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param filter query types.InventoryFilter false "Filter"
// @Success 200 {object} dto.ListInventoryItemsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /inventory [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	filter := types.NewInventoryFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListItems(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List inventory items for a project
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.ListInventoryItemsResponse
// @Router /inventory/project/{project_id} [get]
func (h *InventoryHandler) ListItemsByProject(c *gin.Context) {
	resp, err := h.service.ListItemsByProject(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Transfer inventory
// @Description Move an item to another location and log the transfer
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param transfer body dto.TransferInventoryRequest true "Transfer"
// @Success 200 {object} dto.TransferInventoryResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /inventory/transfer [post]
func (h *InventoryHandler) TransferItem(c *gin.Context) {
	var req dto.TransferInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.TransferItem(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update inventory status
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inventory item ID"
// @Param status body dto.UpdateInventoryStatusRequest true "Status"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /inventory/{id}/status [put]
func (h *InventoryHandler) UpdateItemStatus(c *gin.Context) {
	var req dto.UpdateInventoryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateItemStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Inventory transaction history
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inventory item ID"
// @Success 200 {array} dto.InventoryTransactionResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /inventory/{id}/history [get]
func (h *InventoryHandler) GetTransactionHistory(c *gin.Context) {
	resp, err := h.service.GetTransactionHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Inventory summary
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.InventorySummaryResponse
// @Router /inventory/summary [get]
func (h *InventoryHandler) GetSummary(c *gin.Context) {
	resp, err := h.service.GetSummary(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete an inventory item
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inventory item ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	if err := h.service.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Inventory item deleted successfully"))
}
