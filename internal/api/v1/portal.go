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

type PortalHandler struct {
	service service.PortalService
	logger  *logger.Logger
}

func NewPortalHandler(service service.PortalService, logger *logger.Logger) *PortalHandler {
	return &PortalHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create portal access
// @Description Issue a client portal link for a project
// @Tags Portal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param access body dto.CreatePortalAccessRequest true "Portal access"
// @Success 201 {object} dto.CreatePortalAccessResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /portal/access [post]
func (h *PortalHandler) CreateAccess(c *gin.Context) {
	var req dto.CreatePortalAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateAccess(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary List portal accesses
// @Tags Portal
// @Produce json
// @Security BearerAuth
// @Param filter query types.PortalAccessFilter false "Filter"
// @Success 200 {object} dto.ListPortalAccessResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /portal/access [get]
func (h *PortalHandler) ListAccess(c *gin.Context) {
	filter := types.NewPortalAccessFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListAccess(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Revoke portal access
// @Tags Portal
// @Produce json
// @Security BearerAuth
// @Param id path string true "Portal access ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /portal/access/{id}/revoke [post]
func (h *PortalHandler) RevokeAccess(c *gin.Context) {
	if err := h.service.RevokeAccess(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Portal access revoked"))
}

// @Summary Update portal access level
// @Tags Portal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Portal access ID"
// @Param level body dto.UpdatePortalAccessLevelRequest true "Access level"
// @Success 200 {object} dto.PortalAccessResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /portal/access/{id}/level [put]
func (h *PortalHandler) UpdateAccessLevel(c *gin.Context) {
	var req dto.UpdatePortalAccessLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateAccessLevel(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Client portal data
// @Description Public endpoint for the holder of a portal token
// @Tags Portal
// @Produce json
// @Param token path string true "Portal access token"
// @Success 200 {object} dto.PortalDataResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /portal/view/{token} [get]
func (h *PortalHandler) GetPortalData(c *gin.Context) {
	resp, err := h.service.GetPortalData(c.Request.Context(), c.Param("token"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
