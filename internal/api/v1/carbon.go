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

type CarbonHandler struct {
	service service.CarbonService
	logger  *logger.Logger
}

func NewCarbonHandler(service service.CarbonService, logger *logger.Logger) *CarbonHandler {
	return &CarbonHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a carbon record
// @Tags Carbon
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param record body dto.CreateCarbonRecordRequest true "Carbon record"
// @Success 201 {object} dto.CarbonRecordResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /carbon [post]
func (h *CarbonHandler) CreateRecord(c *gin.Context) {
	var req dto.CreateCarbonRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateRecord(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary List carbon records
// @Tags Carbon
// @Produce json
// @Security BearerAuth
// @Param filter query types.CarbonRecordFilter false "Filter"
// @Success 200 {object} dto.ListCarbonRecordsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /carbon [get]
func (h *CarbonHandler) ListRecords(c *gin.Context) {
	filter := types.NewCarbonRecordFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListRecords(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List carbon records for a project
// @Tags Carbon
// @Produce json
// @Security BearerAuth
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.ListCarbonRecordsResponse
// @Router /carbon/project/{project_id} [get]
func (h *CarbonHandler) ListRecordsByProject(c *gin.Context) {
	resp, err := h.service.ListRecordsByProject(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a carbon record
// @Tags Carbon
// @Produce json
// @Security BearerAuth
// @Param id path string true "Carbon record ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /carbon/{id} [delete]
func (h *CarbonHandler) DeleteRecord(c *gin.Context) {
	if err := h.service.DeleteRecord(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Carbon record deleted successfully"))
}

// @Summary Project carbon summary
// @Tags Carbon
// @Produce json
// @Security BearerAuth
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.CarbonProjectSummaryResponse
// @Router /carbon/project/{project_id}/summary [get]
func (h *CarbonHandler) GetProjectSummary(c *gin.Context) {
	resp, err := h.service.GetProjectSummary(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Project ESG compliance report
// @Tags Carbon
// @Produce json
// @Security BearerAuth
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.CarbonComplianceReportResponse
// @Router /carbon/project/{project_id}/report [get]
func (h *CarbonHandler) GetComplianceReport(c *gin.Context) {
	resp, err := h.service.GetComplianceReport(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
