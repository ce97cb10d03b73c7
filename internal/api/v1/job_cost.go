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

type JobCostHandler struct {
	service service.JobCostService
	logger  *logger.Logger
}

func NewJobCostHandler(service service.JobCostService, logger *logger.Logger) *JobCostHandler {
	return &JobCostHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a job cost
// @Tags Job Costs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param job_cost body dto.CreateJobCostRequest true "Job cost"
// @Success 201 {object} dto.JobCostResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /job-costs [post]
func (h *JobCostHandler) CreateJobCost(c *gin.Context) {
	var req dto.CreateJobCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateJobCost(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a job cost
// @Tags Job Costs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job cost ID"
// @Success 200 {object} dto.JobCostResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /job-costs/{id} [get]
func (h *JobCostHandler) GetJobCost(c *gin.Context) {
	resp, err := h.service.GetJobCost(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List job costs
// @Tags Job Costs
// @Produce json
// @Security BearerAuth
// @Param filter query types.JobCostFilter false "Filter"
// @Success 200 {object} dto.ListJobCostsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /job-costs [get]
func (h *JobCostHandler) ListJobCosts(c *gin.Context) {
	filter := types.NewJobCostFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListJobCosts(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a job cost
// @Tags Job Costs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job cost ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /job-costs/{id} [delete]
func (h *JobCostHandler) DeleteJobCost(c *gin.Context) {
	if err := h.service.DeleteJobCost(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Job cost deleted successfully"))
}

// @Summary Export job costs
// @Tags Job Costs
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param filter query types.JobCostFilter false "Filter"
// @Success 200 {file} file
// @Failure 400 {object} ierr.ErrorResponse
// @Router /job-costs/export [get]
func (h *JobCostHandler) ExportJobCosts(c *gin.Context) {
	filter := types.NewJobCostFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	data, err := h.service.ExportJobCosts(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	sendWorkbook(c, "job-costs", data)
}
