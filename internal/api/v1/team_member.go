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

type TeamMemberHandler struct {
	service service.TeamMemberService
	log     *logger.Logger
}

func NewTeamMemberHandler(service service.TeamMemberService, log *logger.Logger) *TeamMemberHandler {
	return &TeamMemberHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create a team member
// @Tags Team Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param team_member body dto.CreateTeamMemberRequest true "Team member"
// @Success 201 {object} dto.TeamMemberResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /team-members [post]
func (h *TeamMemberHandler) CreateTeamMember(c *gin.Context) {
	var req dto.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateTeamMember(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a team member
// @Tags Team Members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team member ID"
// @Success 200 {object} dto.TeamMemberResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /team-members/{id} [get]
func (h *TeamMemberHandler) GetTeamMember(c *gin.Context) {
	resp, err := h.service.GetTeamMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List team members
// @Tags Team Members
// @Produce json
// @Security BearerAuth
// @Param filter query types.TeamMemberFilter false "Filter"
// @Success 200 {object} dto.ListTeamMembersResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /team-members [get]
func (h *TeamMemberHandler) ListTeamMembers(c *gin.Context) {
	filter := types.NewTeamMemberFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListTeamMembers(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a team member
// @Tags Team Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team member ID"
// @Param team_member body dto.UpdateTeamMemberRequest true "Team member"
// @Success 200 {object} dto.TeamMemberResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /team-members/{id} [put]
func (h *TeamMemberHandler) UpdateTeamMember(c *gin.Context) {
	var req dto.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateTeamMember(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a team member
// @Tags Team Members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team member ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /team-members/{id} [delete]
func (h *TeamMemberHandler) DeleteTeamMember(c *gin.Context) {
	if err := h.service.DeleteTeamMember(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Team member deleted successfully"))
}
