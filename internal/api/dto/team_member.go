package dto

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/domain/teammember"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/contractorpro/contractorpro/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateTeamMemberRequest struct {
	Name       string               `json:"name" validate:"required,max=255"`
	Email      string               `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string               `json:"phone,omitempty" validate:"omitempty,max=50"`
	Role       types.TeamMemberRole `json:"role,omitempty"`
	HourlyRate decimal.Decimal      `json:"hourly_rate" validate:"gte=0"`
}

func (r *CreateTeamMemberRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Role != "" {
		return r.Role.Validate()
	}
	return nil
}

func (r *CreateTeamMemberRequest) ToTeamMember(ctx context.Context) *teammember.TeamMember {
	role := r.Role
	if role == "" {
		role = types.TeamMemberRoleWorker
	}
	return &teammember.TeamMember{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TEAM_MEMBER),
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Role:       role,
		HourlyRate: r.HourlyRate.Round(2),
		BaseModel:  types.GetDefaultBaseModel(ctx),
	}
}

type UpdateTeamMemberRequest struct {
	Name       *string               `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Email      *string               `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string               `json:"phone,omitempty"`
	Role       *types.TeamMemberRole `json:"role,omitempty"`
	HourlyRate *decimal.Decimal      `json:"hourly_rate,omitempty" validate:"omitempty,gte=0"`
}

func (r *UpdateTeamMemberRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Role != nil {
		return r.Role.Validate()
	}
	return nil
}

func (r *UpdateTeamMemberRequest) Apply(m *teammember.TeamMember) {
	setIfPresent(&m.Name, r.Name)
	setIfPresent(&m.Email, r.Email)
	setIfPresent(&m.Phone, r.Phone)
	setIfPresent(&m.Role, r.Role)
	if r.HourlyRate != nil {
		m.HourlyRate = r.HourlyRate.Round(2)
	}
}

type TeamMemberResponse struct {
	*teammember.TeamMember
}

type ListTeamMembersResponse = types.ListResponse[*TeamMemberResponse]
